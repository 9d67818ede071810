package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"binomci/internal/app"
	"binomci/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath, listen, home string
	cmd := &cobra.Command{
		Use:          "binomci-server",
		Short:        "Serve binomial interval estimates over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Listen = listen
			}
			if cmd.Flags().Changed("home") {
				cfg.Home = home
			}
			if err := os.MkdirAll(cfg.Home, 0o755); err != nil {
				return fmt.Errorf("creating home %s: %w", cfg.Home, err)
			}
			w, err := app.NewWire(cfg, os.Stderr)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.Listen,
				Handler:           server.New(w.Compare, w.Reports, w.Log, cfg.Prior, cfg.Sampler).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				w.Log.Info("server listening", "addr", cfg.Listen, "home", cfg.Home)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			w.Log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&listen, "listen", ":8080", "listen address")
	cmd.Flags().StringVar(&home, "home", "", "data dir (default ~/.binomci)")
	return cmd
}
