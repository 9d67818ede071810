package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"binomci/internal/app"
)

// options carries global flags and the wired app into subcommands.
type options struct {
	configPath string
	home       string
	server     string
	logLevel   string
	level      float64

	wire *app.Wire
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "binomci",
		Short:        "Compare Wald, Wilson and Bayesian intervals for a binomial proportion",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = opts.home
			}
			if flags.Changed("server") {
				cfg.Server = opts.server
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if flags.Changed("level") {
				cfg.Level = opts.level
			}
			if err := os.MkdirAll(cfg.Home, 0o755); err != nil {
				return fmt.Errorf("creating home %s: %w", cfg.Home, err)
			}

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVar(&opts.home, "home", "", "data dir (default ~/.binomci)")
	pf.StringVar(&opts.server, "server", "", "binomci-server base URL (e.g. http://127.0.0.1:8080)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	pf.Float64Var(&opts.level, "level", 0.95, "confidence / credible level in (0, 1)")

	root.AddCommand(
		generateCmd(opts),
		estimateCmd(opts),
		posteriorCmd(opts),
		compareCmd(opts),
		showCmd(opts),
	)
	return root
}
