package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"binomci/internal/posterior"
)

// posteriorCmd always samples locally; the server API returns estimates
// only, not the full summary.
func posteriorCmd(opts *options) *cobra.Command {
	var (
		data    dataFlags
		sampler samplerFlags
	)
	cmd := &cobra.Command{
		Use:   "posterior",
		Short: "Sample the Beta posterior and print a credible interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := data.observation(opts)
			if err != nil {
				return err
			}
			model, cfg := sampler.resolve(cmd, opts)
			level := opts.wire.Config.Level

			sum, err := posterior.Run(cmd.Context(), opts.wire.Sampler, model, obs, cfg, level)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "prior:   Beta(%g, %g)\n", model.Alpha, model.Beta)
			fmt.Fprintf(out, "draws:   %d (burn-in %d, thin %d, seed %d)\n", sum.Draws, cfg.BurnIn, cfg.Thin, cfg.Seed)
			fmt.Fprintf(out, "mean:    %.4f\n", sum.Mean)
			fmt.Fprintf(out, "median:  %.4f\n", sum.Median)
			fmt.Fprintf(out, "%.0f%% credible interval: [%.4f, %.4f]\n", level*100, sum.Lower, sum.Upper)
			return nil
		},
	}
	data.register(cmd)
	sampler.register(cmd)
	return cmd
}
