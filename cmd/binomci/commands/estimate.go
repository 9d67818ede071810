package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"binomci/internal/domain"
)

func estimateCmd(opts *options) *cobra.Command {
	var (
		data    dataFlags
		sampler samplerFlags
		method  string
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print a single interval for a binomial proportion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseMethod(method)
			if err != nil {
				return err
			}
			obs, err := data.observation(opts)
			if err != nil {
				return err
			}
			level := opts.wire.Config.Level

			model, cfg := sampler.resolve(cmd, opts)

			var est domain.ProportionEstimate
			if rc := opts.wire.Remote; rc != nil {
				est, err = rc.Estimate(cmd.Context(), domain.EstimateRequest{
					Successes: obs.Successes,
					Trials:    obs.Trials,
					Level:     level,
					Method:    m,
					Prior:     &model,
					Sampler:   &cfg,
				})
			} else {
				est, err = opts.wire.Compare.Estimate(cmd.Context(), m, obs, level, model, cfg)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %.0f%%: point=%.4f lower=%.4f upper=%.4f\n", m, level*100, est.Point, est.Lower, est.Upper)
			if !est.Admissible() {
				fmt.Fprintln(out, "warning: interval extends outside [0, 1]")
			}
			return nil
		},
	}
	data.register(cmd)
	sampler.register(cmd)
	cmd.Flags().StringVar(&method, "method", "wald", "wald, wilson, mean-t or posterior")
	return cmd
}
