package commands

import (
	"github.com/spf13/cobra"

	"binomci/internal/domain"
)

func compareCmd(opts *options) *cobra.Command {
	var (
		data    dataFlags
		sampler samplerFlags
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every interval method on one dataset and store the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := data.observation(opts)
			if err != nil {
				return err
			}
			model, cfg := sampler.resolve(cmd, opts)
			level := opts.wire.Config.Level

			var rep domain.Report
			if rc := opts.wire.Remote; rc != nil {
				rep, err = rc.Compare(cmd.Context(), domain.CompareRequest{
					Successes: obs.Successes,
					Trials:    obs.Trials,
					Level:     level,
					Prior:     &model,
					Sampler:   &cfg,
				})
			} else {
				rep, err = opts.wire.Compare.Run(cmd.Context(), obs, level, model, cfg)
			}
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), rep)
		},
	}
	data.register(cmd)
	sampler.register(cmd)
	return cmd
}
