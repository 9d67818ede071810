package commands

import (
	"github.com/spf13/cobra"

	"binomci/internal/domain"
)

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <report-id>",
		Short: "Print a stored comparison report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rep domain.Report
			var err error
			if rc := opts.wire.Remote; rc != nil {
				rep, err = rc.LoadReport(cmd.Context(), args[0])
			} else {
				rep, err = opts.wire.Reports.LoadReport(args[0])
			}
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), rep)
		},
	}
}
