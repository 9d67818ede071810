package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"binomci/internal/domain"
)

func printReport(out io.Writer, r domain.Report) error {
	fmt.Fprintf(out, "report %s (%s)\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05Z07:00"))
	fmt.Fprintf(out, "data: %d replicates x %d trials, K=%d N=%d, dispersion %.2f\n",
		len(r.Data.Successes), r.Data.Trials, r.Aggregate.K, r.Aggregate.N, r.Dispersion)
	fmt.Fprintf(out, "level: %.0f%%, prior Beta(%g, %g)\n\n", r.Level*100, r.Prior.Alpha, r.Prior.Beta)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPOINT\tLOWER\tUPPER\tIN [0,1]")
	for _, res := range r.Results {
		ok := "yes"
		if !res.Admissible {
			ok = "NO"
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%s\n",
			res.Method, res.Estimate.Point, res.Estimate.Lower, res.Estimate.Upper, ok)
	}
	return tw.Flush()
}
