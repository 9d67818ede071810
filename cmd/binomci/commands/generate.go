package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"binomci/internal/synth"
)

func generateCmd(opts *options) *cobra.Command {
	var (
		p    synth.Params
		name string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw an overdispersed synthetic dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override config only where given.
			params := opts.wire.Config.Synth
			f := cmd.Flags()
			if f.Changed("replicates") {
				params.Replicates = p.Replicates
			}
			if f.Changed("trials") {
				params.Trials = p.Trials
			}
			if f.Changed("mean") {
				params.Mean = p.Mean
			}
			if f.Changed("concentration") {
				params.Concentration = p.Concentration
			}
			if f.Changed("seed") {
				params.Seed = p.Seed
			}

			obs, err := synth.Generate(params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "successes: %v\n", obs.Successes)
			fmt.Fprintf(out, "trials:    %d per replicate\n", obs.Trials)
			fmt.Fprintf(out, "pooled:    %d/%d = %.4f\n", obs.Aggregate().K, obs.Aggregate().N, obs.Aggregate().Proportion())
			fmt.Fprintf(out, "dispersion: %.2f\n", synth.Dispersion(obs))

			if name == "" {
				return nil
			}
			if err := opts.wire.Datasets.SaveDataset(name, obs); err != nil {
				return err
			}
			opts.wire.Log.Debug("dataset saved", "name", name, "seed", params.Seed)
			fmt.Fprintf(out, "saved dataset %q\n", name)
			return nil
		},
	}
	def := synth.DefaultParams()
	f := cmd.Flags()
	f.IntVar(&p.Replicates, "replicates", def.Replicates, "number of replicate experiments")
	f.IntVar(&p.Trials, "trials", def.Trials, "trials per replicate")
	f.Float64Var(&p.Mean, "mean", def.Mean, "mean success probability across replicates")
	f.Float64Var(&p.Concentration, "concentration", def.Concentration, "Beta concentration; lower is more overdispersed")
	f.Uint64Var(&p.Seed, "seed", def.Seed, "random seed")
	f.StringVar(&name, "name", "", "save the dataset under this name")
	return cmd
}
