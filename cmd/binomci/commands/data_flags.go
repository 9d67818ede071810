package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"binomci/internal/domain"
)

// dataFlags selects the observation a command works on: a stored dataset,
// or inline counts.
type dataFlags struct {
	dataset   string
	successes []int
	trials    int
}

func (d *dataFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&d.dataset, "dataset", "", "name of a dataset saved by generate")
	f.IntSliceVar(&d.successes, "successes", nil, "comma-separated per-replicate success counts")
	f.IntVar(&d.trials, "trials", 0, "trials per replicate (with --successes)")
	cmd.MarkFlagsMutuallyExclusive("dataset", "successes")
	cmd.MarkFlagsOneRequired("dataset", "successes")
}

func (d *dataFlags) observation(opts *options) (domain.TrialObservation, error) {
	if d.dataset != "" {
		return opts.wire.Datasets.LoadDataset(d.dataset)
	}
	obs := domain.TrialObservation{Successes: d.successes, Trials: d.trials}
	if err := obs.Validate(); err != nil {
		return domain.TrialObservation{}, fmt.Errorf("--successes/--trials: %w", err)
	}
	return obs, nil
}

// samplerFlags override the configured prior and sampler settings.
type samplerFlags struct {
	alpha, beta float64
	draws       int
	burnIn      int
	thin        int
	seed        uint64
}

func (s *samplerFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&s.alpha, "alpha", 1, "Beta prior alpha")
	f.Float64Var(&s.beta, "beta", 1, "Beta prior beta")
	f.IntVar(&s.draws, "draws", 4000, "posterior draws kept")
	f.IntVar(&s.burnIn, "burn-in", 1000, "initial draws discarded")
	f.IntVar(&s.thin, "thin", 1, "keep every n-th draw")
	f.Uint64Var(&s.seed, "seed", 1, "sampler seed")
}

// resolve starts from the config and applies only flags the user set.
func (s *samplerFlags) resolve(cmd *cobra.Command, opts *options) (domain.ModelSpec, domain.SamplerConfig) {
	model := opts.wire.Config.Prior
	cfg := opts.wire.Config.Sampler
	f := cmd.Flags()
	if f.Changed("alpha") {
		model.Alpha = s.alpha
	}
	if f.Changed("beta") {
		model.Beta = s.beta
	}
	if f.Changed("draws") {
		cfg.Draws = s.draws
	}
	if f.Changed("burn-in") {
		cfg.BurnIn = s.burnIn
	}
	if f.Changed("thin") {
		cfg.Thin = s.thin
	}
	if f.Changed("seed") {
		cfg.Seed = s.seed
	}
	return model, cfg
}
