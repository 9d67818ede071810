package posterior

import (
	"context"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"binomci/internal/domain"
	"binomci/internal/rng"
)

// cancelCheckEvery bounds how many draws run between context checks.
const cancelCheckEvery = 1024

// ConjugateSampler draws from the exact Beta posterior.
type ConjugateSampler struct{}

// NewConjugate returns a ConjugateSampler.
func NewConjugate() *ConjugateSampler { return &ConjugateSampler{} }

// Sample returns cfg.Draws values from Beta(α+K, β+N-K) after discarding
// cfg.BurnIn values and keeping every cfg.Thin-th value thereafter.
func (s *ConjugateSampler) Sample(
	ctx context.Context,
	model domain.ModelSpec,
	data domain.TrialObservation,
	cfg domain.SamplerConfig,
) ([]float64, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	agg := data.Aggregate()
	dist := distuv.Beta{
		Alpha: model.Alpha + float64(agg.K),
		Beta:  model.Beta + float64(agg.N-agg.K),
		Src:   rng.NewSource(cfg.Seed),
	}

	total := cfg.BurnIn + cfg.Draws*cfg.Thin
	out := make([]float64, 0, cfg.Draws)
	for i := 0; i < total; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		x := dist.Rand()
		if i < cfg.BurnIn || (i-cfg.BurnIn)%cfg.Thin != 0 {
			continue
		}
		out = append(out, x)
	}
	return out, nil
}

// Summarize reports the mean, median and the equal-tailed credible interval
// at level from the empirical quantiles of draws.
func Summarize(draws []float64, level float64) (domain.PosteriorSummary, error) {
	if len(draws) == 0 {
		return domain.PosteriorSummary{}, fmt.Errorf("%w: no posterior draws", domain.ErrInvalidArgument)
	}
	if !(level > 0 && level < 1) {
		return domain.PosteriorSummary{}, fmt.Errorf("%w: credible level must be in (0, 1), got %v", domain.ErrInvalidArgument, level)
	}

	sorted := slices.Clone(draws)
	slices.Sort(sorted)
	tail := (1 - level) / 2
	return domain.PosteriorSummary{
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Lower:  stat.Quantile(tail, stat.Empirical, sorted, nil),
		Upper:  stat.Quantile(1-tail, stat.Empirical, sorted, nil),
		Level:  level,
		Draws:  len(sorted),
	}, nil
}

// Run samples with s and summarises the draws at level.
func Run(
	ctx context.Context,
	s domain.PosteriorSampler,
	model domain.ModelSpec,
	data domain.TrialObservation,
	cfg domain.SamplerConfig,
	level float64,
) (domain.PosteriorSummary, error) {
	draws, err := s.Sample(ctx, model, data, cfg)
	if err != nil {
		return domain.PosteriorSummary{}, fmt.Errorf("sampling posterior: %w", err)
	}
	for i, d := range draws {
		if !(d >= 0 && d <= 1) {
			return domain.PosteriorSummary{}, fmt.Errorf("sampler returned draw %d outside [0, 1]: %v", i, d)
		}
	}
	return Summarize(draws, level)
}
