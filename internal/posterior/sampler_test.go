package posterior_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binomci/internal/domain"
	"binomci/internal/posterior"
)

func TestConjugateSampler_DrawCountAndRange(t *testing.T) {
	s := posterior.NewConjugate()
	cfg := domain.SamplerConfig{Draws: 500, BurnIn: 37, Thin: 3, Seed: 9}
	data := domain.TrialObservation{Successes: []int{0, 0, 1}, Trials: 10}

	draws, err := s.Sample(context.Background(), domain.DefaultModel(), data, cfg)
	require.NoError(t, err)
	require.Len(t, draws, 500)
	for _, d := range draws {
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 1.0)
	}
}

func TestConjugateSampler_Deterministic(t *testing.T) {
	s := posterior.NewConjugate()
	cfg := domain.SamplerConfig{Draws: 100, BurnIn: 10, Thin: 1, Seed: 5}
	data := domain.TrialObservation{Successes: []int{3, 7}, Trials: 10}

	a, err := s.Sample(context.Background(), domain.DefaultModel(), data, cfg)
	require.NoError(t, err)
	b, err := s.Sample(context.Background(), domain.DefaultModel(), data, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestConjugateSampler_MatchesBetaPosterior(t *testing.T) {
	s := posterior.NewConjugate()
	cfg := domain.SamplerConfig{Draws: 40000, BurnIn: 0, Thin: 1, Seed: 1}
	data := domain.TrialObservation{Successes: []int{5}, Trials: 10}

	sum, err := posterior.Run(context.Background(), s, domain.DefaultModel(), data, cfg, 0.95)
	require.NoError(t, err)

	// Beta(6, 6).
	assert.InDelta(t, 0.5, sum.Mean, 0.005)
	assert.InDelta(t, 0.5, sum.Median, 0.01)
	assert.InDelta(t, 0.234, sum.Lower, 0.01)
	assert.InDelta(t, 0.766, sum.Upper, 0.01)
	assert.Equal(t, 40000, sum.Draws)
}

func TestConjugateSampler_BoundedWhereWaldIsNot(t *testing.T) {
	s := posterior.NewConjugate()
	data := domain.TrialObservation{Successes: []int{1}, Trials: 20}

	sum, err := posterior.Run(context.Background(), s, domain.DefaultModel(), data, domain.DefaultSamplerConfig(), 0.95)
	require.NoError(t, err)
	assert.Greater(t, sum.Lower, 0.0)
	assert.Less(t, sum.Upper, 1.0)
	assert.True(t, sum.Estimate().Admissible())
}

func TestConjugateSampler_InvalidInput(t *testing.T) {
	s := posterior.NewConjugate()
	ctx := context.Background()
	data := domain.TrialObservation{Successes: []int{1}, Trials: 2}

	_, err := s.Sample(ctx, domain.ModelSpec{Alpha: 0, Beta: 1}, data, domain.DefaultSamplerConfig())
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = s.Sample(ctx, domain.DefaultModel(), domain.TrialObservation{Trials: 2}, domain.DefaultSamplerConfig())
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = s.Sample(ctx, domain.DefaultModel(), data, domain.SamplerConfig{Draws: 10, Thin: 0})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	// Rejected before any allocation is sized from Draws.
	_, err = s.Sample(ctx, domain.DefaultModel(), data, domain.SamplerConfig{Draws: 1 << 62, Thin: 4})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = s.Sample(ctx, domain.DefaultModel(), data, domain.SamplerConfig{Draws: 1 << 10, BurnIn: 5, Thin: 1 << 54})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestConjugateSampler_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := domain.TrialObservation{Successes: []int{1}, Trials: 2}
	_, err := posterior.NewConjugate().Sample(ctx, domain.DefaultModel(), data, domain.DefaultSamplerConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	_, err := posterior.Summarize(nil, 0.95)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = posterior.Summarize([]float64{0.5}, 1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	draws := []float64{0.9, 0.1, 0.5, 0.3, 0.7}
	sum, err := posterior.Summarize(draws, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sum.Mean, 1e-12)
	assert.Equal(t, 0.5, sum.Median)
	assert.LessOrEqual(t, sum.Lower, sum.Median)
	assert.GreaterOrEqual(t, sum.Upper, sum.Median)
	assert.Equal(t, []float64{0.9, 0.1, 0.5, 0.3, 0.7}, draws, "input must not be reordered")
}

type badSampler struct{}

func (badSampler) Sample(context.Context, domain.ModelSpec, domain.TrialObservation, domain.SamplerConfig) ([]float64, error) {
	return []float64{0.2, 1.3}, nil
}

func TestRun_RejectsOutOfSupportDraws(t *testing.T) {
	data := domain.TrialObservation{Successes: []int{1}, Trials: 2}
	_, err := posterior.Run(context.Background(), badSampler{}, domain.DefaultModel(), data, domain.DefaultSamplerConfig(), 0.95)
	require.Error(t, err)
}
