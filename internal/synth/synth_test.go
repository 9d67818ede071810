package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binomci/internal/domain"
	"binomci/internal/synth"
)

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	p := synth.DefaultParams()

	a, err := synth.Generate(p)
	require.NoError(t, err)
	b, err := synth.Generate(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	p.Replicates = 200
	p.Seed = 7
	c, err := synth.Generate(p)
	require.NoError(t, err)
	p.Seed = 8
	d, err := synth.Generate(p)
	require.NoError(t, err)
	assert.NotEqual(t, c.Successes, d.Successes)
}

func TestGenerate_CountsInRange(t *testing.T) {
	p := synth.Params{Replicates: 500, Trials: 15, Mean: 0.5, Concentration: 0.2, Seed: 3}
	obs, err := synth.Generate(p)
	require.NoError(t, err)

	require.Len(t, obs.Successes, 500)
	assert.Equal(t, 15, obs.Trials)
	require.NoError(t, obs.Validate())
}

func TestGenerate_LowConcentrationIsOverdispersed(t *testing.T) {
	loose, err := synth.Generate(synth.Params{Replicates: 400, Trials: 20, Mean: 0.3, Concentration: 1, Seed: 11})
	require.NoError(t, err)
	tight, err := synth.Generate(synth.Params{Replicates: 400, Trials: 20, Mean: 0.3, Concentration: 1e4, Seed: 11})
	require.NoError(t, err)

	// Beta-binomial variance inflation is 1 + (n-1)/(c+1): about 10.5 vs 1.
	assert.Greater(t, synth.Dispersion(loose), 4.0)
	assert.InDelta(t, 1.0, synth.Dispersion(tight), 0.4)
	assert.InDelta(t, 0.3, tight.Aggregate().Proportion(), 0.03)
}

func TestGenerate_InvalidParams(t *testing.T) {
	base := synth.DefaultParams()
	mutations := map[string]func(p *synth.Params){
		"no replicates":      func(p *synth.Params) { p.Replicates = 0 },
		"no trials":          func(p *synth.Params) { p.Trials = 0 },
		"mean zero":          func(p *synth.Params) { p.Mean = 0 },
		"mean one":           func(p *synth.Params) { p.Mean = 1 },
		"zero concentration": func(p *synth.Params) { p.Concentration = 0 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := base
			mutate(&p)
			_, err := synth.Generate(p)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestDispersion_Undefined(t *testing.T) {
	assert.Zero(t, synth.Dispersion(domain.TrialObservation{Successes: []int{4}, Trials: 10}))
	assert.Zero(t, synth.Dispersion(domain.TrialObservation{Successes: []int{0, 0}, Trials: 10}))
	assert.Zero(t, synth.Dispersion(domain.TrialObservation{Successes: []int{10, 10}, Trials: 10}))
}

func TestDispersion_Known(t *testing.T) {
	// counts 0 and 10: variance 50, pooled p 0.5, expected 2.5.
	got := synth.Dispersion(domain.TrialObservation{Successes: []int{0, 10}, Trials: 10})
	assert.InDelta(t, 20.0, got, 1e-9)
}
