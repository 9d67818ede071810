// Package synth generates overdispersed binomial replicate data.
//
// Each replicate draws its own success probability from a Beta distribution
// centred on Mean, then draws its success count from a Binomial. Lower
// Concentration spreads the per-replicate probabilities further apart, which
// makes the pooled counts more variable than a single-p binomial predicts.
package synth

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"binomci/internal/domain"
	"binomci/internal/rng"
)

// Params configures Generate. Seed fully determines the output.
type Params struct {
	Replicates    int     `json:"replicates" yaml:"replicates"`
	Trials        int     `json:"trials" yaml:"trials"`
	Mean          float64 `json:"mean" yaml:"mean"`
	Concentration float64 `json:"concentration" yaml:"concentration"`
	Seed          uint64  `json:"seed" yaml:"seed"`
}

// DefaultParams returns 10 replicates of 10 trials around p=0.3 with strong
// overdispersion.
func DefaultParams() Params {
	return Params{Replicates: 10, Trials: 10, Mean: 0.3, Concentration: 2, Seed: 42}
}

// Validate checks the shape of p.
func (p Params) Validate() error {
	switch {
	case p.Replicates <= 0:
		return fmt.Errorf("%w: replicates must be positive, got %d", domain.ErrInvalidArgument, p.Replicates)
	case p.Trials <= 0:
		return fmt.Errorf("%w: trials must be positive, got %d", domain.ErrInvalidArgument, p.Trials)
	case !(p.Mean > 0 && p.Mean < 1):
		return fmt.Errorf("%w: mean must be in (0, 1), got %v", domain.ErrInvalidArgument, p.Mean)
	case !(p.Concentration > 0):
		return fmt.Errorf("%w: concentration must be positive, got %v", domain.ErrInvalidArgument, p.Concentration)
	}
	return nil
}

// Generate draws p.Replicates success counts.
func Generate(p Params) (domain.TrialObservation, error) {
	if err := p.Validate(); err != nil {
		return domain.TrialObservation{}, err
	}
	src := rng.NewSource(p.Seed)
	beta := distuv.Beta{
		Alpha: p.Mean * p.Concentration,
		Beta:  (1 - p.Mean) * p.Concentration,
		Src:   src,
	}

	out := make([]int, p.Replicates)
	for i := range out {
		out[i] = binomial(p.Trials, beta.Rand(), src)
	}
	return domain.TrialObservation{Successes: out, Trials: p.Trials}, nil
}

func binomial(n int, prob float64, src rand.Source) int {
	// Small concentrations can put all Beta mass on an endpoint.
	if prob <= 0 {
		return 0
	}
	if prob >= 1 {
		return n
	}
	b := distuv.Binomial{N: float64(n), P: prob, Src: src}
	k := int(b.Rand())
	return min(max(k, 0), n)
}

// Dispersion returns the ratio of the observed variance of replicate counts
// to the variance Trials*p*(1-p) a single pooled p would imply. Values well
// above 1 indicate overdispersion. It returns 0 when the ratio is undefined:
// fewer than two replicates, or a pooled proportion of exactly 0 or 1.
func Dispersion(obs domain.TrialObservation) float64 {
	if len(obs.Successes) < 2 || obs.Trials <= 0 {
		return 0
	}
	p := obs.Aggregate().Proportion()
	expected := float64(obs.Trials) * p * (1 - p)
	if expected == 0 {
		return 0
	}
	counts := make([]float64, len(obs.Successes))
	for i, k := range obs.Successes {
		counts[i] = float64(k)
	}
	return stat.Variance(counts, nil) / expected
}
