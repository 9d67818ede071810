package domain

import (
	"fmt"
	"math"
	"time"
)

// Method names an interval procedure.
type Method string

const (
	MethodWald      Method = "wald"
	MethodWilson    Method = "wilson"
	MethodMeanT     Method = "mean-t"
	MethodPosterior Method = "posterior"
)

// String returns the string form of the method.
func (m Method) String() string { return string(m) }

// ParseMethod resolves a method name given on the command line or over HTTP.
// An empty name selects the Wald interval.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", MethodWald:
		return MethodWald, nil
	case MethodWilson, MethodMeanT, MethodPosterior:
		return Method(s), nil
	}
	return "", fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
}

// TrialObservation holds per-replicate success counts, each replicate
// having run the same number of trials.
type TrialObservation struct {
	Successes []int `json:"successes"`
	Trials    int   `json:"trials"`
}

// Validate checks that there is at least one replicate, that Trials is
// positive, that the pooled trial count fits in an int and that every count
// lies in [0, Trials]. Together these keep 0 <= K <= N without overflow.
func (o TrialObservation) Validate() error {
	if len(o.Successes) == 0 {
		return fmt.Errorf("%w: successes must not be empty", ErrInvalidArgument)
	}
	if o.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidArgument, o.Trials)
	}
	if o.Trials > math.MaxInt/len(o.Successes) {
		return fmt.Errorf("%w: %d replicates of %d trials overflow the pooled count", ErrInvalidArgument, len(o.Successes), o.Trials)
	}
	for i, k := range o.Successes {
		if k < 0 || k > o.Trials {
			return fmt.Errorf("%w: successes[%d]=%d outside [0, %d]", ErrInvalidArgument, i, k, o.Trials)
		}
	}
	return nil
}

// Aggregate pools the replicates. It does not validate.
func (o TrialObservation) Aggregate() AggregateCount {
	var k int
	for _, s := range o.Successes {
		k += s
	}
	return AggregateCount{N: len(o.Successes) * o.Trials, K: k}
}

// AggregateCount is the pooled total of trials (N) and successes (K).
type AggregateCount struct {
	N int `json:"n"`
	K int `json:"k"`
}

// Proportion returns K/N, or 0 when N is 0.
func (a AggregateCount) Proportion() float64 {
	if a.N == 0 {
		return 0
	}
	return float64(a.K) / float64(a.N)
}

// ProportionEstimate is a point estimate of a success probability and its
// interval bounds. Bounds are not guaranteed to lie in [0, 1].
type ProportionEstimate struct {
	Point float64 `json:"point"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Margin returns the distance from the point to the upper bound.
func (e ProportionEstimate) Margin() float64 { return e.Upper - e.Point }

// Width returns Upper - Lower.
func (e ProportionEstimate) Width() float64 { return e.Upper - e.Lower }

// Admissible reports whether both bounds are valid probabilities.
func (e ProportionEstimate) Admissible() bool {
	return e.Lower >= 0 && e.Upper <= 1
}

// ModelSpec is the Beta prior placed on the success probability.
type ModelSpec struct {
	Alpha float64 `json:"alpha" yaml:"alpha"`
	Beta  float64 `json:"beta" yaml:"beta"`
}

// DefaultModel is the uniform Beta(1, 1) prior.
func DefaultModel() ModelSpec { return ModelSpec{Alpha: 1, Beta: 1} }

// Validate checks both shape parameters are positive.
func (m ModelSpec) Validate() error {
	if !(m.Alpha > 0) || !(m.Beta > 0) {
		return fmt.Errorf("%w: prior shape parameters must be positive, got Beta(%g, %g)", ErrInvalidArgument, m.Alpha, m.Beta)
	}
	return nil
}

// MaxDraws caps the number of kept posterior draws.
const MaxDraws = 1_000_000

// MaxIterations caps BurnIn + Draws*Thin, the total values a sampler generates.
const MaxIterations = 50_000_000

// SamplerConfig controls chain length for a PosteriorSampler.
type SamplerConfig struct {
	Draws  int    `json:"draws" yaml:"draws"`
	BurnIn int    `json:"burn_in" yaml:"burn_in"`
	Thin   int    `json:"thin" yaml:"thin"`
	Seed   uint64 `json:"seed" yaml:"seed"`
}

// DefaultSamplerConfig returns 4000 kept draws after a 1000 draw burn-in.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{Draws: 4000, BurnIn: 1000, Thin: 1, Seed: 1}
}

// Validate checks chain length settings, including that the total number
// of generated values stays within MaxIterations.
func (c SamplerConfig) Validate() error {
	switch {
	case c.Draws <= 0:
		return fmt.Errorf("%w: draws must be positive, got %d", ErrInvalidArgument, c.Draws)
	case c.Draws > MaxDraws:
		return fmt.Errorf("%w: draws must be at most %d, got %d", ErrInvalidArgument, MaxDraws, c.Draws)
	case c.BurnIn < 0:
		return fmt.Errorf("%w: burn-in must not be negative, got %d", ErrInvalidArgument, c.BurnIn)
	case c.Thin <= 0:
		return fmt.Errorf("%w: thin must be positive, got %d", ErrInvalidArgument, c.Thin)
	}
	// Checked by division so the product cannot wrap.
	if c.Thin > MaxIterations/c.Draws || c.BurnIn > MaxIterations-c.Draws*c.Thin {
		return fmt.Errorf("%w: burn-in %d + draws %d * thin %d exceeds %d iterations",
			ErrInvalidArgument, c.BurnIn, c.Draws, c.Thin, MaxIterations)
	}
	return nil
}

// PosteriorSummary describes a sample of posterior draws of p.
type PosteriorSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Level  float64 `json:"level"`
	Draws  int     `json:"draws"`
}

// Estimate returns the summary as a ProportionEstimate centred on the median.
func (s PosteriorSummary) Estimate() ProportionEstimate {
	return ProportionEstimate{Point: s.Median, Lower: s.Lower, Upper: s.Upper}
}

// MethodResult is one row of a comparison report.
type MethodResult struct {
	Method     Method             `json:"method"`
	Estimate   ProportionEstimate `json:"estimate"`
	Admissible bool               `json:"admissible"`
}

// Report is the stored outcome of comparing interval procedures on one dataset.
type Report struct {
	ID         string           `json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	Data       TrialObservation `json:"data"`
	Aggregate  AggregateCount   `json:"aggregate"`
	Level      float64          `json:"level"`
	Dispersion float64          `json:"dispersion"`
	Prior      ModelSpec        `json:"prior"`
	Sampler    SamplerConfig    `json:"sampler"`
	Results    []MethodResult   `json:"results"`
	Posterior  PosteriorSummary `json:"posterior"`
}

// Result returns the row for m, if present.
func (r Report) Result(m Method) (MethodResult, bool) {
	for _, res := range r.Results {
		if res.Method == m {
			return res, true
		}
	}
	return MethodResult{}, false
}
