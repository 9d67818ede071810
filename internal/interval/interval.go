package interval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"binomci/internal/domain"
)

// Critical returns the two-sided standard normal critical value for level,
// e.g. 1.959964 for 0.95.
func Critical(level float64) (float64, error) {
	if err := checkLevel(level); err != nil {
		return 0, err
	}
	return distuv.UnitNormal.Quantile(1 - (1-level)/2), nil
}

// Wald returns K/N with a symmetric normal-approximation interval over the
// pooled counts. When K/N is 0 or 1 the margin is 0.
func Wald(successes []int, trials int, level float64) (domain.ProportionEstimate, error) {
	agg, z, err := prepare(successes, trials, level)
	if err != nil {
		return domain.ProportionEstimate{}, err
	}
	p := agg.Proportion()
	margin := z * math.Sqrt(p*(1-p)/float64(agg.N))
	return domain.ProportionEstimate{Point: p, Lower: p - margin, Upper: p + margin}, nil
}

// Wilson returns K/N with the Wilson score interval. The interval is not
// symmetric around the point.
func Wilson(successes []int, trials int, level float64) (domain.ProportionEstimate, error) {
	agg, z, err := prepare(successes, trials, level)
	if err != nil {
		return domain.ProportionEstimate{}, err
	}
	p := agg.Proportion()
	n := float64(agg.N)
	z2 := z * z

	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	half := z / denom * math.Sqrt(p*(1-p)/n+z2/(4*n*n))

	// Rounding can push an endpoint a hair past the boundary.
	lower := math.Max(0, center-half)
	upper := math.Min(1, center+half)
	return domain.ProportionEstimate{Point: p, Lower: lower, Upper: upper}, nil
}

// MeanT returns the mean of per-replicate proportions with a Student-t
// interval on len(successes)-1 degrees of freedom. At least two replicates
// are required.
func MeanT(successes []int, trials int, level float64) (domain.ProportionEstimate, error) {
	if _, _, err := prepare(successes, trials, level); err != nil {
		return domain.ProportionEstimate{}, err
	}
	r := len(successes)
	if r < 2 {
		return domain.ProportionEstimate{}, fmt.Errorf("%w: mean-t needs at least 2 replicates, got %d", domain.ErrInvalidArgument, r)
	}

	props := make([]float64, r)
	for i, k := range successes {
		props[i] = float64(k) / float64(trials)
	}
	mean, sd := stat.MeanStdDev(props, nil)

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(r - 1)}
	margin := t.Quantile(1-(1-level)/2) * sd / math.Sqrt(float64(r))
	return domain.ProportionEstimate{Point: mean, Lower: mean - margin, Upper: mean + margin}, nil
}

// ForMethod dispatches to the frequentist estimator named by m.
func ForMethod(m domain.Method) (func([]int, int, float64) (domain.ProportionEstimate, error), error) {
	switch m {
	case domain.MethodWald:
		return Wald, nil
	case domain.MethodWilson:
		return Wilson, nil
	case domain.MethodMeanT:
		return MeanT, nil
	}
	return nil, fmt.Errorf("%w: %q is not a confidence interval method", domain.ErrInvalidArgument, m)
}

func prepare(successes []int, trials int, level float64) (domain.AggregateCount, float64, error) {
	obs := domain.TrialObservation{Successes: successes, Trials: trials}
	if err := obs.Validate(); err != nil {
		return domain.AggregateCount{}, 0, err
	}
	z, err := Critical(level)
	if err != nil {
		return domain.AggregateCount{}, 0, err
	}
	return obs.Aggregate(), z, nil
}

func checkLevel(level float64) error {
	// Written to reject NaN as well.
	if !(level > 0 && level < 1) {
		return fmt.Errorf("%w: confidence level must be in (0, 1), got %v", domain.ErrInvalidArgument, level)
	}
	return nil
}
