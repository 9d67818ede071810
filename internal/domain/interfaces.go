package domain

import "context"

// PosteriorSampler draws samples of p from the posterior implied by a prior
// and observed counts. Every draw must lie in [0, 1].
type PosteriorSampler interface {
	Sample(ctx context.Context, model ModelSpec, data TrialObservation, cfg SamplerConfig) ([]float64, error)
}

// DatasetStore persists named observations.
type DatasetStore interface {
	SaveDataset(name string, obs TrialObservation) error
	LoadDataset(name string) (TrialObservation, error)
}

// ReportStore persists comparison reports by ID.
type ReportStore interface {
	SaveReport(r Report) error
	LoadReport(id string) (Report, error)
}

// CompareService runs interval procedures on one dataset.
type CompareService interface {
	Estimate(ctx context.Context, m Method, obs TrialObservation, level float64, model ModelSpec, cfg SamplerConfig) (ProportionEstimate, error)
	Run(ctx context.Context, obs TrialObservation, level float64, model ModelSpec, cfg SamplerConfig) (Report, error)
}
