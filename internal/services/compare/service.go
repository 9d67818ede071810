package compare

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"binomci/internal/domain"
	"binomci/internal/fingerprint"
	"binomci/internal/interval"
	"binomci/internal/posterior"
	"binomci/internal/synth"
)

// Service compares interval procedures and persists reports.
type Service struct {
	sampler domain.PosteriorSampler
	reports domain.ReportStore
	log     *slog.Logger
	now     func() time.Time
}

// New returns a comparison service. reports may be nil to skip persistence.
func New(sampler domain.PosteriorSampler, reports domain.ReportStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{sampler: sampler, reports: reports, log: log, now: time.Now}
}

type reportKey struct {
	Data    domain.TrialObservation `json:"data"`
	Level   float64                 `json:"level"`
	Prior   domain.ModelSpec        `json:"prior"`
	Sampler domain.SamplerConfig    `json:"sampler"`
}

// Estimate computes a single interval for obs with method m. The prior and
// sampler settings are used only by domain.MethodPosterior.
func (s *Service) Estimate(
	ctx context.Context,
	m domain.Method,
	obs domain.TrialObservation,
	level float64,
	model domain.ModelSpec,
	cfg domain.SamplerConfig,
) (domain.ProportionEstimate, error) {
	if m == domain.MethodPosterior {
		summary, err := posterior.Run(ctx, s.sampler, model, obs, cfg, level)
		if err != nil {
			return domain.ProportionEstimate{}, err
		}
		return summary.Estimate(), nil
	}
	fn, err := interval.ForMethod(m)
	if err != nil {
		return domain.ProportionEstimate{}, err
	}
	return fn(obs.Successes, obs.Trials, level)
}

// Run computes Wald, Wilson, per-replicate t (when there are at least two
// replicates) and posterior intervals for obs at level.
func (s *Service) Run(
	ctx context.Context,
	obs domain.TrialObservation,
	level float64,
	model domain.ModelSpec,
	cfg domain.SamplerConfig,
) (domain.Report, error) {
	if err := obs.Validate(); err != nil {
		return domain.Report{}, err
	}

	methods := []domain.Method{domain.MethodWald, domain.MethodWilson}
	if len(obs.Successes) >= 2 {
		methods = append(methods, domain.MethodMeanT)
	}

	results := make([]domain.MethodResult, 0, len(methods)+1)
	for _, m := range methods {
		fn, err := interval.ForMethod(m)
		if err != nil {
			return domain.Report{}, err
		}
		est, err := fn(obs.Successes, obs.Trials, level)
		if err != nil {
			return domain.Report{}, fmt.Errorf("%s interval: %w", m, err)
		}
		results = append(results, domain.MethodResult{Method: m, Estimate: est, Admissible: est.Admissible()})
	}

	summary, err := posterior.Run(ctx, s.sampler, model, obs, cfg, level)
	if err != nil {
		return domain.Report{}, err
	}
	post := summary.Estimate()
	results = append(results, domain.MethodResult{Method: domain.MethodPosterior, Estimate: post, Admissible: post.Admissible()})

	id, err := fingerprint.JSON(reportKey{Data: obs, Level: level, Prior: model, Sampler: cfg})
	if err != nil {
		return domain.Report{}, err
	}

	r := domain.Report{
		ID:         id,
		CreatedAt:  s.now().UTC(),
		Data:       obs,
		Aggregate:  obs.Aggregate(),
		Level:      level,
		Dispersion: synth.Dispersion(obs),
		Prior:      model,
		Sampler:    cfg,
		Results:    results,
		Posterior:  summary,
	}

	for _, res := range results {
		if !res.Admissible {
			s.log.Warn("interval outside [0, 1]",
				"report", id,
				"method", res.Method,
				"lower", res.Estimate.Lower,
				"upper", res.Estimate.Upper,
			)
		}
	}

	if s.reports != nil {
		if err := s.reports.SaveReport(r); err != nil {
			return domain.Report{}, fmt.Errorf("saving report %s: %w", id, err)
		}
	}
	s.log.Info("comparison complete",
		"report", id,
		"replicates", len(obs.Successes),
		"k", r.Aggregate.K,
		"n", r.Aggregate.N,
		"dispersion", r.Dispersion,
	)
	return r, nil
}
