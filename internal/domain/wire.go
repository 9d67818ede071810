package domain

// EstimateRequest is the body of POST /estimate. Prior and Sampler apply
// to the posterior method only; nil selects the server defaults.
type EstimateRequest struct {
	Successes []int          `json:"successes"`
	Trials    int            `json:"trials"`
	Level     float64        `json:"level"`
	Method    Method         `json:"method,omitempty"`
	Prior     *ModelSpec     `json:"prior,omitempty"`
	Sampler   *SamplerConfig `json:"sampler,omitempty"`
}

// Observation returns the request's data.
func (r EstimateRequest) Observation() TrialObservation {
	return TrialObservation{Successes: r.Successes, Trials: r.Trials}
}

// CompareRequest is the body of POST /compare. Zero Prior or Sampler values
// select the defaults.
type CompareRequest struct {
	Successes []int          `json:"successes"`
	Trials    int            `json:"trials"`
	Level     float64        `json:"level"`
	Prior     *ModelSpec     `json:"prior,omitempty"`
	Sampler   *SamplerConfig `json:"sampler,omitempty"`
}

// Observation returns the request's data.
func (r CompareRequest) Observation() TrialObservation {
	return TrialObservation{Successes: r.Successes, Trials: r.Trials}
}

// ErrorResponse carries a non-2xx status message.
type ErrorResponse struct {
	Error string `json:"error"`
}
