// Package posterior provides a domain.PosteriorSampler and helpers to
// summarise posterior draws as credible intervals.
//
// ConjugateSampler exploits Beta-Binomial conjugacy: with a Beta(α, β) prior
// and K successes in N pooled trials, the posterior is Beta(α+K, β+N-K), so
// draws are exact and independent. The chain-shaped SamplerConfig (burn-in,
// thinning) is still honoured so callers can swap in an external MCMC engine
// behind the same interface without changing configuration.
package posterior
