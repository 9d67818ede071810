// Package interval computes confidence intervals for a binomial proportion.
//
// Contents
//
//   - Wald: the normal-approximation interval on pooled counts. Bounds are
//     never clamped, so extreme proportions or small N yield bounds outside
//     [0, 1].
//   - Wilson: the score interval on pooled counts; always within [0, 1].
//   - MeanT: a Student-t interval on the mean of per-replicate proportions.
//
// All functions are pure and fail with domain.ErrInvalidArgument on
// malformed input.
package interval
