// Package rng builds the seeded random sources shared by data generation
// and posterior sampling.
package rng

import "math/rand/v2"

// NewSource returns the PCG source used for seed s. Equal seeds give equal
// streams.
func NewSource(s uint64) rand.Source {
	return rand.NewPCG(s, s^0x9e3779b97f4a7c15)
}
