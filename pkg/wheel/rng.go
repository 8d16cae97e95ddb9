package wheel

import "math/rand/v2"

// RNG abstracts random number generation for deterministic testing.
// *rand.Rand from math/rand/v2 satisfies it.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
	// Float64 returns a random float in [0, 1).
	Float64() float64
}

type globalRNG struct{}

func (globalRNG) IntN(n int) int    { return rand.IntN(n) }
func (globalRNG) Float64() float64 { return rand.Float64() }

// DefaultRNG delegates to the auto-seeded math/rand/v2 top-level source.
func DefaultRNG() RNG {
	return globalRNG{}
}

// NewSeededRNG returns a reproducible RNG.
func NewSeededRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
