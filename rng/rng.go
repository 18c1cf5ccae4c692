// Package rng is the seeded random source shared by generation, spawning
// and AI. One source per run keeps a game reproducible from its seed.
package rng

import (
	"math/rand"
	"time"
)

// RandomNumberGenerator wraps a seeded math/rand source
type RandomNumberGenerator struct {
	seed int64
	rng  *rand.Rand
}

// New creates a generator from seed
func New(seed int64) *RandomNumberGenerator {
	return &RandomNumberGenerator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewFromTime creates a generator seeded from the clock
func NewFromTime() *RandomNumberGenerator {
	return New(time.Now().UnixNano())
}

// Seed returns the seed the generator was created with
func (r *RandomNumberGenerator) Seed() int64 {
	return r.seed
}

// Range returns a uniform integer in [min, max). It returns min when the
// range is empty.
func (r *RandomNumberGenerator) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}

// RandomIndex returns a uniform index into a slice of length n, or false
// when n is 0
func (r *RandomNumberGenerator) RandomIndex(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return r.rng.Intn(n), true
}

// Int63 returns a non-negative 63-bit value, used to derive child seeds
func (r *RandomNumberGenerator) Int63() int64 {
	return r.rng.Int63()
}
