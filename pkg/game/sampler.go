package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Sampler picks uniformly random integers in [0, n).
// It drives food placement, so tests can swap in a fixed sequence.
type Sampler interface {
	Intn(n int) int
}

// NewSampler returns a clock-seeded sampler for production play
func NewSampler() Sampler {
	return NewSeededSampler(uint64(time.Now().UnixNano()))
}

// NewSeededSampler returns a reproducible sampler
func NewSeededSampler(seed uint64) Sampler {
	return rand.New(rand.NewSource(seed))
}
