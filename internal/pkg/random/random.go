// Package random provides Sampler implementations for the ports.Sampler seam.
package random

import (
	"math/rand"
	"time"

	"github.com/doeshing/mealtrack/internal/ports"
)

// Source wraps math/rand behind the Sampler port.
type Source struct {
	rng *rand.Rand
}

// New creates a time-seeded source for production use.
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a deterministic source. Tests use a fixed seed.
func NewSeeded(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn implements ports.Sampler.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Sample implements ports.Sampler. It returns the first k indices of a
// Fisher-Yates shuffle of [0, n).
func (s *Source) Sample(n, k int) []int {
	perm := s.rng.Perm(n)
	return perm[:k]
}

var _ ports.Sampler = (*Source)(nil)
