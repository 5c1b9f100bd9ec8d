// Package clock provides Clock implementations for the ports.Clock seam.
package clock

import (
	"time"

	"github.com/doeshing/mealtrack/internal/ports"
)

// System reads the real wall clock.
type System struct{}

// NewSystem creates a system clock.
func NewSystem() System {
	return System{}
}

// Now implements ports.Clock.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Used by tests to pin recency windows.
type Fixed struct {
	Instant time.Time
}

// NewFixed creates a clock frozen at the given instant.
func NewFixed(instant time.Time) Fixed {
	return Fixed{Instant: instant}
}

// Now implements ports.Clock.
func (f Fixed) Now() time.Time {
	return f.Instant
}

var (
	_ ports.Clock = System{}
	_ ports.Clock = Fixed{}
)
