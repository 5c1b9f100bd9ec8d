// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the analysis and recommendation core to remain independent
// of specific implementations like file formats, databases, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., MealRepository, Clock, Sampler)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"time"

	"github.com/doeshing/mealtrack/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.mealtrack/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// MealRepository persists meal records. The store is append-oriented: the
// default flow only calls Save and the read operations, while Update and
// Delete exist for maintenance.
type MealRepository interface {
	// Save appends a new record.
	Save(meal domain.Meal) error
	// LoadAll returns every persisted record in storage order. Storage order
	// is not guaranteed chronological; consumers sort where they need to.
	LoadAll() ([]domain.Meal, error)
	// GetByID looks up a single record. The bool reports whether it exists.
	GetByID(id string) (domain.Meal, bool, error)
	// RecentMeals returns up to limit records sorted newest first.
	RecentMeals(limit int) ([]domain.Meal, error)
	// MealsByType filters records by meal type in storage order.
	MealsByType(mealType domain.MealType) ([]domain.Meal, error)
	// Update replaces the record with the same ID.
	Update(meal domain.Meal) error
	// Delete removes the record with the given ID.
	Delete(id string) error
	// Count returns the total number of persisted records.
	Count() (int, error)
}

// Clock abstracts wall-clock time so recency windows are testable.
// Production code uses the system clock; tests pin "now".
type Clock interface {
	Now() time.Time
}

// Sampler abstracts the random choices made during recommendation
// (category tie-breaks, item sampling). Production code uses a
// non-deterministic source; tests inject a seeded one.
type Sampler interface {
	// Intn returns a uniform index in [0, n). n must be positive.
	Intn(n int) int
	// Sample returns k distinct uniform indices in [0, n), in selection order.
	// k must not exceed n.
	Sample(n, k int) []int
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
