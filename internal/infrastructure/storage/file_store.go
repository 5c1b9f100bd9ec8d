// Package storage provides MealRepository adapters: a human-readable JSON
// file store and a SQLite store.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/ports"
)

// FileStore keeps all meal records in a single JSON array file. Every write
// rewrites the whole file; unreadable data degrades to an empty history.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the given file, defaulting to
// ~/.mealtrack/meals.json.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(userHome(), ".mealtrack", "meals.json")
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Save appends a record and rewrites the file.
func (f *FileStore) Save(meal domain.Meal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	meals := f.readAll()
	meals = append(meals, meal)
	return f.writeAll(meals)
}

// LoadAll returns every record in file order. A missing or corrupt file reads
// as empty history rather than an error.
func (f *FileStore) LoadAll() ([]domain.Meal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readAll(), nil
}

// GetByID looks up a record by its identifier.
func (f *FileStore) GetByID(id string) (domain.Meal, bool, error) {
	meals, err := f.LoadAll()
	if err != nil {
		return domain.Meal{}, false, err
	}
	for _, meal := range meals {
		if meal.ID == id {
			return meal, true, nil
		}
	}
	return domain.Meal{}, false, nil
}

// RecentMeals returns up to limit records, newest first.
func (f *FileStore) RecentMeals(limit int) ([]domain.Meal, error) {
	meals, err := f.LoadAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].Timestamp.After(meals[j].Timestamp)
	})
	if limit > 0 && len(meals) > limit {
		meals = meals[:limit]
	}
	return meals, nil
}

// MealsByType filters records by meal type in file order.
func (f *FileStore) MealsByType(mealType domain.MealType) ([]domain.Meal, error) {
	meals, err := f.LoadAll()
	if err != nil {
		return nil, err
	}
	var filtered []domain.Meal
	for _, meal := range meals {
		if meal.MealType == mealType {
			filtered = append(filtered, meal)
		}
	}
	return filtered, nil
}

// Update replaces the record carrying the same ID.
func (f *FileStore) Update(meal domain.Meal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	meals := f.readAll()
	for i := range meals {
		if meals[i].ID == meal.ID {
			meals[i] = meal
		}
	}
	return f.writeAll(meals)
}

// Delete removes the record with the given ID.
func (f *FileStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	meals := f.readAll()
	kept := meals[:0]
	for _, meal := range meals {
		if meal.ID != id {
			kept = append(kept, meal)
		}
	}
	return f.writeAll(kept)
}

// Count returns the total number of records.
func (f *FileStore) Count() (int, error) {
	meals, err := f.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(meals), nil
}

// readAll loads the file best-effort. Missing file and malformed JSON both
// read as empty history.
func (f *FileStore) readAll() []domain.Meal {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil
	}
	var meals []domain.Meal
	if err := json.Unmarshal(data, &meals); err != nil {
		return nil
	}
	return meals
}

func (f *FileStore) writeAll(meals []domain.Meal) error {
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	if meals == nil {
		meals = []domain.Meal{}
	}
	data, err := json.MarshalIndent(meals, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, domain.DataFilePermissions)
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.MealRepository = (*FileStore)(nil)
