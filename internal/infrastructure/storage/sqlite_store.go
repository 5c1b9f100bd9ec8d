package storage

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/ports"
)

// SQLiteStore persists meal records in a SQLite database. When the database
// cannot be opened it degrades to a JSON file store next to the requested
// path, matching the file store's self-healing behavior.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path, defaulting to
// ~/.mealtrack/meals.db.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(userHome(), ".mealtrack", "meals.db")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS meals (
		id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		menu_items TEXT NOT NULL,
		categories TEXT NOT NULL,
		tags TEXT NOT NULL,
		calories INTEGER,
		notes TEXT
	);`)
	return err
}

// fallback returns a file store for degraded operation without a database.
func (s *SQLiteStore) fallback() *FileStore {
	return NewFileStore(strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".json")
}

// Path returns the database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Save inserts a new record.
func (s *SQLiteStore) Save(meal domain.Meal) error {
	if s.db == nil {
		return s.fallback().Save(meal)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var calories interface{}
	if meal.Calories != nil {
		calories = *meal.Calories
	}
	_, err := s.db.Exec(`INSERT INTO meals
		(id, timestamp, meal_type, menu_items, categories, tags, calories, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		meal.ID,
		meal.Timestamp.Format(domain.TimestampFormat),
		string(meal.MealType),
		encodeList(meal.MenuItems),
		encodeList(meal.Categories),
		encodeList(meal.Tags),
		calories,
		meal.Notes,
	)
	return err
}

// LoadAll returns every record in insertion (rowid) order.
func (s *SQLiteStore) LoadAll() ([]domain.Meal, error) {
	if s.db == nil {
		return s.fallback().LoadAll()
	}
	return s.query("SELECT id, timestamp, meal_type, menu_items, categories, tags, calories, notes FROM meals ORDER BY rowid")
}

// GetByID looks up a record by its identifier.
func (s *SQLiteStore) GetByID(id string) (domain.Meal, bool, error) {
	if s.db == nil {
		return s.fallback().GetByID(id)
	}
	meals, err := s.query("SELECT id, timestamp, meal_type, menu_items, categories, tags, calories, notes FROM meals WHERE id = ?", id)
	if err != nil {
		return domain.Meal{}, false, err
	}
	if len(meals) == 0 {
		return domain.Meal{}, false, nil
	}
	return meals[0], true, nil
}

// RecentMeals returns up to limit records, newest first.
func (s *SQLiteStore) RecentMeals(limit int) ([]domain.Meal, error) {
	if s.db == nil {
		return s.fallback().RecentMeals(limit)
	}
	q := "SELECT id, timestamp, meal_type, menu_items, categories, tags, calories, notes FROM meals ORDER BY datetime(timestamp) DESC"
	if limit > 0 {
		return s.query(q+" LIMIT ?", limit)
	}
	return s.query(q)
}

// MealsByType filters records by meal type in insertion order.
func (s *SQLiteStore) MealsByType(mealType domain.MealType) ([]domain.Meal, error) {
	if s.db == nil {
		return s.fallback().MealsByType(mealType)
	}
	return s.query("SELECT id, timestamp, meal_type, menu_items, categories, tags, calories, notes FROM meals WHERE meal_type = ? ORDER BY rowid", string(mealType))
}

// Update replaces the record carrying the same ID.
func (s *SQLiteStore) Update(meal domain.Meal) error {
	if s.db == nil {
		return s.fallback().Update(meal)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var calories interface{}
	if meal.Calories != nil {
		calories = *meal.Calories
	}
	_, err := s.db.Exec(`UPDATE meals SET
		timestamp = ?, meal_type = ?, menu_items = ?, categories = ?, tags = ?, calories = ?, notes = ?
		WHERE id = ?`,
		meal.Timestamp.Format(domain.TimestampFormat),
		string(meal.MealType),
		encodeList(meal.MenuItems),
		encodeList(meal.Categories),
		encodeList(meal.Tags),
		calories,
		meal.Notes,
		meal.ID,
	)
	return err
}

// Delete removes the record with the given ID.
func (s *SQLiteStore) Delete(id string) error {
	if s.db == nil {
		return s.fallback().Delete(id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM meals WHERE id = ?", id)
	return err
}

// Count returns the total number of records.
func (s *SQLiteStore) Count() (int, error) {
	if s.db == nil {
		return s.fallback().Count()
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM meals").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) query(q string, args ...interface{}) ([]domain.Meal, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []domain.Meal
	for rows.Next() {
		var (
			meal     domain.Meal
			ts       string
			mealType string
			items    string
			cats     string
			tags     string
			calories sql.NullInt64
			notes    sql.NullString
		)
		if err := rows.Scan(&meal.ID, &ts, &mealType, &items, &cats, &tags, &calories, &notes); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			meal.Timestamp = t
		}
		meal.MealType = domain.MealType(mealType)
		meal.MenuItems = decodeList(items)
		meal.Categories = decodeList(cats)
		meal.Tags = decodeList(tags)
		if calories.Valid {
			v := int(calories.Int64)
			meal.Calories = &v
		}
		if notes.Valid {
			meal.Notes = notes.String
		}
		meals = append(meals, meal)
	}
	return meals, rows.Err()
}

func encodeList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeList(data string) []string {
	var list []string
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil
	}
	return list
}

var _ ports.MealRepository = (*SQLiteStore)(nil)
