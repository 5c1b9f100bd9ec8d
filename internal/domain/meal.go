package domain

import "time"

// MealType identifies which meal of the day a record belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// MealTypes lists all valid meal types in day order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

// Valid reports whether the meal type is one of the known values.
func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// Meal captures one logged eating event. Records are immutable after creation;
// the store's update/delete operations exist for maintenance but the default
// flow only appends.
type Meal struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	MealType   MealType  `json:"meal_type"`
	MenuItems  []string  `json:"menu_items"`
	Categories []string  `json:"categories"`
	Tags       []string  `json:"tags"`
	Calories   *int      `json:"calories,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// Recommendation is a transient next-meal suggestion. It is rendered to the
// user and never persisted.
type Recommendation struct {
	Items              []string          `json:"recommended_items"`
	Categories         []string          `json:"categories"`
	Reason             string            `json:"reason"`
	NutritionalBalance map[string]string `json:"nutritional_balance"`
	Confidence         float64           `json:"confidence_score"`
}

// PlannedMeal is one slot of a weekly meal plan.
type PlannedMeal struct {
	MealType MealType `json:"meal_type"`
	Items    []string `json:"items"`
	Category string   `json:"category"`
}
