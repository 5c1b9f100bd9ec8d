package mcpserver

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/google/uuid"

	"github.com/doeshing/mealtrack/internal/domain"
)

// LogMealParams are the arguments of the log_meal tool.
type LogMealParams struct {
	MealType   string   `json:"meal_type" description:"breakfast, lunch, dinner or snack"`
	MenuItems  []string `json:"menu_items" description:"Dishes eaten"`
	Categories []string `json:"categories,omitempty" description:"Cuisine categories"`
	Tags       []string `json:"tags,omitempty" description:"Nutrition/quality tags"`
	Calories   *int     `json:"calories,omitempty" description:"Calories if known"`
	Notes      string   `json:"notes,omitempty" description:"Free-text notes"`
	Timestamp  string   `json:"timestamp,omitempty" description:"RFC 3339 timestamp, defaults to now"`
}

// GetMealsParams are the arguments of the get_meals tool.
type GetMealsParams struct {
	Limit    int    `json:"limit,omitempty" description:"Maximum number of meals to return"`
	MealType string `json:"meal_type,omitempty" description:"Filter by meal type"`
}

// RecommendMealParams are the arguments of the recommend_meal tool.
type RecommendMealParams struct {
	MealType string `json:"meal_type,omitempty" description:"Meal type to recommend for"`
}

// extractParams safely extracts parameters from the request arguments.
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("marshal arguments: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("unmarshal parameters: %w", err)
	}
	return nil
}

func (s *Server) handleLogMeal(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LogMealParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if len(params.MenuItems) == 0 {
		return nil, fmt.Errorf("menu_items is required")
	}

	mealType := domain.MealType(strings.ToLower(params.MealType))
	if !mealType.Valid() {
		mealType = domain.MealTypeLunch
	}

	timestamp := s.container.Clock.Now()
	if params.Timestamp != "" {
		parsed, err := time.Parse(domain.TimestampFormat, params.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp format: %w", err)
		}
		timestamp = parsed
	}

	meal := domain.Meal{
		ID:         uuid.NewString(),
		Timestamp:  timestamp,
		MealType:   mealType,
		MenuItems:  params.MenuItems,
		Categories: params.Categories,
		Tags:       params.Tags,
		Calories:   params.Calories,
		Notes:      params.Notes,
	}

	if err := s.container.Store.Save(meal); err != nil {
		return nil, fmt.Errorf("save meal: %w", err)
	}
	return createJSONResponse(meal)
}

func (s *Server) handleGetMeals(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GetMealsParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if params.Limit <= 0 {
		params.Limit = domain.DefaultRecentLimit
	}

	if params.MealType != "" {
		mealType := domain.MealType(strings.ToLower(params.MealType))
		if !mealType.Valid() {
			return nil, fmt.Errorf("unknown meal type: %s", params.MealType)
		}
		meals, err := s.container.Store.MealsByType(mealType)
		if err != nil {
			return nil, fmt.Errorf("load meals: %w", err)
		}
		if len(meals) > params.Limit {
			meals = meals[len(meals)-params.Limit:]
		}
		return createJSONResponse(meals)
	}

	meals, err := s.container.Store.RecentMeals(params.Limit)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	return createJSONResponse(meals)
}

func (s *Server) handleAnalyzeTrends(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	analyzer, err := s.container.Analyzer()
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	return createJSONResponse(analyzer.Summary())
}

func (s *Server) handleRecommendMeal(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params RecommendMealParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	mealType := domain.MealType(strings.ToLower(params.MealType))
	if !mealType.Valid() {
		mealType = domain.MealTypeLunch
	}

	recommender, err := s.container.Recommender()
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	return createJSONResponse(recommender.NextMeal(mealType))
}
