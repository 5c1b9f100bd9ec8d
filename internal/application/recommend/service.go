// Package recommend implements the rule-based next-meal recommendation
// engine. It consumes analyzer output plus the built-in menu catalog to pick
// one category and up to three dishes, with a human-readable reason and
// nutrition advice.
package recommend

import (
	"fmt"
	"strings"

	"github.com/doeshing/mealtrack/internal/application/analysis"
	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/ports"
)

// PlaceholderItem is suggested when neither the catalog nor the history can
// provide a dish.
const PlaceholderItem = "おすすめメニュー"

// DayPlan is one day of a weekly meal plan.
type DayPlan struct {
	Label string
	Meals []domain.PlannedMeal
}

// Recommender proposes meals from a fixed snapshot of records.
type Recommender struct {
	meals    []domain.Meal
	analyzer *analysis.Analyzer
	catalog  *domain.Catalog
	sampler  ports.Sampler
}

// New creates a recommender over the given records. A nil catalog falls back
// to the built-in menu master data.
func New(meals []domain.Meal, catalog *domain.Catalog, clk ports.Clock, sampler ports.Sampler) *Recommender {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Recommender{
		meals:    meals,
		analyzer: analysis.New(meals, clk),
		catalog:  catalog,
		sampler:  sampler,
	}
}

// NextMeal proposes the next meal. With no history it returns a low-confidence
// default pick; otherwise the choice is driven by category gaps, category
// balance, and the nutrition-tag heuristic.
func (r *Recommender) NextMeal(mealType domain.MealType) domain.Recommendation {
	if len(r.meals) == 0 {
		return r.defaultRecommendation(mealType)
	}

	favorites := r.analyzer.FavoriteItems(0)
	categoryDist := r.analyzer.CategoryDistribution()
	missing := r.analyzer.MissingCategories(domain.DefaultMissingCategoryDays)
	balance := r.analyzer.NutritionBalance()

	category := r.selectCategory(categoryDist, missing)
	items := r.selectItems(category, favorites)
	reason := r.buildReason(category, missing, balance)
	advice := buildNutritionalAdvice(balance)

	return domain.Recommendation{
		Items:              items,
		Categories:         []string{category},
		Reason:             reason,
		NutritionalBalance: advice,
		Confidence:         r.confidence(),
	}
}

// WeeklyPlan proposes breakfast, lunch and dinner for seven days. Every slot
// is an independent NextMeal call, so repeated runs differ where sampling is
// involved.
func (r *Recommender) WeeklyPlan() []DayPlan {
	mealTypes := []domain.MealType{domain.MealTypeBreakfast, domain.MealTypeLunch, domain.MealTypeDinner}

	plan := make([]DayPlan, 0, domain.PlanDays)
	for day := 1; day <= domain.PlanDays; day++ {
		meals := make([]domain.PlannedMeal, 0, len(mealTypes))
		for _, mealType := range mealTypes {
			rec := r.NextMeal(mealType)
			meals = append(meals, domain.PlannedMeal{
				MealType: mealType,
				Items:    rec.Items,
				Category: rec.Categories[0],
			})
		}
		plan = append(plan, DayPlan{Label: fmt.Sprintf("Day %d", day), Meals: meals})
	}
	return plan
}

// selectCategory prefers a randomly chosen missing category, then the least
// eaten category, then a random catalog category.
func (r *Recommender) selectCategory(categoryDist map[string]int, missing []string) string {
	if len(missing) > 0 {
		return missing[r.sampler.Intn(len(missing))]
	}

	if len(categoryDist) > 0 {
		// Scan in record encounter order so the minimum-count tie-break is
		// stable rather than subject to map iteration.
		var ordered []string
		seen := make(map[string]struct{})
		for _, meal := range r.meals {
			for _, category := range meal.Categories {
				if _, ok := seen[category]; ok {
					continue
				}
				seen[category] = struct{}{}
				ordered = append(ordered, category)
			}
		}
		best := ordered[0]
		for _, category := range ordered[1:] {
			if categoryDist[category] < categoryDist[best] {
				best = category
			}
		}
		return best
	}

	keys := r.catalog.Categories()
	return keys[r.sampler.Intn(len(keys))]
}

// selectItems picks dishes for the chosen category, preferring catalog items
// not eaten within the last ten records.
func (r *Recommender) selectItems(category string, favorites []analysis.ItemCount) []string {
	available := r.catalog.Items(category)

	if len(available) == 0 {
		// Category missing from the catalog: fall back to past favorites.
		if len(favorites) > 0 {
			limit := domain.MaxRecommendedItems
			if len(favorites) < limit {
				limit = len(favorites)
			}
			items := make([]string, 0, limit)
			for _, fav := range favorites[:limit] {
				items = append(items, fav.Item)
			}
			return items
		}
		return []string{PlaceholderItem}
	}

	recentItems := make(map[string]struct{})
	window := r.meals
	if len(window) > domain.RecentItemWindowRecords {
		window = window[len(window)-domain.RecentItemWindowRecords:]
	}
	for _, meal := range window {
		for _, item := range meal.MenuItems {
			recentItems[item] = struct{}{}
		}
	}

	var unused []string
	for _, item := range available {
		if _, eaten := recentItems[item]; !eaten {
			unused = append(unused, item)
		}
	}

	pool := unused
	if len(pool) == 0 {
		pool = available
	}
	count := domain.MaxRecommendedItems
	if len(pool) < count {
		count = len(pool)
	}

	picked := make([]string, 0, count)
	for _, idx := range r.sampler.Sample(len(pool), count) {
		picked = append(picked, pool[idx])
	}
	return picked
}

// buildReason assembles the explanation sentences for the pick.
func (r *Recommender) buildReason(category string, missing []string, balance map[string]domain.NutritionStatus) string {
	var reasons []string

	for _, m := range missing {
		if m == category {
			reasons = append(reasons, fmt.Sprintf("最近%sを食べていないため、バランスを考慮しました。", category))
			break
		}
	}

	var lacking []string
	for _, nt := range domain.NutritionTags {
		if balance[nt.Name] == domain.NutritionLacking {
			lacking = append(lacking, nt.Name)
		}
	}
	if len(lacking) > 0 {
		reasons = append(reasons, fmt.Sprintf("%sが不足気味です。", strings.Join(lacking, ", ")))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "食事の多様性を保つため、このカテゴリーをおすすめします。")
	}

	return strings.Join(reasons, " ")
}

// buildNutritionalAdvice maps each tracked tag's status to advice text.
func buildNutritionalAdvice(balance map[string]domain.NutritionStatus) map[string]string {
	advice := make(map[string]string, len(balance))
	for _, nt := range domain.NutritionTags {
		switch balance[nt.Name] {
		case domain.NutritionLacking:
			advice[nt.Name] = fmt.Sprintf("%sのメニューを増やしましょう", nt.Name)
		case domain.NutritionSlightlyLacking:
			advice[nt.Name] = fmt.Sprintf("%sも意識してみてください", nt.Name)
		default:
			advice[nt.Name] = fmt.Sprintf("%sは十分摂取できています", nt.Name)
		}
	}
	return advice
}

// confidence grows stepwise with the amount of history backing the pick.
func (r *Recommender) confidence() float64 {
	switch count := len(r.meals); {
	case count == 0:
		return 0.3
	case count < 5:
		return 0.5
	case count < 10:
		return 0.7
	case count < 20:
		return 0.85
	default:
		return 0.95
	}
}

// defaultRecommendation covers the empty-history case with a random pick.
func (r *Recommender) defaultRecommendation(domain.MealType) domain.Recommendation {
	keys := r.catalog.Categories()
	category := keys[r.sampler.Intn(len(keys))]
	available := r.catalog.Items(category)

	items := make([]string, 0, 2)
	for _, idx := range r.sampler.Sample(len(available), 2) {
		items = append(items, available[idx])
	}

	return domain.Recommendation{
		Items:      items,
		Categories: []string{category},
		Reason:     "まだ記録がないため、バランスの良い食事から始めましょう。",
		NutritionalBalance: map[string]string{
			"ヘルシー":  "野菜を多めに摂りましょう",
			"高タンパク": "タンパク質も意識してください",
		},
		Confidence: 0.3,
	}
}
