package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/mealtrack/internal/application/analysis"
	"github.com/doeshing/mealtrack/internal/application/recommend"
	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/ports"
)

// Renderer prints analyzer and recommender output in a friendly, plain-text
// format.
type Renderer struct {
	out   io.Writer
	clock ports.Clock
}

// NewRenderer constructs a renderer writing to out.
func NewRenderer(out io.Writer, clk ports.Clock) *Renderer {
	return &Renderer{out: out, clock: clk}
}

// RenderRecentMeals prints a numbered list of records, newest first.
func (r *Renderer) RenderRecentMeals(meals []domain.Meal) {
	if len(meals) == 0 {
		fmt.Fprintln(r.out, "No meals recorded yet.")
		return
	}
	for i, meal := range meals {
		age := humanize.RelTime(meal.Timestamp, r.clock.Now(), "ago", "from now")
		fmt.Fprintf(r.out, "\n%d. [%s] %s (%s)\n", i+1, meal.MealType, meal.Timestamp.Format("2006-01-02"), age)
		fmt.Fprintf(r.out, "   Menu: %s\n", strings.Join(meal.MenuItems, ", "))
		fmt.Fprintf(r.out, "   Categories: %s\n", strings.Join(meal.Categories, ", "))
		if len(meal.Tags) > 0 {
			fmt.Fprintf(r.out, "   Tags: %s\n", strings.Join(meal.Tags, ", "))
		}
		if meal.Calories != nil {
			fmt.Fprintf(r.out, "   Calories: %dkcal\n", *meal.Calories)
		}
	}
}

// RenderSummary prints the full trend-analysis report.
func (r *Renderer) RenderSummary(summary analysis.Summary) {
	if summary.TotalRecords == 0 {
		fmt.Fprintln(r.out, "No meals recorded yet.")
		return
	}

	fmt.Fprintf(r.out, "Total records: %d\n", summary.TotalRecords)
	fmt.Fprintf(r.out, "Variety score: %.2f (0.0-1.0)\n", summary.VarietyScore)

	fmt.Fprintln(r.out, "\nTop menu items:")
	for _, entry := range summary.FavoriteItems {
		fmt.Fprintf(r.out, "  - %s: %d\n", entry.Item, entry.Count)
	}

	fmt.Fprintln(r.out, "\nCategory distribution:")
	for _, line := range sortedCountLines(summary.CategoryDistribution) {
		fmt.Fprintln(r.out, line)
	}

	fmt.Fprintln(r.out, "\nMeal type distribution:")
	mealTypeCounts := make(map[string]int, len(summary.MealTypeDistribution))
	for mealType, count := range summary.MealTypeDistribution {
		mealTypeCounts[string(mealType)] = count
	}
	for _, line := range sortedCountLines(mealTypeCounts) {
		fmt.Fprintln(r.out, line)
	}

	if len(summary.MissingCategories) > 0 {
		fmt.Fprintln(r.out, "\nCategories not eaten recently:")
		sorted := append([]string(nil), summary.MissingCategories...)
		sort.Strings(sorted)
		for _, category := range sorted {
			fmt.Fprintf(r.out, "  - %s\n", category)
		}
	}

	fmt.Fprintln(r.out, "\nNutrition balance:")
	for _, nt := range domain.NutritionTags {
		fmt.Fprintf(r.out, "  - %s: %s\n", nt.Name, summary.NutritionBalance[nt.Name])
	}
}

// RenderRecommendation prints one next-meal suggestion.
func (r *Renderer) RenderRecommendation(rec domain.Recommendation) {
	fmt.Fprintf(r.out, "Category: %s\n", strings.Join(rec.Categories, ", "))
	fmt.Fprintln(r.out, "\nMenu:")
	for _, item := range rec.Items {
		fmt.Fprintf(r.out, "  - %s\n", item)
	}
	fmt.Fprintf(r.out, "\nReason:\n  %s\n", rec.Reason)
	fmt.Fprintln(r.out, "\nNutrition advice:")
	for _, nt := range domain.NutritionTags {
		if advice, ok := rec.NutritionalBalance[nt.Name]; ok {
			fmt.Fprintf(r.out, "  - %s\n", advice)
		}
	}
	fmt.Fprintf(r.out, "\nConfidence score: %.2f\n", rec.Confidence)
}

// RenderWeeklyPlan prints a seven-day meal plan.
func (r *Renderer) RenderWeeklyPlan(plan []recommend.DayPlan) {
	for _, day := range plan {
		fmt.Fprintf(r.out, "\n%s\n", day.Label)
		for _, meal := range day.Meals {
			fmt.Fprintf(r.out, "  %-10s %s (%s)\n", meal.MealType, strings.Join(meal.Items, ", "), meal.Category)
		}
	}
}

// sortedCountLines renders a count map as sorted "  - key: n" lines. Maps are
// unordered, so rendering sorts by key for stable output.
func sortedCountLines(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("  - %s: %d", key, counts[key]))
	}
	return lines
}
