// Package analysis computes descriptive statistics over a meal history:
// item and category frequencies, variety, recency gaps, and a tag-based
// nutrition-balance estimate.
package analysis

import (
	"sort"
	"time"

	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/ports"
)

// ItemCount is one entry of a frequency ranking.
type ItemCount struct {
	Item  string
	Count int
}

// Trends reports statistics over the records inside a recency window.
// TotalMeals is zero when the window is empty; the other fields are only
// populated when it is not.
type Trends struct {
	TotalMeals    int
	FavoriteItems []ItemCount
	Categories    map[string]int
	MealTypes     map[domain.MealType]int
	Tags          map[string]int
}

// Summary aggregates every analyzer metric into one report.
// TotalRecords is zero when there is no history.
type Summary struct {
	TotalRecords         int
	VarietyScore         float64
	FavoriteItems        []ItemCount
	CategoryDistribution map[string]int
	MealTypeDistribution map[domain.MealType]int
	MissingCategories    []string
	NutritionBalance     map[string]domain.NutritionStatus
}

// Analyzer computes statistics over a fixed snapshot of meal records.
// All methods are pure; the record order only matters where a "recent window"
// is defined over storage order.
type Analyzer struct {
	meals []domain.Meal
	clock ports.Clock
}

// New creates an analyzer over the given records. The slice is used as-is and
// must not be mutated by the caller while the analyzer is in use.
func New(meals []domain.Meal, clk ports.Clock) *Analyzer {
	return &Analyzer{meals: meals, clock: clk}
}

// FavoriteItems returns the most frequently eaten menu items, ordered by
// descending count. Ties keep first-encounter order. At most limit entries
// are returned; a non-positive limit returns all.
func (a *Analyzer) FavoriteItems(limit int) []ItemCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order int
	for _, meal := range a.meals {
		for _, item := range meal.MenuItems {
			if _, seen := counts[item]; !seen {
				firstSeen[item] = order
				order++
			}
			counts[item]++
		}
	}

	ranking := make([]ItemCount, 0, len(counts))
	for item, count := range counts {
		ranking = append(ranking, ItemCount{Item: item, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count == ranking[j].Count {
			return firstSeen[ranking[i].Item] < firstSeen[ranking[j].Item]
		}
		return ranking[i].Count > ranking[j].Count
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// CategoryDistribution returns total occurrence counts per category.
func (a *Analyzer) CategoryDistribution() map[string]int {
	dist := make(map[string]int)
	for _, meal := range a.meals {
		for _, category := range meal.Categories {
			dist[category]++
		}
	}
	return dist
}

// MealTypeDistribution returns record counts per meal type.
func (a *Analyzer) MealTypeDistribution() map[domain.MealType]int {
	dist := make(map[domain.MealType]int)
	for _, meal := range a.meals {
		dist[meal.MealType]++
	}
	return dist
}

// TagFrequency returns total occurrence counts per tag.
func (a *Analyzer) TagFrequency() map[string]int {
	freq := make(map[string]int)
	for _, meal := range a.meals {
		for _, tag := range meal.Tags {
			freq[tag]++
		}
	}
	return freq
}

// RecentTrends analyzes the records whose timestamp falls within the last
// days. An empty window yields TotalMeals == 0 with no further statistics.
func (a *Analyzer) RecentTrends(days int) Trends {
	cutoff := a.clock.Now().Add(-time.Duration(days) * 24 * time.Hour)
	var recent []domain.Meal
	for _, meal := range a.meals {
		if !meal.Timestamp.Before(cutoff) {
			recent = append(recent, meal)
		}
	}

	if len(recent) == 0 {
		return Trends{TotalMeals: 0}
	}

	sub := New(recent, a.clock)
	return Trends{
		TotalMeals:    len(recent),
		FavoriteItems: sub.FavoriteItems(domain.SummaryFavoriteLimit),
		Categories:    sub.CategoryDistribution(),
		MealTypes:     sub.MealTypeDistribution(),
		Tags:          sub.TagFrequency(),
	}
}

// VarietyScore is the ratio of unique menu items to total menu items across
// all records, in [0, 1]. 1.0 means every item ever eaten was distinct; it is
// 0.0 when there are no items at all.
func (a *Analyzer) VarietyScore() float64 {
	unique := make(map[string]struct{})
	var total int
	for _, meal := range a.meals {
		for _, item := range meal.MenuItems {
			unique[item] = struct{}{}
			total++
		}
	}
	if total == 0 {
		return 0.0
	}
	return float64(len(unique)) / float64(total)
}

// MissingCategories returns the categories eaten historically but absent from
// the last recentDays. The result order is unspecified.
func (a *Analyzer) MissingCategories(recentDays int) []string {
	allTime := make(map[string]struct{})
	for _, meal := range a.meals {
		for _, category := range meal.Categories {
			allTime[category] = struct{}{}
		}
	}

	cutoff := a.clock.Now().Add(-time.Duration(recentDays) * 24 * time.Hour)
	recent := make(map[string]struct{})
	for _, meal := range a.meals {
		if meal.Timestamp.Before(cutoff) {
			continue
		}
		for _, category := range meal.Categories {
			recent[category] = struct{}{}
		}
	}

	var missing []string
	for category := range allTime {
		if _, ok := recent[category]; !ok {
			missing = append(missing, category)
		}
	}
	return missing
}

// NutritionBalance estimates nutrition coverage from tag frequency over the
// last min(14, N) records in storage order. Storage order is not reordered
// even when it is not chronological. Every fixed nutrition tag maps to a
// status; a tag absent from the window is always lacking.
func (a *Analyzer) NutritionBalance() map[string]domain.NutritionStatus {
	window := a.meals
	if len(window) > domain.NutritionWindowRecords {
		window = window[len(window)-domain.NutritionWindowRecords:]
	}

	tagFreq := make(map[string]int)
	for _, meal := range window {
		for _, tag := range meal.Tags {
			tagFreq[tag]++
		}
	}

	status := make(map[string]domain.NutritionStatus, len(domain.NutritionTags))
	for _, nt := range domain.NutritionTags {
		count, ok := tagFreq[nt.Name]
		if !ok || len(window) == 0 {
			status[nt.Name] = domain.NutritionLacking
			continue
		}
		actual := float64(count) / float64(len(window))
		switch {
		case actual >= nt.IdealRatio:
			status[nt.Name] = domain.NutritionSufficient
		case actual >= nt.IdealRatio*0.5:
			status[nt.Name] = domain.NutritionSlightlyLacking
		default:
			status[nt.Name] = domain.NutritionLacking
		}
	}
	return status
}

// Summary aggregates all metrics into one report. An empty history yields the
// zero-record marker only.
func (a *Analyzer) Summary() Summary {
	if len(a.meals) == 0 {
		return Summary{TotalRecords: 0}
	}

	return Summary{
		TotalRecords:         len(a.meals),
		VarietyScore:         a.VarietyScore(),
		FavoriteItems:        a.FavoriteItems(domain.SummaryFavoriteLimit),
		CategoryDistribution: a.CategoryDistribution(),
		MealTypeDistribution: a.MealTypeDistribution(),
		MissingCategories:    a.MissingCategories(domain.DefaultMissingCategoryDays),
		NutritionBalance:     a.NutritionBalance(),
	}
}
