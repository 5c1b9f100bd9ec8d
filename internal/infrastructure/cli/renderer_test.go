package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/doeshing/mealtrack/internal/application/analysis"
	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/pkg/clock"
)

func testRenderer(buf *bytes.Buffer) *Renderer {
	return NewRenderer(buf, clock.NewFixed(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)))
}

func TestRenderSummaryGolden(t *testing.T) {
	summary := analysis.Summary{
		TotalRecords: 3,
		VarietyScore: 0.75,
		FavoriteItems: []analysis.ItemCount{
			{Item: "ご飯", Count: 3},
			{Item: "味噌汁", Count: 2},
		},
		CategoryDistribution: map[string]int{"和食": 2, "洋食": 1},
		MealTypeDistribution: map[domain.MealType]int{
			domain.MealTypeLunch:  2,
			domain.MealTypeDinner: 1,
		},
		MissingCategories: []string{"中華"},
		NutritionBalance: map[string]domain.NutritionStatus{
			"ヘルシー":  domain.NutritionSufficient,
			"高タンパク": domain.NutritionSlightlyLacking,
			"野菜多め":  domain.NutritionLacking,
			"低カロリー": domain.NutritionLacking,
		},
	}

	var buf bytes.Buffer
	testRenderer(&buf).RenderSummary(summary)

	g := goldie.New(t)
	g.Assert(t, "summary", buf.Bytes())
}

func TestRenderRecommendationGolden(t *testing.T) {
	rec := domain.Recommendation{
		Items:      []string{"焼き魚", "味噌汁", "納豆"},
		Categories: []string{"和食"},
		Reason:     "最近和食を食べていないため、バランスを考慮しました。",
		NutritionalBalance: map[string]string{
			"ヘルシー":  "ヘルシーのメニューを増やしましょう",
			"高タンパク": "高タンパクも意識してみてください",
			"野菜多め":  "野菜多めは十分摂取できています",
			"低カロリー": "低カロリーのメニューを増やしましょう",
		},
		Confidence: 0.85,
	}

	var buf bytes.Buffer
	testRenderer(&buf).RenderRecommendation(rec)

	g := goldie.New(t)
	g.Assert(t, "recommendation", buf.Bytes())
}

func TestRenderSummaryEmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	testRenderer(&buf).RenderSummary(analysis.Summary{})

	if got := buf.String(); got != "No meals recorded yet.\n" {
		t.Fatalf("unexpected empty-history output: %q", got)
	}
}

func TestRenderRecentMealsIncludesRelativeAge(t *testing.T) {
	calories := 520
	meals := []domain.Meal{
		{
			ID:         "id-1",
			Timestamp:  time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC),
			MealType:   domain.MealTypeLunch,
			MenuItems:  []string{"そば"},
			Categories: []string{"和食"},
			Tags:       []string{"ヘルシー"},
			Calories:   &calories,
		},
	}

	var buf bytes.Buffer
	testRenderer(&buf).RenderRecentMeals(meals)

	out := buf.String()
	for _, want := range []string{"[lunch]", "2026-03-12", "2 days ago", "そば", "和食", "ヘルシー", "520kcal"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
