package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/pkg/clock"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() clock.Fixed {
	return clock.NewFixed(testNow)
}

func mealAt(age time.Duration, mealType domain.MealType, items, categories, tags []string) domain.Meal {
	return domain.Meal{
		ID:         fmt.Sprintf("meal-%d", age/time.Hour),
		Timestamp:  testNow.Add(-age),
		MealType:   mealType,
		MenuItems:  items,
		Categories: categories,
		Tags:       tags,
	}
}

func TestFavoriteItemsOrdersByCountThenFirstSeen(t *testing.T) {
	meals := []domain.Meal{
		mealAt(1*time.Hour, domain.MealTypeLunch, []string{"ご飯", "味噌汁"}, []string{"和食"}, nil),
		mealAt(2*time.Hour, domain.MealTypeDinner, []string{"ご飯", "焼き魚"}, []string{"和食"}, nil),
		mealAt(3*time.Hour, domain.MealTypeLunch, []string{"ご飯", "味噌汁"}, []string{"和食"}, nil),
	}
	a := New(meals, fixedClock())

	got := a.FavoriteItems(10)
	require.Len(t, got, 3)
	assert.Equal(t, ItemCount{Item: "ご飯", Count: 3}, got[0])
	// 味噌汁 and 焼き魚 tie at lower counts sorted by count; the 2-count entry
	// comes before the 1-count entry.
	assert.Equal(t, ItemCount{Item: "味噌汁", Count: 2}, got[1])
	assert.Equal(t, ItemCount{Item: "焼き魚", Count: 1}, got[2])
}

func TestFavoriteItemsTiesKeepFirstEncounterOrder(t *testing.T) {
	meals := []domain.Meal{
		mealAt(1*time.Hour, domain.MealTypeLunch, []string{"そば", "うどん", "刺身"}, nil, nil),
	}
	a := New(meals, fixedClock())

	got := a.FavoriteItems(10)
	require.Len(t, got, 3)
	assert.Equal(t, "そば", got[0].Item)
	assert.Equal(t, "うどん", got[1].Item)
	assert.Equal(t, "刺身", got[2].Item)
}

func TestFavoriteItemsRespectsLimit(t *testing.T) {
	meals := []domain.Meal{
		mealAt(1*time.Hour, domain.MealTypeLunch, []string{"a", "b", "c", "d"}, nil, nil),
	}
	a := New(meals, fixedClock())

	got := a.FavoriteItems(2)
	assert.Len(t, got, 2)

	total := 0
	for _, entry := range got {
		assert.GreaterOrEqual(t, entry.Count, 1)
		total += entry.Count
	}
	assert.LessOrEqual(t, total, 4, "sum of returned counts must not exceed total occurrences")
}

func TestFavoriteItemsEmptyInput(t *testing.T) {
	a := New(nil, fixedClock())
	assert.Empty(t, a.FavoriteItems(10))
}

func TestDistributions(t *testing.T) {
	meals := []domain.Meal{
		mealAt(1*time.Hour, domain.MealTypeBreakfast, []string{"パン"}, []string{"洋食"}, []string{"ヘルシー"}),
		mealAt(2*time.Hour, domain.MealTypeLunch, []string{"パスタ"}, []string{"洋食", "イタリアン"}, []string{"ヘルシー", "野菜多め"}),
		mealAt(3*time.Hour, domain.MealTypeLunch, []string{"そば"}, []string{"和食"}, nil),
	}
	a := New(meals, fixedClock())

	assert.Equal(t, map[string]int{"洋食": 2, "イタリアン": 1, "和食": 1}, a.CategoryDistribution())
	assert.Equal(t, map[domain.MealType]int{
		domain.MealTypeBreakfast: 1,
		domain.MealTypeLunch:     2,
	}, a.MealTypeDistribution())
	assert.Equal(t, map[string]int{"ヘルシー": 2, "野菜多め": 1}, a.TagFrequency())
}

func TestVarietyScore(t *testing.T) {
	t.Run("empty input is zero", func(t *testing.T) {
		a := New(nil, fixedClock())
		assert.Zero(t, a.VarietyScore())
	})

	t.Run("all distinct items is one", func(t *testing.T) {
		meals := []domain.Meal{
			mealAt(1*time.Hour, domain.MealTypeLunch, []string{"a", "b"}, nil, nil),
			mealAt(2*time.Hour, domain.MealTypeDinner, []string{"c"}, nil, nil),
		}
		a := New(meals, fixedClock())
		assert.Equal(t, 1.0, a.VarietyScore())
	})

	t.Run("N identical items is 1/N", func(t *testing.T) {
		const n = 4
		var meals []domain.Meal
		for i := 0; i < n; i++ {
			meals = append(meals, mealAt(time.Duration(i+1)*time.Hour, domain.MealTypeLunch, []string{"カレー"}, nil, nil))
		}
		a := New(meals, fixedClock())
		assert.InDelta(t, 1.0/float64(n), a.VarietyScore(), 1e-9)
	})
}

func TestRecentTrends(t *testing.T) {
	meals := []domain.Meal{
		mealAt(2*24*time.Hour, domain.MealTypeLunch, []string{"ラーメン"}, []string{"中華"}, []string{"高タンパク"}),
		mealAt(3*24*time.Hour, domain.MealTypeDinner, []string{"餃子"}, []string{"中華"}, nil),
		mealAt(20*24*time.Hour, domain.MealTypeLunch, []string{"パスタ"}, []string{"イタリアン"}, nil),
	}
	a := New(meals, fixedClock())

	trends := a.RecentTrends(7)
	assert.Equal(t, 2, trends.TotalMeals)
	assert.Equal(t, map[string]int{"中華": 2}, trends.Categories)
	assert.Equal(t, map[string]int{"高タンパク": 1}, trends.Tags)
	require.Len(t, trends.FavoriteItems, 2)
}

func TestRecentTrendsEmptyWindow(t *testing.T) {
	meals := []domain.Meal{
		mealAt(30*24*time.Hour, domain.MealTypeLunch, []string{"パスタ"}, []string{"イタリアン"}, nil),
	}
	a := New(meals, fixedClock())

	trends := a.RecentTrends(7)
	assert.Zero(t, trends.TotalMeals)
	assert.Nil(t, trends.FavoriteItems)
	assert.Nil(t, trends.Categories)
}

func TestMissingCategories(t *testing.T) {
	meals := []domain.Meal{
		mealAt(10*24*time.Hour, domain.MealTypeDinner, []string{"すき焼き"}, []string{"和食"}, nil),
		mealAt(2*24*time.Hour, domain.MealTypeLunch, []string{"ピザ"}, []string{"洋食"}, nil),
		mealAt(1*24*time.Hour, domain.MealTypeDinner, []string{"パスタ"}, []string{"洋食"}, nil),
	}
	a := New(meals, fixedClock())

	missing := a.MissingCategories(7)
	assert.Equal(t, []string{"和食"}, missing)

	// Result must be a subset of all-time categories and disjoint from the
	// recent window.
	for _, category := range missing {
		assert.NotEqual(t, "洋食", category)
	}
}

func TestMissingCategoriesEmptyWhenAllRecent(t *testing.T) {
	meals := []domain.Meal{
		mealAt(1*24*time.Hour, domain.MealTypeLunch, []string{"ピザ"}, []string{"洋食"}, nil),
	}
	a := New(meals, fixedClock())
	assert.Empty(t, a.MissingCategories(7))
}

func TestNutritionBalanceAlwaysReportsFixedTags(t *testing.T) {
	a := New(nil, fixedClock())

	balance := a.NutritionBalance()
	require.Len(t, balance, len(domain.NutritionTags))
	for _, nt := range domain.NutritionTags {
		assert.Contains(t, balance, nt.Name)
		assert.Equal(t, domain.NutritionLacking, balance[nt.Name])
	}
}

func TestNutritionBalanceSingleRecordScenario(t *testing.T) {
	// One record tagged ヘルシー: window size 1, actual ratio 1.0 >= 0.3.
	meals := []domain.Meal{
		mealAt(1*time.Hour, domain.MealTypeLunch, []string{"サラダ"}, []string{"洋食"}, []string{"ヘルシー"}),
	}
	a := New(meals, fixedClock())

	balance := a.NutritionBalance()
	assert.Equal(t, domain.NutritionSufficient, balance["ヘルシー"])
	assert.Equal(t, domain.NutritionLacking, balance["高タンパク"])
	assert.Equal(t, domain.NutritionLacking, balance["野菜多め"])
	assert.Equal(t, domain.NutritionLacking, balance["低カロリー"])
}

func TestNutritionBalanceClassification(t *testing.T) {
	// 14 records in window; 2 tagged ヘルシー: ratio 2/14 ≈ 0.14 < 0.3/2 → lacking.
	// 3 tagged 高タンパク: 3/14 ≈ 0.21 >= 0.25/2 → slightly lacking.
	// 6 tagged 野菜多め: 6/14 ≈ 0.43 >= 0.4 → sufficient.
	var meals []domain.Meal
	for i := 0; i < 14; i++ {
		var tags []string
		if i < 2 {
			tags = append(tags, "ヘルシー")
		}
		if i < 3 {
			tags = append(tags, "高タンパク")
		}
		if i < 6 {
			tags = append(tags, "野菜多め")
		}
		meals = append(meals, mealAt(time.Duration(i+1)*time.Hour, domain.MealTypeLunch, []string{"x"}, nil, tags))
	}
	a := New(meals, fixedClock())

	balance := a.NutritionBalance()
	assert.Equal(t, domain.NutritionLacking, balance["ヘルシー"])
	assert.Equal(t, domain.NutritionSlightlyLacking, balance["高タンパク"])
	assert.Equal(t, domain.NutritionSufficient, balance["野菜多め"])
}

func TestNutritionBalanceUsesStorageOrderWindow(t *testing.T) {
	// 20 records; only the last 14 in slice order count, regardless of their
	// timestamps. The first 6 all carry ヘルシー but fall outside the window.
	var meals []domain.Meal
	for i := 0; i < 6; i++ {
		meals = append(meals, mealAt(1*time.Hour, domain.MealTypeLunch, []string{"x"}, nil, []string{"ヘルシー"}))
	}
	for i := 0; i < 14; i++ {
		meals = append(meals, mealAt(100*24*time.Hour, domain.MealTypeLunch, []string{"x"}, nil, nil))
	}
	a := New(meals, fixedClock())

	assert.Equal(t, domain.NutritionLacking, a.NutritionBalance()["ヘルシー"])
}

func TestSummary(t *testing.T) {
	t.Run("empty history returns marker", func(t *testing.T) {
		a := New(nil, fixedClock())
		assert.Zero(t, a.Summary().TotalRecords)
	})

	t.Run("aggregates all metrics", func(t *testing.T) {
		meals := []domain.Meal{
			mealAt(1*24*time.Hour, domain.MealTypeLunch, []string{"そば", "天ぷら"}, []string{"和食"}, []string{"ヘルシー"}),
			mealAt(10*24*time.Hour, domain.MealTypeDinner, []string{"ピザ"}, []string{"洋食"}, nil),
		}
		a := New(meals, fixedClock())

		summary := a.Summary()
		assert.Equal(t, 2, summary.TotalRecords)
		assert.Equal(t, 1.0, summary.VarietyScore)
		assert.Len(t, summary.FavoriteItems, 3)
		assert.Equal(t, []string{"洋食"}, summary.MissingCategories)
		assert.Len(t, summary.NutritionBalance, 4)
	})
}
