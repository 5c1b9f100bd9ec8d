package domain

// NutritionStatus classifies how well a nutrition tag is represented in the
// recent record window.
type NutritionStatus string

const (
	NutritionSufficient      NutritionStatus = "十分"
	NutritionSlightlyLacking NutritionStatus = "やや不足"
	NutritionLacking         NutritionStatus = "不足"
)

// NutritionTag pairs a tracked tag with the ratio of recent meals that should
// ideally carry it.
type NutritionTag struct {
	Name       string
	IdealRatio float64
}

// NutritionTags lists the fixed tags used as a nutrition-balance proxy. The
// estimation is a tag-frequency heuristic, not a real nutrition engine.
var NutritionTags = []NutritionTag{
	{Name: "ヘルシー", IdealRatio: 0.3},
	{Name: "高タンパク", IdealRatio: 0.25},
	{Name: "野菜多め", IdealRatio: 0.4},
	{Name: "低カロリー", IdealRatio: 0.2},
}
