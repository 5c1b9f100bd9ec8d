package domain

// Catalog maps cuisine categories to candidate dishes. The key order is kept
// separately so selection and rendering stay stable across runs.
type Catalog struct {
	order map[string]int
	keys  []string
	items map[string][]string
}

// NewCatalog builds a catalog from ordered category/dish pairs.
func NewCatalog(categories []string, dishes map[string][]string) *Catalog {
	c := &Catalog{
		order: make(map[string]int, len(categories)),
		keys:  append([]string(nil), categories...),
		items: make(map[string][]string, len(dishes)),
	}
	for i, key := range categories {
		c.order[key] = i
	}
	for key, list := range dishes {
		c.items[key] = append([]string(nil), list...)
	}
	return c
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.keys...)
}

// Items returns the dish list for a category, nil if the category is unknown.
func (c *Catalog) Items(category string) []string {
	list, ok := c.items[category]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// Contains reports whether the category exists in the catalog.
func (c *Catalog) Contains(category string) bool {
	_, ok := c.items[category]
	return ok
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// DefaultCatalog returns the built-in menu master data. A real deployment
// would load this from a file or database.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]string{"和食", "洋食", "中華", "イタリアン", "エスニック"},
		map[string][]string{
			"和食": {
				"焼き魚", "味噌汁", "納豆", "ご飯", "煮物", "刺身",
				"天ぷら", "すき焼き", "お茶漬け", "おにぎり", "そば", "うどん",
			},
			"洋食": {
				"パスタ", "ピザ", "ハンバーグ", "ステーキ", "サラダ", "パン",
				"オムライス", "グラタン", "シチュー", "ローストチキン",
			},
			"中華": {
				"チャーハン", "麻婆豆腐", "餃子", "ラーメン", "酢豚", "エビチリ",
				"青椒肉絲", "春巻き", "小籠包", "炒飯",
			},
			"イタリアン": {
				"カルボナーラ", "ペペロンチーノ", "リゾット", "カプレーゼ",
				"ミネストローネ", "ラザニア",
			},
			"エスニック": {
				"カレー", "タイカレー", "フォー", "ガパオライス", "トムヤムクン",
				"パッタイ", "ナシゴレン",
			},
		},
	)
}
