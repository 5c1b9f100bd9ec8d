package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// DataFilePermissions is the permission for data and config files (rw-r--r--)
	DataFilePermissions = 0o644
)

// Analysis window constants
const (
	// DefaultTrendDays is the window used for recent-trend analysis
	DefaultTrendDays = 7
	// DefaultMissingCategoryDays is the window used to flag missing categories
	DefaultMissingCategoryDays = 7
	// NutritionWindowRecords is how many recent records feed the nutrition heuristic
	NutritionWindowRecords = 14
	// RecentItemWindowRecords is how many recent records are excluded from item sampling
	RecentItemWindowRecords = 10
)

// Display constants
const (
	// DefaultRecentLimit is the default number of records shown by the recent view
	DefaultRecentLimit = 10
	// SummaryFavoriteLimit is the number of favorite items in the summary report
	SummaryFavoriteLimit = 5
)

// Recommendation constants
const (
	// MaxRecommendedItems caps how many dishes a single recommendation carries
	MaxRecommendedItems = 3
	// PlanDays is the number of days covered by a weekly plan
	PlanDays = 7
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
