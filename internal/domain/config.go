package domain

// Config mirrors ~/.mealtrack/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Storage             StorageSettings `yaml:"storage"`
	Preferences         Preferences     `yaml:"preferences"`
}

// StorageSettings selects and locates the meal store backend.
type StorageSettings struct {
	// Backend is "json" or "sqlite".
	Backend  string `yaml:"backend"`
	DataFile string `yaml:"data_file"`
}

// Preferences captures user level toggles.
type Preferences struct {
	RecentLimit         int  `yaml:"recent_limit"`
	TrendDays           int  `yaml:"trend_days"`
	MissingCategoryDays int  `yaml:"missing_category_days"`
	Verbose             bool `yaml:"verbose"`
}

// Storage backend names.
const (
	StorageBackendJSON   = "json"
	StorageBackendSQLite = "sqlite"
)
