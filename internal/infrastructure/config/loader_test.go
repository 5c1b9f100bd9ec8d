package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/mealtrack/internal/domain"
)

func TestLoadWritesDefaultsOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.StorageBackendJSON, cfg.Storage.Backend)
	assert.Equal(t, domain.DefaultRecentLimit, cfg.Preferences.RecentLimit)
	assert.Equal(t, domain.DefaultTrendDays, cfg.Preferences.TrendDays)

	// The default file must now exist and load identically.
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: sqlite\n"), 0o644))

	loader := NewFileLoader(path)
	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.StorageBackendSQLite, cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.DataFile)
	assert.Equal(t, domain.DefaultRecentLimit, cfg.Preferences.RecentLimit)
	assert.Equal(t, domain.DefaultMissingCategoryDays, cfg.Preferences.MissingCategoryDays)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))

	loader := NewFileLoader(path)
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}
