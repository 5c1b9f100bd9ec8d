package app

import (
	"context"

	"github.com/doeshing/mealtrack/internal/application/analysis"
	"github.com/doeshing/mealtrack/internal/application/recommend"
	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/infrastructure/config"
	"github.com/doeshing/mealtrack/internal/infrastructure/storage"
	"github.com/doeshing/mealtrack/internal/pkg/clock"
	"github.com/doeshing/mealtrack/internal/pkg/logger"
	"github.com/doeshing/mealtrack/internal/pkg/random"
	"github.com/doeshing/mealtrack/internal/ports"
)

// Options tunes container construction from the CLI surface.
type Options struct {
	Verbose bool
	// DataFile overrides the configured store location when non-empty.
	DataFile string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Store        ports.MealRepository
	Catalog      *domain.Catalog
	Clock        ports.Clock
	Sampler      ports.Sampler
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	dataFile := cfg.Storage.DataFile
	if opts.DataFile != "" {
		dataFile = opts.DataFile
	}

	var store ports.MealRepository
	switch cfg.Storage.Backend {
	case domain.StorageBackendSQLite:
		store = storage.NewSQLiteStore(dataFile)
	default:
		store = storage.NewFileStore(dataFile)
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Store:        store,
		Catalog:      domain.DefaultCatalog(),
		Clock:        clock.NewSystem(),
		Sampler:      random.New(),
		Logger:       logger.NewStd(opts.Verbose || cfg.Preferences.Verbose),
	}, nil
}

// Analyzer builds an analyzer over the current store contents.
func (c *Container) Analyzer() (*analysis.Analyzer, error) {
	meals, err := c.Store.LoadAll()
	if err != nil {
		return nil, err
	}
	return analysis.New(meals, c.Clock), nil
}

// Recommender builds a recommender over the current store contents.
func (c *Container) Recommender() (*recommend.Recommender, error) {
	meals, err := c.Store.LoadAll()
	if err != nil {
		return nil, err
	}
	return recommend.New(meals, c.Catalog, c.Clock, c.Sampler), nil
}
