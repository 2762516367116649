package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pageza/nutriscope/backend/config"
	"github.com/pageza/nutriscope/backend/internal/database"
	"github.com/pageza/nutriscope/backend/internal/logging"
	"github.com/pageza/nutriscope/backend/internal/service"
)

// seed loads the default unit catalog, its conversions and the label nutrients.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	units := service.NewUnitService(db, service.NoGraphCache{}, logger)
	n, err := units.Seed(ctx)
	if err != nil {
		logger.Error("Failed to seed units", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Seeded units", slog.Int("inserted", n))

	catalog := service.NewCatalogService(db, units, logger)
	if _, err := catalog.SeedNutrients(ctx); err != nil {
		logger.Error("Failed to seed nutrients", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
