package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/pageza/nutriscope/backend/config"
	"github.com/pageza/nutriscope/backend/internal/database"
	"github.com/pageza/nutriscope/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "", "Migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	if cfg.DBDriver != "postgres" {
		logger.Error("SQL migrations require the postgres driver", slog.String("driver", cfg.DBDriver))
		os.Exit(1)
	}
	migrationsDir := cfg.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	conn, err := database.New(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer conn.Close()

	db, err := conn.Gorm()
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *rollback {
		name, err := database.RollbackLast(db, migrationsDir)
		if errors.Is(err, database.ErrNoMigrations) {
			logger.Info("No migrations to rollback")
			return
		}
		if err != nil {
			logger.Error("Rollback failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Successfully rolled back migration", slog.String("name", name))
		return
	}

	if err := database.RunMigrations(db, migrationsDir); err != nil {
		logger.Error("Migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("All migrations applied successfully")
}
