package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriscope/backend/config"
	"github.com/pageza/nutriscope/backend/internal/api"
	"github.com/pageza/nutriscope/backend/internal/database"
	"github.com/pageza/nutriscope/backend/internal/logging"
	"github.com/pageza/nutriscope/backend/internal/middleware"
	"github.com/pageza/nutriscope/backend/internal/server"
	"github.com/pageza/nutriscope/backend/internal/service"
	"github.com/pageza/nutriscope/backend/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var graphCache service.GraphCache = service.NoGraphCache{}
	var limiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache and rate limiting", slog.String("error", err.Error()))
		} else {
			defer client.Close()
			graphCache = service.NewRedisGraphCache(client, cfg.CacheTTL)
			limiter = middleware.NewRateLimiter(middleware.NewRedisCounter(client), middleware.RateLimitConfig{
				Window: cfg.RateLimitWindow,
				Limit:  cfg.RateLimit,
			}, logger)
		}
	}

	var archiver storage.Archiver
	s3Archiver, err := storage.NewS3Archiver(ctx, cfg)
	switch {
	case errors.Is(err, storage.ErrArchiveDisabled):
		logger.Info("Journal archiving disabled")
	case err != nil:
		logger.Error("Failed to configure journal archive", slog.String("error", err.Error()))
		os.Exit(1)
	default:
		archiver = s3Archiver
	}

	units := service.NewUnitService(db, graphCache, logger)
	catalog := service.NewCatalogService(db, units, logger)
	goals := service.NewGoalService(db, logger)
	services := api.Services{
		Units:   units,
		Catalog: catalog,
		Recipes: service.NewRecipeService(db, catalog, logger),
		Goals:   goals,
		Journal: service.NewJournalService(db, catalog, goals, archiver, logger),
	}

	srv := server.NewServer(cfg, db, services, limiter, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
