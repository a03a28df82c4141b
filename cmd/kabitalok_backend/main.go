package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/kabitalok/kabitalok-payments/internal/core/services"
	"github.com/kabitalok/kabitalok-payments/internal/handlers"
	"github.com/kabitalok/kabitalok-payments/internal/middleware"
	"github.com/kabitalok/kabitalok-payments/internal/platform/config"
	"github.com/kabitalok/kabitalok-payments/internal/repositories/database/sqlite"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("Failed to create database directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if err := sqlite.RunMigrations(cfg.DBPath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection established.")

	repos := sqlite.NewRepositoryProvider(db)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Bootstrap admin so the login is reachable on a fresh database
	if err := serviceContainer.Admin.EnsureSeedAdmin(context.Background(),
		cfg.SeedAdminUsername, cfg.SeedAdminPassword, cfg.SeedAdminDisplayName); err != nil {
		logger.Error("Failed to seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
