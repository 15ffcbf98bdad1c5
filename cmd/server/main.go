package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "velvetden-backend/internal/api/http"
	"velvetden-backend/internal/config"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository/postgres"
	"velvetden-backend/internal/security"
	"velvetden-backend/internal/seed"
	"velvetden-backend/internal/service"
	"velvetden-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Velvet Den Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Storage
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.MaxFileSize, cfg.Storage.AllowedTypes)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	logger.Info("File storage initialized", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email, fileStorage)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.SpaceRepository, emailSvc)
	eventSvc := service.NewEventService(store.EventRepository, store.SpaceTemplateRepository)
	spaceSvc := service.NewSpaceService(store.SpaceRepository, store.EventRepository)
	templateSvc := service.NewSpaceTemplateService(store.SpaceTemplateRepository)
	adminSvc := service.NewAdminService(store.UserRepository, store.SpaceRepository, emailSvc)

	// Seed demo data when enabled
	if cfg.Seed {
		if err := seed.Run(context.Background(), store); err != nil {
			logger.Error("Failed to seed demo data", "error", err)
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Build the HTTP router
	router := httpapi.NewRouter(cfg, httpapi.Services{
		Auth:      authSvc,
		Users:     userSvc,
		Events:    eventSvc,
		Spaces:    spaceSvc,
		Templates: templateSvc,
		Admin:     adminSvc,
	}, tokenManager, store.UserRepository, fileStorage)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
