package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"velvetden-backend/internal/config"
	"velvetden-backend/internal/jobs"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository/postgres"
	"velvetden-backend/internal/scheduler"
	"velvetden-backend/internal/service"
	"velvetden-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-past-events', 'send-event-reminders', 'cleanup-orphaned-images', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Velvet Den Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Storage
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.MaxFileSize, cfg.Storage.AllowedTypes)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email, fileStorage)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(
		store.UserRepository,
		store.EventRepository,
		store.SpaceRepository,
		emailSvc,
		fileStorage,
		cfg,
	)

	// Run-once mode for manual execution and container one-shots
	if *runOnce != "" {
		switch *runOnce {
		case "mark-past-events":
			jobRunner.MarkPastEvents()
		case "send-event-reminders":
			jobRunner.SendEventReminders()
		case "cleanup-orphaned-images":
			jobRunner.CleanupOrphanedImages()
		case "all":
			jobRunner.RunAllJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Start the scheduler and block until shutdown
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	sched.Stop()
}
