package jobs

import (
	"velvetden-backend/internal/config"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository"
	"velvetden-backend/internal/service"
	"velvetden-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	users  repository.UserRepository
	events repository.EventRepository
	spaces repository.SpaceRepository
	emails service.EmailService
	files  storage.FileStorage
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	users repository.UserRepository,
	events repository.EventRepository,
	spaces repository.SpaceRepository,
	emails service.EmailService,
	files storage.FileStorage,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		users:  users,
		events: events,
		spaces: spaces,
		emails: emails,
		files:  files,
		config: cfg,
	}
}

// Config exposes the configuration for schedule lookup
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.MarkPastEvents()
	jr.SendEventReminders()
	jr.CleanupOrphanedImages()
}
