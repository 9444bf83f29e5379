package jobs

import (
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/config"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/logger"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	store    repository.Store
	emailSvc service.EmailService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies.
func NewJobRunner(store repository.Store, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the configuration for the scheduler's cron expressions.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
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

// RunAllNightlyJobs runs all nightly jobs (for manual execution).
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueRents()
	jr.SendReturnReminders()
}
