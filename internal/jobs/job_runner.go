package jobs

import (
	"sandevex-hiring-backend/internal/config"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	dispatch service.DispatchService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(dispatch service.DispatchService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		dispatch: dispatch,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
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
