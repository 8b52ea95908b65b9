package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

// NewJobManager creates a job manager. Nil jobs are skipped so optional jobs can be passed directly.
func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	if logger == nil {
		logger = slog.Default()
	}

	jm := &JobManager{logger: logger.With("component", "job_manager")}
	for _, j := range jobs {
		if j != nil {
			jm.jobs = append(jm.jobs, j)
		}
	}
	return jm
}

// StartAll starts all scheduled jobs.
// If one fails, the jobs started before it are stopped again and the error is returned.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.Name(), err)
		}
		jm.started = append(jm.started, j)
	}

	jm.logger.InfoContext(context.Background(), "Jobs started", "count", len(jm.started))
	return nil
}

// StopAll stops the started jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
