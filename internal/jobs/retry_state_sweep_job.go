package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep every thirty seconds.
const DefaultSweepSchedule = "*/30 * * * * *"

// Sweeper removes retry state older than a threshold.
type Sweeper interface {
	Sweep(olderThan time.Duration) int
}

// RetryStateSweepJob periodically evicts stale retry state.
type RetryStateSweepJob struct {
	sweeper  Sweeper
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRetryStateSweepJob creates the job. An empty schedule selects DefaultSweepSchedule;
// schedules use the six-field cron format with seconds.
func NewRetryStateSweepJob(sweeper Sweeper, ttl time.Duration, schedule string, logger *slog.Logger) *RetryStateSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryStateSweepJob{
		sweeper:  sweeper,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "retry_state_sweep_job"),
	}
}

// Name identifies the job in logs.
func (j *RetryStateSweepJob) Name() string {
	return "retry state sweep"
}

// Start schedules the sweep.
func (j *RetryStateSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retry state sweep job started",
		"schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Run performs one sweep and returns the number of evicted entries.
func (j *RetryStateSweepJob) Run(ctx context.Context) int {
	removed := j.sweeper.Sweep(j.ttl)
	if removed > 0 {
		j.logger.WarnContext(ctx, "Evicted stale retry state", "count", removed)
	}
	return removed
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *RetryStateSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Retry state sweep job stopped")
}
