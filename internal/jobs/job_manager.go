package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statsDigestJob *StatsDigestJob
}

// NewJobManager creates a job manager owning every background job.
func NewJobManager(
	stats statsQuerier,
	sender DigestSender,
	digestSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsDigestJob: NewStatsDigestJob(stats, sender, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statsDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsDigestJob.Stop()
}
