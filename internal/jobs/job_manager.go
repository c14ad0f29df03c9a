package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	autoAssignJob *AutoAssignJob
}

// NewJobManager creates a job manager. An empty autoAssignSchedule disables
// the auto assign job.
func NewJobManager(assigner PendingOrderAssigner, autoAssignSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if autoAssignSchedule != "" {
		jm.autoAssignJob = NewAutoAssignJob(assigner, autoAssignSchedule, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
func (jm *JobManager) StartAll() error {
	if jm.autoAssignJob == nil {
		return nil
	}

	if err := jm.autoAssignJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto assign job: %w", err)
	}

	return nil
}

// StopAll stops all started jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	if jm.autoAssignJob != nil {
		jm.autoAssignJob.Stop()
	}
}
