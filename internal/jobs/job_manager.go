package jobs

import (
	"fmt"
)

// JobManager coordinates the scheduled jobs of the service.
type JobManager struct {
	sweepJob *LifecycleSweepJob
}

func NewJobManager(sweepJob *LifecycleSweepJob) *JobManager {
	return &JobManager{
		sweepJob: sweepJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start lifecycle sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.sweepJob.Stop()
}
