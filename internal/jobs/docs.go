// Package jobs provides scheduled background tasks for the storage service.
//
// Jobs are built on github.com/robfig/cron/v3 with six field expressions (seconds first).
//
// # Available Jobs
//
// LifecycleSweepJob runs the order sweep: pending orders whose start date has come
// become active, rentals past their end become expired, unit occupancy is
// recomputed and due reminders are sent. The default schedule is "0 * * * * *".
//
// # Usage
//
//	sweepJob := jobs.NewLifecycleSweepJob(sweepHandler, sweepLock, "0 * * * * *", time.Minute, logger)
//	jobManager := jobs.NewJobManager(sweepJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Concurrency
//
// A tick that fires while the previous sweep is still running is skipped.
// Across replicas the optional ports.SweepLock keeps a single sweeper; a replica
// that cannot take the lock skips the run.
//
// # Error Handling
//
// A failing unit does not stop the sweep. The run is logged as partial and the
// next run retries what was left. A timed out run is reported the same way.
package jobs
