package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/metrics"

	"github.com/robfig/cron/v3"
)

type sweepHandler interface {
	Handle(ctx context.Context, cmd commands.SweepOrdersCommand) (commands.SweepReport, error)
}

// LifecycleSweepJob runs the order sweep on a cron schedule.
// A run that is still going when the next tick fires makes that tick a no-op.
type LifecycleSweepJob struct {
	handler sweepHandler
	lock    ports.SweepLock
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLifecycleSweepJob builds the job. spec is a six field cron expression (with seconds).
// lock may be nil when a single replica runs the service.
func NewLifecycleSweepJob(
	handler sweepHandler,
	lock ports.SweepLock,
	spec string,
	timeout time.Duration,
	logger *slog.Logger,
) *LifecycleSweepJob {
	return &LifecycleSweepJob{
		handler: handler,
		lock:    lock,
		spec:    spec,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "lifecycle_sweep_job"),
	}
}

func (j *LifecycleSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Lifecycle sweep job started", "schedule", j.spec)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *LifecycleSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Lifecycle sweep job stopped")
}

// Run performs one sweep. It is exported so the sweep can also be triggered outside the schedule.
func (j *LifecycleSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if j.lock != nil {
		release, ok, err := j.lock.TryLock(ctx)
		if err != nil {
			metrics.SweepRunsTotal.WithLabelValues("failed").Inc()
			j.logger.ErrorContext(ctx, "Sweep lock unavailable", "error", err)
			return
		}
		if !ok {
			metrics.SweepRunsTotal.WithLabelValues("skipped").Inc()
			j.logger.DebugContext(ctx, "Sweep skipped, another replica holds the lock")
			return
		}
		defer release()
	}

	started := time.Now()
	report, err := j.handler.Handle(ctx, commands.NewSweepOrdersCommand())
	metrics.SweepDurationSeconds.Observe(time.Since(started).Seconds())
	record(report)

	attrs := []any{
		"units_swept", report.UnitsSwept,
		"units_failed", report.UnitsFailed,
		"activated", report.Activated,
		"expired", report.Expired,
		"units_freed", report.UnitsFreed,
		"units_occupied", report.UnitsOccupied,
		"reminders_sent", report.RemindersSent,
		"reminder_failures", report.ReminderFailures,
	}

	switch {
	case err == nil:
		metrics.SweepRunsTotal.WithLabelValues("completed").Inc()
		j.logger.InfoContext(ctx, "Sweep finished", attrs...)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		metrics.SweepRunsTotal.WithLabelValues("partial").Inc()
		j.logger.WarnContext(ctx, "Sweep interrupted, the next run continues", append(attrs, "error", err)...)
	case report.UnitsSwept == 0:
		metrics.SweepRunsTotal.WithLabelValues("failed").Inc()
		j.logger.ErrorContext(ctx, "Sweep failed", append(attrs, "error", err)...)
	default:
		metrics.SweepRunsTotal.WithLabelValues("partial").Inc()
		j.logger.ErrorContext(ctx, "Sweep finished with failures", append(attrs, "error", err)...)
	}
}

func record(report commands.SweepReport) {
	metrics.StatusTransitionsTotal.WithLabelValues("active").Add(float64(report.Activated))
	metrics.StatusTransitionsTotal.WithLabelValues("expired").Add(float64(report.Expired))
	metrics.RemindersTotal.WithLabelValues("sent").Add(float64(report.RemindersSent))
	metrics.RemindersTotal.WithLabelValues("failed").Add(float64(report.ReminderFailures))
	metrics.SweepUnitsTotal.WithLabelValues("ok").Add(float64(report.UnitsSwept))
	metrics.SweepUnitsTotal.WithLabelValues("failed").Add(float64(report.UnitsFailed))
}
