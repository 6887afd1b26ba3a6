package jobs

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/application/engine"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs reconciliation every 30 seconds.
const DefaultReconcileSchedule = "*/30 * * * * *"

type runReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileRunsCommand) (engine.Report, error)
}

// ReconciliationJob periodically aligns parcel statuses with their runs.
// A run with nothing to correct writes nothing and is only logged at debug.
type ReconciliationJob struct {
	handler  runReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationJob creates the job. schedule is a six-field cron
// expression (seconds first); empty means DefaultReconcileSchedule.
func NewReconciliationJob(handler runReconciler, schedule string, logger *slog.Logger) *ReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &ReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconciliation_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error and
// nothing is started.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started", "schedule", j.schedule)
	return nil
}

// RunOnce reconciles the stored snapshot one time and returns the report.
func (j *ReconciliationJob) RunOnce(ctx context.Context) engine.Report {
	report, err := j.handler.Handle(ctx, commands.NewReconcileRunsCommand())
	switch {
	case err == nil && report.Noop:
		j.logger.DebugContext(ctx, "Reconciliation found nothing to correct")
	case err == nil:
		j.logger.InfoContext(ctx, "Reconciliation corrected parcels", "corrections", len(report.Corrections))
	case errors.Is(err, errs.ErrVersionIsInvalid):
		// another writer saved first; the next tick starts from its snapshot
		j.logger.WarnContext(ctx, "Reconciliation lost a write race", "error", err)
	default:
		j.logger.ErrorContext(ctx, "Reconciliation job failed", "error", err)
	}
	return report
}

// Stop stops the scheduler and waits for a running reconciliation to finish.
func (j *ReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
