package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PendingOrderAssigner assigns the oldest new order to a free master.
// commands.AssignPendingOrderCommandHandler implements it.
type PendingOrderAssigner interface {
	Handle(ctx context.Context, cmd commands.AssignPendingOrderCommand) (*order.Order, error)
}

// AutoAssignJob periodically hands the oldest new order to the nearest free master.
type AutoAssignJob struct {
	assigner PendingOrderAssigner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutoAssignJob creates the job. schedule is a six-field cron spec with
// seconds, e.g. "*/5 * * * * *".
func NewAutoAssignJob(assigner PendingOrderAssigner, schedule string, logger *slog.Logger) *AutoAssignJob {
	return &AutoAssignJob{
		assigner: assigner,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_assign_job"),
	}
}

// Start schedules the job and starts the cron runner.
func (j *AutoAssignJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assign job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single assignment attempt. Idle outcomes (nothing to
// assign, nobody free) are silent; a lost race is left to the next tick.
func (j *AutoAssignJob) RunOnce(ctx context.Context) {
	assigned, err := j.assigner.Handle(ctx, commands.NewAssignPendingOrderCommand())
	switch {
	case err == nil:
		j.logger.InfoContext(ctx, "Order auto-assigned",
			"order_id", assigned.ID().String(),
			"master_id", assigned.Master().String(),
		)
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, commands.ErrNoFreeMastersFound):
	case errors.Is(err, errs.ErrVersionConflict):
		j.logger.DebugContext(ctx, "Auto assign lost a race", "error", err)
	default:
		j.logger.ErrorContext(ctx, "Auto assign job failed", "error", err)
	}
}

// Stop stops scheduling and waits for a running attempt to finish.
func (j *AutoAssignJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto assign job stopped")
}
