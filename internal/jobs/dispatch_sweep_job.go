package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DispatchSweepJob periodically drains the dispatch backlog: it collects
// unassigned HIGH and URGENT orders and bulk-assigns them to available
// drivers. Orders that failed best-effort assignment at creation time are
// picked up here once a driver frees up.
type DispatchSweepJob struct {
	backlogHandler queries.GetUnassignedOrdersQueryHandler
	assignHandler  commands.BulkAssignCommandHandler
	schedule       string
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewDispatchSweepJob creates a sweep job running on the given cron schedule
// (six-field expression with seconds).
func NewDispatchSweepJob(
	backlogHandler queries.GetUnassignedOrdersQueryHandler,
	assignHandler commands.BulkAssignCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DispatchSweepJob {
	return &DispatchSweepJob{
		backlogHandler: backlogHandler,
		assignHandler:  assignHandler,
		schedule:       schedule,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "dispatch_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *DispatchSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *DispatchSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job stopped")
}

func (j *DispatchSweepJob) sweep() {
	ctx := context.Background()

	backlog, err := j.backlogHandler.Handle(ctx, queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep failed to read backlog", "error", err)
		return
	}

	orderIDs := make([]kernel.UUID, 0, len(backlog))
	for _, ord := range backlog {
		if ord.Priority.RequiresAutoAssign() {
			orderIDs = append(orderIDs, ord.ID)
		}
	}

	if len(orderIDs) == 0 {
		return
	}

	cmd, err := commands.NewBulkAssignCommand(orderIDs)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep failed to build command", "error", err)
		return
	}

	result, err := j.assignHandler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep failed", "error", err)
		return
	}

	// Individual failures are expected while the fleet is saturated; the
	// orders stay in the backlog for the next sweep.
	j.logger.InfoContext(ctx, "Dispatch sweep completed",
		"total", result.Total,
		"assigned", result.Successful,
		"failed", result.Failed,
	)
}
