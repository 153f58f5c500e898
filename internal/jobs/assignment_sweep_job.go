package jobs

import (
	"context"
	"errors"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentSweepJob periodically retries courier assignment for orders
// left waiting in the Ready queue. Runs every second so an order picks up a
// courier quickly once one becomes Active.
type AssignmentSweepJob struct {
	handler commands.AssignReadyOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssignmentSweepJob creates a new job for sweeping the Ready backlog.
func NewAssignmentSweepJob(handler commands.AssignReadyOrdersCommandHandler, logger *slog.Logger) *AssignmentSweepJob {
	return &AssignmentSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "assignment_sweep_job"),
	}
}

// Start begins the assignment sweep job to run every second.
func (j *AssignmentSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignReadyOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Empty backlog and no free couriers are expected sweep outcomes
			if !errors.Is(err, commands.ErrNoReadyOrders) && !errors.Is(err, commands.ErrNoFreeCouriers) {
				j.logger.ErrorContext(ctx, "Assignment sweep job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment sweep job started (running every second)")
	return nil
}

// Stop stops the assignment sweep job.
func (j *AssignmentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment sweep job stopped")
}
