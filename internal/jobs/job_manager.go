package jobs

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentSweepJob *AssignmentSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignReadyOrdersHandler commands.AssignReadyOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentSweepJob: NewAssignmentSweepJob(assignReadyOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.assignmentSweepJob.Stop()
}
