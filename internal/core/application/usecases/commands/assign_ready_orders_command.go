package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrAssignReadyOrdersCommandIsNotConstructed = errors.New(
	"AssignReadyOrdersCommand must be created via NewAssignReadyOrdersCommand constructor",
)

// AssignReadyOrdersCommand represents a request to run one assignment sweep
// over the Ready-order backlog. Carries no parameters; it exists to keep the
// command/handler shape consistent for the background job.
type AssignReadyOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignReadyOrdersCommand creates a command to sweep the Ready backlog.
func NewAssignReadyOrdersCommand() AssignReadyOrdersCommand {
	return AssignReadyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignReadyOrdersCommandIsNotConstructed)
}
