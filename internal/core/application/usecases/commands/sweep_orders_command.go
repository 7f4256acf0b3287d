package commands

import (
	"errors"

	"selfstorage/internal/pkg/guard"
)

var ErrSweepOrdersCommandIsNotConstructed = errors.New(
	"SweepOrdersCommand must be created via NewSweepOrdersCommand constructor",
)

// SweepOrdersCommand moves pending and active orders forward in time and sends
// the reminders that are due.
//
// Example:
//
//	cmd := NewSweepOrdersCommand()
//	report, err := handler.Handle(ctx, cmd)
type SweepOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepOrdersCommand() SweepOrdersCommand {
	return SweepOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c SweepOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrdersCommandIsNotConstructed)
}
