package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignPendingOrderCommandIsNotConstructed = errors.New(
	"AssignPendingOrderCommand must be created via NewAssignPendingOrderCommand constructor",
)

// AssignPendingOrderCommand triggers the automatic assignment of the oldest
// order in status new to the nearest free master.
//
// Example:
//
//	cmd := NewAssignPendingOrderCommand()
//	handler := NewAssignPendingOrderCommandHandler(uowFactory, dispatcher, time.Now)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("No orders to assign or no free masters: %v", err)
//	}
type AssignPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrderCommand creates a new parameterless auto-assignment command.
func NewAssignPendingOrderCommand() AssignPendingOrderCommand {
	return AssignPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPendingOrderCommandIsNotConstructed if validation fails.
func (c *AssignPendingOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingOrderCommandIsNotConstructed,
	)
}
