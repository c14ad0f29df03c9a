package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignMasterCommandIsNotConstructed = errors.New(
	"AssignMasterCommand must be created via NewAssignMasterCommand constructor",
)

// AssignMasterCommand requests the assignment of a new order to a master.
// When no master is given, the assignment policy picks the nearest free one.
//
// Example:
//
//	cmd, err := NewAssignMasterCommand(orderID, nil) // let the policy choose
//	if err != nil {
//	    return err
//	}
//	assigned, err := handler.Handle(ctx, cmd)
type AssignMasterCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	masterID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignMasterCommand creates an assignment command. masterID is optional.
func NewAssignMasterCommand(orderID kernel.UUID, masterID *kernel.UUID) (AssignMasterCommand, error) {
	cmd := AssignMasterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMasterID(masterID),
	); err != nil {
		return AssignMasterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignMasterCommand) Validate() error {
	return c.guard.Validate(ErrAssignMasterCommandIsNotConstructed)
}

func (c AssignMasterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MasterID returns the explicitly requested master, or nil to use the assignment policy.
func (c AssignMasterCommand) MasterID() *kernel.UUID {
	if c.masterID == nil {
		return nil
	}
	id := *c.masterID
	return &id
}

func (c *AssignMasterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignMasterCommand) setMasterID(masterID *kernel.UUID) error {
	if masterID == nil {
		return nil
	}

	if err := masterID.Validate(); err != nil {
		return err
	}

	id := *masterID
	c.masterID = &id
	return nil
}
