package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand requests a lifecycle transition of an order.
// Completion and cancellation are status changes to completed and rejected.
//
// Example:
//
//	cmd, err := NewChangeStatusCommand(orderID, "in_progress")
//	if err != nil {
//	    return err // unknown status name
//	}
//	updated, err := handler.Handle(ctx, cmd)
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand parses the wire status name and creates the command.
func NewChangeStatusCommand(orderID kernel.UUID, target string) (ChangeStatusCommand, error) {
	status, err := order.ParseStatus(target)
	if err != nil {
		return ChangeStatusCommand{}, errors.Join(orderID.Validate(), err)
	}
	return newChangeStatusCommand(orderID, status)
}

// NewCompleteOrderCommand creates a command that completes an in-progress order.
func NewCompleteOrderCommand(orderID kernel.UUID) (ChangeStatusCommand, error) {
	return newChangeStatusCommand(orderID, order.Completed)
}

// NewCancelOrderCommand creates a command that rejects a non-terminal order.
func NewCancelOrderCommand(orderID kernel.UUID) (ChangeStatusCommand, error) {
	return newChangeStatusCommand(orderID, order.Rejected)
}

func newChangeStatusCommand(orderID kernel.UUID, target order.Status) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangeStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

func (c ChangeStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
