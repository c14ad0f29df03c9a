package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// AssignMasterCommandHandler moves an order from new to assigned.
//
// With an explicit master the master must exist; it may already be working on
// other orders. Without one, the free masters are loaded and the assignment
// policy selects among them. The order is saved with a version check, so of
// two concurrent assignments exactly one wins and the other gets a
// VersionConflictError.
type AssignMasterCommandHandler struct {
	uowFactory UoWFactory
	policy     ports.AssignmentPolicy
	clock      Clock
}

// NewAssignMasterCommandHandler creates a handler for master assignment.
func NewAssignMasterCommandHandler(
	uowFactory UoWFactory,
	policy ports.AssignmentPolicy,
	clock Clock,
) AssignMasterCommandHandler {
	return AssignMasterCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle processes the assignment command and returns the updated order.
func (h AssignMasterCommandHandler) Handle(ctx context.Context, cmd AssignMasterCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	masterRepo := uow.MasterRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ValidateAssign(); err != nil {
		return nil, err
	}

	expectedVersion := o.Version()
	if masterID := cmd.MasterID(); masterID != nil {
		chosen, getErr := masterRepo.Get(ctx, *masterID)
		if getErr != nil {
			return nil, getErr
		}
		err = o.Assign(chosen.ID(), h.clock())
	} else {
		err = assignWithPolicy(ctx, masterRepo, h.policy, o, h.clock())
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Save(ctx, o, expectedVersion); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
