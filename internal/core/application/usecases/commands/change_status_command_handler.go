package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// ChangeStatusCommandHandler applies lifecycle transitions.
//
// Completion counts the evidence ledger inside the same transaction as the
// version-checked save. A concurrent attach bumps the order version, so a
// completion that raced with it fails with a VersionConflictError instead of
// acting on a stale count.
//
// Example:
//
//	cmd, _ := NewCompleteOrderCommand(orderID)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // no evidence attached yet
//	}
type ChangeStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      Clock
}

// NewChangeStatusCommandHandler creates a handler for status changes.
func NewChangeStatusCommandHandler(uowFactory LifecycleUoWFactory, clock Clock) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, applies the transition, and saves it with a version
// check. A rejected transition leaves the stored order unchanged.
func (h ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) (*order.Order, error) {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	evidenceCount := 0
	if cmd.Target() == order.Completed && o.Status() == order.InProgress {
		evidenceCount, err = uow.AdlLedger().CountByOrder(ctx, o.ID())
		if err != nil {
			return nil, err
		}
	}

	expectedVersion := o.Version()
	if err = o.ChangeStatus(cmd.Target(), evidenceCount, h.clock()); err != nil {
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
