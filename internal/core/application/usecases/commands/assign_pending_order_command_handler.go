package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrNoFreeMastersFound also matches errs.ErrPreconditionFailed.
	ErrNoFreeMastersFound = errs.NewPreconditionFailedError("no free masters found")
	ErrNoOrderFound       = errors.New("no order found")
)

// AssignPendingOrderCommandHandler assigns the oldest new order using the
// assignment policy. It is driven by the background auto-assignment job.
//
// Example:
//
//	_, err := handler.Handle(ctx, NewAssignPendingOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoFreeMastersFound):
//	    log.Println("All masters are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     ports.AssignmentPolicy
	clock      Clock
}

// NewAssignPendingOrderCommandHandler creates a handler for automatic assignment.
func NewAssignPendingOrderCommandHandler(
	uowFactory UoWFactory,
	policy ports.AssignmentPolicy,
	clock Clock,
) AssignPendingOrderCommandHandler {
	return AssignPendingOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle retrieves the oldest pending order, finds free masters and assigns
// the order within a single transaction. Returns ErrNoOrderFound or
// ErrNoFreeMastersFound for the expected idle outcomes.
func (h AssignPendingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPendingOrderCommand,
) (*order.Order, error) {
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

	o, err := orderRepo.FindOldestInStatus(ctx, order.New)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOrderFound
	}
	if err != nil {
		return nil, err
	}

	expectedVersion := o.Version()
	if err = assignWithPolicy(ctx, uow.MasterRepository(), h.policy, o, h.clock()); err != nil {
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

// assignWithPolicy loads the free masters and lets policy assign o to one of them.
func assignWithPolicy(
	ctx context.Context,
	masterRepo ports.MasterRepository,
	policy ports.AssignmentPolicy,
	o *order.Order,
	now time.Time,
) error {
	masters, err := masterRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(masters) == 0 {
		return ErrNoFreeMastersFound
	}

	_, err = policy.Dispatch(o, masters, now)
	return err
}
