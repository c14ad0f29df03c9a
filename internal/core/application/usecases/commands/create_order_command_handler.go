package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates orders in status new.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Leak repair", "", 41.0, 29.0, order.Contact{})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle validates the order data and persists the new order. Nothing is
// stored when validation fails.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lat, lng := cmd.Location()
	location, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.Title(), cmd.Description(), location, cmd.Contact(), h.clock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
