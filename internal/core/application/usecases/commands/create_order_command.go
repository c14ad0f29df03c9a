package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new field-service order.
// It carries raw request data; title and coordinate rules are enforced by the
// order aggregate when the command is handled.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Leak repair", "", 41.0, 29.0, order.Contact{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	title       string
	description string
	latitude    float64
	longitude   float64
	contact     order.Contact

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	title string,
	description string,
	latitude float64,
	longitude float64,
	contact order.Contact,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		title:       title,
		description: description,
		latitude:    latitude,
		longitude:   longitude,
		contact:     contact,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Title() string {
	return c.title
}

func (c CreateOrderCommand) Description() string {
	return c.description
}

// Location returns the requested service coordinates as given.
func (c CreateOrderCommand) Location() (float64, float64) {
	return c.latitude, c.longitude
}

func (c CreateOrderCommand) Contact() order.Contact {
	return c.contact
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
