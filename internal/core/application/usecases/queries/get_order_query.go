package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order together with its master summary and
// evidence.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}
	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// MasterSummary is the part of a master shown next to an order.
type MasterSummary struct {
	ID   kernel.UUID
	Name string
}

// GetOrderQueryResponse is the full projection of an order.
//
// Master is nil when no master is assigned, or when the referenced master is
// no longer known. Adl is sorted by capture time, ties by ingestion order.
type GetOrderQueryResponse struct {
	Order  order.Snapshot
	Master *MasterSummary
	Adl    []adl.Snapshot
}
