package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders, optionally narrowed to one status.
type ListOrdersQuery struct {
	status *order.Status
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery parses the wire status name. An empty status lists every
// order; an unknown one is an errs.ValueIsInvalidError.
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = &parsed
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the requested status, or nil for all orders.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}
