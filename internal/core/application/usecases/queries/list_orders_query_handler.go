package queries

import (
	"context"
	"iter"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ListOrdersQueryHandler streams order projections ordered by creation time.
//
// Example:
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for o, err := range orders {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(o.ID, o.Status)
//	}
type ListOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle validates the query and returns a sequence of orders. Every range
// over the sequence reads a fresh snapshot of the store. A read failure is
// yielded once as the error value and ends the sequence.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (iter.Seq2[order.Snapshot, error], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := ports.OrderFilter{Status: query.Status()}

	return func(yield func(order.Snapshot, error) bool) {
		orders, err := h.uowFactory.Create().OrderRepository().List(ctx, filter)
		if err != nil {
			yield(order.Snapshot{}, err)
			return
		}

		for _, o := range orders {
			if !yield(o.Snapshot(), nil) {
				return
			}
		}
	}, nil
}
