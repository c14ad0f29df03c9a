package ports

import (
	"context"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
)

// AdlLedger is the append-only store of evidence entries scoped to an order.
// Entries are never updated or deleted.
type AdlLedger interface {
	// Append stores the entry and returns its identifier.
	Append(ctx context.Context, entry *adl.Entry) (kernel.UUID, error)

	// ListByOrder returns the entries of an order in arrival order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*adl.Entry, error)

	// CountByOrder returns the number of entries attached to an order.
	CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error)
}
