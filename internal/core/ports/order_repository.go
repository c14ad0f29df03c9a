// Package ports defines the storage contracts of the dispatch core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderFilter narrows List results. A nil Status matches every order.
type OrderFilter struct {
	Status *order.Status
}

// OrderRepository defines the persistence contract for order aggregates
// (the Order Store). Every write is a compare-and-swap on the order version.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Save persists a mutated order only if the stored version still equals
	// expectedVersion. It returns an errs.ObjectNotFoundError when the order
	// does not exist and an errs.VersionConflictError when another writer won.
	//
	// Example:
	//   expected := o.Version()
	//   if err := o.Assign(masterID, now); err != nil {
	//       return err
	//   }
	//   if err := repo.Save(ctx, o, expected); err != nil {
	//       return err // errors.Is(err, errs.ErrVersionConflict) for a lost race
	//   }
	Save(ctx context.Context, aggregate *order.Order, expectedVersion int64) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns the orders matching filter ordered by creation time.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// FindOldestInStatus returns the earliest created order in status.
	// Returns an errs.ObjectNotFoundError when there is none.
	FindOldestInStatus(ctx context.Context, status order.Status) (*order.Order, error)
}
