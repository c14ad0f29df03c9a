package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
)

// MasterRepository defines the persistence contract for master aggregates.
type MasterRepository interface {
	// Add persists a new master.
	Add(ctx context.Context, aggregate *master.Master) error

	// Get retrieves a master by ID, or returns an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*master.Master, error)

	// List returns every master ordered by name.
	List(ctx context.Context) ([]*master.Master, error)

	// GetAllFree retrieves all masters that are not referenced by an order in
	// status assigned or in_progress.
	//
	// Business Rules:
	//   - Masters without any orders: Available
	//   - Masters with assigned or in_progress orders: Unavailable (actively working)
	//   - Masters whose orders are all completed or rejected: Available
	GetAllFree(ctx context.Context) ([]*master.Master, error)
}
