// Package memory provides an in-process implementation of the dispatch storage
// ports. It backs the "memory" storage driver and the engine tests.
//
// Committed state lives in a Store guarded by a RWMutex. A UnitOfWork stages
// its writes privately and applies them to the Store atomically on Commit,
// re-checking every order version under the write lock. This gives the same
// compare-and-swap guarantee as the PostgreSQL adapter: of two transactions
// that loaded the same order version, only the first to commit succeeds.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"fmt"
	"sync"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

type orderRecord struct {
	snapshot order.Snapshot
	seq      int64
}

type masterRecord struct {
	id       kernel.UUID
	name     string
	location kernel.GeoPoint
}

// Store holds committed state. The zero value is not usable; use NewStore.
type Store struct {
	mu      sync.RWMutex
	seq     int64
	orders  map[kernel.UUID]orderRecord
	ledger  map[kernel.UUID][]adl.Snapshot
	masters map[kernel.UUID]masterRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:  make(map[kernel.UUID]orderRecord),
		ledger:  make(map[kernel.UUID][]adl.Snapshot),
		masters: make(map[kernel.UUID]masterRecord),
	}
}

// apply validates every staged write against committed state and then
// applies all of them, or none.
func (s *Store) apply(tx *transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range tx.orderIDs {
		staged := tx.orders[id]
		current, exists := s.orders[id]
		switch {
		case staged.isNew && exists:
			return fmt.Errorf("order %s already exists", id)
		case staged.isNew:
		case !exists:
			return errs.NewObjectNotFoundError("order", id.String())
		case current.snapshot.Version != staged.expectedVersion:
			return errs.NewVersionConflictError("order", id.String(), staged.expectedVersion)
		}
	}

	for _, entry := range tx.entries {
		if _, exists := s.orders[entry.OrderID]; !exists {
			if staged, ok := tx.orders[entry.OrderID]; !ok || !staged.isNew {
				return errs.NewObjectNotFoundError("order", entry.OrderID.String())
			}
		}
	}

	for _, id := range tx.masterIDs {
		if _, exists := s.masters[id]; exists {
			return fmt.Errorf("master %s already exists", id)
		}
	}

	for _, id := range tx.orderIDs {
		staged := tx.orders[id]
		record, exists := s.orders[id]
		if !exists {
			s.seq++
			record.seq = s.seq
		}
		record.snapshot = staged.snapshot
		s.orders[id] = record
	}

	for _, entry := range tx.entries {
		s.ledger[entry.OrderID] = append(s.ledger[entry.OrderID], entry)
	}

	for _, id := range tx.masterIDs {
		s.masters[id] = tx.masters[id]
	}

	return nil
}
