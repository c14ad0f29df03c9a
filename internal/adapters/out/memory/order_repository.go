package memory

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

// lookup returns the order as seen by the unit of work: staged state first,
// then committed state.
func (r *orderRepository) lookup(tx *transaction, id kernel.UUID) (order.Snapshot, bool) {
	if staged, ok := tx.orders[id]; ok {
		return staged.snapshot, true
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	record, ok := r.uow.store.orders[id]
	return record.snapshot, ok
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(tx *transaction) error {
		if _, exists := r.lookup(tx, aggregate.ID()); exists {
			return fmt.Errorf("order %s already exists", aggregate.ID())
		}
		tx.stageOrder(aggregate.ID(), stagedOrder{snapshot: aggregate.Snapshot(), isNew: true})
		return nil
	})
}

func (r *orderRepository) Save(_ context.Context, aggregate *order.Order, expectedVersion int64) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	return r.uow.write(func(tx *transaction) error {
		current, exists := r.lookup(tx, id)
		if !exists {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		if current.Version != expectedVersion {
			return errs.NewVersionConflictError("order", id.String(), expectedVersion)
		}

		staged, alreadyStaged := tx.orders[id]
		if !alreadyStaged {
			staged = stagedOrder{expectedVersion: expectedVersion}
		}
		staged.snapshot = aggregate.Snapshot()
		tx.stageOrder(id, staged)
		return nil
	})
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	snapshot, exists := r.lookup(r.uow.staged(), id)
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snapshot)
}

func (r *orderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	records := r.all()

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		if filter.Status != nil && record.snapshot.Status != *filter.Status {
			continue
		}
		o, err := order.RestoreOrder(record.snapshot)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *orderRepository) FindOldestInStatus(ctx context.Context, status order.Status) (*order.Order, error) {
	orders, err := r.List(ctx, ports.OrderFilter{Status: &status})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("order", "oldest in status "+status.String())
	}
	return orders[0], nil
}

// all merges committed and staged orders sorted by creation time, then by
// insertion order.
func (r *orderRepository) all() []orderRecord {
	tx := r.uow.staged()

	r.uow.store.mu.RLock()
	merged := make(map[kernel.UUID]orderRecord, len(r.uow.store.orders)+len(tx.orders))
	for id, record := range r.uow.store.orders {
		merged[id] = record
	}
	r.uow.store.mu.RUnlock()

	for i, id := range tx.orderIDs {
		record, exists := merged[id]
		if !exists {
			record.seq = math.MaxInt32 + int64(i)
		}
		record.snapshot = tx.orders[id].snapshot
		merged[id] = record
	}

	records := make([]orderRecord, 0, len(merged))
	for _, record := range merged {
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b orderRecord) int {
		if c := a.snapshot.CreatedAt.Compare(b.snapshot.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	return records
}

func orderFilter(status order.Status) ports.OrderFilter {
	return ports.OrderFilter{Status: &status}
}
