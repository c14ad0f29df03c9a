package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

type masterRepository struct {
	uow *UnitOfWork
}

func (r *masterRepository) Add(_ context.Context, aggregate *master.Master) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(tx *transaction) error {
		if _, exists := r.lookup(tx, aggregate.ID()); exists {
			return fmt.Errorf("master %s already exists", aggregate.ID())
		}
		tx.stageMaster(masterRecord{
			id:       aggregate.ID(),
			name:     aggregate.Name(),
			location: aggregate.Location(),
		})
		return nil
	})
}

func (r *masterRepository) Get(_ context.Context, id kernel.UUID) (*master.Master, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, exists := r.lookup(r.uow.staged(), id)
	if !exists {
		return nil, errs.NewObjectNotFoundError("master", id.String())
	}
	return master.RestoreMaster(record.id, record.name, record.location)
}

func (r *masterRepository) List(_ context.Context) ([]*master.Master, error) {
	return r.restore(r.all(), nil)
}

func (r *masterRepository) GetAllFree(ctx context.Context) ([]*master.Master, error) {
	busy := make(map[kernel.UUID]bool)
	for _, status := range []order.Status{order.Assigned, order.InProgress} {
		orders, err := (&orderRepository{uow: r.uow}).List(ctx, orderFilter(status))
		if err != nil {
			return nil, err
		}
		for _, o := range orders {
			if id := o.Master(); id != nil {
				busy[*id] = true
			}
		}
	}

	return r.restore(r.all(), busy)
}

func (r *masterRepository) lookup(tx *transaction, id kernel.UUID) (masterRecord, bool) {
	if record, ok := tx.masters[id]; ok {
		return record, true
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	record, ok := r.uow.store.masters[id]
	return record, ok
}

// all returns committed and staged masters ordered by name, then ID.
func (r *masterRepository) all() []masterRecord {
	tx := r.uow.staged()

	r.uow.store.mu.RLock()
	records := make([]masterRecord, 0, len(r.uow.store.masters)+len(tx.masters))
	for _, record := range r.uow.store.masters {
		records = append(records, record)
	}
	r.uow.store.mu.RUnlock()

	for _, id := range tx.masterIDs {
		records = append(records, tx.masters[id])
	}

	slices.SortFunc(records, func(a, b masterRecord) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})

	return records
}

func (r *masterRepository) restore(records []masterRecord, skip map[kernel.UUID]bool) ([]*master.Master, error) {
	masters := make([]*master.Master, 0, len(records))
	for _, record := range records {
		if skip[record.id] {
			continue
		}
		m, err := master.RestoreMaster(record.id, record.name, record.location)
		if err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, nil
}
