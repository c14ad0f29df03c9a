package memory

import (
	"context"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

type adlLedger struct {
	uow *UnitOfWork
}

func (l *adlLedger) Append(_ context.Context, entry *adl.Entry) (kernel.UUID, error) {
	if err := entry.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	orders := &orderRepository{uow: l.uow}
	err := l.uow.write(func(tx *transaction) error {
		if _, exists := orders.lookup(tx, entry.OrderID()); !exists {
			return errs.NewObjectNotFoundError("order", entry.OrderID().String())
		}
		tx.entries = append(tx.entries, entry.Snapshot())
		return nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return entry.ID(), nil
}

func (l *adlLedger) ListByOrder(_ context.Context, orderID kernel.UUID) ([]*adl.Entry, error) {
	snapshots := l.snapshots(orderID)

	entries := make([]*adl.Entry, 0, len(snapshots))
	for _, snapshot := range snapshots {
		entry, err := adl.RestoreEntry(snapshot)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (l *adlLedger) CountByOrder(_ context.Context, orderID kernel.UUID) (int, error) {
	return len(l.snapshots(orderID)), nil
}

// snapshots returns committed entries followed by staged ones, in arrival order.
func (l *adlLedger) snapshots(orderID kernel.UUID) []adl.Snapshot {
	l.uow.store.mu.RLock()
	committed := l.uow.store.ledger[orderID]
	result := make([]adl.Snapshot, len(committed))
	copy(result, committed)
	l.uow.store.mu.RUnlock()

	for _, staged := range l.uow.staged().entries {
		if staged.OrderID.IsEqual(orderID) {
			result = append(result, staged)
		}
	}

	return result
}
