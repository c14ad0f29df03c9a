package memory

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over a shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for in-memory units of work.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. Instances are not safe for concurrent use;
// each request should create its own.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit. Repositories used
// without an active transaction write through immediately.
type UnitOfWork struct {
	store *Store
	tx    *transaction
}

type stagedOrder struct {
	snapshot        order.Snapshot
	expectedVersion int64
	isNew           bool
}

type transaction struct {
	orders    map[kernel.UUID]stagedOrder
	orderIDs  []kernel.UUID
	entries   []adl.Snapshot
	masters   map[kernel.UUID]masterRecord
	masterIDs []kernel.UUID
}

func newTransaction() *transaction {
	return &transaction{
		orders:  make(map[kernel.UUID]stagedOrder),
		masters: make(map[kernel.UUID]masterRecord),
	}
}

func (tx *transaction) stageOrder(id kernel.UUID, staged stagedOrder) {
	if _, exists := tx.orders[id]; !exists {
		tx.orderIDs = append(tx.orderIDs, id)
	}
	tx.orders[id] = staged
}

func (tx *transaction) stageMaster(record masterRecord) {
	if _, exists := tx.masters[record.id]; !exists {
		tx.masterIDs = append(tx.masterIDs, record.id)
	}
	tx.masters[record.id] = record
}

// Begin starts a transaction. Calling Begin twice keeps the first transaction.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.tx == nil {
		uow.tx = newTransaction()
	}
	return nil
}

// Commit applies the staged writes atomically. On error nothing is applied
// and the transaction is closed.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	tx := uow.tx
	uow.tx = nil
	return uow.store.apply(tx)
}

// Rollback discards the staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.tx = nil
	return nil
}

// OrderRepository returns an order repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// AdlLedger returns an evidence ledger bound to this unit of work.
func (uow *UnitOfWork) AdlLedger() ports.AdlLedger {
	return &adlLedger{uow: uow}
}

// MasterRepository returns a master repository bound to this unit of work.
func (uow *UnitOfWork) MasterRepository() ports.MasterRepository {
	return &masterRepository{uow: uow}
}

// write runs stage against the active transaction, or against a one-shot
// transaction that is committed immediately.
func (uow *UnitOfWork) write(stage func(tx *transaction) error) error {
	if uow.tx != nil {
		return stage(uow.tx)
	}

	tx := newTransaction()
	if err := stage(tx); err != nil {
		return err
	}
	return uow.store.apply(tx)
}

// staged returns the active transaction, or an empty one for read-through.
func (uow *UnitOfWork) staged() *transaction {
	if uow.tx != nil {
		return uow.tx
	}
	return newTransaction()
}
