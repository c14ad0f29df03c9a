// Package postgres implements the Unit of Work over GORM transactions.
//
// Repositories obtained from a GormUnitOfWork run inside the transaction
// opened by Begin. Without an active transaction they use the base
// connection and every statement commits on its own.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Save(ctx, o, expectedVersion); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Optimistic concurrency is enforced by the order repository itself: Save
// updates the row only when the stored version still matches, so the losing
// writer of a race gets errs.ErrVersionConflict instead of a lost update.
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/adlrepo"
	"dispatch/internal/adapters/out/postgres/masterrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Models lists the GORM models owned by this adapter, in migration order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&adlrepo.EntryDTO{},
		&masterrepo.MasterDTO{},
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin opens a transaction. A second Begin keeps the open one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits the open transaction. The transaction is closed even when
// the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction and forgets tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AdlLedger() ports.AdlLedger {
	return adlrepo.NewGormAdlLedger(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MasterRepository() ports.MasterRepository {
	return masterrepo.NewGormMasterRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written by a repository.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return append([]TrackedAggregate(nil), uow.trackedAggregates...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
