package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one lifecycle operation. Writes
// made through its repositories become visible to others only after Commit.
// Repositories obtained without Begin work outside any transaction.
//
// Begin is idempotent. Commit and Rollback fail when no transaction is open,
// so handlers can always defer Rollback after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the open transaction.
	OrderRepository() OrderRepository

	// AdlLedger shares the transaction with OrderRepository, so an append
	// and the owning order's save commit together.
	AdlLedger() AdlLedger

	MasterRepository() MasterRepository
}
