// Package commands contains the Lifecycle Engine: business operations that
// modify orders, their evidence and the master roster.
// All commands follow a consistent pattern: validation, transaction management,
// a version-checked save and commit.
package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
)

// Clock returns the current time.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it uses.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AdlLedgerFactory provides access to the evidence ledger within a transaction.
	AdlLedgerFactory interface {
		AdlLedger() ports.AdlLedger
	}

	// MasterRepoFactory provides access to the master repository within a transaction.
	MasterRepoFactory interface {
		MasterRepository() ports.MasterRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LifecycleUoW manages transactions that touch an order and its evidence.
	// Used by status changes (completion counts evidence) and evidence attachment.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		AdlLedgerFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// MasterUoW manages transactions for master-only operations.
	MasterUoW interface {
		TxManager
		MasterRepoFactory
	}

	// MasterUoWFactory creates new master unit of work instances.
	MasterUoWFactory interface {
		Create() MasterUoW
	}

	// UoW manages transactions across orders and masters.
	// Used for assignment, which reads masters and writes an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   masterRepo := uow.MasterRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		MasterRepoFactory
	}

	// UoWFactory creates new unit of work instances for assignment operations.
	UoWFactory interface {
		Create() UoW
	}
)
