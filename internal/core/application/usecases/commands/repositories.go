// Package commands contains the business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent shape: a validated command object, a
// handler owning the transaction boundary, and persistence through a unit of
// work. One user-facing operation is exactly one transaction.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest composition they need, so tests can
// inject small fakes and the composition root can satisfy all of them with
// one implementation.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// LogRepoFactory provides access to the audit log repository within a transaction.
	LogRepoFactory interface {
		LogRepository() ports.LogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver administration, which also
	// reads delivery state to guard removal and deactivation.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		DeliveryRepoFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW manages transactions spanning the whole dispatch workflow:
	// orders, drivers, deliveries and the audit log.
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		DeliveryRepoFactory
		LogRepoFactory
	}

	// UoWFactory creates dispatch unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
