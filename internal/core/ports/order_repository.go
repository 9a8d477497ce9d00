// Package ports defines the persistence contracts of the dispatch core.
// These interfaces sit between the domain layer and the storage adapters,
// enabling dependency inversion and testability: command handlers are tested
// against mocks, adapters against a real database.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A duplicate order number fails with a
	// Conflict error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, or an
	// ObjectNotFound error.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetUnassigned retrieves NEW orders that have no delivery, ordered by
	// priority descending then creation time ascending. Feeds the dispatch
	// sweep.
	GetUnassigned(ctx context.Context) ([]*order.Order, error)
}
