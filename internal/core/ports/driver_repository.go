package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier, or an
	// ObjectNotFound error.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Delete removes a driver. The command layer is responsible for
	// rejecting deletion of drivers holding live deliveries.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAvailable is the driver availability index: ACTIVE drivers,
	// optionally scoped to a district, ordered by ascending count of their
	// live deliveries with ties broken by id ascending. The least-loaded
	// eligible driver surfaces first. Returns an empty slice, never an
	// error, when no driver qualifies.
	GetAvailable(ctx context.Context, districtID *kernel.UUID) ([]*driver.Driver, error)
}
