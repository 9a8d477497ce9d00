package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery. The order binding is unique: a second
	// delivery for the same order fails with a Conflict error regardless
	// of interleaving.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier, or an
	// ObjectNotFound error.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery bound to the given order, or an
	// ObjectNotFound error when the order has none.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// CountOtherLive counts the driver's live deliveries excluding the
	// given one. A zero count is the condition for returning the driver
	// to the ACTIVE pool.
	CountOtherLive(ctx context.Context, driverID, excludeDeliveryID kernel.UUID) (int64, error)

	// CountLiveByDriver counts all live deliveries held by the driver.
	// Guards driver deletion and deactivation.
	CountLiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)

	// Delete removes a delivery. The command layer is responsible for
	// rejecting deletion of active (PICKED_UP, IN_TRANSIT) deliveries.
	Delete(ctx context.Context, id kernel.UUID) error
}
