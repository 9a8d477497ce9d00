// Package deliveryrepo implements delivery persistence over GORM. The
// order_id column carries a unique index, making the one-delivery-per-order
// invariant hold at the storage layer even under concurrent assignment.
package deliveryrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database representation of a delivery aggregate.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DriverID     uuid.UUID `gorm:"type:uuid;index"`
	Status       int       `gorm:"index"`
	Notes        string
	PickupTime   *time.Time
	DeliveryTime *time.Time
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		DriverID:     aggregate.DriverID().Bytes(),
		Status:       int(aggregate.Status()),
		Notes:        aggregate.Notes(),
		PickupTime:   aggregate.PickupTime(),
		DeliveryTime: aggregate.DeliveryTime(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		driverID,
		delivery.Status(dto.Status),
		dto.Notes,
		dto.PickupTime,
		dto.DeliveryTime,
		dto.CreatedAt,
	)
}
