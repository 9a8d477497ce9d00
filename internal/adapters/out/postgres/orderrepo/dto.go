// Package orderrepo implements order persistence over GORM, mapping between
// the order domain aggregate and its relational representation.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. The order
// number carries a unique index so duplicate registrations fail at the
// storage layer regardless of interleaving.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber string     `gorm:"uniqueIndex"`
	Address     string     `gorm:"not null"`
	Priority    int        `gorm:"index"`
	Status      int        `gorm:"index"`
	WarehouseID uuid.UUID  `gorm:"type:uuid"`
	DistrictID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var districtID *uuid.UUID
	if id := aggregate.DistrictID(); id != nil {
		raw := id.Bytes()
		districtID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Address:     aggregate.Address(),
		Priority:    int(aggregate.Priority()),
		Status:      int(aggregate.Status()),
		WarehouseID: aggregate.WarehouseID().Bytes(),
		DistrictID:  districtID,
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	var districtID *kernel.UUID
	if dto.DistrictID != nil {
		dID, districtErr := kernel.UUIDFromBytes((*dto.DistrictID)[:])
		if districtErr != nil {
			return nil, districtErr
		}
		districtID = &dID
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.Address,
		order.Priority(dto.Priority),
		order.Status(dto.Status),
		warehouseID,
		districtID,
		dto.CreatedAt,
	)
}
