// Package driverrepo implements driver persistence over GORM, including the
// availability index query that ranks drivers by live-delivery load.
package driverrepo

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database representation of a driver aggregate.
type DriverDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"not null"`
	Phone      string     `gorm:"not null"`
	Status     int        `gorm:"index"`
	DistrictID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var districtID *uuid.UUID
	if id := aggregate.DistrictID(); id != nil {
		raw := id.Bytes()
		districtID = &raw
	}

	return DriverDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Phone:      aggregate.Phone(),
		Status:     int(aggregate.Status()),
		DistrictID: districtID,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	return driver.RestoreDriver(id, dto.Name, dto.Phone, driver.Status(dto.Status), districtID)
}
