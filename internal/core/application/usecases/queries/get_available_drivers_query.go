// Package queries contains the read side of the CQRS split. Query handlers
// bypass the domain model and read straight from the database, returning
// lightweight read models.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves the driver availability index: ACTIVE
// drivers ranked by their current live-delivery load, optionally scoped to a
// district.
//
// Example:
//
//	query := NewGetAvailableDriversQuery(&districtID)
//	drivers, err := handler.Handle(ctx, query)
type GetAvailableDriversQuery struct {
	districtID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query for available drivers.
// districtID is optional; nil queries the whole fleet.
func NewGetAvailableDriversQuery(districtID *kernel.UUID) (GetAvailableDriversQuery, error) {
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return GetAvailableDriversQuery{}, err
		}
	}

	return GetAvailableDriversQuery{
		districtID: districtID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// DistrictID returns the district filter, or nil.
func (q GetAvailableDriversQuery) DistrictID() *kernel.UUID {
	return q.districtID
}

// GetAvailableDriversQueryResponse is the read model of one available driver.
type GetAvailableDriversQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Phone          string
	DistrictID     *kernel.UUID
	LiveDeliveries int64
}
