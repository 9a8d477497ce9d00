package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves deliveries currently in flight
// (ASSIGNED, PICKED_UP or IN_TRANSIT) for the dispatch dashboard.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for in-flight deliveries.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is the read model of one in-flight
// delivery, joined with the driver's name for display.
type GetActiveDeliveriesQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	DriverID   kernel.UUID
	DriverName string
	Status     delivery.Status
	Notes      string
	PickupTime *time.Time
	CreatedAt  time.Time
}
