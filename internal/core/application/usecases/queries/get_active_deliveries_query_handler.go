package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads deliveries in flight, newest first,
// joined with the driver for display purposes.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for in-flight
// delivery queries.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the in-flight deliveries query.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dl.id,
			dl.order_id,
			dl.driver_id,
			d.name,
			dl.status,
			dl.notes,
			dl.pickup_time,
			dl.created_at
		FROM deliveries dl
		JOIN drivers d ON d.id = dl.driver_id
		WHERE dl.status IN (?, ?, ?)
		ORDER BY dl.created_at ASC
	`, delivery.StatusAssigned, delivery.StatusPickedUp, delivery.StatusInTransit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, orderID, driverID uuid.UUID
		var status int
		var pickupTime sql.NullTime

		err = rows.Scan(
			&id, &orderID, &driverID, &resp.DriverName,
			&status, &resp.Notes, &pickupTime, &resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}
		resp.Status = delivery.Status(status)
		if pickupTime.Valid {
			t := pickupTime.Time
			resp.PickupTime = &t
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
