package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler reads the availability index with one SQL
// query: ACTIVE drivers joined against their live deliveries, least-loaded
// first. Ties are broken by driver id so the ordering is stable.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for availability
// queries.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the availability query. An empty result is a valid answer,
// not an error.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			d.id,
			d.name,
			d.phone,
			d.district_id,
			COUNT(dl.id) AS live_deliveries
		FROM drivers d
		LEFT JOIN deliveries dl
			ON dl.driver_id = d.id AND dl.status IN (?, ?, ?)
		WHERE d.status = ?
	`
	args := []any{
		delivery.StatusAssigned, delivery.StatusPickedUp, delivery.StatusInTransit,
		driver.StatusActive,
	}

	if query.DistrictID() != nil {
		sql += ` AND d.district_id = ?`
		args = append(args, query.DistrictID().Bytes())
	}

	sql += `
		GROUP BY d.id, d.name, d.phone, d.district_id
		ORDER BY live_deliveries ASC, d.id ASC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	for rows.Next() {
		var resp GetAvailableDriversQueryResponse
		var id uuid.UUID
		var districtID uuid.NullUUID

		err = rows.Scan(&id, &resp.Name, &resp.Phone, &districtID, &resp.LiveDeliveries)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		if districtID.Valid {
			district, dErr := kernel.UUIDFromBytes(districtID.UUID[:])
			if dErr != nil {
				return nil, dErr
			}
			resp.DistrictID = &district
		}

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
