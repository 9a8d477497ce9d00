package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler reads the dispatch backlog: NEW orders
// without a delivery, most urgent first, oldest first within a priority.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for backlog queries.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the backlog query.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.address,
			o.priority,
			o.created_at
		FROM orders o
		LEFT JOIN deliveries dl ON dl.order_id = o.id
		WHERE o.status = ? AND dl.id IS NULL
		ORDER BY o.priority DESC, o.created_at ASC
	`, order.StatusNew).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	for rows.Next() {
		var resp GetUnassignedOrdersQueryResponse
		var id uuid.UUID
		var priority int

		err = rows.Scan(&id, &resp.OrderNumber, &resp.Address, &priority, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Priority = order.Priority(priority)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
