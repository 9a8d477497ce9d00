package http

import (
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
)

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber string  `json:"orderNumber"`
	Address     string  `json:"address"`
	Priority    string  `json:"priority"`
	WarehouseID string  `json:"warehouseId"`
	DistrictID  *string `json:"districtId,omitempty"`
}

// AssignOrderRequest is the body of POST /api/v1/orders/:id/assign.
type AssignOrderRequest struct {
	PreferredDriverID *string `json:"preferredDriverId,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// BulkAssignRequest is the body of POST /api/v1/orders/bulk-assign.
type BulkAssignRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// TransitionDeliveryRequest is the body of PATCH /api/v1/deliveries/:id/status.
type TransitionDeliveryRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	DistrictID *string `json:"districtId,omitempty"`
}

// SetDriverStatusRequest is the body of PATCH /api/v1/drivers/:id/status.
type SetDriverStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Address     string    `json:"address"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	WarehouseID string    `json:"warehouseId"`
	DistrictID  *string   `json:"districtId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DeliveryResponse is the wire representation of a delivery.
type DeliveryResponse struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"orderId"`
	DriverID     string     `json:"driverId"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	PickupTime   *time.Time `json:"pickupTime,omitempty"`
	DeliveryTime *time.Time `json:"deliveryTime,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// DriverResponse is the wire representation of a driver.
type DriverResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Status     string  `json:"status"`
	DistrictID *string `json:"districtId,omitempty"`
}

// AssignmentResponse is the result of a successful assignment: the updated
// order, the new delivery and the assigned driver.
type AssignmentResponse struct {
	Order    OrderResponse    `json:"order"`
	Delivery DeliveryResponse `json:"delivery"`
	Driver   DriverResponse   `json:"driver"`
}

// BulkAssignItemResponse reports one order's outcome in a bulk assignment.
type BulkAssignItemResponse struct {
	OrderID  string            `json:"orderId"`
	Success  bool              `json:"success"`
	Delivery *DeliveryResponse `json:"delivery,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// BulkAssignResponse aggregates the outcomes of a bulk assignment.
type BulkAssignResponse struct {
	Total      int                      `json:"total"`
	Successful int                      `json:"successful"`
	Failed     int                      `json:"failed"`
	Results    []BulkAssignItemResponse `json:"results"`
}

// AvailableDriverResponse is one row of GET /api/v1/drivers/available.
type AvailableDriverResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	DistrictID     *string `json:"districtId,omitempty"`
	LiveDeliveries int64   `json:"liveDeliveries"`
}

// UnassignedOrderResponse is one row of GET /api/v1/orders/unassigned.
type UnassignedOrderResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Address     string    `json:"address"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ActiveDeliveryResponse is one row of GET /api/v1/deliveries/active.
type ActiveDeliveryResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"orderId"`
	DriverID   string     `json:"driverId"`
	DriverName string     `json:"driverName"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	PickupTime *time.Time `json:"pickupTime,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func orderToResponse(ord *order.Order) OrderResponse {
	var districtID *string
	if id := ord.DistrictID(); id != nil {
		s := id.String()
		districtID = &s
	}

	return OrderResponse{
		ID:          ord.ID().String(),
		OrderNumber: ord.OrderNumber(),
		Address:     ord.Address(),
		Priority:    ord.Priority().String(),
		Status:      ord.Status().String(),
		WarehouseID: ord.WarehouseID().String(),
		DistrictID:  districtID,
		CreatedAt:   ord.CreatedAt(),
	}
}

func deliveryToResponse(dlv *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:           dlv.ID().String(),
		OrderID:      dlv.OrderID().String(),
		DriverID:     dlv.DriverID().String(),
		Status:       dlv.Status().String(),
		Notes:        dlv.Notes(),
		PickupTime:   dlv.PickupTime(),
		DeliveryTime: dlv.DeliveryTime(),
		CreatedAt:    dlv.CreatedAt(),
	}
}

func driverToResponse(drv *driver.Driver) DriverResponse {
	var districtID *string
	if id := drv.DistrictID(); id != nil {
		s := id.String()
		districtID = &s
	}

	return DriverResponse{
		ID:         drv.ID().String(),
		Name:       drv.Name(),
		Phone:      drv.Phone(),
		Status:     drv.Status().String(),
		DistrictID: districtID,
	}
}

func assignmentToResponse(result commands.AssignmentResult) AssignmentResponse {
	return AssignmentResponse{
		Order:    orderToResponse(result.Order),
		Delivery: deliveryToResponse(result.Delivery),
		Driver:   driverToResponse(result.Driver),
	}
}

func bulkAssignToResponse(result commands.BulkAssignResult) BulkAssignResponse {
	items := make([]BulkAssignItemResponse, 0, len(result.Results))
	for _, item := range result.Results {
		resp := BulkAssignItemResponse{
			OrderID: item.OrderID.String(),
			Success: item.Success,
			Error:   item.Error,
		}
		if item.Delivery != nil {
			d := deliveryToResponse(item.Delivery)
			resp.Delivery = &d
		}
		items = append(items, resp)
	}

	return BulkAssignResponse{
		Total:      result.Total,
		Successful: result.Successful,
		Failed:     result.Failed,
		Results:    items,
	}
}
