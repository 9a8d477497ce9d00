// Package http exposes the dispatch core over a REST API using echo.
// Handlers translate wire DTOs to commands and queries, and domain errors to
// HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the command and query handlers.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	assignOrderHandler      commands.AssignOrderCommandHandler
	bulkAssignHandler       commands.BulkAssignCommandHandler
	transitionHandler       commands.TransitionDeliveryCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	deleteDeliveryHandler   commands.DeleteDeliveryCommandHandler
	createDriverHandler     commands.CreateDriverCommandHandler
	removeDriverHandler     commands.RemoveDriverCommandHandler
	setDriverStatusHandler  commands.SetDriverStatusCommandHandler
	availableDriversHandler queries.GetAvailableDriversQueryHandler
	unassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
	activeDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates the HTTP server facade over the application layer.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	bulkAssignHandler commands.BulkAssignCommandHandler,
	transitionHandler commands.TransitionDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	removeDriverHandler commands.RemoveDriverCommandHandler,
	setDriverStatusHandler commands.SetDriverStatusCommandHandler,
	availableDriversHandler queries.GetAvailableDriversQueryHandler,
	unassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	activeDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		assignOrderHandler:      assignOrderHandler,
		bulkAssignHandler:       bulkAssignHandler,
		transitionHandler:       transitionHandler,
		cancelOrderHandler:      cancelOrderHandler,
		deleteDeliveryHandler:   deleteDeliveryHandler,
		createDriverHandler:     createDriverHandler,
		removeDriverHandler:     removeDriverHandler,
		setDriverStatusHandler:  setDriverStatusHandler,
		availableDriversHandler: availableDriversHandler,
		unassignedOrdersHandler: unassignedOrdersHandler,
		activeDeliveriesHandler: activeDeliveriesHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/bulk-assign", s.BulkAssign)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)

	api.PATCH("/deliveries/:id/status", s.TransitionDelivery)
	api.DELETE("/deliveries/:id", s.DeleteDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)

	api.POST("/drivers", s.CreateDriver)
	api.DELETE("/drivers/:id", s.RemoveDriver)
	api.PATCH("/drivers/:id/status", s.SetDriverStatus)
	api.GET("/drivers/available", s.GetAvailableDrivers)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	priority, err := order.PriorityFromString(req.Priority)
	if err != nil {
		return badRequest(ctx, "invalid priority: "+req.Priority)
	}

	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return badRequest(ctx, "invalid warehouse id")
	}

	districtID, err := optionalUUID(req.DistrictID)
	if err != nil {
		return badRequest(ctx, "invalid district id")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.OrderNumber, req.Address, priority, warehouseID, districtID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	ord, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(ord))
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	preferredID, err := optionalUUID(req.PreferredDriverID)
	if err != nil {
		return badRequest(ctx, "invalid preferred driver id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, preferredID, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentToResponse(result))
}

// BulkAssign handles POST /api/v1/orders/bulk-assign.
func (s *Server) BulkAssign(ctx echo.Context) error {
	var req BulkAssignRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewBulkAssignCommand(orderIDs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.bulkAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bulkAssignToResponse(result))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	ord, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(ord))
}

// TransitionDelivery handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) TransitionDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req TransitionDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+req.Status)
	}

	cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, target, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	dlv, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryToResponse(dlv))
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	districtID, err := optionalUUID(req.DistrictID)
	if err != nil {
		return badRequest(ctx, "invalid district id")
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), req.Name, req.Phone, districtID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	drv, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverToResponse(drv))
}

// RemoveDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) RemoveDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewRemoveDriverCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDriverStatus handles PATCH /api/v1/drivers/:id/status.
func (s *Server) SetDriverStatus(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	var req SetDriverStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := driver.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+req.Status)
	}

	cmd, err := commands.NewSetDriverStatusCommand(driverID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	drv, err := s.setDriverStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverToResponse(drv))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	var districtID *kernel.UUID
	if raw := ctx.QueryParam("districtId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid district id")
		}
		districtID = &id
	}

	query, err := queries.NewGetAvailableDriversQuery(districtID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	drivers, err := s.availableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AvailableDriverResponse, 0, len(drivers))
	for _, d := range drivers {
		var district *string
		if d.DistrictID != nil {
			id := d.DistrictID.String()
			district = &id
		}
		response = append(response, AvailableDriverResponse{
			ID:             d.ID.String(),
			Name:           d.Name,
			Phone:          d.Phone,
			DistrictID:     district,
			LiveDeliveries: d.LiveDeliveries,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	orders, err := s.unassignedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnassignedOrdersQuery(),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]UnassignedOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, UnassignedOrderResponse{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			Address:     o.Address,
			Priority:    o.Priority.String(),
			CreatedAt:   o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	deliveries, err := s.activeDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery(),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ActiveDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		response = append(response, ActiveDeliveryResponse{
			ID:         d.ID.String(),
			OrderID:    d.OrderID.String(),
			DriverID:   d.DriverID.String(),
			DriverName: d.DriverName,
			Status:     d.Status.String(),
			Notes:      d.Notes,
			PickupTime: d.PickupTime,
			CreatedAt:  d.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain errors onto HTTP status codes: missing objects and
// an empty driver pool are 404, conflicts 409, state and transition
// violations 400, anything else 500.
func domainError(ctx echo.Context, err error) error {
	var code int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrNoDriverAvailable):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
