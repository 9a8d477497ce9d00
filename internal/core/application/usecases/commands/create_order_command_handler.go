package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/order"
)

// OrderAssigner is the slice of the assignment workflow the order creation
// handler needs for its post-commit auto-assignment attempt.
type OrderAssigner interface {
	Handle(ctx context.Context, command AssignOrderCommand) (AssignmentResult, error)
}

// CreateOrderCommandHandler handles order registration. The order is created
// in its own transaction; for HIGH and URGENT priorities the handler then
// attempts an automatic assignment in a second transaction. The attempt is
// strictly best-effort: its failure is logged and swallowed, and the created
// order stays in NEW status awaiting the dispatch sweep.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   OrderAssigner
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	assigner OrderAssigner,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns the created order.
// The returned order reflects the creation transaction only: even when
// auto-assignment succeeded, callers observe NEW and discover the assignment
// through the order endpoints, matching the asynchronous dispatch model.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	ord, err := order.NewOrder(
		command.OrderID(),
		command.OrderNumber(),
		command.Address(),
		command.Priority(),
		command.WarehouseID(),
		command.DistrictID(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if command.Priority().RequiresAutoAssign() {
		h.tryAutoAssign(ctx, ord)
	}

	return ord, nil
}

func (h CreateOrderCommandHandler) tryAutoAssign(ctx context.Context, ord *order.Order) {
	assignCmd, err := NewAssignOrderCommand(ord.ID(), nil, "")
	if err != nil {
		h.logger.Warn("auto-assign skipped",
			"orderId", ord.ID().String(), "error", err)
		return
	}

	if _, err = h.assigner.Handle(ctx, assignCmd); err != nil {
		h.logger.Warn("auto-assign failed, order left unassigned",
			"orderId", ord.ID().String(),
			"priority", ord.Priority().String(),
			"error", err)
		return
	}

	h.logger.Info("order auto-assigned",
		"orderId", ord.ID().String(),
		"priority", ord.Priority().String())
}
