package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/auditlog"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and takes its delivery down with
// it. The delivery is force-failed regardless of the transition table, since
// cancellation overrides normal progress, and the driver is freed only if no
// other live delivery still holds them.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the cancelled order.
// Completed orders cannot be cancelled; an order without a delivery simply
// moves to CANCELLED.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.Cancel(); err != nil {
		return nil, err
	}

	if err = h.failDelivery(ctx, uow, command); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	entry, err := auditlog.NewEntry(
		auditlog.ActionCancelOrder, auditlog.EntityTypeOrder, ord.ID(),
		map[string]any{"reason": command.Reason()},
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}
	if err = uow.LogRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}

func (h CancelOrderCommandHandler) failDelivery(ctx context.Context, uow UoW, command CancelOrderCommand) error {
	deliveryRepo := uow.DeliveryRepository()

	dlv, err := deliveryRepo.GetByOrder(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	dlv.ForceFail(command.Reason())
	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return err
	}

	others, err := deliveryRepo.CountOtherLive(ctx, dlv.DriverID(), dlv.ID())
	if err != nil {
		return err
	}
	if others > 0 {
		return nil
	}

	driverRepo := uow.DriverRepository()
	drv, err := driverRepo.Get(ctx, dlv.DriverID())
	if err != nil {
		return err
	}

	drv.MarkActive()
	return driverRepo.Update(ctx, drv)
}
