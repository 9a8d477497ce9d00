package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"
)

// DeleteDeliveryCommandHandler removes a delivery record and unwinds its
// bindings: the order returns to NEW unless the delivery had completed, and
// the driver is freed unless other live deliveries still hold them.
// Deliveries in active progress (PICKED_UP, IN_TRANSIT) cannot be deleted.
type DeleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery deletion.
func NewDeleteDeliveryCommandHandler(uowFactory UoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteDeliveryCommandHandler) Handle(ctx context.Context, command DeleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	dlv, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	if !dlv.Status().IsDeletable() {
		return errs.NewConflictError(
			"delivery", dlv.ID().String(), "cannot delete a delivery in progress",
		)
	}

	if dlv.Status() != delivery.StatusDelivered {
		orderRepo := uow.OrderRepository()
		ord, err := orderRepo.Get(ctx, dlv.OrderID())
		if err != nil {
			return err
		}
		ord.Reopen()
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	}

	others, err := deliveryRepo.CountOtherLive(ctx, dlv.DriverID(), dlv.ID())
	if err != nil {
		return err
	}
	if others == 0 {
		driverRepo := uow.DriverRepository()
		drv, err := driverRepo.Get(ctx, dlv.DriverID())
		if err != nil {
			return err
		}
		drv.MarkActive()
		if err = driverRepo.Update(ctx, drv); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Delete(ctx, dlv.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
