package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/auditlog"
	"logistics/internal/core/domain/model/delivery"
)

// TransitionDeliveryCommandHandler advances a delivery through its state
// machine and applies the coupled effects in the same transaction: the
// order's derived status is recomputed, and the driver's availability is
// recomputed from their remaining live deliveries.
type TransitionDeliveryCommandHandler struct {
	uowFactory UoWFactory
	recorder   DispatchRecorder
}

// NewTransitionDeliveryCommandHandler creates a handler for delivery
// transitions.
func NewTransitionDeliveryCommandHandler(uowFactory UoWFactory, recorder DispatchRecorder) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// Handle processes the transition command and returns the updated delivery.
// An illegal transition fails with an InvalidTransition error and leaves
// every entity untouched.
func (h TransitionDeliveryCommandHandler) Handle(
	ctx context.Context,
	command TransitionDeliveryCommand,
) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()

	dlv, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return nil, err
	}

	oldStatus := dlv.Status()
	now := time.Now().UTC()
	if err = dlv.TransitionTo(command.Target(), command.Notes(), now); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return nil, err
	}

	if err = h.recomputeOrder(ctx, uow, dlv); err != nil {
		return nil, err
	}

	if err = h.recomputeDriver(ctx, uow, dlv); err != nil {
		return nil, err
	}

	entry, err := auditlog.NewEntry(
		auditlog.ActionUpdateDeliveryStatus, auditlog.EntityTypeDelivery, dlv.ID(),
		map[string]any{
			"oldStatus": oldStatus.String(),
			"newStatus": dlv.Status().String(),
		},
		now,
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

	h.recorder.RecordTransition(dlv.Status().String())
	return dlv, nil
}

// recomputeOrder overwrites the order's derived status cache from the
// delivery's new status.
func (h TransitionDeliveryCommandHandler) recomputeOrder(ctx context.Context, uow UoW, dlv *delivery.Delivery) error {
	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, dlv.OrderID())
	if err != nil {
		return err
	}

	if err = ord.RecomputeStatus(dlv.Status().OrderStatus()); err != nil {
		return err
	}

	return orderRepo.Update(ctx, ord)
}

// recomputeDriver keeps the driver's availability in sync with their live
// deliveries: a live delivery holds the driver ON_DELIVERY (including the
// FAILED to ASSIGNED retry), while a terminal one frees the driver only once
// no other live delivery remains.
func (h TransitionDeliveryCommandHandler) recomputeDriver(ctx context.Context, uow UoW, dlv *delivery.Delivery) error {
	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, dlv.DriverID())
	if err != nil {
		return err
	}

	if dlv.Status().IsLive() {
		if err = drv.MarkOnDelivery(); err != nil {
			return err
		}
		return driverRepo.Update(ctx, drv)
	}

	others, err := uow.DeliveryRepository().CountOtherLive(ctx, dlv.DriverID(), dlv.ID())
	if err != nil {
		return err
	}
	if others > 0 {
		return nil
	}

	drv.MarkActive()
	return driverRepo.Update(ctx, drv)
}
