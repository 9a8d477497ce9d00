package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// RemoveDriverCommandHandler removes a driver from the fleet. A driver still
// holding live deliveries cannot be removed; their deliveries must first
// complete, fail, or be reassigned.
type RemoveDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRemoveDriverCommandHandler creates a handler for driver removal.
func NewRemoveDriverCommandHandler(uowFactory DriverUoWFactory) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h RemoveDriverCommandHandler) Handle(ctx context.Context, command RemoveDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	live, err := uow.DeliveryRepository().CountLiveByDriver(ctx, drv.ID())
	if err != nil {
		return err
	}
	if live > 0 {
		return errs.NewConflictError(
			"driver", drv.ID().String(), "driver has live deliveries",
		)
	}

	if err = driverRepo.Delete(ctx, drv.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
