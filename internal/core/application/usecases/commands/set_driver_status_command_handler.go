package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/errs"
)

// SetDriverStatusCommandHandler applies administrative driver status
// overrides. Deactivation is refused while the driver holds live deliveries,
// so an INACTIVE driver never has work in flight.
type SetDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverStatusCommandHandler creates a handler for driver status
// overrides.
func NewSetDriverStatusCommandHandler(uowFactory DriverUoWFactory) SetDriverStatusCommandHandler {
	return SetDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override and returns the updated driver.
func (h SetDriverStatusCommandHandler) Handle(ctx context.Context, command SetDriverStatusCommand) (*driver.Driver, error) {
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

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	if command.Status() == driver.StatusInactive {
		live, err := uow.DeliveryRepository().CountLiveByDriver(ctx, drv.ID())
		if err != nil {
			return nil, err
		}
		if live > 0 {
			return nil, errs.NewConflictError(
				"driver", drv.ID().String(), "driver has live deliveries",
			)
		}
	}

	if err = drv.SetStatus(command.Status()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return drv, nil
}
