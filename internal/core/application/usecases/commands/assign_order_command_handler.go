package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/auditlog"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// AssignmentResult carries the three aggregates touched by a successful
// assignment, all in their post-commit state.
type AssignmentResult struct {
	Order    *order.Order
	Delivery *delivery.Delivery
	Driver   *driver.Driver
}

// AssignOrderCommandHandler orchestrates driver assignment: it binds an order
// to a driver by creating a delivery, flips both statuses, and records an
// audit entry, all inside one transaction.
//
// Failure modes, in checking order:
//   - order not found: ObjectNotFound
//   - order already has a delivery: Conflict (the check and the unique
//     order binding in storage together cover concurrent assignment)
//   - order not in NEW status: InvalidState
//   - preferred driver missing or not ACTIVE: InvalidState
//   - no available driver: services.ErrNoDriverAvailable
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
	recorder   DispatchRecorder
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
func NewAssignOrderCommandHandler(uowFactory UoWFactory, recorder DispatchRecorder) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
		recorder:   recorder,
	}
}

// Handle processes the assignment command and returns the updated order, the
// new delivery and the assigned driver.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) (AssignmentResult, error) {
	result, method, err := h.assign(ctx, command)
	if err != nil {
		h.recorder.RecordAssignmentFailure()
		return AssignmentResult{}, err
	}

	h.recorder.RecordAssignment(method)
	return result, nil
}

func (h AssignOrderCommandHandler) assign(
	ctx context.Context,
	command AssignOrderCommand,
) (AssignmentResult, string, error) {
	if err := command.Validate(); err != nil {
		return AssignmentResult{}, "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	deliveryRepo := uow.DeliveryRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return AssignmentResult{}, "", err
	}

	// The duplicate-assignment check comes before the status check so a
	// second assign attempt consistently reports Conflict, not a status
	// complaint about its own earlier success.
	if _, err = deliveryRepo.GetByOrder(ctx, ord.ID()); err == nil {
		return AssignmentResult{}, "", errs.NewConflictError(
			"order", ord.ID().String(), "order already has a delivery",
		)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, "", err
	}

	drv, method, err := h.selectDriver(ctx, uow, ord, command.PreferredDriverID())
	if err != nil {
		return AssignmentResult{}, "", err
	}

	if err = ord.Assign(); err != nil {
		return AssignmentResult{}, "", err
	}
	if err = drv.MarkOnDelivery(); err != nil {
		return AssignmentResult{}, "", err
	}

	now := time.Now().UTC()
	dlv, err := delivery.NewDelivery(kernel.NewUUID(), ord.ID(), drv.ID(), command.Notes(), now)
	if err != nil {
		return AssignmentResult{}, "", err
	}

	if err = deliveryRepo.Add(ctx, dlv); err != nil {
		return AssignmentResult{}, "", err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return AssignmentResult{}, "", err
	}
	if err = driverRepo.Update(ctx, drv); err != nil {
		return AssignmentResult{}, "", err
	}

	entry, err := auditlog.NewEntry(
		auditlog.ActionAssignOrder, auditlog.EntityTypeOrder, ord.ID(),
		map[string]any{
			"deliveryId": dlv.ID().String(),
			"driverId":   drv.ID().String(),
			"method":     method,
		},
		now,
	)
	if err != nil {
		return AssignmentResult{}, "", err
	}
	if err = uow.LogRepository().Append(ctx, entry); err != nil {
		return AssignmentResult{}, "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, "", err
	}

	return AssignmentResult{Order: ord, Delivery: dlv, Driver: drv}, method, nil
}

// selectDriver resolves which driver takes the order. The preferred path
// validates the caller's choice; the automatic path queries the availability
// index scoped to the order's district first, widening to the whole pool when
// the district has no available driver.
func (h AssignOrderCommandHandler) selectDriver(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	preferredID *kernel.UUID,
) (*driver.Driver, string, error) {
	driverRepo := uow.DriverRepository()

	if preferredID != nil {
		preferred, err := driverRepo.Get(ctx, *preferredID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, "", errs.NewInvalidStateError(
				"driver", preferredID.String(), "",
				"preferred driver is not available",
			)
		}
		if err != nil {
			return nil, "", err
		}

		drv, err := h.dispatcher.DispatchPreferred(ord, preferred)
		if err != nil {
			return nil, "", err
		}
		return drv, MethodPreferred, nil
	}

	candidates, err := driverRepo.GetAvailable(ctx, ord.DistrictID())
	if err != nil {
		return nil, "", err
	}
	if len(candidates) == 0 && ord.DistrictID() != nil {
		candidates, err = driverRepo.GetAvailable(ctx, nil)
		if err != nil {
			return nil, "", err
		}
	}

	drv, err := h.dispatcher.Dispatch(ord, candidates)
	if err != nil {
		return nil, "", err
	}
	return drv, MethodAuto, nil
}
