package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand requests the assignment of a driver to an order. When a
// preferred driver is given it bypasses load balancing; otherwise the
// least-loaded available driver is selected, preferring the order's district.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, nil, "leave at reception")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	preferredDriverID *kernel.UUID
	notes             string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign a driver to the given
// order. preferredDriverID is optional; notes may be empty.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	preferredDriverID *kernel.UUID,
	notes string,
) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}
	if preferredDriverID != nil {
		if err := preferredDriverID.Validate(); err != nil {
			return AssignOrderCommand{}, err
		}
	}

	return AssignOrderCommand{
		orderID:           orderID,
		preferredDriverID: preferredDriverID,
		notes:             notes,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PreferredDriverID returns the caller-chosen driver, or nil for automatic
// selection.
func (c AssignOrderCommand) PreferredDriverID() *kernel.UUID {
	return c.preferredDriverID
}

// Notes returns the free-form notes to attach to the new delivery.
func (c AssignOrderCommand) Notes() string {
	return c.notes
}
