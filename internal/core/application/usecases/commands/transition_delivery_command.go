package commands

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
	"TransitionDeliveryCommand must be created via NewTransitionDeliveryCommand constructor",
)

// TransitionDeliveryCommand requests advancing a delivery to a target status
// through the delivery state machine.
type TransitionDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	notes      string

	guard guard.ConstructorGuard
}

// NewTransitionDeliveryCommand creates a command to advance the given
// delivery to target. notes may be empty to preserve the stored notes.
// Whether the transition itself is legal is decided by the state machine at
// handling time, not here.
func NewTransitionDeliveryCommand(
	deliveryID kernel.UUID,
	target delivery.Status,
	notes string,
) (TransitionDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return TransitionDeliveryCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return TransitionDeliveryCommand{}, err
	}

	return TransitionDeliveryCommand{
		deliveryID: deliveryID,
		target:     target,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to advance.
func (c TransitionDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the status to advance to.
func (c TransitionDeliveryCommand) Target() delivery.Status {
	return c.target
}

// Notes returns the notes to attach, empty to keep the current ones.
func (c TransitionDeliveryCommand) Notes() string {
	return c.notes
}
