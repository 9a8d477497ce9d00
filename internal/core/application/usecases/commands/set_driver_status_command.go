package commands

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetDriverStatusCommandIsNotConstructed = errors.New(
	"SetDriverStatusCommand must be created via NewSetDriverStatusCommand constructor",
)

// SetDriverStatusCommand requests an administrative driver status override,
// typically toggling a driver between ACTIVE and INACTIVE.
type SetDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	status   driver.Status

	guard guard.ConstructorGuard
}

// NewSetDriverStatusCommand creates a command to set the driver's status.
func NewSetDriverStatusCommand(driverID kernel.UUID, status driver.Status) (SetDriverStatusCommand, error) {
	if err := driverID.Validate(); err != nil {
		return SetDriverStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return SetDriverStatusCommand{}, err
	}

	return SetDriverStatusCommand{
		driverID: driverID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverStatusCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c SetDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the status to set.
func (c SetDriverStatusCommand) Status() driver.Status {
	return c.status
}
