package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
)

// CreateDriverCommand represents a request to register a new driver.
// New drivers start ACTIVE and immediately join the availability index.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID   kernel.UUID
	name       string
	phone      string
	districtID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// districtID is optional; a driver without one only serves the unscoped pool.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name, phone string,
	districtID *kernel.UUID,
) (CreateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return CreateDriverCommand{}, err
	}
	if name == "" {
		return CreateDriverCommand{}, ErrNameIsRequired
	}
	if phone == "" {
		return CreateDriverCommand{}, ErrPhoneIsRequired
	}
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return CreateDriverCommand{}, err
		}
	}

	return CreateDriverCommand{
		driverID:   driverID,
		name:       name,
		phone:      phone,
		districtID: districtID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact phone.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// DistrictID returns the driver's home district, or nil.
func (c CreateDriverCommand) DistrictID() *kernel.UUID {
	return c.districtID
}
