package driver

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Driver represents a delivery agent. It is an aggregate root managing the
// driver's identity, district scoping, and availability.
//
// Business rules:
//   - Status ON_DELIVERY is held exactly while the driver has at least one
//     live delivery; the orchestration layer recomputes it after every
//     delivery mutation
//   - An INACTIVE driver is never eligible for new assignments
//   - A driver cannot be deleted while holding a live delivery (enforced by
//     the command layer against the delivery repository)
type Driver struct {
	id         kernel.UUID
	name       string
	phone      string
	status     Status
	districtID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver in ACTIVE status with validation.
// districtID is optional: drivers without one only serve the unscoped pool.
func NewDriver(id kernel.UUID, name, phone string, districtID *kernel.UUID) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if phone == "" {
		return nil, ErrPhoneIsRequired
	}
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Driver{
		id:         id,
		name:       name,
		phone:      phone,
		status:     StatusActive,
		districtID: districtID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(id kernel.UUID, name, phone string, status Status, districtID *kernel.UUID) (*Driver, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDriver(id, name, phone, districtID)
	if err != nil {
		return nil, err
	}
	d.status = status
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// DistrictID returns the driver's home district, or nil when unscoped.
func (d *Driver) DistrictID() *kernel.UUID {
	return d.districtID
}

// IsAvailable reports whether the driver is eligible for a new assignment
// through the preferred-driver path, which requires exactly ACTIVE status.
func (d *Driver) IsAvailable() bool {
	return d.status == StatusActive
}

// MarkOnDelivery flags the driver as holding at least one live delivery.
// An inactive driver cannot take deliveries.
func (d *Driver) MarkOnDelivery() error {
	if d.status == StatusInactive {
		return errs.NewInvalidStateError(
			"driver", d.id.String(), d.status.String(),
			"driver is not available",
		)
	}
	d.status = StatusOnDelivery
	return nil
}

// MarkActive returns the driver to the assignable pool. Called when the
// driver's last live delivery completes, fails, or is removed.
func (d *Driver) MarkActive() {
	d.status = StatusActive
}

// SetStatus applies an administrative status override.
// The command layer guards deactivation against live deliveries.
func (d *Driver) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
