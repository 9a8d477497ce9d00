package delivery

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

// DefaultCancellationNote is recorded on a delivery force-failed by order
// cancellation when the caller gives no reason.
const DefaultCancellationNote = "Order cancelled"

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the binding between one order and one driver, with its own
// progress status. It is the source of truth of the dispatch lifecycle.
//
// Invariants:
//   - orderID is unique across deliveries: an order has at most one delivery
//   - Created only through assignment, never directly by callers
//   - Status advances only through the transition table
//   - pickupTime is stamped once, on the first entry into PICKED_UP
//   - deliveryTime is stamped fresh on every entry into DELIVERED
type Delivery struct {
	id           kernel.UUID
	orderID      kernel.UUID
	driverID     kernel.UUID
	status       Status
	notes        string
	pickupTime   *time.Time
	deliveryTime *time.Time
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a new Delivery in ASSIGNED status binding orderID to
// driverID. Only the assignment workflow calls this.
func NewDelivery(id, orderID, driverID kernel.UUID, notes string, now time.Time) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:        id,
		orderID:   orderID,
		driverID:  driverID,
		status:    StatusAssigned,
		notes:     notes,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id, orderID, driverID kernel.UUID,
	status Status,
	notes string,
	pickupTime, deliveryTime *time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(id, orderID, driverID, notes, createdAt)
	if err != nil {
		return nil, err
	}
	d.status = status
	d.pickupTime = pickupTime
	d.deliveryTime = deliveryTime
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the bound order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the identifier of the bound driver.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// Status returns the delivery's progress status.
func (d *Delivery) Status() Status {
	return d.status
}

// Notes returns the free-form notes attached to the delivery.
func (d *Delivery) Notes() string {
	return d.notes
}

// PickupTime returns when the parcel was first picked up, or nil.
func (d *Delivery) PickupTime() *time.Time {
	return d.pickupTime
}

// DeliveryTime returns when the parcel was delivered, or nil.
func (d *Delivery) DeliveryTime() *time.Time {
	return d.deliveryTime
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// TransitionTo advances the delivery to target through the transition table
// and applies the coupled effects:
//   - pickupTime is stamped with now on the first entry into PICKED_UP and
//     never overwritten afterwards
//   - deliveryTime is stamped with now on entry into DELIVERED
//   - non-empty notes overwrite the stored notes; empty notes preserve them
//
// A transition not present in the table fails with an InvalidTransition error
// and leaves the delivery unchanged.
func (d *Delivery) TransitionTo(target Status, notes string, now time.Time) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = newStatus
	d.applyNotes(notes)

	switch target {
	case StatusPickedUp:
		if d.pickupTime == nil {
			t := now
			d.pickupTime = &t
		}
	case StatusDelivered:
		t := now
		d.deliveryTime = &t
	}

	return nil
}

// ForceFail moves the delivery to FAILED regardless of the transition table.
// This is the order-cancellation path: a cancelled order takes its delivery
// down with it even from states the table would not allow. When notes is
// empty, DefaultCancellationNote is recorded.
func (d *Delivery) ForceFail(notes string) {
	d.status = StatusFailed
	if notes == "" {
		notes = DefaultCancellationNote
	}
	d.applyNotes(notes)
}

func (d *Delivery) applyNotes(notes string) {
	if notes != "" {
		d.notes = notes
	}
}
