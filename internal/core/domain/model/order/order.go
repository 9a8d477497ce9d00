package order

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderNumberIsRequired is returned when creating an order without a number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrAddressIsRequired is returned when creating an order without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Order represents a customer delivery request. It is the aggregate root for
// the order lifecycle from creation through assignment to completion.
//
// Order invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Has at most one delivery; the binding is created only through assignment
//   - Status is a derived cache over the delivery lifecycle, recomputed only
//     inside the transaction that mutates the delivery
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	orderNumber string
	address     string
	priority    Priority
	status      Status
	warehouseID kernel.UUID
	districtID  *kernel.UUID
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in NEW status with validation. This is the only
// way to create an order for a fresh delivery request.
//
// districtID is optional: orders whose address could not be matched to a
// district are still dispatchable through the unscoped driver pool.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	address string,
	priority Priority,
	warehouseID kernel.UUID,
	districtID *kernel.UUID,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, ErrOrderNumberIsRequired
	}
	if address == "" {
		return nil, ErrAddressIsRequired
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:          id,
		orderNumber: orderNumber,
		address:     address,
		priority:    priority,
		status:      StatusNew,
		warehouseID: warehouseID,
		districtID:  districtID,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored status is
// validated but otherwise trusted: lifecycle rules were enforced when the
// state was written.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	address string,
	priority Priority,
	status Status,
	warehouseID kernel.UUID,
	districtID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, orderNumber, address, priority, warehouseID, districtID, createdAt)
	if err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Priority returns the order's priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// WarehouseID returns the identifier of the warehouse the order ships from.
func (o *Order) WarehouseID() kernel.UUID {
	return o.warehouseID
}

// DistrictID returns the identifier of the order's district, or nil when the
// order is not scoped to a district.
func (o *Order) DistrictID() *kernel.UUID {
	return o.districtID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign moves the order to ASSIGNED. Only NEW orders can be assigned;
// anything else fails with an InvalidState error carrying the current status.
func (o *Order) Assign() error {
	if o.status != StatusNew {
		return errs.NewInvalidStateError(
			"order", o.id.String(), o.status.String(),
			"order is already assigned or processed",
		)
	}
	o.status = StatusAssigned
	return nil
}

// Cancel moves the order to CANCELLED. Completed orders cannot be cancelled.
func (o *Order) Cancel() error {
	if o.status == StatusCompleted {
		return errs.NewInvalidStateError(
			"order", o.id.String(), o.status.String(),
			"cannot cancel completed order",
		)
	}
	o.status = StatusCancelled
	return nil
}

// Reopen returns the order to NEW so it can be assigned again. Used when a
// not-yet-delivered delivery is removed.
func (o *Order) Reopen() {
	o.status = StatusNew
}

// RecomputeStatus overwrites the derived status cache with the value computed
// from the order's delivery state. It intentionally performs no transition
// check beyond enum validity: the delivery state machine already validated the
// underlying transition, and re-dispatch of a failed delivery legitimately
// moves a CANCELLED order back to ASSIGNED.
func (o *Order) RecomputeStatus(derived Status) error {
	if err := derived.Validate(); err != nil {
		return err
	}
	o.status = derived
	return nil
}
