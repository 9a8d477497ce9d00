package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Order status is a derived cache over the state of the order's delivery:
// once a delivery exists, every status change is computed from the delivery
// lifecycle inside the same transaction that mutates the delivery. Direct
// writes outside those recomputation points are not allowed.
//
// State transitions:
//
//	NEW ──> ASSIGNED ──> IN_PROGRESS ──> COMPLETED
//	 ▲          │             │
//	 │          └──────┬──────┘
//	 │                 ▼
//	 └───────────── CANCELLED
//
// NEW is re-entered when a not-yet-delivered delivery is removed, and
// CANCELLED is left again when a failed delivery is re-dispatched.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status of a freshly created order,
	// waiting for a driver to be assigned.
	StatusNew

	// StatusAssigned indicates a delivery has been created for the order
	// and a driver is bound to it.
	StatusAssigned

	// StatusInProgress indicates the delivery has been picked up or is
	// in transit.
	StatusInProgress

	// StatusCompleted indicates the delivery succeeded. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled or its delivery
	// failed. Left again only through re-dispatch of the failed delivery.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusNew:        "NEW",
		StatusAssigned:   "ASSIGNED",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
		StatusCancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:        "NEW",
		StatusAssigned:   "ASSIGNED",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
		StatusCancelled:  "CANCELLED",
	}
}

// StatusFromString parses a wire-format status name ("NEW", "ASSIGNED", ...).
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is one of the defined order statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
// It implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further lifecycle activity
// through the normal assignment path.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
