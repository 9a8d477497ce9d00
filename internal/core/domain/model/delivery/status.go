package delivery

import (
	"fmt"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// Status represents the progress state of a delivery. The delivery is the
// source of truth for the whole dispatch lifecycle: order and driver statuses
// are derived from it.
//
// State transitions:
//
//	ASSIGNED ───> PICKED_UP ───> IN_TRANSIT ───> DELIVERED
//	    ▲ │           │              │
//	    │ └───────────┴───────┬──────┘
//	    │                     ▼
//	    └───────────────── FAILED
//
// DELIVERED is terminal. FAILED can be re-dispatched back to ASSIGNED.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAssigned is the initial status of a delivery bound to a driver.
	StatusAssigned

	// StatusPickedUp indicates the driver collected the parcel.
	StatusPickedUp

	// StatusInTransit indicates the parcel is on its way.
	StatusInTransit

	// StatusDelivered indicates successful completion. Terminal.
	StatusDelivered

	// StatusFailed indicates the delivery did not complete.
	// Failed deliveries can be dispatched again.
	StatusFailed
)

// transitionTable defines the allowed targets for each source status.
// Any pair not present here is an invalid transition.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusAssigned:  {StatusPickedUp, StatusFailed},
		StatusPickedUp:  {StatusInTransit, StatusFailed},
		StatusInTransit: {StatusDelivered, StatusFailed},
		StatusDelivered: {},
		StatusFailed:    {StatusAssigned},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusAssigned:  "ASSIGNED",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusFailed:    "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAssigned:  "ASSIGNED",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusFailed:    "FAILED",
	}
}

// LiveStatuses returns the statuses that count as live work for a driver:
// ASSIGNED, PICKED_UP and IN_TRANSIT. Availability ordering and the
// driver free-up rule are both defined over this set.
func LiveStatuses() []Status {
	return []Status{StatusAssigned, StatusPickedUp, StatusInTransit}
}

// StatusFromString parses a wire-format status name ("ASSIGNED", "PICKED_UP", ...).
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the Status value is one of the defined delivery statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether target is an allowed transition from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition from s to target against the
// transition table and returns the new status, or an InvalidTransition error
// naming source and attempted target.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// IsLive reports whether the delivery still occupies its driver.
func (s Status) IsLive() bool {
	return s == StatusAssigned || s == StatusPickedUp || s == StatusInTransit
}

// IsDeletable reports whether a delivery in this status may be removed.
// Deliveries that are underway (PICKED_UP, IN_TRANSIT) are protected.
func (s Status) IsDeletable() bool {
	return s == StatusAssigned || s == StatusDelivered || s == StatusFailed
}

// OrderStatus returns the order status derived from the delivery status.
// PICKED_UP and IN_TRANSIT map to IN_PROGRESS, DELIVERED to COMPLETED,
// FAILED to CANCELLED; everything else (the re-dispatch back to ASSIGNED)
// maps to ASSIGNED.
func (s Status) OrderStatus() order.Status {
	switch s {
	case StatusPickedUp, StatusInTransit:
		return order.StatusInProgress
	case StatusDelivered:
		return order.StatusCompleted
	case StatusFailed:
		return order.StatusCancelled
	default:
		return order.StatusAssigned
	}
}
