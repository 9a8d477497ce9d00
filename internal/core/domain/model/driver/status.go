package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the availability state of a driver.
//
// ON_DELIVERY is a derived cache: a driver is ON_DELIVERY exactly while they
// hold at least one live delivery. The cache is recomputed inside the same
// transaction as every delivery mutation; it is never flipped by an
// independent direct write.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive marks a driver as eligible for new assignments.
	StatusActive

	// StatusOnDelivery marks a driver currently holding live deliveries.
	// On-delivery drivers remain eligible for additional load-balanced work.
	StatusOnDelivery

	// StatusInactive marks a driver as withdrawn from dispatch.
	// Inactive drivers are never selected for new assignments.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusActive:     "ACTIVE",
		StatusOnDelivery: "ON_DELIVERY",
		StatusInactive:   "INACTIVE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:     "ACTIVE",
		StatusOnDelivery: "ON_DELIVERY",
		StatusInactive:   "INACTIVE",
	}
}

// StatusFromString parses a wire-format status name ("ACTIVE", "ON_DELIVERY", "INACTIVE").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid driver status", s),
	)
}

// Validate checks if the Status value is one of the defined driver statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid driver status", s),
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
