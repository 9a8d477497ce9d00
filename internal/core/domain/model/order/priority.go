package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority represents the urgency of an order. High and urgent orders trigger
// an immediate, best-effort assignment attempt at creation time.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "UNKNOWN",
		PriorityLow:     "LOW",
		PriorityNormal:  "NORMAL",
		PriorityHigh:    "HIGH",
		PriorityUrgent:  "URGENT",
	}
}

func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityLow:    "LOW",
		PriorityNormal: "NORMAL",
		PriorityHigh:   "HIGH",
		PriorityUrgent: "URGENT",
	}
}

// PriorityFromString parses a wire-format priority name ("LOW", "URGENT", ...).
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getValidPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid order priority", s),
	)
}

// Validate checks if the Priority value is one of the defined priorities.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%d is not a valid order priority", p),
		)
	}
	return nil
}

// String returns the wire-format name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresAutoAssign reports whether an order of this priority should be
// dispatched immediately at creation time.
func (p Priority) RequiresAutoAssign() bool {
	return p == PriorityHigh || p == PriorityUrgent
}
