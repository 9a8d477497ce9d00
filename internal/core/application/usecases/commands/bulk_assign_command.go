package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrBulkAssignCommandIsNotConstructed = errors.New(
		"BulkAssignCommand must be created via NewBulkAssignCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// BulkAssignCommand requests automatic assignment for a batch of orders.
// Each order is processed independently; one failure never aborts the batch.
type BulkAssignCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewBulkAssignCommand creates a command to auto-assign the given orders.
// Requires a non-empty list of valid order identifiers.
func NewBulkAssignCommand(orderIDs []kernel.UUID) (BulkAssignCommand, error) {
	if len(orderIDs) == 0 {
		return BulkAssignCommand{}, ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return BulkAssignCommand{}, err
		}
	}

	return BulkAssignCommand{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkAssignCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to assign, in request order.
func (c BulkAssignCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
