// Package services contains domain services coordinating behavior across
// aggregates: logic that belongs to the domain but not to any single entity.
package services

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// ErrNoDriverAvailable is returned when no candidate driver can take an order.
var ErrNoDriverAvailable = errors.New("no available drivers found")

// Dispatcher is the domain service that selects a driver for an order.
//
// Candidates are expected in availability order: ACTIVE drivers sorted by
// ascending live-delivery count, ties broken by id. The dispatcher picks the
// first eligible candidate, so the least-loaded driver always wins. This is
// the load-balancing heuristic of the dispatch core; it performs no route
// optimization.
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch picks the first available driver from candidates for the given
// order. The order must be assignable (NEW); candidates that are not ACTIVE
// are skipped. Returns ErrNoDriverAvailable when no candidate qualifies.
//
// Dispatch only selects: binding the order, creating the delivery, and
// flipping statuses is performed by the calling workflow inside its
// transaction.
func (Dispatcher) Dispatch(ord *order.Order, candidates []*driver.Driver) (*driver.Driver, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if ord.Status() != order.StatusNew {
		return nil, errs.NewInvalidStateError(
			"order", ord.ID().String(), ord.Status().String(),
			"order is already assigned or processed",
		)
	}

	for _, d := range candidates {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if d.IsAvailable() {
			return d, nil
		}
	}

	return nil, ErrNoDriverAvailable
}

// DispatchPreferred validates that the caller-chosen driver can take the
// order, bypassing load balancing. The driver must be exactly ACTIVE; an
// on-delivery or inactive driver fails with an InvalidState error.
func (Dispatcher) DispatchPreferred(ord *order.Order, preferred *driver.Driver) (*driver.Driver, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if ord.Status() != order.StatusNew {
		return nil, errs.NewInvalidStateError(
			"order", ord.ID().String(), ord.Status().String(),
			"order is already assigned or processed",
		)
	}
	if err := preferred.Validate(); err != nil {
		return nil, err
	}
	if !preferred.IsAvailable() {
		return nil, errs.NewInvalidStateError(
			"driver", preferred.ID().String(), preferred.Status().String(),
			"preferred driver is not available",
		)
	}

	return preferred, nil
}
