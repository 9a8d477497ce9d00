// Package auditlog implements the append-only audit trail of the dispatch
// core. Entries are written inside the same transaction as the state change
// they record and are never mutated or deleted.
package auditlog

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Actions recorded by the dispatch workflows.
const (
	ActionAssignOrder          = "ASSIGN_ORDER"
	ActionUpdateDeliveryStatus = "UPDATE_DELIVERY_STATUS"
	ActionCancelOrder          = "CANCEL_ORDER"
)

// Entity types referenced by audit entries.
const (
	EntityTypeOrder    = "order"
	EntityTypeDelivery = "delivery"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through NewEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// ErrActionIsRequired is returned when creating an entry without an action name.
var ErrActionIsRequired = errs.NewValueIsRequiredError("action")

// Entry is a single append-only audit record: an action name, the entity it
// concerns, and an arbitrary structured detail payload.
type Entry struct {
	id         kernel.UUID
	action     string
	entityType string
	entityID   kernel.UUID
	details    map[string]any
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates an audit entry for the given action and entity.
// The details map is stored as given; callers must not mutate it afterwards.
func NewEntry(action, entityType string, entityID kernel.UUID, details map[string]any, now time.Time) (*Entry, error) {
	if action == "" {
		return nil, ErrActionIsRequired
	}
	if entityType == "" {
		return nil, errs.NewValueIsRequiredError("entityType")
	}
	if err := entityID.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:         kernel.NewUUID(),
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    details,
		createdAt:  now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(id kernel.UUID, action, entityType string, entityID kernel.UUID, details map[string]any, createdAt time.Time) (*Entry, error) {
	e, err := NewEntry(action, entityType, entityID, details, createdAt)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Action returns the recorded action name.
func (e *Entry) Action() string {
	return e.action
}

// EntityType returns the type of the entity the entry concerns.
func (e *Entry) EntityType() string {
	return e.entityType
}

// EntityID returns the identifier of the entity the entry concerns.
func (e *Entry) EntityID() kernel.UUID {
	return e.entityID
}

// Details returns the structured detail payload.
func (e *Entry) Details() map[string]any {
	return e.details
}

// CreatedAt returns when the entry was recorded.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
