// Package logrepo implements audit log persistence over GORM. The table is
// append-only: entries are written inside the transaction of the operation
// they record and never updated or deleted.
package logrepo

import (
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/auditlog"

	"github.com/google/uuid"
)

// EntryDTO is the database representation of an audit entry. Details are
// stored as jsonb so the payload shape can vary per action.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"index"`
	EntityType string    `gorm:"index"`
	EntityID   uuid.UUID `gorm:"type:uuid;index"`
	Details    []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "audit_logs".
func (EntryDTO) TableName() string {
	return "audit_logs"
}

func fromDomain(entry *auditlog.Entry) (EntryDTO, error) {
	details, err := json.Marshal(entry.Details())
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		Action:     entry.Action(),
		EntityType: entry.EntityType(),
		EntityID:   entry.EntityID().Bytes(),
		Details:    details,
		CreatedAt:  entry.CreatedAt(),
	}, nil
}
