package logrepo

import (
	"context"

	"logistics/internal/core/domain/model/auditlog"

	"gorm.io/gorm"
)

// GormLogRepository implements ports.LogRepository using GORM.
type GormLogRepository struct {
	db *gorm.DB
}

// NewGormLogRepository creates a new GORM audit log repository.
func NewGormLogRepository(db *gorm.DB) *GormLogRepository {
	return &GormLogRepository{db: db}
}

// Append persists a new audit entry.
func (r *GormLogRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
