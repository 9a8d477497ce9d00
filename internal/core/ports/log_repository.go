package ports

import (
	"context"

	"logistics/internal/core/domain/model/auditlog"
)

// LogRepository defines the persistence contract for the append-only audit
// trail. Entries are only ever appended, inside the same transaction as the
// state change they record.
type LogRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry *auditlog.Entry) error
}
