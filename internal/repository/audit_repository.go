package repository

import (
	"context"

	"github.com/tourbase/tourbase/internal/domain"
)

// AuditRepository defines append-only access to the audit trail. There is
// deliberately no update or delete; entries are immutable once written.
type AuditRepository interface {
	// Insert persists one audit entry
	Insert(ctx context.Context, entry *domain.AuditLog) error
	// ListByTenant retrieves a tenant's audit entries, newest first
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*domain.AuditLog, error)
}
