package repository

import (
	"context"

	"github.com/tourbase/tourbase/internal/domain"
)

// TenantRepository defines read access to tenants. Absent lookups return
// (nil, nil); tenants are provisioned outside this service.
type TenantRepository interface {
	// GetBySlug retrieves a tenant by its unique slug
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	// GetByDomain retrieves a tenant by its custom domain
	GetByDomain(ctx context.Context, domain string) (*domain.Tenant, error)
}
