package service

import (
	"context"
	"errors"

	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/internal/repository"
)

// ErrTenantNotFound is returned when no tenant matches a lookup
var ErrTenantNotFound = errors.New("tenant not found")

// TenantService resolves tenants for request routing. Tenants are
// provisioned out of band; this service only reads them.
type TenantService interface {
	// GetBySlug resolves a tenant by its slug
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	// GetByDomain resolves a tenant by its custom domain
	GetByDomain(ctx context.Context, domain string) (*domain.Tenant, error)
}

type tenantService struct {
	repo repository.TenantRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(repo repository.TenantRepository) TenantService {
	return &tenantService{repo: repo}
}

// GetBySlug resolves a tenant by slug
func (s *tenantService) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	tenant, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	return tenant, nil
}

// GetByDomain resolves a tenant by custom domain
func (s *tenantService) GetByDomain(ctx context.Context, dom string) (*domain.Tenant, error) {
	tenant, err := s.repo.GetByDomain(ctx, dom)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	return tenant, nil
}
