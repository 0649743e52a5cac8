package repository

import (
	"context"
	"errors"

	"github.com/tourbase/tourbase/internal/domain"
)

// ErrTourNotFound is returned by Update when no row matched both the tour
// ID and the tenant ID. An update aimed at another tenant's tour fails with
// this error rather than touching the row.
var ErrTourNotFound = errors.New("tour not found")

// TourRepository defines tenant-scoped access to tours. Every read and
// write condition includes the tenant ID; no cross-tenant visibility is
// possible through this interface.
type TourRepository interface {
	// ListByTenant retrieves a tenant's tours, newest first
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Tour, error)
	// GetBySlug retrieves a tour by (tenantID, slug); absent = (nil, nil)
	GetBySlug(ctx context.Context, tenantID, slug string) (*domain.Tour, error)
	// GetByID retrieves a tour by (tenantID, tourID); absent = (nil, nil)
	GetByID(ctx context.Context, tenantID, tourID string) (*domain.Tour, error)
	// Create inserts a new tour under its tenant
	Create(ctx context.Context, tour *domain.Tour) error
	// Update applies a partial patch matched on (tourID, tenantID);
	// returns ErrTourNotFound when no row matched
	Update(ctx context.Context, tenantID, tourID string, patch *domain.TourPatch) (*domain.Tour, error)
}
