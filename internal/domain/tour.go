package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingTenantID is returned when a tour is constructed without a tenant
	ErrMissingTenantID = errors.New("tenant id is required")
	// ErrMissingTitle is returned when a tour is constructed without a title
	ErrMissingTitle = errors.New("tour title is required")
)

// TourStatus represents the publication state of a tour
type TourStatus string

const (
	TourStatusDraft     TourStatus = "draft"
	TourStatusPublished TourStatus = "published"
	TourStatusArchived  TourStatus = "archived"
)

// Tour is a bookable product belonging to exactly one tenant. Tours are
// unique per (tenant_id, slug); the same slug may exist under different
// tenants without conflict.
type Tour struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenant_id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	DurationDays  int        `json:"duration_days"`
	PriceMinor    int64      `json:"price_minor"`
	Currency      string     `json:"currency"`
	MaxCapacity   int        `json:"max_capacity"`
	Status        TourStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewTour constructs a tour with a generated ID and timestamps
func NewTour(tenantID, title, slug string) (*Tour, error) {
	if tenantID == "" {
		return nil, ErrMissingTenantID
	}
	if title == "" {
		return nil, ErrMissingTitle
	}

	now := time.Now().UTC()
	return &Tour{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Slug:      slug,
		Title:     title,
		Currency:  "USD",
		Status:    TourStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// TourPatch carries partial updates for a tour. Nil fields are left
// untouched by an update.
type TourPatch struct {
	Title        *string     `json:"title,omitempty"`
	Description  *string     `json:"description,omitempty"`
	DurationDays *int        `json:"duration_days,omitempty"`
	PriceMinor   *int64      `json:"price_minor,omitempty"`
	Currency     *string     `json:"currency,omitempty"`
	MaxCapacity  *int        `json:"max_capacity,omitempty"`
	Status       *TourStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no changes
func (p *TourPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DurationDays == nil &&
		p.PriceMinor == nil && p.Currency == nil && p.MaxCapacity == nil && p.Status == nil
}
