package dto

import (
	"regexp"
	"strings"

	"github.com/tourbase/tourbase/internal/domain"
)

// CreateTourRequest is the dashboard payload for creating a tour
type CreateTourRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=200"`
	Slug         string `json:"slug" binding:"omitempty,max=200"`
	Description  string `json:"description" binding:"omitempty,max=10000"`
	DurationDays int    `json:"duration_days" binding:"omitempty,min=1,max=365"`
	PriceMinor   int64  `json:"price_minor" binding:"omitempty,min=0"`
	Currency     string `json:"currency" binding:"omitempty,len=3"`
	MaxCapacity  int    `json:"max_capacity" binding:"omitempty,min=1"`
}

// UpdateTourRequest is the dashboard payload for partially updating a tour.
// Nil fields are left untouched.
type UpdateTourRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=10000"`
	DurationDays *int    `json:"duration_days" binding:"omitempty,min=1,max=365"`
	PriceMinor   *int64  `json:"price_minor" binding:"omitempty,min=0"`
	Currency     *string `json:"currency" binding:"omitempty,len=3"`
	MaxCapacity  *int    `json:"max_capacity" binding:"omitempty,min=1"`
	Status       *string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// ToPatch converts the request into a domain patch
func (r *UpdateTourRequest) ToPatch() *domain.TourPatch {
	patch := &domain.TourPatch{
		Title:        r.Title,
		Description:  r.Description,
		DurationDays: r.DurationDays,
		PriceMinor:   r.PriceMinor,
		Currency:     r.Currency,
		MaxCapacity:  r.MaxCapacity,
	}
	if r.Status != nil {
		status := domain.TourStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashRuns     = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL slug from a title: lowercased, non-alphanumerics
// collapsed to single dashes, trimmed.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
