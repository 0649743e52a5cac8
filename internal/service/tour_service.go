package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/internal/dto"
	"github.com/tourbase/tourbase/internal/events"
	"github.com/tourbase/tourbase/internal/realtime"
	"github.com/tourbase/tourbase/internal/repository"
	"github.com/tourbase/tourbase/pkg/logger"
	"github.com/tourbase/tourbase/pkg/telemetry"
	"go.uber.org/zap"
)

var (
	ErrTourNotFound  = errors.New("tour not found")
	ErrDuplicateSlug = errors.New("a tour with this slug already exists for this tenant")
	ErrEmptyPatch    = errors.New("update carries no changes")
)

// Actor identifies who performed a dashboard mutation, for the audit trail
type Actor struct {
	UserID    *string
	IPAddress string
}

// TourService provides tenant-scoped tour operations. Every operation
// carries the tenant ID through to the repository's match conditions, so a
// caller holding another tenant's tour ID gets not-found, never the row.
type TourService interface {
	// List retrieves a tenant's tours, newest first
	List(ctx context.Context, tenantID string) ([]*domain.Tour, error)
	// GetBySlug retrieves a tour by (tenantID, slug)
	GetBySlug(ctx context.Context, tenantID, slug string) (*domain.Tour, error)
	// Create creates a tour under the tenant and audits the action
	Create(ctx context.Context, tenantID string, req *dto.CreateTourRequest, actor Actor) (*domain.Tour, error)
	// Update partially updates a tour matched on (tenantID, tourID) and audits the action
	Update(ctx context.Context, tenantID, tourID string, req *dto.UpdateTourRequest, actor Actor) (*domain.Tour, error)
}

type tourService struct {
	tours    repository.TourRepository
	audit    AuditService
	events   events.Publisher
	notifier *realtime.Notifier
	log      *logger.Logger
}

// NewTourService creates a new TourService
func NewTourService(
	tours repository.TourRepository,
	audit AuditService,
	publisher events.Publisher,
	notifier *realtime.Notifier,
	log *logger.Logger,
) TourService {
	return &tourService{
		tours:    tours,
		audit:    audit,
		events:   publisher,
		notifier: notifier,
		log:      log.Named("tours"),
	}
}

// List retrieves a tenant's tours, newest first
func (s *tourService) List(ctx context.Context, tenantID string) ([]*domain.Tour, error) {
	return s.tours.ListByTenant(ctx, tenantID)
}

// GetBySlug retrieves a tour by its compound key
func (s *tourService) GetBySlug(ctx context.Context, tenantID, slug string) (*domain.Tour, error) {
	tour, err := s.tours.GetBySlug(ctx, tenantID, slug)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrTourNotFound
	}
	return tour, nil
}

// Create creates a tour under the tenant and audits the action
func (s *tourService) Create(ctx context.Context, tenantID string, req *dto.CreateTourRequest, actor Actor) (*domain.Tour, error) {
	ctx, span := telemetry.StartSpan(ctx, "TourService.Create")
	defer span.End()

	slug := req.Slug
	if slug == "" {
		slug = dto.Slugify(req.Title)
	}

	existing, err := s.tours.GetBySlug(ctx, tenantID, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSlug
	}

	tour, err := domain.NewTour(tenantID, req.Title, slug)
	if err != nil {
		return nil, err
	}
	tour.Description = req.Description
	tour.DurationDays = req.DurationDays
	tour.PriceMinor = req.PriceMinor
	if req.Currency != "" {
		tour.Currency = req.Currency
	}
	tour.MaxCapacity = req.MaxCapacity

	if err := s.tours.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	// Audit completeness is a compliance property; a failed write fails
	// the operation even though the tour row already exists.
	if err := s.audit.LogAction(ctx, ActionInput{
		TenantID:   tenantID,
		UserID:     actor.UserID,
		Action:     domain.AuditActionCreate,
		EntityType: "tour",
		EntityID:   tour.ID,
		After:      snapshot(tour),
		IPAddress:  actor.IPAddress,
	}); err != nil {
		return nil, err
	}

	s.emit(ctx, "tour.created", tour)
	return tour, nil
}

// Update partially updates a tour. The repository matches on both the tour
// ID and the tenant ID; an ID belonging to another tenant yields
// ErrTourNotFound and the row is left untouched.
func (s *tourService) Update(ctx context.Context, tenantID, tourID string, req *dto.UpdateTourRequest, actor Actor) (*domain.Tour, error) {
	ctx, span := telemetry.StartSpan(ctx, "TourService.Update")
	defer span.End()

	patch := req.ToPatch()
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	before, err := s.tours.GetByID(ctx, tenantID, tourID)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, ErrTourNotFound
	}

	updated, err := s.tours.Update(ctx, tenantID, tourID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}

	if err := s.audit.LogAction(ctx, ActionInput{
		TenantID:   tenantID,
		UserID:     actor.UserID,
		Action:     domain.AuditActionUpdate,
		EntityType: "tour",
		EntityID:   tourID,
		Before:     snapshot(before),
		After:      snapshot(updated),
		IPAddress:  actor.IPAddress,
	}); err != nil {
		return nil, err
	}

	s.emit(ctx, "tour.updated", updated)
	return updated, nil
}

// emit publishes the domain event and realtime notification. Both are
// best-effort; failures are logged, not returned.
func (s *tourService) emit(ctx context.Context, eventType string, tour *domain.Tour) {
	err := s.events.Publish(ctx, events.TopicTours, events.Event{
		Type:     eventType,
		TenantID: tour.TenantID,
		EntityID: tour.ID,
		Payload:  tour,
	})
	if err != nil {
		s.log.Warn("failed to publish domain event",
			zap.String("event", eventType), zap.Error(err))
	}

	if err := s.notifier.NotifyTenant(ctx, tour.TenantID, eventType, tour.ID, tour); err != nil {
		s.log.Warn("failed to publish realtime notification",
			zap.String("event", eventType), zap.Error(err))
	}
}

// snapshot converts a tour to the JSON-shaped map stored in audit entries
func snapshot(tour *domain.Tour) map[string]interface{} {
	raw, err := json.Marshal(tour)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
