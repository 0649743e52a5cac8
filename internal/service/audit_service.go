package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/internal/repository"
)

var (
	ErrAuditMissingTenant = errors.New("audit entry requires a tenant id")
	ErrAuditMissingAction = errors.New("audit entry requires an action")
	ErrAuditMissingEntity = errors.New("audit entry requires an entity type and id")
	ErrSnapshotTooLarge   = errors.New("audit snapshot exceeds size limit")
)

// maxSnapshotBytes bounds a single before/after snapshot. Oversized
// snapshots are rejected rather than truncated so the trail never holds a
// silently incomplete record.
const maxSnapshotBytes = 64 * 1024

// ActionInput describes one auditable action
type ActionInput struct {
	TenantID   string
	UserID     *string
	Action     domain.AuditAction
	EntityType string
	EntityID   string
	Before     map[string]interface{}
	After      map[string]interface{}
	IPAddress  string
}

// AuditService records state-changing actions. Write failures propagate to
// the caller; a dropped audit record is a compliance failure, not a
// degradation to absorb.
type AuditService interface {
	// LogAction persists one append-only audit entry
	LogAction(ctx context.Context, input ActionInput) error
	// List retrieves a tenant's audit trail, newest first
	List(ctx context.Context, tenantID string, limit, offset int) ([]*domain.AuditLog, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// LogAction persists one append-only audit entry
func (s *auditService) LogAction(ctx context.Context, input ActionInput) error {
	if input.TenantID == "" {
		return ErrAuditMissingTenant
	}
	if input.Action == "" {
		return ErrAuditMissingAction
	}
	if input.EntityType == "" || input.EntityID == "" {
		return ErrAuditMissingEntity
	}

	if err := checkSnapshotSize("before", input.Before); err != nil {
		return err
	}
	if err := checkSnapshotSize("after", input.After); err != nil {
		return err
	}

	entry := &domain.AuditLog{
		ID:         uuid.NewString(),
		TenantID:   input.TenantID,
		UserID:     input.UserID,
		Action:     input.Action,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Before:     input.Before,
		After:      input.After,
		IPAddress:  input.IPAddress,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// List retrieves a tenant's audit trail, newest first
func (s *auditService) List(ctx context.Context, tenantID string, limit, offset int) ([]*domain.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByTenant(ctx, tenantID, limit, offset)
}

func checkSnapshotSize(name string, snapshot map[string]interface{}) error {
	if snapshot == nil {
		return nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize %s snapshot: %w", name, err)
	}
	if len(data) > maxSnapshotBytes {
		return fmt.Errorf("%s snapshot is %d bytes: %w", name, len(data), ErrSnapshotTooLarge)
	}
	return nil
}
