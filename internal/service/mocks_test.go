package service

import (
	"context"
	"sort"
	"sync"

	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/internal/mail"
	"github.com/tourbase/tourbase/internal/repository"
)

// mockTourRepository is an in-memory TourRepository honoring the same
// compound-key contract as the Postgres implementation.
type mockTourRepository struct {
	mu    sync.Mutex
	tours []*domain.Tour
}

func newMockTourRepository() *mockTourRepository {
	return &mockTourRepository{}
}

func (m *mockTourRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Tour, 0)
	for _, t := range m.tours {
		if t.TenantID == tenantID {
			copied := *t
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockTourRepository) GetBySlug(ctx context.Context, tenantID, slug string) (*domain.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tours {
		if t.TenantID == tenantID && t.Slug == slug {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockTourRepository) GetByID(ctx context.Context, tenantID, tourID string) (*domain.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tours {
		if t.TenantID == tenantID && t.ID == tourID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *tour
	m.tours = append(m.tours, &copied)
	return nil
}

func (m *mockTourRepository) Update(ctx context.Context, tenantID, tourID string, patch *domain.TourPatch) (*domain.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tours {
		// Both conditions, mirroring the SQL WHERE clause
		if t.ID == tourID && t.TenantID == tenantID {
			if patch.Title != nil {
				t.Title = *patch.Title
			}
			if patch.Description != nil {
				t.Description = *patch.Description
			}
			if patch.DurationDays != nil {
				t.DurationDays = *patch.DurationDays
			}
			if patch.PriceMinor != nil {
				t.PriceMinor = *patch.PriceMinor
			}
			if patch.Currency != nil {
				t.Currency = *patch.Currency
			}
			if patch.MaxCapacity != nil {
				t.MaxCapacity = *patch.MaxCapacity
			}
			if patch.Status != nil {
				t.Status = *patch.Status
			}
			copied := *t
			return &copied, nil
		}
	}
	return nil, repository.ErrTourNotFound
}

// mockAuditRepository collects entries in memory
type mockAuditRepository struct {
	mu        sync.Mutex
	entries   []*domain.AuditLog
	insertErr error
}

func (m *mockAuditRepository) Insert(ctx context.Context, entry *domain.AuditLog) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*domain.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.AuditLog, 0)
	for _, e := range m.entries {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

// mockTenantRepository serves a fixed tenant set
type mockTenantRepository struct {
	tenants []*domain.Tenant
}

func (m *mockTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	for _, t := range m.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTenantRepository) GetByDomain(ctx context.Context, dom string) (*domain.Tenant, error) {
	for _, t := range m.tenants {
		if t.Domain == dom {
			return t, nil
		}
	}
	return nil, nil
}

// mockEmailJobRepository is an in-memory outbox
type mockEmailJobRepository struct {
	mu       sync.Mutex
	jobs     []*domain.EmailJob
	claimErr error
}

func (m *mockEmailJobRepository) Enqueue(ctx context.Context, job *domain.EmailJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *job
	m.jobs = append(m.jobs, &copied)
	return nil
}

func (m *mockEmailJobRepository) ClaimPending(ctx context.Context, limit int) ([]*domain.EmailJob, error) {
	if m.claimErr != nil {
		return nil, m.claimErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	claimed := make([]*domain.EmailJob, 0)
	for _, j := range m.jobs {
		if j.Status == domain.EmailJobStatusPending && len(claimed) < limit {
			j.Status = domain.EmailJobStatusProcessing
			claimed = append(claimed, j)
		}
	}
	return claimed, nil
}

func (m *mockEmailJobRepository) MarkSent(ctx context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.ID == jobID {
			j.Status = domain.EmailJobStatusSent
			j.Attempts++
		}
	}
	return nil
}

func (m *mockEmailJobRepository) MarkFailed(ctx context.Context, jobID string, cause string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.ID == jobID {
			j.Status = domain.EmailJobStatusFailed
			j.LastError = cause
			j.Attempts++
		}
	}
	return nil
}

func (m *mockEmailJobRepository) statusOf(jobID string) domain.EmailJobStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.ID == jobID {
			return j.Status
		}
	}
	return ""
}

// spySender records outbound emails; failAddresses simulate provider errors
type spySender struct {
	mu            sync.Mutex
	sent          []mail.OutboundEmail
	failAddresses map[string]bool
}

func newSpySender() *spySender {
	return &spySender{failAddresses: make(map[string]bool)}
}

func (s *spySender) Send(ctx context.Context, email mail.OutboundEmail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAddresses[email.Recipient] {
		return errDeliveryRefused
	}
	s.sent = append(s.sent, email)
	return nil
}
