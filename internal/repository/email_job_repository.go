package repository

import (
	"context"

	"github.com/tourbase/tourbase/internal/domain"
)

// EmailJobRepository defines outbox access for the email queue processor
type EmailJobRepository interface {
	// Enqueue inserts a pending job
	Enqueue(ctx context.Context, job *domain.EmailJob) error
	// ClaimPending retrieves up to limit pending jobs, oldest first
	ClaimPending(ctx context.Context, limit int) ([]*domain.EmailJob, error)
	// MarkSent records successful delivery
	MarkSent(ctx context.Context, jobID string) error
	// MarkFailed records a delivery failure with the cause
	MarkFailed(ctx context.Context, jobID string, cause string) error
}
