package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tourbase/tourbase/internal/domain"
)

// PostgresEmailJobRepository implements EmailJobRepository using PostgreSQL
type PostgresEmailJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEmailJobRepository creates a new PostgresEmailJobRepository
func NewPostgresEmailJobRepository(pool *pgxpool.Pool) *PostgresEmailJobRepository {
	return &PostgresEmailJobRepository{pool: pool}
}

// Enqueue inserts a pending job
func (r *PostgresEmailJobRepository) Enqueue(ctx context.Context, job *domain.EmailJob) error {
	query := `
		INSERT INTO email_jobs (id, tenant_id, kind, recipient, payload, status, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.TenantID,
		job.Kind,
		job.Recipient,
		job.Payload,
		job.Status,
		job.Attempts,
		job.CreatedAt,
	)
	return err
}

// ClaimPending atomically flips up to limit pending jobs to processing and
// returns them, oldest first. SKIP LOCKED keeps concurrent drains from
// claiming the same job.
func (r *PostgresEmailJobRepository) ClaimPending(ctx context.Context, limit int) ([]*domain.EmailJob, error) {
	query := `
		UPDATE email_jobs
		SET status = 'processing'
		WHERE id IN (
			SELECT id FROM email_jobs
			WHERE status = 'pending'
			ORDER BY created_at ASC
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, tenant_id, kind, recipient, payload, status, attempts,
		          COALESCE(last_error, '') as last_error, created_at, sent_at
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.EmailJob, 0)
	for rows.Next() {
		job := &domain.EmailJob{}
		err := rows.Scan(
			&job.ID,
			&job.TenantID,
			&job.Kind,
			&job.Recipient,
			&job.Payload,
			&job.Status,
			&job.Attempts,
			&job.LastError,
			&job.CreatedAt,
			&job.SentAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// MarkSent records successful delivery
func (r *PostgresEmailJobRepository) MarkSent(ctx context.Context, jobID string) error {
	query := `
		UPDATE email_jobs
		SET status = 'sent', attempts = attempts + 1, sent_at = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, jobID, time.Now().UTC())
	return err
}

// MarkFailed records a delivery failure with the cause
func (r *PostgresEmailJobRepository) MarkFailed(ctx context.Context, jobID string, cause string) error {
	query := `
		UPDATE email_jobs
		SET status = 'failed', attempts = attempts + 1, last_error = $2
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, jobID, cause)
	return err
}
