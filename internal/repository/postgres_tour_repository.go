package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tourbase/tourbase/internal/domain"
)

// PostgresTourRepository implements TourRepository using PostgreSQL
type PostgresTourRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTourRepository creates a new PostgresTourRepository
func NewPostgresTourRepository(pool *pgxpool.Pool) *PostgresTourRepository {
	return &PostgresTourRepository{pool: pool}
}

const tourColumns = `id, tenant_id, slug, title, COALESCE(description, '') as description,
	       duration_days, price_minor, currency, max_capacity, status, created_at, updated_at`

// ListByTenant retrieves a tenant's tours ordered by creation time, newest first
func (r *PostgresTourRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]*domain.Tour, 0)
	for rows.Next() {
		tour := &domain.Tour{}
		if err := scanTour(rows, tour); err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}
	return tours, rows.Err()
}

// GetBySlug retrieves a tour by its compound key (tenantID, slug). A slug
// that exists under another tenant never matches.
func (r *PostgresTourRepository) GetBySlug(ctx context.Context, tenantID, slug string) (*domain.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE tenant_id = $1 AND slug = $2
	`
	tour := &domain.Tour{}
	err := scanTour(r.pool.QueryRow(ctx, query, tenantID, slug), tour)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tour, nil
}

// GetByID retrieves a tour by (tenantID, tourID). An ID belonging to
// another tenant never matches.
func (r *PostgresTourRepository) GetByID(ctx context.Context, tenantID, tourID string) (*domain.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE tenant_id = $1 AND id = $2
	`
	tour := &domain.Tour{}
	err := scanTour(r.pool.QueryRow(ctx, query, tenantID, tourID), tour)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tour, nil
}

// Create inserts a new tour; the tenant association is part of the insert
func (r *PostgresTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	query := `
		INSERT INTO tours (id, tenant_id, slug, title, description, duration_days,
		                   price_minor, currency, max_capacity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		tour.ID,
		tour.TenantID,
		tour.Slug,
		tour.Title,
		nullStringOrValue(tour.Description),
		tour.DurationDays,
		tour.PriceMinor,
		tour.Currency,
		tour.MaxCapacity,
		tour.Status,
		tour.CreatedAt,
		tour.UpdatedAt,
	)
	return err
}

// Update applies the non-nil patch fields. The WHERE clause matches both
// the tour ID and the tenant ID so an update aimed at another tenant's
// tour affects zero rows and returns ErrTourNotFound.
func (r *PostgresTourRepository) Update(ctx context.Context, tenantID, tourID string, patch *domain.TourPatch) (*domain.Tour, error) {
	setClauses := make([]string, 0, 8)
	args := []interface{}{tourID, tenantID}
	argIndex := 3

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Description != nil {
		addSet("description", nullStringOrValue(*patch.Description))
	}
	if patch.DurationDays != nil {
		addSet("duration_days", *patch.DurationDays)
	}
	if patch.PriceMinor != nil {
		addSet("price_minor", *patch.PriceMinor)
	}
	if patch.Currency != nil {
		addSet("currency", *patch.Currency)
	}
	if patch.MaxCapacity != nil {
		addSet("max_capacity", *patch.MaxCapacity)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}

	if len(setClauses) == 0 {
		return nil, fmt.Errorf("empty patch")
	}

	addSet("updated_at", time.Now().UTC())

	query := "UPDATE tours SET "
	for i, clause := range setClauses {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += " WHERE id = $1 AND tenant_id = $2 RETURNING " + tourColumns

	tour := &domain.Tour{}
	err := scanTour(r.pool.QueryRow(ctx, query, args...), tour)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return tour, nil
}

func scanTour(row pgx.Row, tour *domain.Tour) error {
	return row.Scan(
		&tour.ID,
		&tour.TenantID,
		&tour.Slug,
		&tour.Title,
		&tour.Description,
		&tour.DurationDays,
		&tour.PriceMinor,
		&tour.Currency,
		&tour.MaxCapacity,
		&tour.Status,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)
}

// nullStringOrValue returns nil for empty strings, otherwise returns the value
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
