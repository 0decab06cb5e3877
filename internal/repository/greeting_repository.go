package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rce-newyear/greetings-api/internal/models"
	apperrors "github.com/rce-newyear/greetings-api/pkg/errors"
	"github.com/rce-newyear/greetings-api/pkg/metrics"
)

// GreetingRepository handles greeting data access
type GreetingRepository struct {
	pool *pgxpool.Pool
}

// NewGreetingRepository creates a new greeting repository
func NewGreetingRepository(pool *pgxpool.Pool) *GreetingRepository {
	return &GreetingRepository{
		pool: pool,
	}
}

func observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.DBOperationDuration.WithLabelValues(operation, status).Observe(metrics.MeasureDuration(start))
	metrics.DBOperationTotal.WithLabelValues(operation, status).Inc()
}

// Create inserts a greeting row. The caller provides the ID and slug.
func (r *GreetingRepository) Create(ctx context.Context, record *models.GreetingRecord) (err error) {
	start := time.Now()
	defer func() { observe("greeting_create", start, err) }()

	query := `
		INSERT INTO greetings (
			id, slug, name, branch, year, roll_number, goal,
			greeting_title, greeting_body, motivational_quote, language, source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	err = r.pool.QueryRow(ctx, query,
		record.ID, record.Slug, record.Name, record.Branch, record.Year,
		record.RollNumber, record.Goal,
		record.GreetingTitle, record.GreetingBody, record.MotivationalQuote,
		record.Language, record.Source,
	).Scan(&record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store greeting: %w", err)
	}

	return nil
}

// GetBySlug fetches a greeting by its share slug
func (r *GreetingRepository) GetBySlug(ctx context.Context, slug string) (record *models.GreetingRecord, err error) {
	start := time.Now()
	defer func() { observe("greeting_get_by_slug", start, err) }()

	query := `
		SELECT id, slug, name, branch, year, roll_number, goal,
			greeting_title, greeting_body, motivational_quote, language, source, created_at
		FROM greetings
		WHERE slug = $1
	`

	record = &models.GreetingRecord{}
	err = r.pool.QueryRow(ctx, query, slug).Scan(
		&record.ID, &record.Slug, &record.Name, &record.Branch, &record.Year,
		&record.RollNumber, &record.Goal,
		&record.GreetingTitle, &record.GreetingBody, &record.MotivationalQuote,
		&record.Language, &record.Source, &record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("greeting")
		}
		return nil, fmt.Errorf("failed to fetch greeting: %w", err)
	}

	return record, nil
}

// List returns greetings matching the filter, newest first
func (r *GreetingRepository) List(ctx context.Context, filter models.GreetingFilter) (records []*models.GreetingRecord, err error) {
	start := time.Now()
	defer func() { observe("greeting_list", start, err) }()

	query := `
		SELECT id, slug, name, branch, year, roll_number, goal,
			greeting_title, greeting_body, motivational_quote, language, source, created_at
		FROM greetings
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR roll_number ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.Branch != "" {
		query += fmt.Sprintf(" AND branch = $%d", argPos)
		args = append(args, filter.Branch)
		argPos++
	}
	if filter.Year != "" {
		query += fmt.Sprintf(" AND year = $%d", argPos)
		args = append(args, filter.Year)
		argPos++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list greetings: %w", err)
	}
	defer rows.Close()

	records = []*models.GreetingRecord{}
	for rows.Next() {
		record := &models.GreetingRecord{}
		if err = rows.Scan(
			&record.ID, &record.Slug, &record.Name, &record.Branch, &record.Year,
			&record.RollNumber, &record.Goal,
			&record.GreetingTitle, &record.GreetingBody, &record.MotivationalQuote,
			&record.Language, &record.Source, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan greeting row: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read greeting rows: %w", err)
	}

	return records, nil
}

// Count returns the total number of stored greetings
func (r *GreetingRepository) Count(ctx context.Context) (total int64, err error) {
	start := time.Now()
	defer func() { observe("greeting_count", start, err) }()

	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM greetings`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count greetings: %w", err)
	}

	return total, nil
}

// Delete removes a greeting by ID and returns the slug the row was
// shared under so callers can evict it from caches.
func (r *GreetingRepository) Delete(ctx context.Context, id uuid.UUID) (slug string, err error) {
	start := time.Now()
	defer func() { observe("greeting_delete", start, err) }()

	err = r.pool.QueryRow(ctx, `DELETE FROM greetings WHERE id = $1 RETURNING slug`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NotFoundError("greeting")
		}
		return "", fmt.Errorf("failed to delete greeting: %w", err)
	}

	return slug, nil
}
