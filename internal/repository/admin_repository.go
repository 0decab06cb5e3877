package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rce-newyear/greetings-api/internal/models"
	apperrors "github.com/rce-newyear/greetings-api/pkg/errors"
)

// AdminRepository handles admin account data access
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		pool: pool,
	}
}

// GetByEmail fetches an admin account by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (admin *models.Admin, err error) {
	start := time.Now()
	defer func() { observe("admin_get_by_email", start, err) }()

	query := `
		SELECT id, email, name, password_hash, role, created_at
		FROM admins
		WHERE email = $1
	`

	admin = &models.Admin{}
	err = r.pool.QueryRow(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash, &admin.Role, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("admin")
		}
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}

	return admin, nil
}
