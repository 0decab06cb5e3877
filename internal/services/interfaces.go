package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rce-newyear/greetings-api/internal/models"
)

// GreetingRepositoryInterface defines greeting data access operations
type GreetingRepositoryInterface interface {
	Create(ctx context.Context, record *models.GreetingRecord) error
	GetBySlug(ctx context.Context, slug string) (*models.GreetingRecord, error)
	List(ctx context.Context, filter models.GreetingFilter) ([]*models.GreetingRecord, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (string, error)
}

// AdminRepositoryInterface defines admin account lookups
type AdminRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// TextGateway is the outbound text-generation exchange: one system
// instruction, one user instruction, a sampling temperature, one call.
type TextGateway interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// GreetingServiceInterface is consumed by the greeting handlers
type GreetingServiceInterface interface {
	Generate(ctx context.Context, req *models.GenerateGreetingRequest) (*models.Greeting, error)
	GetBySlug(ctx context.Context, slug string) (*models.GreetingRecord, error)
}

// AdminGreetingsServiceInterface is consumed by the admin dashboard handlers
type AdminGreetingsServiceInterface interface {
	List(ctx context.Context, filter models.GreetingFilter) (*models.AdminGreetingsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminAuthServiceInterface is consumed by the admin auth handlers
type AdminAuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.AdminSession, string, error)
	GetSessionTTL() int
	GetCookieDomain() string
	GetCookieSecure() bool
}
