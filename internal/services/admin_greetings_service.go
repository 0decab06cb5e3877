package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rce-newyear/greetings-api/internal/cache"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/pkg/logger"
	"go.uber.org/zap"
)

// AdminGreetingsService backs the dashboard list and delete operations
type AdminGreetingsService struct {
	repo  GreetingRepositoryInterface
	cache *cache.GreetingCache
}

func NewAdminGreetingsService(repo GreetingRepositoryInterface, greetingCache *cache.GreetingCache) *AdminGreetingsService {
	return &AdminGreetingsService{
		repo:  repo,
		cache: greetingCache,
	}
}

// List returns greetings matching the filter, newest first, together
// with the unfiltered total for the dashboard counter.
func (s *AdminGreetingsService) List(ctx context.Context, filter models.GreetingFilter) (*models.AdminGreetingsResponse, error) {
	greetings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if greetings == nil {
		greetings = []*models.GreetingRecord{}
	}

	return &models.AdminGreetingsResponse{
		Success:   true,
		Total:     total,
		Greetings: greetings,
	}, nil
}

// Delete removes the greeting and evicts its slug from the share-link
// cache so the public page stops serving it immediately.
func (s *AdminGreetingsService) Delete(ctx context.Context, id uuid.UUID) error {
	slug, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Delete(slug)
	logger.Info("Greeting deleted by admin", zap.String("id", id.String()), zap.String("slug", slug))
	return nil
}
