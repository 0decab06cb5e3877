package services_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockGreetingRepository is a mock implementation of GreetingRepositoryInterface
type MockGreetingRepository struct {
	mock.Mock
}

func (m *MockGreetingRepository) Create(ctx context.Context, record *models.GreetingRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGreetingRepository) GetBySlug(ctx context.Context, slug string) (*models.GreetingRecord, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GreetingRecord), args.Error(1)
}

func (m *MockGreetingRepository) List(ctx context.Context, filter models.GreetingFilter) ([]*models.GreetingRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GreetingRecord), args.Error(1)
}

func (m *MockGreetingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGreetingRepository) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// MockAdminRepository is a mock implementation of AdminRepositoryInterface
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

// MockTextGateway is a mock implementation of TextGateway
type MockTextGateway struct {
	mock.Mock
}

func (m *MockTextGateway) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, temperature)
	return args.String(0), args.Error(1)
}
