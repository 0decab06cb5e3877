package services_test

import (
	"context"
	"testing"

	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/internal/services"
	apperrors "github.com/rce-newyear/greetings-api/pkg/errors"
	"github.com/rce-newyear/greetings-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*MockAdminRepository, *services.AdminAuthService, *jwt.TokenManager, *models.Admin) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.Admin{
		ID:           "a0b1c2d3",
		Email:        "admin@example.com",
		Name:         "Site Admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	tokenManager := jwt.NewTokenManager("test-secret", "greetings-api", 24)
	mockRepo := new(MockAdminRepository)
	service := services.NewAdminAuthService(mockRepo, tokenManager, newTestConfig())

	return mockRepo, service, tokenManager, admin
}

func TestAdminAuthService_Login_Success(t *testing.T) {
	mockRepo, service, tokenManager, admin := newAuthFixture(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "admin@example.com").Return(admin, nil).Once()

	session, token, err := service.Login(ctx, "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "a0b1c2d3", session.AdminID)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.Greater(t, session.ExpiresAt, session.IssuedAt)

	claims, err := tokenManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a0b1c2d3", claims.AdminID)
	assert.Equal(t, "admin", claims.Role)

	mockRepo.AssertExpectations(t)
}

func TestAdminAuthService_Login_NormalizesEmail(t *testing.T) {
	mockRepo, service, _, admin := newAuthFixture(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "admin@example.com").Return(admin, nil).Once()

	_, _, err := service.Login(ctx, "  Admin@Example.COM ", "s3cret-pass")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAdminAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo, service, _, admin := newAuthFixture(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "admin@example.com").Return(admin, nil).Once()

	session, token, err := service.Login(ctx, "admin@example.com", "wrong")
	assert.Nil(t, session)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAdminAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo, service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperrors.NotFoundError("admin")).Once()

	session, _, err := service.Login(ctx, "ghost@example.com", "whatever")
	assert.Nil(t, session)

	// Same error as a wrong password so the response does not leak
	// which part was wrong
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
