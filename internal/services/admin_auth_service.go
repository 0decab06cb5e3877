package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rce-newyear/greetings-api/config"
	"github.com/rce-newyear/greetings-api/internal/models"
	apperrors "github.com/rce-newyear/greetings-api/pkg/errors"
	"github.com/rce-newyear/greetings-api/pkg/jwt"
	"github.com/rce-newyear/greetings-api/pkg/logger"
	"github.com/rce-newyear/greetings-api/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so the response does not reveal which one it was.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)

// AdminAuthService authenticates dashboard admins and issues session tokens
type AdminAuthService struct {
	repo         AdminRepositoryInterface
	tokenManager *jwt.TokenManager
	config       *config.Config
}

func NewAdminAuthService(repo AdminRepositoryInterface, tokenManager *jwt.TokenManager, cfg *config.Config) *AdminAuthService {
	return &AdminAuthService{
		repo:         repo,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

// Login verifies the credentials and returns the session along with a
// signed token for the session cookie.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (*models.AdminSession, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.AdminLogins.WithLabelValues("denied").Inc()
			return nil, "", ErrInvalidCredentials
		}
		metrics.AdminLogins.WithLabelValues("error").Inc()
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		metrics.AdminLogins.WithLabelValues("denied").Inc()
		logger.Warn("Admin login denied", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenManager.GenerateToken(admin.ID, admin.Email, admin.Name, string(admin.Role))
	if err != nil {
		metrics.AdminLogins.WithLabelValues("error").Inc()
		return nil, "", err
	}

	now := time.Now()
	session := &models.AdminSession{
		AdminID:   admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		Role:      admin.Role,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokenManager.GetExpirationTime()).Unix(),
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	logger.Info("Admin logged in", zap.String("email", email), zap.String("role", string(admin.Role)))

	return session, token, nil
}

func (s *AdminAuthService) GetSessionTTL() int {
	return int(s.tokenManager.GetExpirationTime().Seconds())
}

func (s *AdminAuthService) GetCookieDomain() string {
	return s.config.AdminSession.CookieDomain
}

func (s *AdminAuthService) GetCookieSecure() bool {
	return s.config.AdminSession.CookieSecure
}
