package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupProtectedRouter(tokenManager *jwt.TokenManager) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AdminSessionMiddleware(tokenManager, "", false), func(c *gin.Context) {
		session, err := GetAdminSession(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": session.Email})
	})
	return router
}

func TestAdminSessionMiddleware_MissingCookie(t *testing.T) {
	tokenManager := jwt.NewTokenManager("test-secret", "greetings-api", 24)
	router := setupProtectedRouter(tokenManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSessionMiddleware_ValidCookie(t *testing.T) {
	tokenManager := jwt.NewTokenManager("test-secret", "greetings-api", 24)
	router := setupProtectedRouter(tokenManager)

	token, err := tokenManager.GenerateToken("a0b1", "admin@example.com", "Site Admin", string(models.RoleAdmin))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestAdminSessionMiddleware_ExpiredToken(t *testing.T) {
	expiredManager := jwt.NewTokenManager("test-secret", "greetings-api", -1)
	token, err := expiredManager.GenerateToken("a0b1", "admin@example.com", "Site Admin", string(models.RoleAdmin))
	require.NoError(t, err)

	validManager := jwt.NewTokenManager("test-secret", "greetings-api", 24)
	router := setupProtectedRouter(validManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired")
}

func TestAdminSessionMiddleware_WrongSecret(t *testing.T) {
	otherManager := jwt.NewTokenManager("other-secret", "greetings-api", 24)
	token, err := otherManager.GenerateToken("a0b1", "admin@example.com", "Site Admin", string(models.RoleAdmin))
	require.NoError(t, err)

	router := setupProtectedRouter(jwt.NewTokenManager("test-secret", "greetings-api", 24))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSessionMiddleware_UnknownRole(t *testing.T) {
	tokenManager := jwt.NewTokenManager("test-secret", "greetings-api", 24)
	token, err := tokenManager.GenerateToken("a0b1", "admin@example.com", "Site Admin", "intruder")
	require.NoError(t, err)

	router := setupProtectedRouter(tokenManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
