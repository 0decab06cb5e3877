package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/internal/services"
	apperrors "github.com/rce-newyear/greetings-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGreetingService is a mock implementation of GreetingServiceInterface
type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Generate(ctx context.Context, req *models.GenerateGreetingRequest) (*models.Greeting, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Greeting), args.Error(1)
}

func (m *MockGreetingService) GetBySlug(ctx context.Context, slug string) (*models.GreetingRecord, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GreetingRecord), args.Error(1)
}

func setupGreetingRouter(service services.GreetingServiceInterface) *gin.Engine {
	handler := NewGreetingHandler(service)
	router := gin.New()
	router.POST("/api/v1/greetings/generate", handler.Generate)
	router.GET("/api/v1/greetings/:slug", handler.GetBySlug)
	return router
}

func postGenerate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/greetings/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{"name":"Asha Reddy","branch":"CSE","year":"3","language":"EN"}`

func TestGreetingHandler_Generate_Success(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	greeting := &models.Greeting{
		Name:          "Asha Reddy",
		Branch:        "CSE",
		Year:          "3rd Year",
		GreetingTitle: "Happy New Year 2026, Asha Reddy! 🎉",
		GreetingBody:  "Body",
		Slug:          "asha-reddy-7f3a9c",
	}
	mockService.On("Generate", mock.Anything, mock.AnythingOfType("*models.GenerateGreetingRequest")).
		Return(greeting, nil).Once()

	w := postGenerate(router, validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "asha-reddy-7f3a9c")
	mockService.AssertExpectations(t)
}

func TestGreetingHandler_Generate_ValidationError(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	mockService.On("Generate", mock.Anything, mock.Anything).
		Return(nil, &models.ValidationError{Field: "branch", Message: "branch must be one of: AIML CSE ECE EEE CIVIL MECH"}).Once()

	w := postGenerate(router, `{"name":"Asha","branch":"IT","year":"3","language":"EN"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"branch"`)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGreetingHandler_Generate_MalformedBody(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	w := postGenerate(router, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGreetingHandler_Generate_RateLimited(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	mockService.On("Generate", mock.Anything, mock.Anything).
		Return(nil, services.ErrGenerationRateLimited).Once()

	w := postGenerate(router, validBody)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestGreetingHandler_Generate_QuotaExhausted(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	mockService.On("Generate", mock.Anything, mock.Anything).
		Return(nil, services.ErrGenerationQuotaExhausted).Once()

	w := postGenerate(router, validBody)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "quota exhausted")
}

func TestGreetingHandler_Generate_Misconfigured(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	mockService.On("Generate", mock.Anything, mock.Anything).
		Return(nil, services.ErrGenerationMisconfigured).Once()

	w := postGenerate(router, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate greeting")
}

func TestGreetingHandler_GetBySlug_Success(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	record := &models.GreetingRecord{Slug: "asha-reddy-7f3a9c", Name: "Asha Reddy"}
	mockService.On("GetBySlug", mock.Anything, "asha-reddy-7f3a9c").Return(record, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/greetings/asha-reddy-7f3a9c", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha Reddy")
}

func TestGreetingHandler_GetBySlug_NotFound(t *testing.T) {
	mockService := new(MockGreetingService)
	router := setupGreetingRouter(mockService)

	mockService.On("GetBySlug", mock.Anything, "missing").
		Return(nil, apperrors.NotFoundError("greeting")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/greetings/missing", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Greeting not found")
}
