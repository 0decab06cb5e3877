package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/internal/services"
	apperrors "github.com/rce-newyear/greetings-api/pkg/errors"
)

// GreetingHandler handles greeting generation and share-link lookups.
type GreetingHandler struct {
	service services.GreetingServiceInterface
}

func NewGreetingHandler(service services.GreetingServiceInterface) *GreetingHandler {
	return &GreetingHandler{service: service}
}

// Generate handles POST /api/v1/greetings/generate
func (h *GreetingHandler) Generate(c *gin.Context) {
	var req models.GenerateGreetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	greeting, err := h.service.Generate(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			attachError(c, err)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   verr.Message,
				"field":   verr.Field,
			})
			return
		}
		if errors.Is(err, services.ErrGenerationRateLimited) {
			respondError(c, http.StatusTooManyRequests, "Too many requests. Please try again in a moment.", err)
			return
		}
		if errors.Is(err, services.ErrGenerationQuotaExhausted) {
			respondError(c, http.StatusPaymentRequired, "Service quota exhausted. Please try again later.", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to generate greeting", err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateGreetingResponse{
		Success:  true,
		Greeting: greeting,
	})
}

// GetBySlug handles GET /api/v1/greetings/:slug
func (h *GreetingHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	record, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Greeting not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch greeting", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"greeting": record,
	})
}
