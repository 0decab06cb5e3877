package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/internal/services"
	apperrors "github.com/rce-newyear/greetings-api/pkg/errors"
)

// AdminGreetingsHandler handles the dashboard list and delete endpoints.
type AdminGreetingsHandler struct {
	service services.AdminGreetingsServiceInterface
}

func NewAdminGreetingsHandler(service services.AdminGreetingsServiceInterface) *AdminGreetingsHandler {
	return &AdminGreetingsHandler{service: service}
}

// List handles GET /api/v1/admin/greetings
func (h *AdminGreetingsHandler) List(c *gin.Context) {
	filter := models.GreetingFilter{
		Search: c.Query("search"),
		Branch: c.Query("branch"),
		Year:   c.Query("year"),
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list greetings", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/admin/greetings/:id
func (h *AdminGreetingsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid greeting ID", apperrors.InvalidInputError("id", "must be a valid UUID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Greeting not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete greeting", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
