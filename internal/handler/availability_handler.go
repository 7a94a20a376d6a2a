package handler

import (
	"net/http"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/service"
	"coachlab.fr/suivicoach/pkg/response"
	"coachlab.fr/suivicoach/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityService service.AvailabilityService
}

func NewAvailabilityHandler(availabilityService service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// GetCalendar serves the rolling availability window, for both the
// athlete home view and the coach edit view.
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	var query dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	days, locations, err := h.availabilityService.Calendar(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      days,
		"locations": locations,
	})
}

func (h *AvailabilityHandler) UpsertAvailability(c *gin.Context) {
	var req dto.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.availabilityService.Upsert(c.Request.Context(), req); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "disponibilités enregistrées"})
}
