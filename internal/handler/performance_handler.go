package handler

import (
	"net/http"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/service"
	"coachlab.fr/suivicoach/pkg/apperror"
	"coachlab.fr/suivicoach/pkg/response"
	"coachlab.fr/suivicoach/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PerformanceHandler struct {
	performanceService service.PerformanceService
}

func NewPerformanceHandler(performanceService service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

func (h *PerformanceHandler) LogEntry(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.PerformanceEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	entry, err := h.performanceService.Log(c.Request.Context(), athlete.ID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *PerformanceHandler) UpdateEntry(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	var input dto.PerformanceEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	entry, err := h.performanceService.Update(c.Request.Context(), athlete.ID, id, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *PerformanceHandler) GetSessionEntries(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	entries, err := h.performanceService.ListBySession(c.Request.Context(), athlete.ID, sessionID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *PerformanceHandler) GetSessionDaySummary(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	summary, err := h.performanceService.SessionDaySummary(c.Request.Context(), athlete.ID, sessionID, c.Query("date"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
