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

type JournalHandler struct {
	journalService service.JournalService
}

func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

func (h *JournalHandler) CreateEntry(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	entry, err := h.journalService.Create(c.Request.Context(), athlete.ID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *JournalHandler) UpdateEntry(c *gin.Context) {
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

	var input dto.JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	entry, err := h.journalService.Update(c.Request.Context(), athlete.ID, id, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) GetEntry(c *gin.Context) {
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

	entry, err := h.journalService.Get(c.Request.Context(), athlete.ID, id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) GetEntries(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	entries, err := h.journalService.List(c.Request.Context(), athlete.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
