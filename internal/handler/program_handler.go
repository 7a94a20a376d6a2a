package handler

import (
	"net/http"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/internal/service"
	"coachlab.fr/suivicoach/pkg/apperror"
	"coachlab.fr/suivicoach/pkg/response"
	"coachlab.fr/suivicoach/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProgramHandler struct {
	programService service.ProgramService
}

func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	coachID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	program, err := h.programService.Create(c.Request.Context(), coachID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, program)
}

func (h *ProgramHandler) GetAllPrograms(c *gin.Context) {
	programs, err := h.programService.List(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": programs})
}

func (h *ProgramHandler) GetProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	program, err := h.programService.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) ReplaceWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	var req dto.ReplaceWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.programService.ReplaceWeek(c.Request.Context(), id, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "programme enregistré"})
}

func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.programService.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "programme supprimé"})
}

// GetMyPrograms lists the authenticated athlete's programs, newest
// first.
func (h *ProgramHandler) GetMyPrograms(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	programs, err := h.programService.ListByAthlete(c.Request.Context(), athlete.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": programs})
}

// GetMyProgram serves one program's week structure to its athlete.
func (h *ProgramHandler) GetMyProgram(c *gin.Context) {
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

	program, err := h.programService.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if program.AthleteID != athlete.ID {
		response.ResponseError(c, apperror.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, program)
}

// currentUser returns the user cached by the role middleware.
func currentUser(c *gin.Context) *model.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
