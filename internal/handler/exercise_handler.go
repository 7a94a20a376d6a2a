package handler

import (
	"net/http"

	"coachlab.fr/suivicoach/internal/service"
	"coachlab.fr/suivicoach/pkg/response"
	"coachlab.fr/suivicoach/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

type createExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscle_group" binding:"required"`
}

func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var input createExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), input.Name, input.MuscleGroup)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": exercises})
}
