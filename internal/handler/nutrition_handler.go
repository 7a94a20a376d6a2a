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

type NutritionHandler struct {
	nutritionService service.NutritionService
}

func NewNutritionHandler(nutritionService service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

func (h *NutritionHandler) CreateFood(c *gin.Context) {
	var input dto.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	food, err := h.nutritionService.CreateFood(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (h *NutritionHandler) UpdateFood(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	var input dto.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	food, err := h.nutritionService.UpdateFood(c.Request.Context(), id, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *NutritionHandler) GetFoods(c *gin.Context) {
	foods, err := h.nutritionService.ListFoods(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": foods})
}

func (h *NutritionHandler) CreateMealPlan(c *gin.Context) {
	var req dto.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	plan, err := h.nutritionService.CreateMealPlan(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *NutritionHandler) GetMealPlans(c *gin.Context) {
	plans, err := h.nutritionService.ListMealPlans(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plans})
}

// GetMyMealPlans lists the authenticated athlete's own plans.
func (h *NutritionHandler) GetMyMealPlans(c *gin.Context) {
	athlete := currentUser(c)
	if athlete == nil {
		response.ResponseError(c, apperror.ErrUnauthorized)
		return
	}

	plans, err := h.nutritionService.ListMealPlansByAthlete(c.Request.Context(), athlete.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plans})
}

func (h *NutritionHandler) DeleteMealPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.nutritionService.DeleteMealPlan(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plan alimentaire supprimé"})
}

func (h *NutritionHandler) SetMealEntries(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	var req dto.SetMealEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.nutritionService.SetMealEntries(c.Request.Context(), planID, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plan alimentaire enregistré"})
}

func (h *NutritionHandler) GetPlanTotals(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrInvalidInput)
		return
	}

	totals, err := h.nutritionService.PlanTotals(c.Request.Context(), planID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}
