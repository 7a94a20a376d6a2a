package dto

import (
	"github.com/google/uuid"
)

// FoodInput creates or updates a bank food. Kcal and Carbs are
// required (pointers so an explicit 0 passes validation); the other
// macros stay null when absent.
type FoodInput struct {
	Name          string   `json:"name" binding:"required,max=192"`
	Kcal          *float64 `json:"kcal" binding:"required"`
	Proteins      *float64 `json:"proteins"`
	Lipids        *float64 `json:"lipids"`
	Carbs         *float64 `json:"carbs" binding:"required"`
	SaturatedFats *float64 `json:"saturated_fats"`
	SimpleSugars  *float64 `json:"simple_sugars"`
	Fiber         *float64 `json:"fiber"`
	Salt          *float64 `json:"salt"`
}

type CreateMealPlanRequest struct {
	Name      string    `json:"name" binding:"required,max=128"`
	AthleteID uuid.UUID `json:"athlete_id" binding:"required"`
}

type MealEntryInput struct {
	FoodID        uuid.UUID `json:"food_id" binding:"required"`
	MealNumber    int       `json:"meal_number" binding:"required,min=1,max=6"`
	QuantityGrams float64   `json:"quantity_grams" binding:"required,gt=0"`
}

// SetMealEntriesRequest replaces the full entry list of a plan.
// Positions are assigned per meal in submission order.
type SetMealEntriesRequest struct {
	Entries []MealEntryInput `json:"entries" binding:"required,dive"`
}

// MealEntryTotals is one plan line scaled by its quantity.
type MealEntryTotals struct {
	FoodID        uuid.UUID `json:"food_id"`
	FoodName      string    `json:"food_name"`
	MealNumber    int       `json:"meal_number"`
	Position      int       `json:"position"`
	QuantityGrams float64   `json:"quantity_grams"`
	Kcals         float64   `json:"kcals"`
	Proteins      float64   `json:"proteins"`
	Lipids        float64   `json:"lipids"`
	Carbs         float64   `json:"carbs"`
}

type PlanTotals struct {
	Kcals    float64           `json:"kcals"`
	Proteins float64           `json:"proteins"`
	Lipids   float64           `json:"lipids"`
	Carbs    float64           `json:"carbs"`
	Entries  []MealEntryTotals `json:"entries"`
}
