package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food stores composition per 100g. Kcal and Carbs are required;
// every other macro is nullable. An earlier schema forced them all
// non-null and had to be rebuilt.
type Food struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:192;uniqueIndex;not null" json:"name"`
	Kcal          float64   `gorm:"not null" json:"kcal"`
	Proteins      *float64  `json:"proteins,omitempty"`
	Lipids        *float64  `json:"lipids,omitempty"`
	Carbs         float64   `gorm:"not null" json:"carbs"`
	SaturatedFats *float64  `json:"saturated_fats,omitempty"`
	SimpleSugars  *float64  `json:"simple_sugars,omitempty"`
	Fiber         *float64  `json:"fiber,omitempty"`
	Salt          *float64  `json:"salt,omitempty"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AthleteID uuid.UUID `gorm:"type:uuid;not null;index" json:"athlete_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Entries []MealEntry `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealEntry is one food portion inside a plan. MealNumber runs 1..6
// (breakfast through evening snack); Position orders entries within a
// meal.
type MealEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MealPlanID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_plan_food_meal_position" json:"meal_plan_id"`
	FoodID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_plan_food_meal_position" json:"food_id"`
	Food          *Food     `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	MealNumber    int       `gorm:"not null;uniqueIndex:uq_plan_food_meal_position" json:"meal_number"`
	QuantityGrams float64   `gorm:"not null" json:"quantity_grams"`
	Position      int       `gorm:"not null;default:0;uniqueIndex:uq_plan_food_meal_position" json:"position"`
}

func (m *MealEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
