package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalEntry is the athlete's daily wellness/nutrition log. All
// metrics are optional; at most one entry per athlete per day.
type JournalEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AthleteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_athlete_entry_date" json:"athlete_id"`
	EntryDate time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_athlete_entry_date" json:"entry_date"`

	Weight     *float64 `json:"weight,omitempty"`
	Protein    *int     `json:"protein,omitempty"`
	Carbs      *int     `json:"carbs,omitempty"`
	Fats       *int     `json:"fats,omitempty"`
	Kcals      *int     `json:"kcals,omitempty"`
	WaterML    *float64 `json:"water_ml,omitempty"`
	Steps      *int     `json:"steps,omitempty"`
	SleepHours *float64 `json:"sleep_hours,omitempty"`

	Digestion   *string `gorm:"size:128" json:"digestion,omitempty"`
	Energy      *int    `json:"energy,omitempty"`
	Stress      *int    `json:"stress,omitempty"`
	Hunger      *int    `json:"hunger,omitempty"`
	FoodQuality *string `gorm:"size:64" json:"food_quality,omitempty"`

	MenstrualCycle *string   `gorm:"size:64" json:"menstrual_cycle,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (j *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
