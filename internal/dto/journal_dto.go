package dto

// JournalEntryInput is shared between create and update. Every metric
// is optional; absent fields stay null.
type JournalEntryInput struct {
	EntryDate  string   `json:"entry_date" binding:"required"`
	Weight     *float64 `json:"weight"`
	Protein    *int     `json:"protein"`
	Carbs      *int     `json:"carbs"`
	Fats       *int     `json:"fats"`
	Kcals      *int     `json:"kcals"`
	WaterML    *float64 `json:"water_ml"`
	Steps      *int     `json:"steps"`
	SleepHours *float64 `json:"sleep_hours"`

	Digestion   *string `json:"digestion"`
	Energy      *int    `json:"energy" binding:"omitempty,min=0,max=10"`
	Stress      *int    `json:"stress" binding:"omitempty,min=0,max=10"`
	Hunger      *int    `json:"hunger" binding:"omitempty,min=0,max=10"`
	FoodQuality *string `json:"food_quality"`

	MenstrualCycle *string `json:"menstrual_cycle"`
}

// JournalPoint is one day of the coach's journal chart feed.
type JournalPoint struct {
	Date       string   `json:"date"`
	Weight     *float64 `json:"weight"`
	Kcals      *int     `json:"kcals"`
	WaterML    *float64 `json:"water_ml"`
	SleepHours *float64 `json:"sleep_hours"`
	Energy     *int     `json:"energy"`
	Stress     *int     `json:"stress"`
}
