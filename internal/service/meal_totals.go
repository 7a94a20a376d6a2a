package service

import (
	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
)

// ComputePlanTotals scales each entry's food composition by its
// quantity (composition is per 100g) and accumulates the daily
// totals across all meals. Optional macros count as 0 when absent, so
// a food with unknown protein content contributes nothing to the
// protein total.
func ComputePlanTotals(entries []model.MealEntry) dto.PlanTotals {
	totals := dto.PlanTotals{Entries: []dto.MealEntryTotals{}}

	for _, entry := range entries {
		line := dto.MealEntryTotals{
			FoodID:        entry.FoodID,
			MealNumber:    entry.MealNumber,
			Position:      entry.Position,
			QuantityGrams: entry.QuantityGrams,
		}

		if entry.Food != nil {
			factor := entry.QuantityGrams / 100
			line.FoodName = entry.Food.Name
			line.Kcals = entry.Food.Kcal * factor
			line.Proteins = floatOrZero(entry.Food.Proteins) * factor
			line.Lipids = floatOrZero(entry.Food.Lipids) * factor
			line.Carbs = entry.Food.Carbs * factor
		}

		totals.Kcals += line.Kcals
		totals.Proteins += line.Proteins
		totals.Lipids += line.Lipids
		totals.Carbs += line.Carbs
		totals.Entries = append(totals.Entries, line)
	}

	return totals
}
