package service

import (
	"testing"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
)

func TestComputePlanTotalsScalesPer100g(t *testing.T) {
	poulet := &model.Food{
		ID:       uuid.New(),
		Name:     "blanc de poulet",
		Kcal:     100,
		Proteins: fptr(10),
		Lipids:   fptr(5),
		Carbs:    0,
	}

	entries := []model.MealEntry{
		{FoodID: poulet.ID, Food: poulet, MealNumber: 1, Position: 0, QuantityGrams: 300},
	}

	totals := ComputePlanTotals(entries)

	if totals.Kcals != 300 {
		t.Errorf("kcals = %v, want 300", totals.Kcals)
	}
	if totals.Proteins != 30 {
		t.Errorf("proteins = %v, want 30", totals.Proteins)
	}
	if totals.Lipids != 15 {
		t.Errorf("lipids = %v, want 15", totals.Lipids)
	}
	if totals.Carbs != 0 {
		t.Errorf("carbs = %v, want 0", totals.Carbs)
	}

	if len(totals.Entries) != 1 {
		t.Fatalf("expected one line, got %d", len(totals.Entries))
	}
	line := totals.Entries[0]
	if line.FoodName != "blanc de poulet" || line.Kcals != 300 {
		t.Errorf("line wrong: %+v", line)
	}
}

func TestComputePlanTotalsNilMacrosCountAsZero(t *testing.T) {
	riz := &model.Food{
		ID:    uuid.New(),
		Name:  "riz basmati",
		Kcal:  350,
		Carbs: 78,
	}

	totals := ComputePlanTotals([]model.MealEntry{
		{FoodID: riz.ID, Food: riz, MealNumber: 2, QuantityGrams: 100},
	})

	if totals.Kcals != 350 || totals.Carbs != 78 {
		t.Errorf("required macros should scale: %+v", totals)
	}
	if totals.Proteins != 0 || totals.Lipids != 0 {
		t.Errorf("nil macros count as 0, got proteins=%v lipids=%v", totals.Proteins, totals.Lipids)
	}
}

func TestComputePlanTotalsAccumulatesAcrossMeals(t *testing.T) {
	a := &model.Food{ID: uuid.New(), Name: "a", Kcal: 200, Carbs: 20}
	b := &model.Food{ID: uuid.New(), Name: "b", Kcal: 50, Carbs: 10}

	totals := ComputePlanTotals([]model.MealEntry{
		{FoodID: a.ID, Food: a, MealNumber: 1, QuantityGrams: 150},
		{FoodID: b.ID, Food: b, MealNumber: 4, QuantityGrams: 200},
	})

	if totals.Kcals != 400 {
		t.Errorf("kcals = %v, want 400", totals.Kcals)
	}
	if totals.Carbs != 50 {
		t.Errorf("carbs = %v, want 50", totals.Carbs)
	}
	if len(totals.Entries) != 2 {
		t.Errorf("expected 2 lines, got %d", len(totals.Entries))
	}
}

func TestComputePlanTotalsMissingFoodYieldsZeroLine(t *testing.T) {
	totals := ComputePlanTotals([]model.MealEntry{
		{FoodID: uuid.New(), MealNumber: 1, QuantityGrams: 100},
	})

	if totals.Kcals != 0 {
		t.Errorf("a dangling entry must not contribute, got %v", totals.Kcals)
	}
	if len(totals.Entries) != 1 {
		t.Fatalf("the line itself is still reported")
	}
	if totals.Entries[0].FoodName != "" {
		t.Errorf("no food, no name")
	}
}
