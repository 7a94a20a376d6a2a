package repository

import (
	"context"
	"testing"

	"coachlab.fr/suivicoach/internal/model"
)

func TestReplaceEntriesSwapsAndPreloadsFood(t *testing.T) {
	db := testDB(t)
	repo := NewMealPlanRepository(db)
	ctx := context.Background()

	athlete := model.User{Username: "lea", PasswordHash: "x", Role: model.RoleAthlete}
	if err := db.Create(&athlete).Error; err != nil {
		t.Fatalf("seed athlete: %v", err)
	}

	poulet := model.Food{Name: "blanc de poulet", Kcal: 100, Carbs: 0}
	riz := model.Food{Name: "riz basmati", Kcal: 350, Carbs: 78}
	for _, f := range []*model.Food{&poulet, &riz} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed food: %v", err)
		}
	}

	plan := model.MealPlan{AthleteID: athlete.ID, Name: "sèche"}
	if err := repo.Create(ctx, &plan); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	first := []model.MealEntry{
		{FoodID: poulet.ID, MealNumber: 1, Position: 0, QuantityGrams: 150},
	}
	if err := repo.ReplaceEntries(ctx, plan.ID, first); err != nil {
		t.Fatalf("first ReplaceEntries: %v", err)
	}

	second := []model.MealEntry{
		{FoodID: riz.ID, MealNumber: 1, Position: 0, QuantityGrams: 100},
		{FoodID: poulet.ID, MealNumber: 2, Position: 0, QuantityGrams: 200},
	}
	if err := repo.ReplaceEntries(ctx, plan.ID, second); err != nil {
		t.Fatalf("second ReplaceEntries: %v", err)
	}

	got, err := repo.FindByID(ctx, plan.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("old entries must be gone, got %d", len(got.Entries))
	}
	if got.Entries[0].Food == nil || got.Entries[0].Food.Name != "riz basmati" {
		t.Errorf("entries should come back with their food, got %+v", got.Entries[0])
	}
	if got.Entries[1].MealNumber != 2 {
		t.Errorf("entries should be ordered by meal then position")
	}
}

func TestFindByAthleteScopesPlans(t *testing.T) {
	db := testDB(t)
	repo := NewMealPlanRepository(db)
	ctx := context.Background()

	lea := model.User{Username: "lea", PasswordHash: "x", Role: model.RoleAthlete}
	marc := model.User{Username: "marc", PasswordHash: "x", Role: model.RoleAthlete}
	for _, u := range []*model.User{&lea, &marc} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed athlete: %v", err)
		}
	}

	plans := []model.MealPlan{
		{AthleteID: lea.ID, Name: "sèche"},
		{AthleteID: lea.ID, Name: "maintien"},
		{AthleteID: marc.ID, Name: "prise de masse"},
	}
	for i := range plans {
		if err := repo.Create(ctx, &plans[i]); err != nil {
			t.Fatalf("create plan: %v", err)
		}
	}

	got, err := repo.FindByAthlete(ctx, lea.ID)
	if err != nil {
		t.Fatalf("FindByAthlete: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want lea's 2 plans, got %d", len(got))
	}
	for _, p := range got {
		if p.AthleteID != lea.ID {
			t.Errorf("plan %q belongs to another athlete", p.Name)
		}
	}
}

func TestDeleteRemovesPlanAndEntries(t *testing.T) {
	db := testDB(t)
	repo := NewMealPlanRepository(db)
	ctx := context.Background()

	athlete := model.User{Username: "lea", PasswordHash: "x", Role: model.RoleAthlete}
	if err := db.Create(&athlete).Error; err != nil {
		t.Fatalf("seed athlete: %v", err)
	}
	food := model.Food{Name: "flocons d'avoine", Kcal: 370, Carbs: 60}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}

	plan := model.MealPlan{AthleteID: athlete.ID, Name: "sèche"}
	if err := repo.Create(ctx, &plan); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	keep := model.MealPlan{AthleteID: athlete.ID, Name: "maintien"}
	if err := repo.Create(ctx, &keep); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	entries := []model.MealEntry{
		{FoodID: food.ID, MealNumber: 1, Position: 0, QuantityGrams: 80},
	}
	if err := repo.ReplaceEntries(ctx, plan.ID, entries); err != nil {
		t.Fatalf("ReplaceEntries: %v", err)
	}

	if err := repo.Delete(ctx, plan.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var planCount, entryCount int64
	if err := db.Model(&model.MealPlan{}).Count(&planCount).Error; err != nil {
		t.Fatalf("count plans: %v", err)
	}
	if planCount != 1 {
		t.Errorf("only the deleted plan should go, %d plans left", planCount)
	}
	if err := db.Model(&model.MealEntry{}).Where("meal_plan_id = ?", plan.ID).Count(&entryCount).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if entryCount != 0 {
		t.Errorf("entries must go with their plan, %d left", entryCount)
	}
}
