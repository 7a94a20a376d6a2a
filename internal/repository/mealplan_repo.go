package repository

import (
	"context"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealPlanRepository interface {
	Create(ctx context.Context, plan *model.MealPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MealPlan, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.MealPlan, error)
	FindAll(ctx context.Context) ([]*model.MealPlan, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceEntries swaps the full entry list of a plan in one
	// transaction; positions are assigned by the caller.
	ReplaceEntries(ctx context.Context, planID uuid.UUID, entries []model.MealEntry) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) Create(ctx context.Context, plan *model.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MealPlan, error) {
	var plan model.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("meal_number, position")
		}).
		Preload("Entries.Food").
		Where("id = ?", id).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.MealPlan, error) {
	var plans []*model.MealPlan
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) FindAll(ctx context.Context) ([]*model.MealPlan, error) {
	var plans []*model.MealPlan
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", id).Delete(&model.MealEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MealPlan{}, "id = ?", id).Error
	})
}

func (r *mealPlanRepository) ReplaceEntries(ctx context.Context, planID uuid.UUID, entries []model.MealEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", planID).Delete(&model.MealEntry{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].MealPlanID = planID
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
