package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NutritionService interface {
	CreateFood(ctx context.Context, input dto.FoodInput) (*model.Food, error)
	UpdateFood(ctx context.Context, id uuid.UUID, input dto.FoodInput) (*model.Food, error)
	ListFoods(ctx context.Context) ([]model.Food, error)
	CreateMealPlan(ctx context.Context, req dto.CreateMealPlanRequest) (*model.MealPlan, error)
	ListMealPlans(ctx context.Context) ([]*model.MealPlan, error)
	ListMealPlansByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.MealPlan, error)
	DeleteMealPlan(ctx context.Context, id uuid.UUID) error
	SetMealEntries(ctx context.Context, planID uuid.UUID, req dto.SetMealEntriesRequest) error
	PlanTotals(ctx context.Context, planID uuid.UUID) (*dto.PlanTotals, error)
}

type nutritionService struct {
	foods repository.FoodRepository
	plans repository.MealPlanRepository
	users repository.UserRepository
}

func NewNutritionService(foods repository.FoodRepository, plans repository.MealPlanRepository, users repository.UserRepository) NutritionService {
	return &nutritionService{
		foods: foods,
		plans: plans,
		users: users,
	}
}

func (s *nutritionService) CreateFood(ctx context.Context, input dto.FoodInput) (*model.Food, error) {
	name := strings.TrimSpace(input.Name)

	existing, _ := s.foods.FindByName(ctx, name)
	if existing != nil {
		return nil, fmt.Errorf("%w: food %q already exists", apperror.ErrConflict, name)
	}

	food := foodFromInput(name, input)
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}

	return food, nil
}

func (s *nutritionService) UpdateFood(ctx context.Context, id uuid.UUID, input dto.FoodInput) (*model.Food, error) {
	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %s", apperror.ErrNotFound, id)
		}
		return nil, err
	}

	updated := foodFromInput(strings.TrimSpace(input.Name), input)
	updated.ID = food.ID

	if err := s.foods.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *nutritionService) ListFoods(ctx context.Context) ([]model.Food, error) {
	return s.foods.FindAll(ctx)
}

func (s *nutritionService) CreateMealPlan(ctx context.Context, req dto.CreateMealPlanRequest) (*model.MealPlan, error) {
	athlete, err := s.users.FindByID(ctx, req.AthleteID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: athlete %s", apperror.ErrNotFound, req.AthleteID)
		}
		return nil, err
	}
	if athlete.Role != model.RoleAthlete {
		return nil, fmt.Errorf("%w: meal plans can only target athletes", apperror.ErrInvalidInput)
	}

	plan := &model.MealPlan{
		Name:      strings.TrimSpace(req.Name),
		AthleteID: req.AthleteID,
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *nutritionService) ListMealPlans(ctx context.Context) ([]*model.MealPlan, error) {
	return s.plans.FindAll(ctx)
}

func (s *nutritionService) ListMealPlansByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.MealPlan, error) {
	return s.plans.FindByAthlete(ctx, athleteID)
}

func (s *nutritionService) DeleteMealPlan(ctx context.Context, id uuid.UUID) error {
	if _, err := s.plans.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: meal plan %s", apperror.ErrNotFound, id)
		}
		return err
	}

	return s.plans.Delete(ctx, id)
}

func (s *nutritionService) SetMealEntries(ctx context.Context, planID uuid.UUID, req dto.SetMealEntriesRequest) error {
	if _, err := s.plans.FindByID(ctx, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: meal plan %s", apperror.ErrNotFound, planID)
		}
		return err
	}

	ids := make([]uuid.UUID, 0, len(req.Entries))
	for _, entry := range req.Entries {
		ids = append(ids, entry.FoodID)
	}
	foods, err := s.foods.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	// Positions restart at 0 within each meal, in submission order.
	positions := make(map[int]int)
	entries := make([]model.MealEntry, 0, len(req.Entries))
	for _, input := range req.Entries {
		if _, ok := foods[input.FoodID]; !ok {
			return fmt.Errorf("%w: food %s", apperror.ErrNotFound, input.FoodID)
		}

		entries = append(entries, model.MealEntry{
			FoodID:        input.FoodID,
			MealNumber:    input.MealNumber,
			QuantityGrams: input.QuantityGrams,
			Position:      positions[input.MealNumber],
		})
		positions[input.MealNumber]++
	}

	return s.plans.ReplaceEntries(ctx, planID, entries)
}

func (s *nutritionService) PlanTotals(ctx context.Context, planID uuid.UUID) (*dto.PlanTotals, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: meal plan %s", apperror.ErrNotFound, planID)
		}
		return nil, err
	}

	totals := ComputePlanTotals(plan.Entries)
	return &totals, nil
}

func foodFromInput(name string, input dto.FoodInput) *model.Food {
	return &model.Food{
		Name:          name,
		Kcal:          *input.Kcal,
		Proteins:      input.Proteins,
		Lipids:        input.Lipids,
		Carbs:         *input.Carbs,
		SaturatedFats: input.SaturatedFats,
		SimpleSugars:  input.SimpleSugars,
		Fiber:         input.Fiber,
		Salt:          input.Salt,
	}
}
