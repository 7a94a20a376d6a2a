package repository

import (
	"context"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(ctx context.Context, food *model.Food) error
	Save(ctx context.Context, food *model.Food) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Food, error)
	FindByName(ctx context.Context, name string) (*model.Food, error)
	FindAll(ctx context.Context) ([]model.Food, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Food, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(ctx context.Context, food *model.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) Save(ctx context.Context, food *model.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Food, error) {
	var food model.Food
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindByName(ctx context.Context, name string) (*model.Food, error) {
	var food model.Food
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindAll(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	if err := r.db.WithContext(ctx).Order("name").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Food, error) {
	foods := make(map[uuid.UUID]model.Food, len(ids))
	if len(ids) == 0 {
		return foods, nil
	}

	var rows []model.Food
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, f := range rows {
		foods[f.ID] = f
	}

	return foods, nil
}
