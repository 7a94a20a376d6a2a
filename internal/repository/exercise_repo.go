package repository

import (
	"context"

	"coachlab.fr/suivicoach/internal/model"
	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	FindAll(ctx context.Context) ([]model.Exercise, error)
	FindByName(ctx context.Context, name string) (*model.Exercise, error)
	// MuscleGroupsByName resolves a batch of exercise names to their
	// bank muscle groups. Names with no exact match are absent from
	// the result.
	MuscleGroupsByName(ctx context.Context, names []string) (map[string]model.MuscleGroup, error)
	Count(ctx context.Context) (int64, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) FindAll(ctx context.Context) ([]model.Exercise, error) {
	var exercises []model.Exercise
	if err := r.db.WithContext(ctx).Order("name").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *exerciseRepository) FindByName(ctx context.Context, name string) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) MuscleGroupsByName(ctx context.Context, names []string) (map[string]model.MuscleGroup, error) {
	groups := make(map[string]model.MuscleGroup, len(names))
	if len(names) == 0 {
		return groups, nil
	}

	var exercises []model.Exercise
	if err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&exercises).Error; err != nil {
		return nil, err
	}

	for _, ex := range exercises {
		groups[ex.Name] = ex.MuscleGroup
	}

	return groups, nil
}

func (r *exerciseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Exercise{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
