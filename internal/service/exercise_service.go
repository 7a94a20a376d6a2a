package service

import (
	"context"
	"fmt"
	"strings"

	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/pkg/apperror"
)

type ExerciseService interface {
	Create(ctx context.Context, name, muscleGroup string) (*model.Exercise, error)
	List(ctx context.Context) ([]model.Exercise, error)
}

type exerciseService struct {
	exercises repository.ExerciseRepository
}

func NewExerciseService(exercises repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exercises: exercises}
}

func (s *exerciseService) Create(ctx context.Context, name, muscleGroup string) (*model.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", apperror.ErrInvalidInput)
	}

	group, err := model.ParseMuscleGroup(muscleGroup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err)
	}

	existing, _ := s.exercises.FindByName(ctx, name)
	if existing != nil {
		return nil, fmt.Errorf("%w: exercise %q already exists", apperror.ErrConflict, name)
	}

	exercise := &model.Exercise{
		Name:        name,
		MuscleGroup: group,
	}

	if err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, err
	}

	return exercise, nil
}

func (s *exerciseService) List(ctx context.Context) ([]model.Exercise, error) {
	return s.exercises.FindAll(ctx)
}
