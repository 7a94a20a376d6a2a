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

type ProgramService interface {
	Create(ctx context.Context, coachID uuid.UUID, req dto.CreateProgramRequest) (*model.Program, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProgramResponse, error)
	List(ctx context.Context) ([]*model.Program, error)
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.Program, error)
	ReplaceWeek(ctx context.Context, programID uuid.UUID, req dto.ReplaceWeekRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type programService struct {
	programs  repository.ProgramRepository
	exercises repository.ExerciseRepository
	users     repository.UserRepository
}

func NewProgramService(programs repository.ProgramRepository, exercises repository.ExerciseRepository, users repository.UserRepository) ProgramService {
	return &programService{
		programs:  programs,
		exercises: exercises,
		users:     users,
	}
}

func (s *programService) Create(ctx context.Context, coachID uuid.UUID, req dto.CreateProgramRequest) (*model.Program, error) {
	athlete, err := s.users.FindByID(ctx, req.AthleteID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: athlete %s", apperror.ErrNotFound, req.AthleteID)
		}
		return nil, err
	}
	if athlete.Role != model.RoleAthlete {
		return nil, fmt.Errorf("%w: programs can only target athletes", apperror.ErrInvalidInput)
	}

	program := &model.Program{
		Name:      strings.TrimSpace(req.Name),
		AthleteID: req.AthleteID,
		CoachID:   &coachID,
	}
	if program.Name == "" {
		return nil, fmt.Errorf("%w: program name is required", apperror.ErrInvalidInput)
	}

	if err := s.programs.Create(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

func (s *programService) Get(ctx context.Context, id uuid.UUID) (*dto.ProgramResponse, error) {
	program, err := s.programs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: program %s", apperror.ErrNotFound, id)
		}
		return nil, err
	}

	return buildProgramResponse(program), nil
}

func (s *programService) List(ctx context.Context) ([]*model.Program, error) {
	return s.programs.FindAll(ctx)
}

func (s *programService) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.Program, error) {
	return s.programs.FindByAthlete(ctx, athleteID)
}

func (s *programService) ReplaceWeek(ctx context.Context, programID uuid.UUID, req dto.ReplaceWeekRequest) error {
	if _, err := s.programs.FindByID(ctx, programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: program %s", apperror.ErrNotFound, programID)
		}
		return err
	}

	seen := make(map[int]bool, len(req.Days))
	for _, day := range req.Days {
		if seen[day.DayOfWeek] {
			return fmt.Errorf("%w: day %d submitted twice", apperror.ErrInvalidInput, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true
	}

	muscles, err := s.exercises.MuscleGroupsByName(ctx, exerciseNames(req.Days))
	if err != nil {
		return err
	}

	sessions := BuildWeek(req.Days, muscles)

	return s.programs.ReplaceWeek(ctx, programID, sessions)
}

func (s *programService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.programs.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: program %s", apperror.ErrNotFound, id)
		}
		return err
	}

	return s.programs.Delete(ctx, id)
}

func exerciseNames(days []dto.DayProgramInput) []string {
	var names []string
	seen := make(map[string]bool)
	for _, day := range days {
		for _, row := range day.Exercises {
			name := strings.TrimSpace(row.Name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func buildProgramResponse(program *model.Program) *dto.ProgramResponse {
	resp := &dto.ProgramResponse{
		ID:        program.ID,
		Name:      program.Name,
		AthleteID: program.AthleteID,
		CoachID:   program.CoachID,
		CreatedAt: program.CreatedAt.Format("2006-01-02 15:04:05"),
		Sessions:  []dto.SessionResponse{},
	}

	for _, session := range program.Sessions {
		sessionResp := dto.SessionResponse{
			ID:          session.ID,
			DayOfWeek:   session.DayOfWeek,
			SessionName: session.SessionName,
			Exercises:   []dto.ExerciseEntryResponse{},
		}

		for _, entry := range session.Exercises {
			entryResp := dto.ExerciseEntryResponse{
				ID:                entry.ID,
				Position:          entry.Position,
				Name:              entry.Name,
				Muscle:            entry.Muscle,
				Remark:            entry.Remark,
				SeriesDescription: entry.SeriesDescription,
				MainSeries:        entry.MainSeries,
			}
			if entry.SeriesDescription != nil {
				entryResp.Sets = ParseSeriesDescription(*entry.SeriesDescription, entry.MainSeries)
			}
			sessionResp.Exercises = append(sessionResp.Exercises, entryResp)
		}

		resp.Sessions = append(resp.Sessions, sessionResp)
	}

	return resp
}
