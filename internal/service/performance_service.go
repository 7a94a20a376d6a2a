package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PerformanceService interface {
	Log(ctx context.Context, athleteID uuid.UUID, input dto.PerformanceEntryInput) (*model.PerformanceEntry, error)
	Update(ctx context.Context, athleteID, entryID uuid.UUID, input dto.PerformanceEntryInput) (*model.PerformanceEntry, error)
	ListBySession(ctx context.Context, athleteID, sessionID uuid.UUID) ([]model.PerformanceEntry, error)
	SessionDaySummary(ctx context.Context, athleteID, sessionID uuid.UUID, date string) (*dto.SessionDaySummary, error)
	ExerciseSeries(ctx context.Context, athleteID uuid.UUID, filter repository.PerformanceFilter) (map[string]dto.ExerciseSeries, error)
	Tonnage(ctx context.Context, athleteID uuid.UUID, filter repository.PerformanceFilter) (map[string][]dto.TonnagePoint, error)
	WeekOverWeek(ctx context.Context, athleteID uuid.UUID, today string) (*dto.WeekOverWeekSummary, error)
}

type performanceService struct {
	performances repository.PerformanceRepository
	programs     repository.ProgramRepository
	exercises    repository.ExerciseRepository
	journals     repository.JournalRepository
	now          func() time.Time
}

func NewPerformanceService(
	performances repository.PerformanceRepository,
	programs repository.ProgramRepository,
	exercises repository.ExerciseRepository,
	journals repository.JournalRepository,
) PerformanceService {
	return &performanceService{
		performances: performances,
		programs:     programs,
		exercises:    exercises,
		journals:     journals,
		now:          time.Now,
	}
}

func (s *performanceService) Log(ctx context.Context, athleteID uuid.UUID, input dto.PerformanceEntryInput) (*model.PerformanceEntry, error) {
	entry := &model.PerformanceEntry{
		AthleteID:        athleteID,
		Exercise:         strings.TrimSpace(input.Exercise),
		SeriesNumber:     input.SeriesNumber,
		Reps:             input.Reps,
		Load:             input.Load,
		Notes:            input.Notes,
		ProgramSessionID: input.ProgramSessionID,
	}
	if entry.Exercise == "" {
		return nil, fmt.Errorf("%w: exercise name is required", apperror.ErrInvalidInput)
	}

	entry.EntryDate = dateOnly(s.now())
	if input.EntryDate != "" {
		parsed, err := parseDate(input.EntryDate)
		if err != nil {
			return nil, err
		}
		entry.EntryDate = parsed
	}

	if input.ProgramSessionID != nil {
		if err := s.checkSessionOwnership(ctx, athleteID, *input.ProgramSessionID); err != nil {
			return nil, err
		}
	}

	if err := s.performances.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *performanceService) Update(ctx context.Context, athleteID, entryID uuid.UUID, input dto.PerformanceEntryInput) (*model.PerformanceEntry, error) {
	entry, err := s.performances.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: performance entry %s", apperror.ErrNotFound, entryID)
		}
		return nil, err
	}
	if entry.AthleteID != athleteID {
		return nil, apperror.ErrForbidden
	}

	exercise := strings.TrimSpace(input.Exercise)
	if exercise == "" {
		return nil, fmt.Errorf("%w: exercise name is required", apperror.ErrInvalidInput)
	}

	if input.EntryDate != "" {
		parsed, err := parseDate(input.EntryDate)
		if err != nil {
			return nil, err
		}
		entry.EntryDate = parsed
	}

	entry.Exercise = exercise
	entry.SeriesNumber = input.SeriesNumber
	entry.Reps = input.Reps
	entry.Load = input.Load
	entry.Notes = input.Notes

	if err := s.performances.Save(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *performanceService) ListBySession(ctx context.Context, athleteID, sessionID uuid.UUID) ([]model.PerformanceEntry, error) {
	if err := s.checkSessionOwnership(ctx, athleteID, sessionID); err != nil {
		return nil, err
	}
	return s.performances.FindBySession(ctx, athleteID, sessionID)
}

func (s *performanceService) SessionDaySummary(ctx context.Context, athleteID, sessionID uuid.UUID, date string) (*dto.SessionDaySummary, error) {
	if err := s.checkSessionOwnership(ctx, athleteID, sessionID); err != nil {
		return nil, err
	}

	day := dateOnly(s.now())
	if date != "" {
		parsed, err := parseDate(date)
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	entries, err := s.performances.FindBySessionAndDate(ctx, athleteID, sessionID, day)
	if err != nil {
		return nil, err
	}

	summary := SummarizeSessionDay(day.Format(dateLayout), entries)
	return &summary, nil
}

func (s *performanceService) ExerciseSeries(ctx context.Context, athleteID uuid.UUID, filter repository.PerformanceFilter) (map[string]dto.ExerciseSeries, error) {
	entries, err := s.performances.FindByAthlete(ctx, athleteID, filter)
	if err != nil {
		return nil, err
	}

	sessions, err := s.programs.FindSessionsByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	return BuildExerciseSeries(entries, BuildMainSeriesLookup(sessions)), nil
}

func (s *performanceService) Tonnage(ctx context.Context, athleteID uuid.UUID, filter repository.PerformanceFilter) (map[string][]dto.TonnagePoint, error) {
	entries, err := s.performances.FindByAthlete(ctx, athleteID, filter)
	if err != nil {
		return nil, err
	}

	muscles, err := s.muscleMap(ctx)
	if err != nil {
		return nil, err
	}

	return TonnageByMuscle(entries, muscles), nil
}

func (s *performanceService) WeekOverWeek(ctx context.Context, athleteID uuid.UUID, today string) (*dto.WeekOverWeekSummary, error) {
	day := dateOnly(s.now())
	if today != "" {
		parsed, err := parseDate(today)
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	weekStart := mondayOf(day)
	prevWeekStart := weekStart.AddDate(0, 0, -7)
	weekEnd := weekStart.AddDate(0, 0, 7)

	journalCur, err := s.journals.FindInRange(ctx, athleteID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	journalPrev, err := s.journals.FindInRange(ctx, athleteID, prevWeekStart, weekStart)
	if err != nil {
		return nil, err
	}

	perfCur, err := s.performances.FindByAthlete(ctx, athleteID, repository.PerformanceFilter{From: weekStart, To: weekEnd})
	if err != nil {
		return nil, err
	}
	perfPrev, err := s.performances.FindByAthlete(ctx, athleteID, repository.PerformanceFilter{From: prevWeekStart, To: weekStart})
	if err != nil {
		return nil, err
	}

	muscles, err := s.muscleMap(ctx)
	if err != nil {
		return nil, err
	}

	summary := BuildWeekOverWeek(
		weekStart.Format(dateLayout),
		prevWeekStart.Format(dateLayout),
		journalCur, journalPrev,
		perfCur, perfPrev,
		muscles,
	)
	return &summary, nil
}

func (s *performanceService) checkSessionOwnership(ctx context.Context, athleteID, sessionID uuid.UUID) error {
	session, err := s.programs.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: session %s", apperror.ErrNotFound, sessionID)
		}
		return err
	}

	program, err := s.programs.FindByID(ctx, session.ProgramID)
	if err != nil {
		return err
	}
	if program.AthleteID != athleteID {
		return apperror.ErrForbidden
	}

	return nil
}

func (s *performanceService) muscleMap(ctx context.Context) (map[string]model.MuscleGroup, error) {
	bank, err := s.exercises.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	muscles := make(map[string]model.MuscleGroup, len(bank))
	for _, ex := range bank {
		muscles[ex.Name] = ex.MuscleGroup
	}
	return muscles, nil
}
