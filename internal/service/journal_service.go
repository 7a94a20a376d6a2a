package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// At most this many entries come back in the athlete's journal list.
const journalListLimit = 200

// Coach charts read back this far.
const journalHistoryDays = 180

type JournalService interface {
	Create(ctx context.Context, athleteID uuid.UUID, input dto.JournalEntryInput) (*model.JournalEntry, error)
	Update(ctx context.Context, athleteID, entryID uuid.UUID, input dto.JournalEntryInput) (*model.JournalEntry, error)
	Get(ctx context.Context, athleteID, entryID uuid.UUID) (*model.JournalEntry, error)
	List(ctx context.Context, athleteID uuid.UUID) ([]model.JournalEntry, error)
	// History feeds the coach stats charts: one point per day over the
	// trailing window, oldest first.
	History(ctx context.Context, athleteID uuid.UUID) ([]dto.JournalPoint, error)
}

type journalService struct {
	journals repository.JournalRepository
	now      func() time.Time
}

func NewJournalService(journals repository.JournalRepository) JournalService {
	return &journalService{
		journals: journals,
		now:      time.Now,
	}
}

func (s *journalService) Create(ctx context.Context, athleteID uuid.UUID, input dto.JournalEntryInput) (*model.JournalEntry, error) {
	entryDate, err := parseDate(input.EntryDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.journals.FindByAthleteAndDate(ctx, athleteID, entryDate)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: an entry already exists for %s", apperror.ErrConflict, input.EntryDate)
	}

	entry := &model.JournalEntry{
		AthleteID: athleteID,
		EntryDate: entryDate,
	}
	applyJournalInput(entry, input)

	if err := s.journals.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *journalService) Update(ctx context.Context, athleteID, entryID uuid.UUID, input dto.JournalEntryInput) (*model.JournalEntry, error) {
	entry, err := s.journals.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: journal entry %s", apperror.ErrNotFound, entryID)
		}
		return nil, err
	}
	if entry.AthleteID != athleteID {
		return nil, apperror.ErrForbidden
	}

	entryDate, err := parseDate(input.EntryDate)
	if err != nil {
		return nil, err
	}

	// Moving the entry to a date that already has one is rejected.
	other, err := s.journals.FindByAthleteAndDate(ctx, athleteID, entryDate)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if other != nil && other.ID != entry.ID {
		return nil, fmt.Errorf("%w: another entry already exists for %s", apperror.ErrConflict, input.EntryDate)
	}

	entry.EntryDate = entryDate
	applyJournalInput(entry, input)

	if err := s.journals.Save(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *journalService) Get(ctx context.Context, athleteID, entryID uuid.UUID) (*model.JournalEntry, error) {
	entry, err := s.journals.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: journal entry %s", apperror.ErrNotFound, entryID)
		}
		return nil, err
	}
	if entry.AthleteID != athleteID {
		return nil, apperror.ErrForbidden
	}

	return entry, nil
}

func (s *journalService) List(ctx context.Context, athleteID uuid.UUID) ([]model.JournalEntry, error) {
	return s.journals.FindByAthlete(ctx, athleteID, journalListLimit)
}

func (s *journalService) History(ctx context.Context, athleteID uuid.UUID) ([]dto.JournalPoint, error) {
	cutoff := dateOnly(s.now()).AddDate(0, 0, -journalHistoryDays)
	entries, err := s.journals.FindSince(ctx, athleteID, cutoff)
	if err != nil {
		return nil, err
	}

	points := make([]dto.JournalPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, dto.JournalPoint{
			Date:       dateOnly(e.EntryDate).Format(dateLayout),
			Weight:     e.Weight,
			Kcals:      e.Kcals,
			WaterML:    e.WaterML,
			SleepHours: e.SleepHours,
			Energy:     e.Energy,
			Stress:     e.Stress,
		})
	}

	return points, nil
}

func applyJournalInput(entry *model.JournalEntry, input dto.JournalEntryInput) {
	entry.Weight = input.Weight
	entry.Protein = input.Protein
	entry.Carbs = input.Carbs
	entry.Fats = input.Fats
	entry.Kcals = input.Kcals
	entry.WaterML = input.WaterML
	entry.Steps = input.Steps
	entry.SleepHours = input.SleepHours
	entry.Digestion = input.Digestion
	entry.Energy = input.Energy
	entry.Stress = input.Stress
	entry.Hunger = input.Hunger
	entry.FoodQuality = input.FoodQuality
	entry.MenstrualCycle = input.MenstrualCycle
}
