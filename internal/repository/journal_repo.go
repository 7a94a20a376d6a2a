package repository

import (
	"context"
	"time"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalRepository interface {
	Create(ctx context.Context, entry *model.JournalEntry) error
	Save(ctx context.Context, entry *model.JournalEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.JournalEntry, error)
	FindByAthleteAndDate(ctx context.Context, athleteID uuid.UUID, date time.Time) (*model.JournalEntry, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]model.JournalEntry, error)
	FindSince(ctx context.Context, athleteID uuid.UUID, cutoff time.Time) ([]model.JournalEntry, error)
	FindInRange(ctx context.Context, athleteID uuid.UUID, from, to time.Time) ([]model.JournalEntry, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *model.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) Save(ctx context.Context, entry *model.JournalEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) FindByAthleteAndDate(ctx context.Context, athleteID uuid.UUID, date time.Time) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND entry_date = ?", athleteID, date).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, limit int) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("entry_date DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *journalRepository) FindSince(ctx context.Context, athleteID uuid.UUID, cutoff time.Time) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND entry_date >= ?", athleteID, cutoff).
		Order("entry_date").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *journalRepository) FindInRange(ctx context.Context, athleteID uuid.UUID, from, to time.Time) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND entry_date >= ? AND entry_date < ?", athleteID, from, to).
		Order("entry_date").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
