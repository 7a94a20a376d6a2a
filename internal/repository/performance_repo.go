package repository

import (
	"context"
	"time"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceFilter restricts the athlete's performance log. Zero
// values leave the corresponding dimension unfiltered.
type PerformanceFilter struct {
	Exercise  string
	SessionID *uuid.UUID
	From      time.Time
	To        time.Time
}

type PerformanceRepository interface {
	Create(ctx context.Context, entry *model.PerformanceEntry) error
	Save(ctx context.Context, entry *model.PerformanceEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PerformanceEntry, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID, filter PerformanceFilter) ([]model.PerformanceEntry, error)
	FindBySession(ctx context.Context, athleteID, sessionID uuid.UUID) ([]model.PerformanceEntry, error)
	FindBySessionAndDate(ctx context.Context, athleteID, sessionID uuid.UUID, date time.Time) ([]model.PerformanceEntry, error)
}

type performanceRepository struct {
	db *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) Create(ctx context.Context, entry *model.PerformanceEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *performanceRepository) Save(ctx context.Context, entry *model.PerformanceEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *performanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PerformanceEntry, error) {
	var entry model.PerformanceEntry
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *performanceRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID, filter PerformanceFilter) ([]model.PerformanceEntry, error) {
	q := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID)

	if filter.Exercise != "" {
		q = q.Where("exercise = ?", filter.Exercise)
	}
	if filter.SessionID != nil {
		q = q.Where("program_session_id = ?", *filter.SessionID)
	}
	if !filter.From.IsZero() {
		q = q.Where("entry_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("entry_date < ?", filter.To)
	}

	var entries []model.PerformanceEntry
	if err := q.Order("entry_date, created_at").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *performanceRepository) FindBySession(ctx context.Context, athleteID, sessionID uuid.UUID) ([]model.PerformanceEntry, error) {
	var entries []model.PerformanceEntry
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND program_session_id = ?", athleteID, sessionID).
		Order("entry_date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *performanceRepository) FindBySessionAndDate(ctx context.Context, athleteID, sessionID uuid.UUID, date time.Time) ([]model.PerformanceEntry, error) {
	var entries []model.PerformanceEntry
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ? AND program_session_id = ? AND entry_date = ?", athleteID, sessionID, date).
		Order("created_at").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
