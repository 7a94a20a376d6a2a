package repository

import (
	"context"
	"time"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	FindInWindow(ctx context.Context, start, end time.Time, location string) ([]model.Availability, error)
	Locations(ctx context.Context) ([]string, error)
	// ApplyChanges persists one availability submission atomically:
	// new rows are inserted, existing rows only flip their Available
	// flag. Rows are never deleted.
	ApplyChanges(ctx context.Context, creates []model.Availability, updates map[uuid.UUID]bool) error
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) FindInWindow(ctx context.Context, start, end time.Time, location string) ([]model.Availability, error) {
	q := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end)
	if location != "" {
		q = q.Where("location = ?", location)
	}

	var rows []model.Availability
	if err := q.Order("date").Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *availabilityRepository) Locations(ctx context.Context) ([]string, error) {
	var locations []string
	if err := r.db.WithContext(ctx).
		Model(&model.Availability{}).
		Distinct("location").
		Order("location").
		Pluck("location", &locations).Error; err != nil {
		return nil, err
	}

	return locations, nil
}

func (r *availabilityRepository) ApplyChanges(ctx context.Context, creates []model.Availability, updates map[uuid.UUID]bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range creates {
			if err := tx.Create(&creates[i]).Error; err != nil {
				return err
			}
		}

		for id, available := range updates {
			if err := tx.Model(&model.Availability{}).
				Where("id = ?", id).
				Update("available", available).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
