package service

import (
	"context"
	"fmt"
	"time"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/internal/repository"
	"coachlab.fr/suivicoach/pkg/apperror"
)

type AvailabilityService interface {
	Calendar(ctx context.Context, query dto.AvailabilityQuery) ([]dto.DayAvailability, []string, error)
	Upsert(ctx context.Context, req dto.UpsertAvailabilityRequest) error
}

type availabilityService struct {
	repo       repository.AvailabilityRepository
	windowDays int
	defaultLoc string
	now        func() time.Time
}

func NewAvailabilityService(repo repository.AvailabilityRepository, windowDays int, defaultLocation string) AvailabilityService {
	if windowDays <= 0 {
		windowDays = 14
	}
	return &availabilityService{
		repo:       repo,
		windowDays: windowDays,
		defaultLoc: defaultLocation,
		now:        time.Now,
	}
}

func (s *availabilityService) Calendar(ctx context.Context, query dto.AvailabilityQuery) ([]dto.DayAvailability, []string, error) {
	start := dateOnly(s.now())
	if query.Start != "" {
		parsed, err := parseDate(query.Start)
		if err != nil {
			return nil, nil, err
		}
		start = parsed
	}

	days := query.Days
	if days <= 0 {
		days = s.windowDays
	}

	rows, err := s.repo.FindInWindow(ctx, start, start.AddDate(0, 0, days), query.Location)
	if err != nil {
		return nil, nil, err
	}

	locations, err := s.repo.Locations(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(locations) == 0 {
		locations = []string{s.defaultLoc}
	}

	return BuildCalendar(start, days, rows), locations, nil
}

func (s *availabilityService) Upsert(ctx context.Context, req dto.UpsertAvailabilityRequest) error {
	if len(req.Selections) == 0 {
		return fmt.Errorf("%w: no selections submitted", apperror.ErrInvalidInput)
	}

	selections := make(map[time.Time]model.Timeslot, len(req.Selections))
	var windowStart, windowEnd time.Time
	for dateStr, slotStr := range req.Selections {
		day, err := parseDate(dateStr)
		if err != nil {
			return err
		}

		// "none" clears the day: no slot matches, so every existing
		// available row gets flipped off.
		var slot model.Timeslot
		if slotStr != "" && slotStr != "none" {
			slot, err = model.ParseTimeslot(slotStr)
			if err != nil {
				return fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err)
			}
		}
		selections[day] = slot

		if windowStart.IsZero() || day.Before(windowStart) {
			windowStart = day
		}
		if windowEnd.IsZero() || day.After(windowEnd) {
			windowEnd = day
		}
	}

	existing, err := s.repo.FindInWindow(ctx, windowStart, windowEnd.AddDate(0, 0, 1), req.Location)
	if err != nil {
		return err
	}

	creates, updates := PlanSlotWrites(req.Location, selections, existing)
	if len(creates) == 0 && len(updates) == 0 {
		return nil
	}

	return s.repo.ApplyChanges(ctx, creates, updates)
}
