package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
	"coachlab.fr/suivicoach/pkg/apperror"
	"github.com/google/uuid"
)

type fakeAvailabilityRepo struct {
	rows []model.Availability

	appliedCreates []model.Availability
	appliedUpdates map[uuid.UUID]bool
	applyCalls     int
}

func (f *fakeAvailabilityRepo) FindInWindow(ctx context.Context, start, end time.Time, location string) ([]model.Availability, error) {
	var out []model.Availability
	for _, row := range f.rows {
		if row.Date.Before(start) || !row.Date.Before(end) {
			continue
		}
		if location != "" && row.Location != location {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Locations(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, row := range f.rows {
		if !seen[row.Location] {
			seen[row.Location] = true
			out = append(out, row.Location)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ApplyChanges(ctx context.Context, creates []model.Availability, updates map[uuid.UUID]bool) error {
	f.applyCalls++
	f.appliedCreates = creates
	f.appliedUpdates = updates
	return nil
}

func fixedNow(t *testing.T, s string) func() time.Time {
	t.Helper()
	d := day(t, s)
	return func() time.Time { return d }
}

func TestCalendarDefaultsWindowAndLocation(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := &availabilityService{
		repo:       repo,
		windowDays: 14,
		defaultLoc: "boutique biotech merignac",
		now:        fixedNow(t, "2026-03-02"),
	}

	calendar, locations, err := svc.Calendar(context.Background(), dto.AvailabilityQuery{})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(calendar) != 14 {
		t.Errorf("default window = %d days, want 14", len(calendar))
	}
	if calendar[0].Date != "2026-03-02" {
		t.Errorf("window starts today, got %s", calendar[0].Date)
	}
	if len(locations) != 1 || locations[0] != "boutique biotech merignac" {
		t.Errorf("empty table falls back to the default location, got %v", locations)
	}
}

func TestCalendarRejectsBadStart(t *testing.T) {
	svc := &availabilityService{
		repo:       &fakeAvailabilityRepo{},
		windowDays: 14,
		now:        fixedNow(t, "2026-03-02"),
	}

	_, _, err := svc.Calendar(context.Background(), dto.AvailabilityQuery{Start: "02/03/2026"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpsertPlansWritesFromSelections(t *testing.T) {
	monday := day(t, "2026-03-02")
	existingID := uuid.New()
	repo := &fakeAvailabilityRepo{
		rows: []model.Availability{
			{ID: existingID, Date: monday, Location: "merignac", Timeslot: model.TimeslotMorning, Available: true},
		},
	}
	svc := &availabilityService{
		repo:       repo,
		windowDays: 14,
		now:        fixedNow(t, "2026-03-02"),
	}

	err := svc.Upsert(context.Background(), dto.UpsertAvailabilityRequest{
		Location: "merignac",
		Selections: map[string]string{
			"2026-03-02": "day",
			"2026-03-03": "none",
		},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if repo.applyCalls != 1 {
		t.Fatalf("expected one ApplyChanges call, got %d", repo.applyCalls)
	}
	if len(repo.appliedCreates) != 1 || repo.appliedCreates[0].Timeslot != model.TimeslotDay {
		t.Errorf("expected a day-slot create, got %+v", repo.appliedCreates)
	}
	if got, ok := repo.appliedUpdates[existingID]; !ok || got {
		t.Errorf("morning row should flip off, updates = %v", repo.appliedUpdates)
	}
}

func TestUpsertNoOpSkipsApply(t *testing.T) {
	monday := day(t, "2026-03-02")
	repo := &fakeAvailabilityRepo{
		rows: []model.Availability{
			{ID: uuid.New(), Date: monday, Location: "merignac", Timeslot: model.TimeslotDay, Available: true},
		},
	}
	svc := &availabilityService{repo: repo, windowDays: 14, now: fixedNow(t, "2026-03-02")}

	err := svc.Upsert(context.Background(), dto.UpsertAvailabilityRequest{
		Location:   "merignac",
		Selections: map[string]string{"2026-03-02": "day"},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if repo.applyCalls != 0 {
		t.Errorf("identical resubmission must not hit the repository")
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := &availabilityService{repo: &fakeAvailabilityRepo{}, windowDays: 14, now: fixedNow(t, "2026-03-02")}

	err := svc.Upsert(context.Background(), dto.UpsertAvailabilityRequest{Location: "merignac"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("empty selections: expected ErrInvalidInput, got %v", err)
	}

	err = svc.Upsert(context.Background(), dto.UpsertAvailabilityRequest{
		Location:   "merignac",
		Selections: map[string]string{"2026-03-02": "soir"},
	})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("unknown timeslot: expected ErrInvalidInput, got %v", err)
	}
}
