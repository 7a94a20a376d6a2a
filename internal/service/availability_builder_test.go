package service

import (
	"testing"
	"time"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestBuildCalendarDaySlotOverridesOthers(t *testing.T) {
	start := day(t, "2026-03-02")
	rows := []model.Availability{
		{Date: start, Timeslot: model.TimeslotMorning, Available: true},
		{Date: start, Timeslot: model.TimeslotDay, Available: true},
		{Date: start, Timeslot: model.TimeslotAfternoon, Available: true},
	}

	calendar := BuildCalendar(start, 1, rows)
	if len(calendar) != 1 {
		t.Fatalf("expected 1 day, got %d", len(calendar))
	}

	got := calendar[0]
	if !got.Slots.Day || got.Slots.Morning || got.Slots.Afternoon {
		t.Errorf("day slot should suppress morning and afternoon, got %+v", got.Slots)
	}
	if got.Selected != "day" {
		t.Errorf("selected = %q, want %q", got.Selected, "day")
	}
}

func TestBuildCalendarUnavailableDayDoesNotSuppress(t *testing.T) {
	start := day(t, "2026-03-02")
	rows := []model.Availability{
		{Date: start, Timeslot: model.TimeslotDay, Available: false},
		{Date: start, Timeslot: model.TimeslotMorning, Available: true},
	}

	calendar := BuildCalendar(start, 1, rows)
	got := calendar[0]
	if got.Slots.Day {
		t.Errorf("unavailable day row must not set the day flag")
	}
	if !got.Slots.Morning {
		t.Errorf("morning should stay available")
	}
	if got.Selected != "morning" {
		t.Errorf("selected = %q, want %q", got.Selected, "morning")
	}
}

func TestBuildCalendarWindowAndEmptyDays(t *testing.T) {
	start := day(t, "2026-03-02")
	rows := []model.Availability{
		{Date: start.AddDate(0, 0, 3), Timeslot: model.TimeslotAfternoon, Available: true},
		// Outside the window, must be ignored.
		{Date: start.AddDate(0, 0, 20), Timeslot: model.TimeslotDay, Available: true},
	}

	calendar := BuildCalendar(start, 14, rows)
	if len(calendar) != 14 {
		t.Fatalf("expected 14 days, got %d", len(calendar))
	}
	if calendar[0].Date != "2026-03-02" || calendar[13].Date != "2026-03-15" {
		t.Errorf("window bounds wrong: %s .. %s", calendar[0].Date, calendar[13].Date)
	}

	for i, d := range calendar {
		if i == 3 {
			if d.Selected != "afternoon" {
				t.Errorf("day 3 selected = %q, want afternoon", d.Selected)
			}
			continue
		}
		if d.Selected != "none" {
			t.Errorf("day %d selected = %q, want none", i, d.Selected)
		}
	}
}

func TestPlanSlotWritesFreshSelection(t *testing.T) {
	monday := day(t, "2026-03-02")
	selections := map[time.Time]model.Timeslot{
		monday: model.TimeslotMorning,
	}

	creates, updates := PlanSlotWrites("merignac", selections, nil)

	if len(creates) != 1 {
		t.Fatalf("expected 1 create, got %d", len(creates))
	}
	row := creates[0]
	if row.Timeslot != model.TimeslotMorning || !row.Available || row.Location != "merignac" {
		t.Errorf("unexpected create row: %+v", row)
	}
	if len(updates) != 0 {
		t.Errorf("expected no updates, got %d", len(updates))
	}
}

func TestPlanSlotWritesSwitchSlotKeepsHistory(t *testing.T) {
	monday := day(t, "2026-03-02")
	morningID := uuid.New()
	existing := []model.Availability{
		{ID: morningID, Date: monday, Location: "merignac", Timeslot: model.TimeslotMorning, Available: true},
	}

	creates, updates := PlanSlotWrites("merignac", map[time.Time]model.Timeslot{
		monday: model.TimeslotAfternoon,
	}, existing)

	if len(creates) != 1 || creates[0].Timeslot != model.TimeslotAfternoon {
		t.Fatalf("expected afternoon create, got %+v", creates)
	}
	if got, ok := updates[morningID]; !ok || got {
		t.Errorf("morning row should flip to unavailable, updates = %v", updates)
	}
}

func TestPlanSlotWritesResubmitIsNoOp(t *testing.T) {
	monday := day(t, "2026-03-02")
	existing := []model.Availability{
		{ID: uuid.New(), Date: monday, Location: "merignac", Timeslot: model.TimeslotMorning, Available: true},
		{ID: uuid.New(), Date: monday, Location: "merignac", Timeslot: model.TimeslotAfternoon, Available: false},
	}

	creates, updates := PlanSlotWrites("merignac", map[time.Time]model.Timeslot{
		monday: model.TimeslotMorning,
	}, existing)

	if len(creates) != 0 || len(updates) != 0 {
		t.Errorf("resubmitting the same selection must write nothing, got creates=%d updates=%d", len(creates), len(updates))
	}
}

func TestPlanSlotWritesClearSelection(t *testing.T) {
	monday := day(t, "2026-03-02")
	dayID := uuid.New()
	existing := []model.Availability{
		{ID: dayID, Date: monday, Location: "merignac", Timeslot: model.TimeslotDay, Available: true},
	}

	// Empty timeslot means "none": no slot matches, everything
	// available flips off, no row is deleted.
	creates, updates := PlanSlotWrites("merignac", map[time.Time]model.Timeslot{
		monday: "",
	}, existing)

	if len(creates) != 0 {
		t.Errorf("clearing must not create rows, got %d", len(creates))
	}
	if got, ok := updates[dayID]; !ok || got {
		t.Errorf("day row should flip to unavailable, updates = %v", updates)
	}
}

func TestPlanSlotWritesIgnoresOtherLocations(t *testing.T) {
	monday := day(t, "2026-03-02")
	otherID := uuid.New()
	existing := []model.Availability{
		{ID: otherID, Date: monday, Location: "bordeaux", Timeslot: model.TimeslotMorning, Available: true},
	}

	creates, updates := PlanSlotWrites("merignac", map[time.Time]model.Timeslot{
		monday: model.TimeslotMorning,
	}, existing)

	if len(creates) != 1 {
		t.Fatalf("row at another location must not satisfy the selection, creates=%d", len(creates))
	}
	if _, ok := updates[otherID]; ok {
		t.Errorf("row at another location must not be touched")
	}
}
