package service

import (
	"testing"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestSummarizeSessionDay(t *testing.T) {
	entries := []model.PerformanceEntry{
		{SeriesNumber: iptr(1), Reps: fptr(8), Load: fptr(100)},
		{SeriesNumber: iptr(2), Reps: fptr(6), Load: fptr(120)},
		// No series number: not a counted set, but reps still sum.
		{Reps: fptr(10)},
		// Missing reps and load contribute 0.
		{SeriesNumber: iptr(3)},
	}

	summary := SummarizeSessionDay("2026-03-02", entries)

	if summary.TotalSets != 3 {
		t.Errorf("total_sets = %d, want 3", summary.TotalSets)
	}
	if summary.TotalReps != 24 {
		t.Errorf("total_reps = %v, want 24", summary.TotalReps)
	}
	if summary.TotalVolume != 1520 {
		t.Errorf("total_volume = %v, want 1520", summary.TotalVolume)
	}
}

func TestBuildMainSeriesLookup(t *testing.T) {
	sessionID := uuid.New()
	sessions := []model.ProgramSession{
		{ID: sessionID, Exercises: []model.ExerciseEntry{
			{Name: "rowing", MainSeries: iptr(2)},
			{Name: "traction"},
		}},
	}

	lookup := BuildMainSeriesLookup(sessions)

	main := lookup[sessionID.String()]
	if got, ok := main["rowing"]; !ok || got != 2 {
		t.Errorf("rowing main series = %v, want 2", main)
	}
	if _, ok := main["traction"]; ok {
		t.Errorf("entry without main series must not appear in the lookup")
	}

	entry := model.PerformanceEntry{
		ProgramSessionID: &sessionID,
		Exercise:         "rowing",
		SeriesNumber:     iptr(2),
	}
	if !lookup.isMain(entry) {
		t.Errorf("matching series number should be main")
	}

	entry.SeriesNumber = iptr(1)
	if lookup.isMain(entry) {
		t.Errorf("non-matching series number must not be main")
	}

	entry.ProgramSessionID = nil
	if lookup.isMain(entry) {
		t.Errorf("entry without a session can never be main")
	}
}

func TestBuildExerciseSeriesSplitsMainAndOther(t *testing.T) {
	sessionID := uuid.New()
	lookup := BuildMainSeriesLookup([]model.ProgramSession{
		{ID: sessionID, Exercises: []model.ExerciseEntry{
			{Name: "rowing", MainSeries: iptr(1)},
		}},
	})

	d1 := day(t, "2026-03-02")
	d2 := day(t, "2026-03-04")
	entries := []model.PerformanceEntry{
		{ProgramSessionID: &sessionID, Exercise: "rowing", EntryDate: d1, SeriesNumber: iptr(1), Reps: fptr(8), Load: fptr(100)},
		// Duplicate main for the same date: ignored, not averaged.
		{ProgramSessionID: &sessionID, Exercise: "rowing", EntryDate: d1, SeriesNumber: iptr(1), Reps: fptr(5), Load: fptr(999)},
		{ProgramSessionID: &sessionID, Exercise: "rowing", EntryDate: d1, SeriesNumber: iptr(2), Reps: fptr(10), Load: fptr(80)},
		{ProgramSessionID: &sessionID, Exercise: "rowing", EntryDate: d1, SeriesNumber: iptr(3), Reps: fptr(10), Load: fptr(60)},
		{ProgramSessionID: &sessionID, Exercise: "rowing", EntryDate: d2, SeriesNumber: iptr(1), Reps: fptr(8), Load: fptr(105)},
	}

	out := BuildExerciseSeries(entries, lookup)

	series, ok := out["rowing"]
	if !ok {
		t.Fatalf("missing rowing series")
	}

	if len(series.Main) != 2 {
		t.Fatalf("expected 2 main points, got %d", len(series.Main))
	}
	first := series.Main[0]
	if first.Date != "2026-03-02" || *first.Load != 100 {
		t.Errorf("first main point should be the first entry of the date: %+v", first)
	}
	if series.Main[1].Date != "2026-03-04" || *series.Main[1].Load != 105 {
		t.Errorf("main points must be date-ordered: %+v", series.Main[1])
	}

	if len(series.Other) != 1 {
		t.Fatalf("expected 1 other point, got %d", len(series.Other))
	}
	other := series.Other[0]
	if other.Count != 2 || other.AvgLoad != 70 || other.AvgReps != 10 {
		t.Errorf("accessory sets should average per date: %+v", other)
	}
}

func TestTonnageByMuscle(t *testing.T) {
	muscles := map[string]model.MuscleGroup{
		"hack squat": model.MuscleLegs,
		"rowing":     model.MuscleDos,
	}

	d1 := day(t, "2026-03-02")
	entries := []model.PerformanceEntry{
		{Exercise: "hack squat", EntryDate: d1, Reps: fptr(8), Load: fptr(100)},
		{Exercise: "hack squat", EntryDate: d1, Reps: fptr(6), Load: fptr(120)},
		// Missing load: skipped entirely.
		{Exercise: "hack squat", EntryDate: d1, Reps: fptr(10)},
		// Not in the bank: excluded, not zero-filled.
		{Exercise: "exercice inconnu", EntryDate: d1, Reps: fptr(10), Load: fptr(50)},
	}

	out := TonnageByMuscle(entries, muscles)

	legs, ok := out["LEGS"]
	if !ok || len(legs) != 1 {
		t.Fatalf("expected one LEGS point, got %v", out)
	}
	if legs[0].Tonnage != 1520 {
		t.Errorf("tonnage = %v, want 1520", legs[0].Tonnage)
	}
	if _, ok := out["DOS"]; ok {
		t.Errorf("untrained muscle must not appear")
	}
}

func TestBuildWeekOverWeekJournalDiffs(t *testing.T) {
	cur := []model.JournalEntry{
		{Weight: fptr(70), Kcals: iptr(2500)},
		{Weight: fptr(71)},
	}
	prev := []model.JournalEntry{
		{Weight: fptr(71.5)},
	}

	summary := BuildWeekOverWeek("2026-03-02", "2026-02-23", cur, prev, nil, nil, nil)

	if summary.Weight.Current == nil || *summary.Weight.Current != 70.5 {
		t.Errorf("current weight mean wrong: %v", summary.Weight.Current)
	}
	if summary.Weight.Diff == nil || *summary.Weight.Diff != -1.0 {
		t.Errorf("weight diff = %v, want -1.0", summary.Weight.Diff)
	}

	// Kcals only logged this week: diff stays null.
	if summary.Kcals.Current == nil || *summary.Kcals.Current != 2500 {
		t.Errorf("current kcals mean wrong: %v", summary.Kcals.Current)
	}
	if summary.Kcals.Previous != nil || summary.Kcals.Diff != nil {
		t.Errorf("one-sided metric must keep a null diff")
	}

	// Never logged at all.
	if summary.SleepHours.Current != nil || summary.SleepHours.Previous != nil || summary.SleepHours.Diff != nil {
		t.Errorf("unlogged metric must be all null")
	}
}

func TestBuildWeekOverWeekTonnageDefaultsToZero(t *testing.T) {
	muscles := map[string]model.MuscleGroup{
		"hack squat": model.MuscleLegs,
		"rowing":     model.MuscleDos,
	}
	cur := []model.PerformanceEntry{
		{Exercise: "hack squat", Reps: fptr(10), Load: fptr(100)},
	}
	prev := []model.PerformanceEntry{
		{Exercise: "rowing", Reps: fptr(10), Load: fptr(60)},
	}

	summary := BuildWeekOverWeek("2026-03-02", "2026-02-23", nil, nil, cur, prev, muscles)

	legs := summary.Tonnage["LEGS"]
	if legs.Current != 1000 || legs.Previous != 0 || legs.Diff != 1000 {
		t.Errorf("LEGS diff wrong: %+v", legs)
	}

	dos := summary.Tonnage["DOS"]
	if dos.Current != 0 || dos.Previous != 600 || dos.Diff != -600 {
		t.Errorf("a muscle trained only last week still yields a diff: %+v", dos)
	}
}
