package service

import (
	"testing"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
)

func TestBuildWeekDropsEmptyDaysAndBlankRows(t *testing.T) {
	days := []dto.DayProgramInput{
		{DayOfWeek: 0, SessionName: "push", Exercises: []dto.ExerciseRowInput{
			{Name: "développé couché haltères"},
			{Name: "   "},
			{Name: "dips"},
		}},
		{DayOfWeek: 1, SessionName: "", Exercises: []dto.ExerciseRowInput{{Name: ""}}},
		{DayOfWeek: 2, SessionName: "legs"},
	}

	sessions := BuildWeek(days, nil)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	push := sessions[0]
	if push.DayOfWeek != 0 {
		t.Errorf("day_of_week = %d, want 0", push.DayOfWeek)
	}
	if len(push.Exercises) != 2 {
		t.Fatalf("blank rows must be dropped, got %d entries", len(push.Exercises))
	}
	for i, entry := range push.Exercises {
		if entry.Position != i {
			t.Errorf("positions must be gapless, entry %d has position %d", i, entry.Position)
		}
	}

	legs := sessions[1]
	if legs.SessionName == nil || *legs.SessionName != "legs" {
		t.Errorf("a named session survives without exercises")
	}
	if len(legs.Exercises) != 0 {
		t.Errorf("expected no exercises, got %d", len(legs.Exercises))
	}
}

func TestBuildWeekMuscleSnapshot(t *testing.T) {
	muscles := map[string]model.MuscleGroup{
		"hack squat": model.MuscleLegs,
	}
	days := []dto.DayProgramInput{
		{DayOfWeek: 3, Exercises: []dto.ExerciseRowInput{
			{Name: "hack squat"},
			{Name: "exercice inconnu"},
		}},
	}

	sessions := BuildWeek(days, muscles)
	entries := sessions[0].Exercises

	if entries[0].Muscle == nil || *entries[0].Muscle != "LEGS" {
		t.Errorf("bank match should snapshot the muscle group")
	}
	if entries[1].Muscle != nil {
		t.Errorf("bank miss should leave muscle null, got %q", *entries[1].Muscle)
	}
}

func TestBuildWeekMainSeriesParsing(t *testing.T) {
	days := []dto.DayProgramInput{
		{DayOfWeek: 0, Exercises: []dto.ExerciseRowInput{
			{Name: "rowing", MainSeries: "2"},
			{Name: "traction", MainSeries: ""},
			{Name: "curl poulie", MainSeries: "abc"},
		}},
	}

	entries := BuildWeek(days, nil)[0].Exercises

	if entries[0].MainSeries == nil || *entries[0].MainSeries != 2 {
		t.Errorf("numeric main series should parse")
	}
	if entries[1].MainSeries != nil {
		t.Errorf("blank main series should stay null")
	}
	if entries[2].MainSeries != nil {
		t.Errorf("non-numeric main series should stay null, not fail")
	}
}

func TestParseSeriesDescription(t *testing.T) {
	main := 2
	sets := ParseSeriesDescription("8 reps 100kg\n6 reps 120kg", &main)

	if len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(sets))
	}
	if sets[0].Number != 1 || sets[0].Text != "8 reps 100kg" || sets[0].IsMain {
		t.Errorf("set 1 wrong: %+v", sets[0])
	}
	if sets[1].Number != 2 || sets[1].Text != "6 reps 120kg" || !sets[1].IsMain {
		t.Errorf("set 2 should be the main set: %+v", sets[1])
	}
}

func TestParseSeriesDescriptionSkipsBlankLinesAndCR(t *testing.T) {
	sets := ParseSeriesDescription("4x10 60kg\r\n\n  \n3x8 70kg\r", nil)

	if len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(sets))
	}
	if sets[0].Text != "4x10 60kg" || sets[1].Text != "3x8 70kg" {
		t.Errorf("carriage returns should be stripped: %+v", sets)
	}
	if sets[1].Number != 2 {
		t.Errorf("numbering skips blank lines, got %d", sets[1].Number)
	}
	for _, s := range sets {
		if s.IsMain {
			t.Errorf("no main series given, no set may be main")
		}
	}
}
