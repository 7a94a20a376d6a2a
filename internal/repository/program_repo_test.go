package repository

import (
	"context"
	"testing"

	"coachlab.fr/suivicoach/internal/model"
)

func TestReplaceWeekSwapsSessions(t *testing.T) {
	db := testDB(t)
	repo := NewProgramRepository(db)
	ctx := context.Background()

	athlete := model.User{Username: "lea", PasswordHash: "x", Role: model.RoleAthlete}
	if err := db.Create(&athlete).Error; err != nil {
		t.Fatalf("seed athlete: %v", err)
	}

	program := model.Program{Name: "prépa été", AthleteID: athlete.ID}
	if err := repo.Create(ctx, &program); err != nil {
		t.Fatalf("create program: %v", err)
	}

	push := "push"
	first := []model.ProgramSession{
		{DayOfWeek: 0, SessionName: &push, Exercises: []model.ExerciseEntry{
			{Position: 0, Name: "développé couché haltères"},
			{Position: 1, Name: "dips"},
		}},
	}
	if err := repo.ReplaceWeek(ctx, program.ID, first); err != nil {
		t.Fatalf("first ReplaceWeek: %v", err)
	}

	legs := "legs"
	second := []model.ProgramSession{
		{DayOfWeek: 2, SessionName: &legs, Exercises: []model.ExerciseEntry{
			{Position: 0, Name: "hack squat"},
		}},
		{DayOfWeek: 4, Exercises: []model.ExerciseEntry{
			{Position: 0, Name: "rowing"},
		}},
	}
	if err := repo.ReplaceWeek(ctx, program.ID, second); err != nil {
		t.Fatalf("second ReplaceWeek: %v", err)
	}

	got, err := repo.FindByID(ctx, program.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(got.Sessions) != 2 {
		t.Fatalf("old sessions must be gone, got %d", len(got.Sessions))
	}
	if got.Sessions[0].DayOfWeek != 2 || got.Sessions[1].DayOfWeek != 4 {
		t.Errorf("sessions out of order: %d, %d", got.Sessions[0].DayOfWeek, got.Sessions[1].DayOfWeek)
	}
	if len(got.Sessions[0].Exercises) != 1 || got.Sessions[0].Exercises[0].Name != "hack squat" {
		t.Errorf("entries not replaced: %+v", got.Sessions[0].Exercises)
	}

	// Entries of the first save must not linger.
	var orphanCount int64
	if err := db.Model(&model.ExerciseEntry{}).Count(&orphanCount).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if orphanCount != 2 {
		t.Errorf("expected 2 entries total, got %d", orphanCount)
	}
}

func TestFindSessionsByAthlete(t *testing.T) {
	db := testDB(t)
	repo := NewProgramRepository(db)
	ctx := context.Background()

	lea := model.User{Username: "lea", PasswordHash: "x", Role: model.RoleAthlete}
	marc := model.User{Username: "marc", PasswordHash: "x", Role: model.RoleAthlete}
	for _, u := range []*model.User{&lea, &marc} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	mine := model.Program{Name: "mine", AthleteID: lea.ID}
	other := model.Program{Name: "other", AthleteID: marc.ID}
	for _, p := range []*model.Program{&mine, &other} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create program: %v", err)
		}
	}

	if err := repo.ReplaceWeek(ctx, mine.ID, []model.ProgramSession{{DayOfWeek: 1}}); err != nil {
		t.Fatalf("ReplaceWeek mine: %v", err)
	}
	if err := repo.ReplaceWeek(ctx, other.ID, []model.ProgramSession{{DayOfWeek: 3}}); err != nil {
		t.Fatalf("ReplaceWeek other: %v", err)
	}

	sessions, err := repo.FindSessionsByAthlete(ctx, lea.ID)
	if err != nil {
		t.Fatalf("FindSessionsByAthlete: %v", err)
	}
	if len(sessions) != 1 || sessions[0].DayOfWeek != 1 {
		t.Errorf("expected only lea's session, got %+v", sessions)
	}
}
