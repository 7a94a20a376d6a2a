package dto

import (
	"github.com/google/uuid"
)

type CreateProgramRequest struct {
	Name      string    `json:"name" binding:"required,max=128"`
	AthleteID uuid.UUID `json:"athlete_id" binding:"required"`
}

// ExerciseRowInput is one submitted exercise row. MainSeries arrives
// as free text; anything that does not parse as an integer is stored
// as null rather than rejected.
type ExerciseRowInput struct {
	Name              string `json:"name"`
	SeriesDescription string `json:"series_description"`
	MainSeries        string `json:"main_series"`
	Remark            string `json:"remark"`
}

type DayProgramInput struct {
	DayOfWeek   int                `json:"day_of_week" binding:"min=0,max=6"`
	SessionName string             `json:"session_name"`
	Exercises   []ExerciseRowInput `json:"exercises"`
}

// ReplaceWeekRequest carries the full weekly structure. Saving it
// replaces every existing session of the program.
type ReplaceWeekRequest struct {
	Days []DayProgramInput `json:"days" binding:"required,dive"`
}

// ParsedSet is one line of an entry's series description, numbered
// from 1. IsMain marks the line whose index equals the entry's
// MainSeries.
type ParsedSet struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	IsMain bool   `json:"is_main"`
}

type ExerciseEntryResponse struct {
	ID                uuid.UUID   `json:"id"`
	Position          int         `json:"position"`
	Name              string      `json:"name"`
	Muscle            *string     `json:"muscle,omitempty"`
	Remark            *string     `json:"remark,omitempty"`
	SeriesDescription *string     `json:"series_description,omitempty"`
	MainSeries        *int        `json:"main_series,omitempty"`
	Sets              []ParsedSet `json:"sets,omitempty"`
}

type SessionResponse struct {
	ID          uuid.UUID               `json:"id"`
	DayOfWeek   int                     `json:"day_of_week"`
	SessionName *string                 `json:"session_name,omitempty"`
	Exercises   []ExerciseEntryResponse `json:"exercises"`
}

type ProgramResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	AthleteID uuid.UUID         `json:"athlete_id"`
	CoachID   *uuid.UUID        `json:"coach_id,omitempty"`
	CreatedAt string            `json:"created_at"`
	Sessions  []SessionResponse `json:"sessions"`
}
