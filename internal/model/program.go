package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Program struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"size:128;not null" json:"name"`
	AthleteID uuid.UUID  `gorm:"type:uuid;not null;index" json:"athlete_id"`
	Athlete   *User      `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"athlete,omitempty"`
	CoachID   *uuid.UUID `gorm:"type:uuid" json:"coach_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Sessions []ProgramSession `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"sessions,omitempty"`
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProgramSession is one training day of a program. DayOfWeek is
// 0 = Monday .. 6 = Sunday; at most one session per program per day.
type ProgramSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_program_day" json:"program_id"`
	DayOfWeek   int       `gorm:"not null;uniqueIndex:uq_program_day" json:"day_of_week"`
	SessionName *string   `gorm:"size:128" json:"session_name,omitempty"`

	Exercises []ExerciseEntry `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

func (s *ProgramSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ExerciseEntry is one prescribed exercise inside a session.
// SeriesDescription is free text, one line per set; MainSeries is the
// 1-based index of the reference set inside that text. Muscle is a
// snapshot copied from the exercise bank at save time, never
// back-filled when the bank changes.
type ExerciseEntry struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID         uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Position          int       `gorm:"not null;default:0" json:"position"`
	Name              string    `gorm:"size:192;not null" json:"name"`
	Muscle            *string   `gorm:"size:64" json:"muscle,omitempty"`
	Remark            *string   `gorm:"type:text" json:"remark,omitempty"`
	SeriesDescription *string   `gorm:"type:text" json:"series_description,omitempty"`
	MainSeries        *int      `json:"main_series,omitempty"`
}

func (e *ExerciseEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
