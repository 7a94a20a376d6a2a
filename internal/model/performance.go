package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceEntry is one logged set. Exercise is a name, not a
// foreign key. SeriesNumber identifies the set within the day's work
// on that exercise; whether the set is the "main" one is derived at
// read time against the program entry's MainSeries, never stored.
type PerformanceEntry struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AthleteID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"athlete_id"`
	EntryDate        time.Time  `gorm:"type:date;not null;index" json:"entry_date"`
	ProgramSessionID *uuid.UUID `gorm:"type:uuid;index" json:"program_session_id,omitempty"`
	Exercise         string     `gorm:"size:192;not null" json:"exercise"`
	SeriesNumber     *int       `json:"series_number,omitempty"`
	Reps             *float64   `json:"reps,omitempty"`
	Load             *float64   `json:"load,omitempty"`
	Notes            *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (p *PerformanceEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
