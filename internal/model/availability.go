package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timeslot is one of the three bookable portions of a day. "day" means
// the whole day and takes display priority over the other two.
type Timeslot string

const (
	TimeslotMorning   Timeslot = "morning"
	TimeslotAfternoon Timeslot = "afternoon"
	TimeslotDay       Timeslot = "day"
)

func ParseTimeslot(s string) (Timeslot, error) {
	switch Timeslot(s) {
	case TimeslotMorning, TimeslotAfternoon, TimeslotDay:
		return Timeslot(s), nil
	}
	return "", fmt.Errorf("unknown timeslot %q", s)
}

// Availability records whether the coach is bookable for one slot of
// one day at one location. At most one row exists per
// (date, location, timeslot); toggles flip Available instead of
// deleting the row.
type Availability struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_date_location_timeslot" json:"date"`
	Location  string    `gorm:"size:128;not null;uniqueIndex:uq_date_location_timeslot" json:"location"`
	Timeslot  Timeslot  `gorm:"size:16;not null;uniqueIndex:uq_date_location_timeslot" json:"timeslot"`
	Available bool      `gorm:"not null;default:true" json:"available"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
