package model

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MuscleGroup is the closed set of groups used by the exercise bank.
type MuscleGroup string

const (
	MusclePec     MuscleGroup = "PEC"
	MuscleDos     MuscleGroup = "DOS"
	MuscleEpaules MuscleGroup = "EPAULES"
	MuscleBiceps  MuscleGroup = "BICEPS"
	MuscleTriceps MuscleGroup = "TRICEPS"
	MuscleLegs    MuscleGroup = "LEGS"
	MuscleQuad    MuscleGroup = "QUAD"
	MuscleIschio  MuscleGroup = "ISCHIO"
	MuscleMollet  MuscleGroup = "MOLLET"
	MuscleAbdos   MuscleGroup = "ABDOS"
)

func ParseMuscleGroup(s string) (MuscleGroup, error) {
	switch MuscleGroup(s) {
	case MusclePec, MuscleDos, MuscleEpaules, MuscleBiceps, MuscleTriceps,
		MuscleLegs, MuscleQuad, MuscleIschio, MuscleMollet, MuscleAbdos:
		return MuscleGroup(s), nil
	}
	return "", fmt.Errorf("unknown muscle group %q", s)
}

// Exercise is a bank entry. Program entries copy MuscleGroup by exact
// name match; there is no foreign key, so renames do not propagate.
type Exercise struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string      `gorm:"size:192;uniqueIndex;not null" json:"name"`
	MuscleGroup MuscleGroup `gorm:"size:64;not null" json:"muscle_group"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
