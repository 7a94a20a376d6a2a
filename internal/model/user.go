package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Free strings from the
// outside are converted through ParseRole and rejected early.
type Role string

const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCoach, RoleAthlete:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null;default:athlete" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
