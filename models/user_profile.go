package models

import (
	"time"
)

// Fitness levels a profile (or a suggested workout) can carry.
const (
	FitnessLevelBeginner     = "beginner"
	FitnessLevelIntermediate = "intermediate"
	FitnessLevelAdvanced     = "advanced"
)

func ValidFitnessLevel(level string) bool {
	switch level {
	case FitnessLevelBeginner, FitnessLevelIntermediate, FitnessLevelAdvanced:
		return true
	}
	return false
}

// UserProfile is the 1:1 fitness extension of a User. It is created
// explicitly by the user, never automatically on registration.
type UserProfile struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"-"`
	User           User      `gorm:"foreignKey:UserID" json:"user"`
	Bio            string    `gorm:"type:text" json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	FitnessLevel   string    `gorm:"type:varchar(20);not null;default:'beginner'" json:"fitness_level"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
