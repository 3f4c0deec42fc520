package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	WorkoutTypeCardio      = "cardio"
	WorkoutTypeStrength    = "strength"
	WorkoutTypeFlexibility = "flexibility"
	WorkoutTypeBalance     = "balance"
	WorkoutTypeEndurance   = "endurance"
)

func ValidWorkoutType(workoutType string) bool {
	switch workoutType {
	case WorkoutTypeCardio, WorkoutTypeStrength, WorkoutTypeFlexibility,
		WorkoutTypeBalance, WorkoutTypeEndurance:
		return true
	}
	return false
}

// Workout is a suggested workout for a user. Completion is a one-way
// transition: once marked complete it stays complete.
type Workout struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	PublicID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"_id"`
	UserID           uint           `gorm:"not null;index" json:"-"`
	User             User           `gorm:"foreignKey:UserID" json:"user"`
	FitnessLevel     string         `gorm:"type:varchar(20);not null" json:"fitness_level"`
	WorkoutType      string         `gorm:"type:varchar(50);not null" json:"workout_type"`
	Title            string         `gorm:"type:varchar(100);not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	DurationMinutes  int            `gorm:"not null" json:"duration_minutes"`
	Exercises        pq.StringArray `gorm:"type:text[]" json:"exercises"`
	DifficultyRating int            `gorm:"default:5" json:"difficulty_rating"` // 1-10 scale
	SuggestedDate    time.Time      `json:"suggested_date"`
	IsCompleted      bool           `gorm:"default:false" json:"is_completed"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.PublicID == uuid.Nil {
		w.PublicID = uuid.New()
	}
	return nil
}
