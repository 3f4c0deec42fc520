package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActivityTypeRunning  = "running"
	ActivityTypeWalking  = "walking"
	ActivityTypeCycling  = "cycling"
	ActivityTypeSwimming = "swimming"
	ActivityTypeGym      = "gym"
	ActivityTypeYoga     = "yoga"
	ActivityTypeSports   = "sports"
	ActivityTypeOther    = "other"
)

func ValidActivityType(activityType string) bool {
	switch activityType {
	case ActivityTypeRunning, ActivityTypeWalking, ActivityTypeCycling,
		ActivityTypeSwimming, ActivityTypeGym, ActivityTypeYoga,
		ActivityTypeSports, ActivityTypeOther:
		return true
	}
	return false
}

// Activity is a single logged fitness activity. The owning user is set from
// the authenticated requester and never changes afterwards.
type Activity struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	PublicID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"_id"`
	UserID          uint      `gorm:"not null;index" json:"-"`
	User            User      `gorm:"foreignKey:UserID" json:"user"`
	ActivityType    string    `gorm:"type:varchar(50);not null;default:'other'" json:"activity_type"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	DistanceKm      *float64  `json:"distance_km"`
	CaloriesBurned  *int      `json:"calories_burned"`
	Description     string    `gorm:"type:text" json:"description"`
	ActivityDate    time.Time `gorm:"not null" json:"activity_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.PublicID == uuid.Nil {
		a.PublicID = uuid.New()
	}
	return nil
}
