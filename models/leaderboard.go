package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Leaderboard is a pre-computed standing for a user within a team. Rows are
// maintained externally (seeded or recomputed out of band); the API only
// reads them, always ordered by ascending rank.
type Leaderboard struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	PublicID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"_id"`
	TeamID               uint      `gorm:"uniqueIndex;not null" json:"-"`
	Team                 Team      `gorm:"foreignKey:TeamID" json:"team"`
	UserID               uint      `gorm:"not null" json:"-"`
	User                 User      `gorm:"foreignKey:UserID" json:"user"`
	TotalActivities      int       `gorm:"default:0" json:"total_activities"`
	TotalCalories        int       `gorm:"default:0" json:"total_calories"`
	TotalDistance        float64   `gorm:"default:0" json:"total_distance"`
	TotalDurationMinutes int       `gorm:"default:0" json:"total_duration_minutes"`
	Rank                 int       `gorm:"not null" json:"rank"`
	Points               int       `gorm:"default:0" json:"points"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (Leaderboard) TableName() string {
	return "leaderboard"
}

func (l *Leaderboard) BeforeCreate(tx *gorm.DB) error {
	if l.PublicID == uuid.Nil {
		l.PublicID = uuid.New()
	}
	return nil
}
