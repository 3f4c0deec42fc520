package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  *string   `json:"-"` // nil for Google-only accounts
	GoogleID  *string   `gorm:"uniqueIndex" json:"-"`
	Provider  string    `gorm:"default:'email'" json:"-"`
	IsStaff   bool      `gorm:"default:false" json:"-"`

	Profile       *UserProfile   `json:"-" gorm:"foreignKey:UserID"`
	Activities    []Activity     `json:"-" gorm:"foreignKey:UserID"`
	Workouts      []Workout      `json:"-" gorm:"foreignKey:UserID"`
	OwnedTeams    []Team         `json:"-" gorm:"foreignKey:OwnerID"`
	Teams         []Team         `json:"-" gorm:"many2many:team_members"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
