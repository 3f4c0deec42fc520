package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team groups users for fitness challenges. The owner is fixed at creation
// and is not automatically part of the members set.
type Team struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	PublicID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uint      `gorm:"not null" json:"-"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"owner"`
	Members     []User    `gorm:"many2many:team_members" json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.PublicID == uuid.Nil {
		t.PublicID = uuid.New()
	}
	return nil
}
