package models

import (
	"time"

	"github.com/google/uuid"
)

type StoryRating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StoryUUID uuid.UUID `gorm:"type:uuid;not null;index" json:"story_uuid"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Story     *Story    `gorm:"foreignKey:StoryUUID;references:UUID" json:"-"`
}
