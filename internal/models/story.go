package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Story is the central aggregate of the platform. Tags are attached through
// the StoryTag pivot and only approved rows count as the story's tags; the
// pending rows live in the moderation queue.
type Story struct {
	UUID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"uuid"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Genre       *string       `gorm:"size:255" json:"genre,omitempty"`
	Length      *int          `json:"length,omitempty"`
	Content     *string       `gorm:"type:text" json:"content,omitempty"`
	Description *string       `gorm:"type:text" json:"description,omitempty"`
	CategoryID  uint          `gorm:"not null;index" json:"category_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Category    *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Comments    []Comment     `gorm:"foreignKey:StoryUUID;references:UUID" json:"comments,omitempty"`
	Reports     []StoryReport `gorm:"foreignKey:StoryUUID;references:UUID" json:"-"`
	Ratings     []StoryRating `gorm:"foreignKey:StoryUUID;references:UUID" json:"-"`
}

func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == uuid.Nil {
		s.UUID = uuid.New()
	}
	return nil
}
