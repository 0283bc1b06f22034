package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag attachment states carried on the StoryTag pivot. Rejection deletes the
// row, so no rejected state is ever persisted.
const (
	TagStatusPending  = "pending"
	TagStatusApproved = "approved"
)

type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoryTag binds a story to a tag. The composite primary key guarantees at
// most one row per (story, tag) pair even under concurrent attach requests.
type StoryTag struct {
	StoryUUID uuid.UUID `gorm:"type:uuid;primaryKey" json:"story_uuid"`
	TagID     uint      `gorm:"primaryKey" json:"tag_id"`
	Status    string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Story     *Story    `gorm:"foreignKey:StoryUUID;references:UUID" json:"story,omitempty"`
	Tag       *Tag      `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

func (StoryTag) TableName() string {
	return "story_tags"
}
