package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment carries the authoring user's UUID without a foreign key; users are
// managed elsewhere and may not exist in this database. Reports is a
// denormalized counter maintained by atomic increments, never recounted.
type Comment struct {
	UUID      uuid.UUID       `gorm:"type:uuid;primaryKey" json:"uuid"`
	StoryUUID uuid.UUID       `gorm:"type:uuid;not null;index" json:"story_uuid"`
	UserUUID  uuid.UUID       `gorm:"type:uuid;not null" json:"user_uuid"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	Reports   int             `gorm:"not null;default:0" json:"reports"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Story     *Story          `gorm:"foreignKey:StoryUUID;references:UUID" json:"story,omitempty"`
	Reported  []CommentReport `gorm:"foreignKey:CommentUUID;references:UUID" json:"-"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	return nil
}
