package models

import (
	"time"

	"github.com/google/uuid"
)

// StoryReport and CommentReport live in disjoint tables with independent id
// spaces. They are only unified at the API layer, where the story space is
// probed first on lookup.

const ReportStatusPending = "pending"

type StoryReport struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StoryUUID uuid.UUID `gorm:"type:uuid;not null;index" json:"story_uuid"`
	UserUUID  uuid.UUID `gorm:"type:uuid;not null" json:"user_uuid"`
	Reason    string    `gorm:"size:255;not null" json:"reason"`
	Details   *string   `gorm:"type:text" json:"details,omitempty"`
	Status    string    `gorm:"size:50;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Story     *Story    `gorm:"foreignKey:StoryUUID;references:UUID" json:"story,omitempty"`
}

func (StoryReport) TableName() string {
	return "story_reports"
}

type CommentReport struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommentUUID uuid.UUID `gorm:"type:uuid;not null;index" json:"comment_uuid"`
	Reason      string    `gorm:"size:255;not null" json:"reason"`
	Details     *string   `gorm:"type:text" json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Comment     *Comment  `gorm:"foreignKey:CommentUUID;references:UUID" json:"comment,omitempty"`
}

func (CommentReport) TableName() string {
	return "comment_reports"
}
