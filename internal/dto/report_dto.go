package dto

import (
	"strings"

	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/google/uuid"
)

// Report type tags for the unified lookup.
const (
	ReportTypeStory   = "story"
	ReportTypeComment = "comment"
)

// Report is the tagged union over the two report tables. Exactly one of
// Story/Comment is set, and Type names which.
type Report struct {
	Type    string                `json:"type"`
	Story   *models.StoryReport   `json:"-"`
	Comment *models.CommentReport `json:"-"`
}

// Payload returns whichever variant is set, for JSON shaping.
func (r *Report) Payload() interface{} {
	if r.Type == ReportTypeStory {
		return r.Story
	}
	return r.Comment
}

// CreateReportRequest reports either a story or a comment. The reporter's
// UUID is validated for both, though only story reports persist it.
type CreateReportRequest struct {
	Reason   string  `json:"reason"`
	Details  *string `json:"details"`
	UserUUID string  `json:"user_uuid"`
}

func (r *CreateReportRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Reason) == "" {
		errs["reason"] = "The reason field is required."
	} else if len(r.Reason) > 255 {
		errs["reason"] = "The reason may not be greater than 255 characters."
	}
	if r.UserUUID == "" {
		errs["user_uuid"] = "The user uuid field is required."
	} else if _, err := uuid.Parse(r.UserUUID); err != nil {
		errs["user_uuid"] = "The user uuid must be a valid UUID."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ReportListResponse keeps the two collections side by side, never merged.
type ReportListResponse struct {
	StoryReports   []models.StoryReport   `json:"reports_stories"`
	CommentReports []models.CommentReport `json:"comment_reports"`
}

// ModeratorHomeResponse carries the pending-work counters for the dashboard.
type ModeratorHomeResponse struct {
	PendingTagCount    int64 `json:"pendingTagCount"`
	StoryReportCount   int64 `json:"storyReportCount"`
	CommentReportCount int64 `json:"commentReportCount"`
}
