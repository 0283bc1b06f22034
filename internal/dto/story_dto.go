package dto

import (
	"strings"

	"github.com/Ferrokwastaken/story-app-api/internal/models"
)

// StoryRequest covers both create and full update of a story.
type StoryRequest struct {
	Title       string  `json:"title"`
	Genre       *string `json:"genre"`
	Length      *int    `json:"length"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
	CategoryID  uint    `json:"category_id"`
	Tags        []uint  `json:"tags"`
}

func (r *StoryRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "The title field is required."
	} else if len(r.Title) > 255 {
		errs["title"] = "The title may not be greater than 255 characters."
	}
	if r.Genre != nil && len(*r.Genre) > 255 {
		errs["genre"] = "The genre may not be greater than 255 characters."
	}
	if r.Length != nil && *r.Length < 0 {
		errs["length"] = "The length must be at least 0."
	}
	if r.CategoryID == 0 {
		errs["category_id"] = "The category id field is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// StoryListItem is the trimmed shape served by the public story index.
type StoryListItem struct {
	UUID               string           `json:"uuid"`
	Title              string           `json:"title"`
	Description        *string          `json:"description"`
	Category           *models.Category `json:"category"`
	CreatedAtFormatted string           `json:"created_at_formatted"`
}

// StoryDetail adds the derived rating average to the story payload.
type StoryDetail struct {
	models.Story
	Tags          []models.Tag `json:"tags"`
	AverageRating *float64     `json:"average_rating"`
}

type RateStoryRequest struct {
	Rating int `json:"rating"`
}

func (r *RateStoryRequest) Validate() map[string]string {
	if r.Rating < 1 || r.Rating > 5 {
		return map[string]string{"rating": "The rating must be between 1 and 5."}
	}
	return nil
}
