package services

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/Ferrokwastaken/story-app-api/internal/policy"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTagNotPending = errors.New("tag is not pending for this story")
	ErrPolicyDenied  = errors.New("action not permitted on this story")
)

// AttachOutcome distinguishes a freshly queued attach request from the
// idempotent no-op on a pair that is already pending or approved.
type AttachOutcome int

const (
	AttachRequested AttachOutcome = iota
	AttachAlreadyPresent
)

const pendingTagPageSize = 15

// ModerationService owns the pending/approved tag lifecycle and the
// moderator-side story mutations.
type ModerationService struct {
	db      *gorm.DB
	stories *StoryService
	policy  policy.StoryPolicy
}

func NewModerationService(db *gorm.DB, stories *StoryService, pol policy.StoryPolicy) *ModerationService {
	return &ModerationService{db: db, stories: stories, policy: pol}
}

// RequestAttach queues a tag for moderation. The insert carries an ON
// CONFLICT DO NOTHING over the pivot's composite key, so two concurrent
// requests for the same pair cannot produce a duplicate row: the loser simply
// observes the idempotent outcome.
func (s *ModerationService) RequestAttach(storyUUID uuid.UUID, tagID uint) (AttachOutcome, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return 0, ErrStoryNotFound
	}
	var tag models.Tag
	if err := s.db.First(&tag, tagID).Error; err != nil {
		return 0, ErrTagNotFound
	}

	pivot := models.StoryTag{
		StoryUUID: storyUUID,
		TagID:     tagID,
		Status:    models.TagStatusPending,
	}
	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&pivot)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return AttachAlreadyPresent, nil
	}
	return AttachRequested, nil
}

// Approve promotes a pending pair in place. The status guard makes this a
// compare-and-set: an absent or already-approved pair affects zero rows and
// surfaces as not-found, never as a silent success.
func (s *ModerationService) Approve(storyUUID uuid.UUID, tagID uint) (*models.Tag, *models.Story, error) {
	tag, story, err := s.tagForStory(storyUUID, tagID)
	if err != nil {
		return nil, nil, err
	}

	result := s.db.Model(&models.StoryTag{}).
		Where("story_uuid = ? AND tag_id = ? AND status = ?", storyUUID, tagID, models.TagStatusPending).
		Update("status", models.TagStatusApproved)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, ErrTagNotPending
	}
	return tag, story, nil
}

// Reject deletes the pending row outright; the pair returns to absent and a
// later attach request starts the cycle over.
func (s *ModerationService) Reject(storyUUID uuid.UUID, tagID uint) (*models.Tag, *models.Story, error) {
	tag, story, err := s.tagForStory(storyUUID, tagID)
	if err != nil {
		return nil, nil, err
	}

	result := s.db.
		Where("story_uuid = ? AND tag_id = ? AND status = ?", storyUUID, tagID, models.TagStatusPending).
		Delete(&models.StoryTag{})
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, ErrTagNotPending
	}
	return tag, story, nil
}

// PendingTags lists a story's moderation queue, newest first, with the tag
// and story context attached to each entry.
func (s *ModerationService) PendingTags(storyUUID uuid.UUID, page int) ([]models.StoryTag, int64, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, 0, ErrStoryNotFound
	}

	query := s.db.Model(&models.StoryTag{}).
		Where("story_uuid = ? AND status = ?", storyUUID, models.TagStatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	var pending []models.StoryTag
	err := query.Preload("Tag").Preload("Story").
		Order("created_at DESC").
		Offset((page - 1) * pendingTagPageSize).
		Limit(pendingTagPageSize).
		Find(&pending).Error
	if err != nil {
		return nil, 0, err
	}
	return pending, total, nil
}

// HomeCounts gathers the moderator dashboard workload numbers.
func (s *ModerationService) HomeCounts() (*dto.ModeratorHomeResponse, error) {
	var counts dto.ModeratorHomeResponse

	err := s.db.Model(&models.StoryTag{}).
		Where("status = ?", models.TagStatusPending).
		Distinct("tag_id").
		Count(&counts.PendingTagCount).Error
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.StoryReport{}).Count(&counts.StoryReportCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.CommentReport{}).Count(&counts.CommentReportCount).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}

// Stories pages through every story with category and approved tags for the
// moderator listing.
func (s *ModerationService) Stories(page int) ([]dto.StoryDetail, int64, error) {
	var total int64
	if err := s.db.Model(&models.Story{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	var stories []models.Story
	err := s.db.Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * storyPageSize).
		Limit(storyPageSize).
		Find(&stories).Error
	if err != nil {
		return nil, 0, err
	}

	details := make([]dto.StoryDetail, len(stories))
	for i, story := range stories {
		tags, err := s.stories.ApprovedTags(story.UUID)
		if err != nil {
			return nil, 0, err
		}
		details[i] = dto.StoryDetail{Story: story, Tags: tags}
	}
	return details, total, nil
}

// UpdateStory applies the per-resource policy on top of the role gate before
// delegating to the story service.
func (s *ModerationService) UpdateStory(actor *models.User, storyUUID uuid.UUID, req *dto.StoryRequest) (*models.Story, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, ErrStoryNotFound
	}
	if !s.policy.CanUpdate(actor, &story) {
		return nil, ErrPolicyDenied
	}
	return s.stories.Update(storyUUID, req)
}

// DeleteStory mirrors UpdateStory for deletion.
func (s *ModerationService) DeleteStory(actor *models.User, storyUUID uuid.UUID) error {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return ErrStoryNotFound
	}
	if !s.policy.CanDelete(actor, &story) {
		return ErrPolicyDenied
	}
	return s.stories.Delete(storyUUID)
}

// tagForStory resolves both route parameters so responses can name them,
// keeping the not-found ordering (story, then tag, then pair state).
func (s *ModerationService) tagForStory(storyUUID uuid.UUID, tagID uint) (*models.Tag, *models.Story, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, nil, ErrStoryNotFound
	}
	var tag models.Tag
	if err := s.db.First(&tag, tagID).Error; err != nil {
		return nil, nil, ErrTagNotFound
	}
	return &tag, &story, nil
}
