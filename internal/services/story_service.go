package services

import (
	"errors"
	"time"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStoryNotFound = errors.New("story not found")

const storyPageSize = 10

// StoryFilter narrows the public story index.
type StoryFilter struct {
	Title      string
	CategoryID uint
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
}

type StoryService struct {
	db *gorm.DB
}

func NewStoryService(db *gorm.DB) *StoryService {
	return &StoryService{db: db}
}

func (s *StoryService) List(filter StoryFilter) ([]dto.StoryListItem, int64, error) {
	query := s.db.Model(&models.Story{}).Preload("Category")

	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("created_at BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var stories []models.Story
	err := query.Order("created_at DESC").
		Offset((page - 1) * storyPageSize).
		Limit(storyPageSize).
		Find(&stories).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.StoryListItem, len(stories))
	for i, story := range stories {
		items[i] = dto.StoryListItem{
			UUID:               story.UUID.String(),
			Title:              story.Title,
			Description:        story.Description,
			Category:           story.Category,
			CreatedAtFormatted: story.CreatedAt.Format("02/01/2006 15:04"),
		}
	}
	return items, total, nil
}

func (s *StoryService) Create(req *dto.StoryRequest) (*models.Story, error) {
	var category models.Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	story := models.Story{
		Title:       req.Title,
		Genre:       req.Genre,
		Length:      req.Length,
		Content:     req.Content,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&story).Error; err != nil {
			return err
		}
		return s.syncTags(tx, story.UUID, req.Tags)
	})
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// Get returns a story with its category, comments, approved tags and the
// derived average rating.
func (s *StoryService) Get(storyUUID uuid.UUID) (*dto.StoryDetail, error) {
	var story models.Story
	err := s.db.Preload("Category").Preload("Comments").
		First(&story, "uuid = ?", storyUUID).Error
	if err != nil {
		return nil, ErrStoryNotFound
	}

	tags, err := s.ApprovedTags(storyUUID)
	if err != nil {
		return nil, err
	}

	detail := dto.StoryDetail{Story: story, Tags: tags}

	var avg *float64
	row := s.db.Model(&models.StoryRating{}).
		Where("story_uuid = ?", storyUUID).
		Select("AVG(rating)").Row()
	if err := row.Scan(&avg); err == nil {
		detail.AverageRating = avg
	}

	return &detail, nil
}

// ApprovedTags lists the tags publicly visible on a story.
func (s *StoryService) ApprovedTags(storyUUID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.Model(&models.Tag{}).
		Joins("JOIN story_tags ON story_tags.tag_id = tags.id").
		Where("story_tags.story_uuid = ? AND story_tags.status = ?", storyUUID, models.TagStatusApproved).
		Find(&tags).Error
	return tags, err
}

func (s *StoryService) Update(storyUUID uuid.UUID, req *dto.StoryRequest) (*models.Story, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, ErrStoryNotFound
	}

	var category models.Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	story.Title = req.Title
	story.Genre = req.Genre
	story.Length = req.Length
	story.Content = req.Content
	story.Description = req.Description
	story.CategoryID = req.CategoryID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&story).Error; err != nil {
			return err
		}
		if req.Tags != nil {
			if err := tx.Where("story_uuid = ? AND status = ?", storyUUID, models.TagStatusApproved).
				Delete(&models.StoryTag{}).Error; err != nil {
				return err
			}
			return s.syncTags(tx, storyUUID, req.Tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// Delete removes the story and everything hanging off it in one transaction.
func (s *StoryService) Delete(storyUUID uuid.UUID) error {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return ErrStoryNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var commentUUIDs []uuid.UUID
		if err := tx.Model(&models.Comment{}).Where("story_uuid = ?", storyUUID).
			Pluck("uuid", &commentUUIDs).Error; err != nil {
			return err
		}
		if len(commentUUIDs) > 0 {
			if err := tx.Where("comment_uuid IN ?", commentUUIDs).Delete(&models.CommentReport{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("story_uuid = ?", storyUUID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_uuid = ?", storyUUID).Delete(&models.StoryTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_uuid = ?", storyUUID).Delete(&models.StoryReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_uuid = ?", storyUUID).Delete(&models.StoryRating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&story).Error
	})
}

// Report files a StoryReport against the story.
func (s *StoryService) Report(storyUUID uuid.UUID, req *dto.CreateReportRequest) (*models.StoryReport, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, ErrStoryNotFound
	}

	report := models.StoryReport{
		StoryUUID: storyUUID,
		UserUUID:  uuid.MustParse(req.UserUUID),
		Reason:    req.Reason,
		Details:   req.Details,
		Status:    models.ReportStatusPending,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// Rate records a 1..5 rating; the average is always derived, never stored.
func (s *StoryService) Rate(storyUUID uuid.UUID, rating int) (*models.StoryRating, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, ErrStoryNotFound
	}

	record := models.StoryRating{StoryUUID: storyUUID, Rating: rating}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// syncTags attaches author-chosen tags directly as approved; those skip the
// moderation queue because they arrive with the story itself.
func (s *StoryService) syncTags(tx *gorm.DB, storyUUID uuid.UUID, tagIDs []uint) error {
	for _, tagID := range tagIDs {
		var tag models.Tag
		if err := tx.First(&tag, tagID).Error; err != nil {
			return ErrTagNotFound
		}
		pivot := models.StoryTag{
			StoryUUID: storyUUID,
			TagID:     tagID,
			Status:    models.TagStatusApproved,
		}
		// A pending row for the same pair is promoted rather than duplicated.
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "story_uuid"}, {Name: "tag_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": models.TagStatusApproved}),
		}).Create(&pivot).Error
		if err != nil {
			return err
		}
	}
	return nil
}
