package services

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) ListForStory(storyUUID uuid.UUID) ([]models.Comment, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, ErrStoryNotFound
	}

	var comments []models.Comment
	err := s.db.Where("story_uuid = ?", storyUUID).Order("created_at").Find(&comments).Error
	return comments, err
}

func (s *CommentService) Create(storyUUID uuid.UUID, req *dto.CreateCommentRequest) (*models.Comment, error) {
	var story models.Story
	if err := s.db.First(&story, "uuid = ?", storyUUID).Error; err != nil {
		return nil, ErrStoryNotFound
	}

	comment := models.Comment{
		StoryUUID: storyUUID,
		UserUUID:  uuid.MustParse(req.UserUUID),
		Content:   req.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Get(commentUUID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, "uuid = ?", commentUUID).Error; err != nil {
		return nil, ErrCommentNotFound
	}
	return &comment, nil
}

func (s *CommentService) Update(commentUUID uuid.UUID, req *dto.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.Get(commentUUID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	if err := s.db.Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(commentUUID uuid.UUID) error {
	comment, err := s.Get(commentUUID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_uuid = ?", commentUUID).Delete(&models.CommentReport{}).Error; err != nil {
			return err
		}
		return tx.Delete(comment).Error
	})
}

// Report files a CommentReport and bumps the denormalized counter. The bump
// is a SQL-side increment so concurrent reports never lose updates.
func (s *CommentService) Report(commentUUID uuid.UUID, req *dto.CreateReportRequest) (*models.CommentReport, error) {
	comment, err := s.Get(commentUUID)
	if err != nil {
		return nil, err
	}

	report := models.CommentReport{
		CommentUUID: comment.UUID,
		Reason:      req.Reason,
		Details:     req.Details,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("uuid = ?", comment.UUID).
			Update("reports", gorm.Expr("reports + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
