package services

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

// ReportService unifies the two disjoint report tables behind one logical
// resource. The id spaces are independent, so a single integer may exist in
// both; the story space is probed first and always wins the tie.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// ListAll returns both collections side by side, each with its owning entity
// eager-loaded. They are deliberately not merged into one sequence.
func (s *ReportService) ListAll() (*dto.ReportListResponse, error) {
	resp := &dto.ReportListResponse{
		StoryReports:   []models.StoryReport{},
		CommentReports: []models.CommentReport{},
	}

	if err := s.db.Preload("Story").Find(&resp.StoryReports).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Comment").Find(&resp.CommentReports).Error; err != nil {
		return nil, err
	}
	return resp, nil
}

// Find probes the story report space first, then the comment report space.
func (s *ReportService) Find(id uint) (*dto.Report, error) {
	var storyReport models.StoryReport
	if err := s.db.Preload("Story").First(&storyReport, id).Error; err == nil {
		return &dto.Report{Type: dto.ReportTypeStory, Story: &storyReport}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var commentReport models.CommentReport
	if err := s.db.Preload("Comment").First(&commentReport, id).Error; err == nil {
		return &dto.Report{Type: dto.ReportTypeComment, Comment: &commentReport}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, ErrReportNotFound
}

// Delete uses the same probe order as Find and reports which type matched.
func (s *ReportService) Delete(id uint) (string, error) {
	var storyReport models.StoryReport
	if err := s.db.First(&storyReport, id).Error; err == nil {
		if err := s.db.Delete(&storyReport).Error; err != nil {
			return "", err
		}
		return dto.ReportTypeStory, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var commentReport models.CommentReport
	if err := s.db.First(&commentReport, id).Error; err == nil {
		if err := s.db.Delete(&commentReport).Error; err != nil {
			return "", err
		}
		return dto.ReportTypeComment, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return "", ErrReportNotFound
}
