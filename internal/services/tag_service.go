package services

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound = errors.New("tag not found")
	ErrTagInUse    = errors.New("cannot delete tag with associated stories")
	ErrTagTaken    = errors.New("tag name already taken")
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) List() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) Get(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return nil, ErrTagNotFound
	}
	return &tag, nil
}

func (s *TagService) Create(req *dto.CreateTagRequest) (*models.Tag, error) {
	var existing models.Tag
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrTagTaken
	}

	tag := models.Tag{Name: req.Name}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) Update(id uint, req *dto.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != tag.Name {
		var existing models.Tag
		if err := s.db.Where("name = ? AND id <> ?", *req.Name, id).First(&existing).Error; err == nil {
			return nil, ErrTagTaken
		}
		tag.Name = *req.Name
	}

	if err := s.db.Save(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete refuses to remove a tag while any pivot row, pending or approved,
// still references it.
func (s *TagService) Delete(id uint) error {
	tag, err := s.Get(id)
	if err != nil {
		return err
	}

	var pivots int64
	if err := s.db.Model(&models.StoryTag{}).Where("tag_id = ?", id).Count(&pivots).Error; err != nil {
		return err
	}
	if pivots > 0 {
		return ErrTagInUse
	}

	return s.db.Delete(tag).Error
}
