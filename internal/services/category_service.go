package services

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("cannot delete a category with associated stories")
	ErrCategoryTaken    = errors.New("category name already taken")
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	var existing models.Category
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrCategoryTaken
	}

	category := models.Category{
		Name:  req.Name,
		Genre: req.Genre,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(id uint, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		var existing models.Category
		if err := s.db.Where("name = ? AND id <> ?", *req.Name, id).First(&existing).Error; err == nil {
			return nil, ErrCategoryTaken
		}
		category.Name = *req.Name
	}
	if req.Genre != nil {
		category.Genre = req.Genre
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that any story still references.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}

	var stories int64
	if err := s.db.Model(&models.Story{}).Where("category_id = ?", id).Count(&stories).Error; err != nil {
		return err
	}
	if stories > 0 {
		return ErrCategoryInUse
	}

	return s.db.Delete(category).Error
}
