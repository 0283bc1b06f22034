package handlers

import (
	"errors"
	"strconv"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Index(c *fiber.Ctx) error {
	categories, err := h.categories.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch categories",
		})
	}
	return c.JSON(fiber.Map{"data": categories})
}

func (h *CategoryHandler) Store(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	category, err := h.categories.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryTaken) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{
				Errors: map[string]string{"name": "The name has already been taken."},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    category,
		"message": "Category successfully created",
	})
}

func (h *CategoryHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return categoryNotFound(c)
	}

	category, err := h.categories.Get(id)
	if err != nil {
		return categoryNotFound(c)
	}
	return c.JSON(fiber.Map{"data": category})
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return categoryNotFound(c)
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	category, err := h.categories.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return categoryNotFound(c)
		}
		if errors.Is(err, services.ErrCategoryTaken) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{
				Errors: map[string]string{"name": "The name has already been taken."},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"data":    category,
		"message": "Category updated successfully",
	})
}

func (h *CategoryHandler) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return categoryNotFound(c)
	}

	if err := h.categories.Delete(id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return categoryNotFound(c)
		}
		if errors.Is(err, services.ErrCategoryInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{
				Message: "Cannot delete a category with associated stories.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to delete category",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Category deleted successfully"})
}

func categoryNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Category not found"})
}

// parseID reads the numeric :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
