package handlers

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TagHandler struct {
	tags *services.TagService
}

func NewTagHandler(tags *services.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) Index(c *fiber.Ctx) error {
	tags, err := h.tags.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch tags",
		})
	}
	return c.JSON(fiber.Map{"data": tags})
}

func (h *TagHandler) Store(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	tag, err := h.tags.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrTagTaken) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{
				Errors: map[string]string{"name": "The name has already been taken."},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to create tag",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    tag,
		"message": "Tag created successfully",
	})
}

func (h *TagHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return tagNotFound(c)
	}

	tag, err := h.tags.Get(id)
	if err != nil {
		return tagNotFound(c)
	}
	return c.JSON(fiber.Map{"data": tag})
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return tagNotFound(c)
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	tag, err := h.tags.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			return tagNotFound(c)
		}
		if errors.Is(err, services.ErrTagTaken) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{
				Errors: map[string]string{"name": "The name has already been taken."},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to update tag",
		})
	}

	return c.JSON(fiber.Map{
		"data":    tag,
		"message": "Tag updated successfully",
	})
}

func (h *TagHandler) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return tagNotFound(c)
	}

	if err := h.tags.Delete(id); err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			return tagNotFound(c)
		}
		if errors.Is(err, services.ErrTagInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{
				Message: "Cannot delete tag with associated stories.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to delete tag",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Tag deleted successfully"})
}

func tagNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Tag not found"})
}
