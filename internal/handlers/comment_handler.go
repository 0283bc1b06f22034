package handlers

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Index(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	comments, err := h.comments.ListForStory(storyUUID)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch comments",
		})
	}
	return c.JSON(fiber.Map{"data": comments})
}

func (h *CommentHandler) Store(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	comment, err := h.comments.Create(storyUUID, &req)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to create comment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    comment,
		"message": "Comment created successfully",
	})
}

func (h *CommentHandler) Show(c *fiber.Ctx) error {
	commentUUID, err := parseCommentUUID(c)
	if err != nil {
		return commentNotFound(c)
	}

	comment, err := h.comments.Get(commentUUID)
	if err != nil {
		return commentNotFound(c)
	}
	return c.JSON(fiber.Map{"data": comment})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	commentUUID, err := parseCommentUUID(c)
	if err != nil {
		return commentNotFound(c)
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	comment, err := h.comments.Update(commentUUID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return commentNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to update comment",
		})
	}

	return c.JSON(fiber.Map{
		"data":    comment,
		"message": "Comment updated successfully",
	})
}

func (h *CommentHandler) Destroy(c *fiber.Ctx) error {
	commentUUID, err := parseCommentUUID(c)
	if err != nil {
		return commentNotFound(c)
	}

	if err := h.comments.Delete(commentUUID); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return commentNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to delete comment",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Comment deleted successfully"})
}

func (h *CommentHandler) Report(c *fiber.Ctx) error {
	commentUUID, err := parseCommentUUID(c)
	if err != nil {
		return commentNotFound(c)
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	if _, err := h.comments.Report(commentUUID, &req); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return commentNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to report comment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Comment reported successfully",
	})
}

func parseCommentUUID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("comment"))
}

func commentNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Comment not found"})
}
