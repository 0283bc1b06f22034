package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/middleware"
	"github.com/Ferrokwastaken/story-app-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ModeratorHandler serves the /moderator surface: the dashboard, the story
// management pair with its policy check, and the tag approval queue.
type ModeratorHandler struct {
	moderation *services.ModerationService
}

func NewModeratorHandler(moderation *services.ModerationService) *ModeratorHandler {
	return &ModeratorHandler{moderation: moderation}
}

func (h *ModeratorHandler) Home(c *fiber.Ctx) error {
	counts, err := h.moderation.HomeCounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch dashboard counts",
		})
	}
	return c.JSON(counts)
}

func (h *ModeratorHandler) IndexStories(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	stories, total, err := h.moderation.Stories(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch stories",
		})
	}
	return c.JSON(fiber.Map{"data": dto.Paginated{
		Items:   stories,
		Total:   total,
		Page:    page,
		PerPage: 10,
	}})
}

func (h *ModeratorHandler) UpdateStory(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	var req dto.StoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	story, err := h.moderation.UpdateStory(middleware.CurrentUser(c), storyUUID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStoryNotFound):
			return storyNotFound(c)
		case errors.Is(err, services.ErrPolicyDenied):
			return policyDenied(c)
		}
		if errs := storyRefErrors(err); errs != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to update story",
		})
	}

	return c.JSON(fiber.Map{
		"data":    story,
		"message": "Story updated successfully",
	})
}

func (h *ModeratorHandler) DestroyStory(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	if err := h.moderation.DeleteStory(middleware.CurrentUser(c), storyUUID); err != nil {
		switch {
		case errors.Is(err, services.ErrStoryNotFound):
			return storyNotFound(c)
		case errors.Is(err, services.ErrPolicyDenied):
			return policyDenied(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to delete story",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Story deleted successfully"})
}

func (h *ModeratorHandler) IndexPendingTags(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	page := c.QueryInt("page", 1)
	pending, total, err := h.moderation.PendingTags(storyUUID, page)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch pending tags",
		})
	}

	return c.JSON(fiber.Map{"data": dto.Paginated{
		Items:   pending,
		Total:   total,
		Page:    page,
		PerPage: 15,
	}})
}

func (h *ModeratorHandler) ApproveTag(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}
	tagID, err := parseTagID(c)
	if err != nil {
		return tagNotFound(c)
	}

	tag, story, err := h.moderation.Approve(storyUUID, tagID)
	if err != nil {
		return h.tagTransitionError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Tag '%s' approved for story '%s'.", tag.Name, story.Title),
	})
}

func (h *ModeratorHandler) RejectTag(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}
	tagID, err := parseTagID(c)
	if err != nil {
		return tagNotFound(c)
	}

	tag, story, err := h.moderation.Reject(storyUUID, tagID)
	if err != nil {
		return h.tagTransitionError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Tag '%s' rejected for story '%s'.", tag.Name, story.Title),
	})
}

func (h *ModeratorHandler) tagTransitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrStoryNotFound):
		return storyNotFound(c)
	case errors.Is(err, services.ErrTagNotFound):
		return tagNotFound(c)
	case errors.Is(err, services.ErrTagNotPending):
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
			Message: "Tag is not pending for this story",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
		Message: "Failed to process tag",
	})
}

func policyDenied(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{
		Message: "This action is unauthorized.",
	})
}

func parseTagID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("tag"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
