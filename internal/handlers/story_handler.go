package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StoryHandler struct {
	stories    *services.StoryService
	moderation *services.ModerationService
}

func NewStoryHandler(stories *services.StoryService, moderation *services.ModerationService) *StoryHandler {
	return &StoryHandler{stories: stories, moderation: moderation}
}

func (h *StoryHandler) Index(c *fiber.Ctx) error {
	filter := services.StoryFilter{
		Title: c.Query("title"),
		Page:  c.QueryInt("page", 1),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if start, end := c.Query("start_date"), c.Query("end_date"); start != "" && end != "" {
		startDate, errStart := time.Parse("2006-01-02", start)
		endDate, errEnd := time.Parse("2006-01-02", end)
		if errStart == nil && errEnd == nil {
			filter.StartDate = &startDate
			filter.EndDate = &endDate
		}
	}

	items, total, err := h.stories.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch stories",
		})
	}

	return c.JSON(fiber.Map{"data": dto.Paginated{
		Items:   items,
		Total:   total,
		Page:    filter.Page,
		PerPage: 10,
	}})
}

func (h *StoryHandler) Store(c *fiber.Ctx) error {
	var req dto.StoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	story, err := h.stories.Create(&req)
	if err != nil {
		if errs := storyRefErrors(err); errs != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to create story",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    story,
		"message": "Story created successfully",
	})
}

func (h *StoryHandler) Show(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	detail, err := h.stories.Get(storyUUID)
	if err != nil {
		return storyNotFound(c)
	}
	return c.JSON(fiber.Map{"data": detail})
}

func (h *StoryHandler) Update(c *fiber.Ctx) error {
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

	story, err := h.stories.Update(storyUUID, &req)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
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

func (h *StoryHandler) Destroy(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	if err := h.stories.Delete(storyUUID); err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to delete story",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Story deleted successfully"})
}

func (h *StoryHandler) Report(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
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

	if _, err := h.stories.Report(storyUUID, &req); err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to report story",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Story reported successfully",
	})
}

func (h *StoryHandler) Rate(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	var req dto.RateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	rating, err := h.stories.Rate(storyUUID, req.Rating)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to rate story",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    rating,
		"message": "Story rated successfully",
	})
}

// AddTag runs the request-attach transition: the pair enters the moderation
// queue as pending, or the call is an idempotent no-op if a row exists.
func (h *StoryHandler) AddTag(c *fiber.Ctx) error {
	storyUUID, err := parseStoryUUID(c)
	if err != nil {
		return storyNotFound(c)
	}

	var req dto.AttachTagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	outcome, err := h.moderation.RequestAttach(storyUUID, req.TagID)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			return storyNotFound(c)
		}
		if errors.Is(err, services.ErrTagNotFound) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{
				Errors: map[string]string{"tag_id": "The selected tag id is invalid."},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to add tag",
		})
	}

	if outcome == services.AttachAlreadyPresent {
		return c.JSON(dto.MessageResponse{Message: "Tag is already attached or pending."})
	}
	return c.JSON(dto.MessageResponse{Message: "Tag addition request submitted for moderation."})
}

// storyRefErrors maps referential failures on create/update to the 422 map.
func storyRefErrors(err error) map[string]string {
	if errors.Is(err, services.ErrCategoryNotFound) {
		return map[string]string{"category_id": "The selected category id is invalid."}
	}
	if errors.Is(err, services.ErrTagNotFound) {
		return map[string]string{"tags": "One or more selected tags are invalid."}
	}
	return nil
}

func parseStoryUUID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("story"))
}

func storyNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Story not found"})
}
