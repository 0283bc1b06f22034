package handlers

import (
	"errors"
	"strconv"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Index(c *fiber.Ctx) error {
	resp, err := h.reports.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch reports",
		})
	}
	return c.JSON(resp)
}

func (h *ReportHandler) Show(c *fiber.Ctx) error {
	id, err := parseReportID(c)
	if err != nil {
		return reportNotFound(c)
	}

	report, err := h.reports.Find(id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return reportNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to fetch report",
		})
	}

	return c.JSON(fiber.Map{
		"report": report.Payload(),
		"type":   report.Type,
	})
}

// Update is a deliberate gap: resolution semantics were never specified
// upstream, so the route answers 501 instead of inventing them.
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(dto.MessageResponse{
		Message: "Report updates are not implemented",
	})
}

func (h *ReportHandler) Destroy(c *fiber.Ctx) error {
	id, err := parseReportID(c)
	if err != nil {
		return reportNotFound(c)
	}

	deletedType, err := h.reports.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return reportNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to delete report",
		})
	}

	if deletedType == dto.ReportTypeStory {
		return c.JSON(dto.MessageResponse{Message: "Story report deleted"})
	}
	return c.JSON(dto.MessageResponse{Message: "Comment report deleted"})
}

func parseReportID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func reportNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Report not found"})
}
