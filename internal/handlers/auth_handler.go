package handlers

import (
	"errors"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/middleware"
	"github.com/Ferrokwastaken/story-app-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// ModeratorLogin exchanges credentials for a bearer token. A valid login by a
// user outside the moderator/admin roles is refused with 401 and no token.
func (h *AuthHandler) ModeratorLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if errs := req.Validate(); errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrors{Errors: errs})
	}

	resp, err := h.authService.ModeratorLogin(&req)
	if err != nil {
		if errors.Is(err, services.ErrNotModerator) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized: User is not a moderator",
			})
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Invalid login credentials.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	record := middleware.CurrentToken(c)
	if record == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
			Message: "Unauthorized",
		})
	}

	if err := h.authService.Logout(record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to log out",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
