package middleware

import (
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// CurrentUser returns the authenticated user loaded by TokenActive, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("current_user").(*models.User); ok {
		return user
	}
	return nil
}

// CurrentToken returns the access token record for the request, or nil.
func CurrentToken(c *fiber.Ctx) *models.AccessToken {
	if record, ok := c.Locals("access_token").(*models.AccessToken); ok {
		return record
	}
	return nil
}
