package middleware

import (
	"time"

	"github.com/Ferrokwastaken/story-app-api/internal/config"
	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// TokenActive resolves the verified JWT against the access_tokens table so a
// logged-out token is rejected even before its expiry. It loads the owning
// user into locals for the role gate and handlers downstream.
func TokenActive(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized",
			})
		}

		jti, _ := claims["jti"].(string)
		if jti == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized",
			})
		}

		var record models.AccessToken
		err := db.Preload("User").
			Where("token_hash = ? AND revoked = ?", models.HashToken(jti), false).
			First(&record).Error
		if err != nil || time.Now().After(record.ExpiresAt) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized: invalid or expired token",
			})
		}

		c.Locals("current_user", &record.User)
		c.Locals("access_token", &record)
		return c.Next()
	}
}

// ModeratorRequired gates the /moderator routes on the moderator or admin role.
func ModeratorRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized",
			})
		}
		if !user.IsModerator() {
			return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{
				Message: "Forbidden: moderator role required",
			})
		}
		return c.Next()
	}
}
