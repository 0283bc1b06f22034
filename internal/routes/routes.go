package routes

import (
	"time"

	"github.com/Ferrokwastaken/story-app-api/internal/config"
	"github.com/Ferrokwastaken/story-app-api/internal/handlers"
	"github.com/Ferrokwastaken/story-app-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Category  *handlers.CategoryHandler
	Tag       *handlers.TagHandler
	Story     *handlers.StoryHandler
	Comment   *handlers.CommentHandler
	Moderator *handlers.ModeratorHandler
	Report    *handlers.ReportHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Login gets a stricter limit and must be registered before the
	// moderator group so the gate middleware never sees it.
	api.Post("/moderator/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), h.Auth.ModeratorLogin)

	api.Post("/logout", middleware.JWTProtected(cfg), middleware.TokenActive(db), h.Auth.Logout)

	// Categories
	api.Get("/categories", h.Category.Index)
	api.Post("/categories", h.Category.Store)
	api.Get("/categories/:id", h.Category.Show)
	api.Put("/categories/:id", h.Category.Update)
	api.Delete("/categories/:id", h.Category.Destroy)

	// Tags
	api.Get("/tags", h.Tag.Index)
	api.Post("/tags", h.Tag.Store)
	api.Get("/tags/:id", h.Tag.Show)
	api.Put("/tags/:id", h.Tag.Update)
	api.Delete("/tags/:id", h.Tag.Destroy)

	// Stories
	api.Get("/stories", h.Story.Index)
	api.Post("/stories", h.Story.Store)
	api.Get("/stories/:story", h.Story.Show)
	api.Put("/stories/:story", h.Story.Update)
	api.Delete("/stories/:story", h.Story.Destroy)
	api.Post("/stories/:story/report", h.Story.Report)
	api.Post("/stories/:story/rate", h.Story.Rate)
	api.Post("/stories/:story/tags", h.Story.AddTag)

	// Comments, shallow below the story nesting
	api.Get("/stories/:story/comments", h.Comment.Index)
	api.Post("/stories/:story/comments", h.Comment.Store)
	api.Get("/comments/:comment", h.Comment.Show)
	api.Put("/comments/:comment", h.Comment.Update)
	api.Delete("/comments/:comment", h.Comment.Destroy)
	api.Post("/comments/:comment/report", h.Comment.Report)

	// Unified report resource over the two report tables
	api.Get("/reports", h.Report.Index)
	api.Get("/reports/:id", h.Report.Show)
	api.Put("/reports/:id", h.Report.Update)
	api.Delete("/reports/:id", h.Report.Destroy)

	// Moderator panel: bearer token plus role gate
	moderator := api.Group("/moderator",
		middleware.JWTProtected(cfg),
		middleware.TokenActive(db),
		middleware.ModeratorRequired(),
	)
	moderator.Get("/home", h.Moderator.Home)
	moderator.Get("/stories", h.Moderator.IndexStories)
	moderator.Put("/stories/:story", h.Moderator.UpdateStory)
	moderator.Delete("/stories/:story", h.Moderator.DestroyStory)
	moderator.Get("/stories/:story/pending-tags", h.Moderator.IndexPendingTags)
	moderator.Post("/stories/:story/tags/:tag/approve", h.Moderator.ApproveTag)
	moderator.Delete("/stories/:story/tags/:tag/reject", h.Moderator.RejectTag)
}
