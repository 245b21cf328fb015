package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kmuriithi/skillswap/handlers"
	"github.com/kmuriithi/skillswap/middleware"
)

func SessionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("/me", handlers.ListMySessions)
	sessions.Post("", handlers.CreateSession)
	sessions.Get("/:sessionId", handlers.GetSession)
	sessions.Post("/:sessionId/join", handlers.JoinSession)
	sessions.Post("/:sessionId/cancel", handlers.CancelSession)
	sessions.Post("/:sessionId/complete", handlers.CompleteSession)
	sessions.Delete("/:sessionId", handlers.DeleteSession)
	sessions.Post("/:sessionId/claim-mastery", handlers.ClaimMastery)
}
