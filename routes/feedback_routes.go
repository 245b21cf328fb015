package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kmuriithi/skillswap/handlers"
	"github.com/kmuriithi/skillswap/middleware"
)

func FeedbackRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	feedback := api.Group("", middleware.Protected())
	feedback.Post("/sessions/:sessionId/feedback", handlers.SubmitFeedback)
	feedback.Get("/sessions/:sessionId/feedback", handlers.ListSessionFeedback)
	feedback.Put("/feedback/:feedbackId", handlers.UpdateFeedback)
}
