package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kmuriithi/skillswap/handlers"
	"github.com/kmuriithi/skillswap/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("/me", handlers.GetProfile)
	profile.Put("/me", handlers.UpdateProfile)
	profile.Put("/me/skills", handlers.UpdateSkills)
	profile.Get("/me/progress", handlers.GetMyProgress)
	profile.Get("/me/badges", handlers.GetMyBadges)
	profile.Get("/me/certificates", handlers.ListMyCertificates)

	upload := api.Group("/uploads", middleware.Protected())
	upload.Get("/signature", handlers.GenerateUploadSignature)
}
