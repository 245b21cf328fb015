package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kmuriithi/skillswap/handlers"
	"github.com/kmuriithi/skillswap/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Post("/users", handlers.CreateUser)
	admin.Get("/users", handlers.ListUsers)
	admin.Post("/users/:userId/deactivate", handlers.DeactivateUser)

	admin.Get("/sessions", handlers.ListAllSessions)
	admin.Get("/feedback", handlers.ListAllFeedback)

	admin.Get("/reports", handlers.ListReports)
	admin.Post("/reports/:reportId/resolve", handlers.ResolveReport)

	badges := admin.Group("/badges")
	badges.Post("", handlers.CreateBadgeTier)
	badges.Get("", handlers.ListBadgeTiers)
	badges.Delete("/:badgeId", handlers.DeleteBadgeTier)
}
