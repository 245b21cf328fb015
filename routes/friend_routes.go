package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kmuriithi/skillswap/handlers"
	"github.com/kmuriithi/skillswap/middleware"
)

func FriendRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	friends := api.Group("/friends", middleware.Protected())
	friends.Get("", handlers.ListMyFriends)
	friends.Get("/requests", handlers.ListPendingFriendRequests)
	friends.Post("/:userId/request", handlers.SendFriendRequest)
	friends.Post("/requests/:requestId/respond", handlers.RespondToFriendRequest)
}
