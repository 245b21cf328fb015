package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
)

func SendFriendRequest(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	requesterID, _ := uuid.Parse(claims["user_id"].(string))

	addresseeID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}
	if addresseeID == requesterID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot befriend yourself"})
	}

	var addressee models.User
	if err := database.DB.First(&addressee, "id = ?", addresseeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var existing models.Friendship
	err = database.DB.Where(
		database.DB.
			Where("requester_id = ? AND addressee_id = ?", requesterID, addresseeID).
			Or("requester_id = ? AND addressee_id = ?", addresseeID, requesterID),
	).First(&existing).Error
	if err == nil {
		if existing.Status == models.FriendshipAccepted {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You are already friends"})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A friend request already exists"})
	}

	friendship := models.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipPending,
	}
	if err := database.DB.Create(&friendship).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send friend request"})
	}
	return c.Status(fiber.StatusCreated).JSON(friendship)
}

type RespondFriendRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

func RespondToFriendRequest(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var req RespondFriendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var friendship models.Friendship
	if err := database.DB.First(&friendship, "id = ?", requestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Friend request not found"})
	}
	if friendship.AddresseeID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This request is not addressed to you"})
	}
	if friendship.Status != models.FriendshipPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This request was already answered"})
	}

	friendship.Status = req.Status
	database.DB.Save(&friendship)
	return c.JSON(friendship)
}

func ListMyFriends(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var friendships []models.Friendship
	database.DB.
		Preload("Requester").
		Preload("Addressee").
		Where("status = ?", models.FriendshipAccepted).
		Where(
			database.DB.
				Where("requester_id = ?", userID).
				Or("addressee_id = ?", userID),
		).
		Find(&friendships)

	friends := make([]models.User, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == userID {
			friends = append(friends, f.Addressee)
		} else {
			friends = append(friends, f.Requester)
		}
	}
	return c.JSON(friends)
}

func ListPendingFriendRequests(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var pending []models.Friendship
	database.DB.
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipPending).
		Find(&pending)
	return c.JSON(pending)
}
