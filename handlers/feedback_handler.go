package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/services"
)

type SubmitFeedbackRequest struct {
	Rating      int     `json:"rating" validate:"required,min=1,max=5"`
	Comment     string  `json:"comment"`
	HoursTaught float64 `json:"hours_taught" validate:"required,gt=0"`
}

func SubmitFeedback(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	learnerID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	feedback, err := services.SubmitFeedback(services.SubmitFeedbackInput{
		LearnerID:   learnerID,
		SessionID:   sessionID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		HoursTaught: req.HoursTaught,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

type UpdateFeedbackRequest struct {
	Rating      *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment     *string  `json:"comment"`
	HoursTaught *float64 `json:"hours_taught" validate:"omitempty,gt=0"`
}

func UpdateFeedback(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	feedbackID, err := uuid.Parse(c.Params("feedbackId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid feedback id"})
	}

	var req UpdateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	feedback, err := services.UpdateFeedback(feedbackID, userID, services.UpdateFeedbackInput{
		Rating:      req.Rating,
		Comment:     req.Comment,
		HoursTaught: req.HoursTaught,
	})
	if err != nil {
		return err
	}
	return c.JSON(feedback)
}

func ListSessionFeedback(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	feedback, err := services.ListFeedbackForSession(sessionID, userID)
	if err != nil {
		return err
	}
	return c.JSON(feedback)
}
