package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/services"
)

type CreateSessionRequest struct {
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1,dive,uuid"`
	Skill          string   `json:"skill" validate:"required"`
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string   `json:"time" validate:"omitempty,datetime=15:04"`
	DurationHours  float64  `json:"duration_hours" validate:"omitempty,gt=0"`
	EndTime        *string  `json:"end_time" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func CreateSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	participantIDs := make([]uuid.UUID, 0, len(req.ParticipantIDs))
	for _, raw := range req.ParticipantIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid participant id"})
		}
		participantIDs = append(participantIDs, id)
	}

	input := services.CreateSessionInput{
		TeacherID:      teacherID,
		ParticipantIDs: participantIDs,
		Skill:          req.Skill,
		Date:           req.Date,
		TimeOfDay:      req.Time,
		DurationHours:  req.DurationHours,
	}
	if req.EndTime != nil {
		end, _ := time.Parse(time.RFC3339, *req.EndTime)
		input.EndTime = &end
	}

	session, err := services.CreateSession(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func ListMySessions(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessions, err := services.ListSessionsFor(userID)
	if err != nil {
		return err
	}
	return c.JSON(sessions)
}

func GetSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.GetSessionFor(sessionID, userID)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func JoinSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.JoinSession(sessionID, userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"meeting_link": session.MeetingLink, "session": session})
}

func CancelSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.CancelSession(sessionID, userID)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func CompleteSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.CompleteSession(sessionID, userID)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func DeleteSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	if err := services.DeleteSession(sessionID, userID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ClaimMastery(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.ClaimMastery(userID, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Skill mastery recorded", "session": session})
}
