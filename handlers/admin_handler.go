package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
	"github.com/kmuriithi/skillswap/services"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateUser provisions a member account. Self-signup is handled by the
// identity collaborator, not this service.
func CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     "member",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A user with this email already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func DeactivateUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = false
	database.DB.Save(&user)
	return c.JSON(fiber.Map{"message": "User deactivated"})
}

func ListAllSessions(c *fiber.Ctx) error {
	services.ExpireStaleSessions()

	var sessions []models.Session
	if err := database.DB.Preload("Teacher").Order("created_at DESC").Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(sessions)
}

func ListAllFeedback(c *fiber.Ctx) error {
	var feedback []models.Feedback
	if err := database.DB.Preload("Learner").Order("created_at DESC").Find(&feedback).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(feedback)
}

func ListReports(c *fiber.Ctx) error {
	status := c.Query("status", models.ReportActive)

	var reports []models.Report
	if err := database.DB.
		Preload("Reporter").
		Preload("Reported").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(reports)
}

type ResolveReportRequest struct {
	Status     string `json:"status" validate:"required,oneof=resolved dismissed"`
	Resolution string `json:"resolution" validate:"required"`
}

func ResolveReport(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	adminID, _ := uuid.Parse(claims["user_id"].(string))

	reportID := c.Params("reportId")

	var req ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var report models.Report
	if err := database.DB.First(&report, "id = ?", reportID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}
	if report.Status != models.ReportActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Report is already closed"})
	}

	report.Status = req.Status
	report.ResolvedBy = &adminID
	report.Resolution = &req.Resolution
	database.DB.Save(&report)
	return c.JSON(report)
}

type BadgeTierRequest struct {
	Name             string  `json:"name" validate:"required"`
	Rank             int     `json:"rank" validate:"required,min=1"`
	SessionsRequired int64   `json:"sessions_required" validate:"required,min=1"`
	CreditsRequired  float64 `json:"credits_required" validate:"required,min=1"`
	Description      string  `json:"description"`
}

func CreateBadgeTier(c *fiber.Ctx) error {
	var req BadgeTierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	badge := models.Badge{
		Name:             req.Name,
		Rank:             req.Rank,
		SessionsRequired: req.SessionsRequired,
		CreditsRequired:  req.CreditsRequired,
		Description:      req.Description,
	}
	if err := database.DB.Create(&badge).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A badge with this name or rank already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(badge)
}

func ListBadgeTiers(c *fiber.Ctx) error {
	var badges []models.Badge
	database.DB.Order("rank ASC").Find(&badges)
	return c.JSON(badges)
}

func DeleteBadgeTier(c *fiber.Ctx) error {
	badgeID := c.Params("badgeId")
	result := database.DB.Delete(&models.Badge{}, "id = ?", badgeID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete badge"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Badge not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
