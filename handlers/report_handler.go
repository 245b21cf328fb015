package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
)

type CreateReportRequest struct {
	ReportedID string `json:"reported_id" validate:"required,uuid"`
	Reason     string `json:"reason" validate:"required,min=10"`
}

// CreateReport files a report against a peer. While it stays active, no new
// session can be scheduled between the two users.
func CreateReport(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	reporterID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reportedID, _ := uuid.Parse(req.ReportedID)
	if reportedID == reporterID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot report yourself"})
	}

	var reported models.User
	if err := database.DB.First(&reported, "id = ?", reportedID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var count int64
	database.DB.Model(&models.Report{}).
		Where("reporter_id = ? AND reported_id = ? AND status = ?", reporterID, reportedID, models.ReportActive).
		Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have an active report against this user"})
	}

	report := models.Report{
		ReporterID: reporterID,
		ReportedID: reportedID,
		Reason:     req.Reason,
		Status:     models.ReportActive,
	}
	if err := database.DB.Create(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create report"})
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func ListMyReports(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var reports []models.Report
	database.DB.
		Preload("Reported").
		Where("reporter_id = ?", userID).
		Order("created_at DESC").
		Find(&reports)
	return c.JSON(reports)
}
