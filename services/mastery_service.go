package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClaimMastery records a learner's one-time declaration that a completed
// session taught them its skill. Feedback must come first, and the claim can
// never be repeated for the same session.
func ClaimMastery(learnerID, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if !session.HasParticipant(learnerID) {
			return fiber.NewError(fiber.StatusForbidden, "you are not a participant of this session")
		}
		if session.Status != models.SessionCompleted && !session.HasCompleted(learnerID) {
			return fiber.NewError(fiber.StatusConflict, "mastery can only be claimed once your session is completed")
		}
		if !session.HasGivenFeedback(learnerID) {
			return fiber.NewError(fiber.StatusConflict, "give feedback before claiming skill mastery")
		}
		if session.HasClaimedSkill(learnerID) {
			return fiber.NewError(fiber.StatusConflict, "mastery already claimed for this session")
		}

		session.MarkSkillClaimed(learnerID)
		if session.AllClaimedSkill() {
			session.SkillClaimed = true
		}
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", learnerID).
			Update("skills_mastered", gorm.Expr("skills_mastered + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	go GenerateMasteryCertificate(session.ID, learnerID)

	return &session, nil
}
