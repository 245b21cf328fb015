package services

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
	"github.com/kmuriithi/skillswap/notifications"
	"github.com/kmuriithi/skillswap/sentiment"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentiment scores feedback comments for the credit formula. Package-level so
// tests and alternative backends can swap it.
var Sentiment sentiment.Analyzer = sentiment.NewLexiconAnalyzer()

// ComputeCredits is the teacher's reward for one piece of feedback:
// two credits per taught hour, a group-size bonus, five credits per rating
// point and a sentiment adjustment, clamped at zero.
func ComputeCredits(hoursTaught float64, participantCount int, rating float64, sentimentScore int) float64 {
	baseCredits := hoursTaught * 2

	participantBonus := 2.0
	if participantCount > 1 {
		participantBonus = 2 + float64(participantCount-1)*3
	}

	ratingFactor := rating * 5
	if rating < 0.1 {
		// Request validation keeps ratings integral 1-5, so this floor from
		// the original formula never fires; kept for exact parity.
		ratingFactor = 0.5
	}

	var sentimentBonus float64
	switch {
	case sentimentScore > 0:
		sentimentBonus = 6
	case sentimentScore == 0:
		sentimentBonus = 3
	default:
		sentimentBonus = -6
	}

	total := baseCredits + participantBonus + ratingFactor + sentimentBonus
	if total < 0 {
		total = 0
	}
	return total
}

type SubmitFeedbackInput struct {
	LearnerID   uuid.UUID
	SessionID   uuid.UUID
	Rating      int
	Comment     string
	HoursTaught float64
}

// SubmitFeedback persists the feedback, credits the teacher, books the
// learner's hours and re-evaluates the teacher's badges. The uniqueness of
// (session, learner) is guaranteed by the composite index; the pre-check only
// produces the friendlier error.
func SubmitFeedback(in SubmitFeedbackInput) (*models.Feedback, error) {
	var feedback models.Feedback
	var session models.Session

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", in.SessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if !session.HasParticipant(in.LearnerID) {
			return fiber.NewError(fiber.StatusForbidden, "you are not a participant of this session")
		}
		if session.Status != models.SessionCompleted && !session.HasCompleted(in.LearnerID) {
			return fiber.NewError(fiber.StatusConflict, "feedback can only be given once your session is completed")
		}

		var existing models.Feedback
		if err := tx.Where("session_id = ? AND learner_id = ?", in.SessionID, in.LearnerID).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "feedback already submitted for this session")
		}

		participantCount := len(session.ActiveParticipants())
		if participantCount == 0 {
			participantCount = 1
		}
		credits := ComputeCredits(in.HoursTaught, participantCount, float64(in.Rating), Sentiment.Analyze(in.Comment))

		feedback = models.Feedback{
			SessionID:      in.SessionID,
			LearnerID:      in.LearnerID,
			TeacherID:      session.TeacherID,
			Rating:         in.Rating,
			Comment:        in.Comment,
			HoursTaught:    in.HoursTaught,
			CreditsAwarded: credits,
		}
		if err := tx.Create(&feedback).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "feedback already submitted for this session")
		}

		if err := tx.Model(&models.User{}).Where("id = ?", session.TeacherID).
			Update("credits", gorm.Expr("credits + ?", credits)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", in.LearnerID).
			Update("total_learned_hours", gorm.Expr("total_learned_hours + ?", in.HoursTaught)).Error; err != nil {
			return err
		}

		session.MarkFeedbackGiven(in.LearnerID)
		if session.AllGaveFeedback() {
			session.FeedbackGiven = true
		}
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		return EvaluateBadges(tx, session.TeacherID)
	})
	if err != nil {
		return nil, err
	}

	go notifications.Notify(session.TeacherID, notifications.EventFeedbackReceived,
		fmt.Sprintf("You received a %d-star rating for your %s session and earned %.2f credits.",
			feedback.Rating, session.Skill, feedback.CreditsAwarded))

	return &feedback, nil
}

type UpdateFeedbackInput struct {
	Rating      *int
	Comment     *string
	HoursTaught *float64
}

// UpdateFeedback lets the original learner revise their words. Credits
// awarded at submission time stay as they were.
func UpdateFeedback(feedbackID, actorID uuid.UUID, in UpdateFeedbackInput) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := database.DB.First(&feedback, "id = ?", feedbackID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "feedback not found")
	}
	if feedback.LearnerID != actorID {
		return nil, fiber.NewError(fiber.StatusForbidden, "only the author can revise feedback")
	}

	if in.Rating != nil {
		feedback.Rating = *in.Rating
	}
	if in.Comment != nil {
		feedback.Comment = *in.Comment
	}
	if in.HoursTaught != nil {
		feedback.HoursTaught = *in.HoursTaught
	}

	if err := database.DB.Save(&feedback).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to update feedback")
	}
	return &feedback, nil
}

// ListFeedbackForSession returns all feedback on a session, visible to any of
// its parties.
func ListFeedbackForSession(sessionID, userID uuid.UUID) ([]models.Feedback, error) {
	var session models.Session
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	if !session.HasRole(userID) && !session.HasCancelled(userID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "you are not part of this session")
	}

	var feedback []models.Feedback
	if err := database.DB.Preload("Learner").Where("session_id = ?", sessionID).
		Order("created_at ASC").Find(&feedback).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to list feedback")
	}
	return feedback, nil
}
