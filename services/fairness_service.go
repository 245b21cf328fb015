package services

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
	"gorm.io/gorm"
)

// RepeatBlocked is the anti-monopoly rule: the previous completed session
// between the pair blocks the proposal only when it ran in the same teaching
// direction with the same skill. A different skill, or a prior session where
// the other party taught, is always fine.
func RepeatBlocked(prevTeacherID uuid.UUID, prevSkill string, teacherID uuid.UUID, skill string) bool {
	return prevTeacherID == teacherID && prevSkill == skill
}

// CheckFairness validates a proposed (teacher, participant, skill) triple
// against the most recent completed session involving both parties, in
// either teaching direction.
func CheckFairness(teacherID, participantID uuid.UUID, skill string) error {
	prev, err := latestCompletedBetween(teacherID, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check session history")
	}

	if RepeatBlocked(prev.TeacherID, prev.Skill, teacherID, skill) {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("your last completed session with this participant already covered %s in the same direction", skill))
	}
	return nil
}

func latestCompletedBetween(a, b uuid.UUID) (*models.Session, error) {
	aMember := fmt.Sprintf("[%q]", a.String())
	bMember := fmt.Sprintf("[%q]", b.String())

	var prev models.Session
	err := database.DB.
		Where("status = ?", models.SessionCompleted).
		Where(
			database.DB.
				Where("teacher_id = ? AND (participants::jsonb @> ? OR learner_id = ?)", a, bMember, b).
				Or("teacher_id = ? AND (participants::jsonb @> ? OR learner_id = ?)", b, aMember, a),
		).
		Order("end_time DESC NULLS LAST, updated_at DESC").
		First(&prev).Error
	if err != nil {
		return nil, err
	}
	return &prev, nil
}
