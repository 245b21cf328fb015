package services

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
)

const masteryHoursTarget = 10.0

// SkillProgressPercent maps accumulated learning hours onto a 0-100 scale,
// full marks at ten hours.
func SkillProgressPercent(hoursAccumulated float64) float64 {
	pct := hoursAccumulated / masteryHoursTarget * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

type ProgressReport struct {
	Credits           float64            `json:"credits"`
	TotalLearnedHours float64            `json:"total_learned_hours"`
	SessionsTaught    int64              `json:"sessions_taught"`
	SessionsLearned   int64              `json:"sessions_learned"`
	SkillsMastered    int                `json:"skills_mastered"`
	Badges            []string           `json:"badges"`
	SkillProgress     map[string]float64 `json:"skill_progress"`
}

// BuildProgress assembles the read-only reputation summary for one user.
// Per-skill percentages cover only skills not yet claimed as mastered.
func BuildProgress(userID uuid.UUID) (*ProgressReport, error) {
	var user models.User
	if err := database.DB.Preload("Badges").First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	var sessionsTaught int64
	database.DB.Model(&models.Session{}).
		Where("teacher_id = ? AND status = ?", userID, models.SessionCompleted).
		Count(&sessionsTaught)

	member := fmt.Sprintf("[%q]", userID.String())
	var sessionsLearned int64
	database.DB.Model(&models.Session{}).
		Where("completed_participants::jsonb @> ? AND teacher_id <> ?", member, userID).
		Count(&sessionsLearned)

	type skillHours struct {
		Skill       string
		HoursTaught float64
	}
	var rows []skillHours
	database.DB.Model(&models.Feedback{}).
		Select("sessions.skill AS skill, feedbacks.hours_taught AS hours_taught").
		Joins("JOIN sessions ON sessions.id = feedbacks.session_id").
		Where("feedbacks.learner_id = ?", userID).
		Scan(&rows)

	hoursBySkill := make(map[string]float64)
	for _, r := range rows {
		hoursBySkill[r.Skill] += r.HoursTaught
	}

	var masteredSkills []string
	database.DB.Model(&models.Session{}).
		Where("skill_claimed_by::jsonb @> ?", member).
		Distinct().
		Pluck("skill", &masteredSkills)

	mastered := make(map[string]bool, len(masteredSkills))
	for _, s := range masteredSkills {
		mastered[s] = true
	}

	progress := make(map[string]float64)
	for skill, hours := range hoursBySkill {
		if mastered[skill] {
			continue
		}
		progress[skill] = SkillProgressPercent(hours)
	}
	for _, skill := range user.LearnSkills {
		if _, ok := progress[skill]; !ok && !mastered[skill] {
			progress[skill] = 0
		}
	}

	badges := make([]string, 0, len(user.Badges))
	for _, b := range user.Badges {
		badges = append(badges, b.Name)
	}

	return &ProgressReport{
		Credits:           user.Credits,
		TotalLearnedHours: user.TotalLearnedHours,
		SessionsTaught:    sessionsTaught,
		SessionsLearned:   sessionsLearned,
		SkillsMastered:    user.SkillsMastered,
		Badges:            badges,
		SkillProgress:     progress,
	}, nil
}
