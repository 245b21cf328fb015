package services

import (
	"log"

	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/models"
	"gorm.io/gorm"
)

// EarnedTiers walks the whole catalog and returns every tier whose both
// thresholds are met and that is not already held. Checking all tiers each
// time lets a teacher cross several rungs in one credit award, and re-running
// with nothing new to grant returns nothing.
func EarnedTiers(sessionsTaught int64, credits float64, held func(name string) bool) []models.BadgeTier {
	var earned []models.BadgeTier
	for _, tier := range models.BadgeTiers {
		if sessionsTaught >= tier.Sessions && credits >= tier.Credits && !held(tier.Name) {
			earned = append(earned, tier)
		}
	}
	return earned
}

// EvaluateBadges grants every newly earned badge to the teacher. Runs inside
// the caller's transaction, right after a credit award.
func EvaluateBadges(tx *gorm.DB, teacherID uuid.UUID) error {
	var teacher models.User
	if err := tx.Preload("Badges").First(&teacher, "id = ?", teacherID).Error; err != nil {
		return err
	}

	var sessionsTaught int64
	if err := tx.Model(&models.Session{}).
		Where("teacher_id = ? AND status = ?", teacherID, models.SessionCompleted).
		Count(&sessionsTaught).Error; err != nil {
		return err
	}

	for _, tier := range EarnedTiers(sessionsTaught, teacher.Credits, teacher.HasBadge) {
		var badge models.Badge
		if err := tx.Where("name = ?", tier.Name).First(&badge).Error; err != nil {
			log.Printf("Warning: Badge '%s' not found in database. Cannot award.", tier.Name)
			continue
		}
		if err := tx.Model(&teacher).Association("Badges").Append(&badge); err != nil {
			return err
		}
		log.Printf("✅ Awarded badge '%s' to teacher %s.", tier.Name, teacherID)
	}
	return nil
}
