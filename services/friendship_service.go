package services

import (
	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
)

// AreFriends reports whether an accepted friendship row links the two users,
// in either direction.
func AreFriends(a, b uuid.UUID) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Friendship{}).
		Where("status = ?", models.FriendshipAccepted).
		Where(
			database.DB.
				Where("requester_id = ? AND addressee_id = ?", a, b).
				Or("requester_id = ? AND addressee_id = ?", b, a),
		).
		Count(&count).Error
	return count > 0, err
}

// HasActiveReport reports whether an unresolved report exists between the two
// users, in either direction. Active reports freeze new sessions for the pair.
func HasActiveReport(a, b uuid.UUID) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Report{}).
		Where("status = ?", models.ReportActive).
		Where(
			database.DB.
				Where("reporter_id = ? AND reported_id = ?", a, b).
				Or("reporter_id = ? AND reported_id = ?", b, a),
		).
		Count(&count).Error
	return count > 0, err
}
