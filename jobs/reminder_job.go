package jobs

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
	"github.com/kmuriithi/skillswap/notifications"
)

// SendFeedbackReminders nudges completed participants who have not left
// feedback yet. Sessions where everyone has spoken are skipped via the
// legacy whole-session flag.
func SendFeedbackReminders() {
	log.Println("Running job: SendFeedbackReminders...")

	var sessions []models.Session
	err := database.DB.
		Where("status = ? AND feedback_given = ?", models.SessionCompleted, false).
		Find(&sessions).Error
	if err != nil {
		log.Printf("Error checking for sessions awaiting feedback: %v", err)
		return
	}

	reminders := 0
	for i := range sessions {
		session := &sessions[i]
		for _, id := range session.CompletedParticipants {
			pid, err := uuid.Parse(id)
			if err != nil || pid == session.TeacherID || session.HasGivenFeedback(pid) {
				continue
			}
			go notifications.Notify(pid, notifications.EventFeedbackPending,
				fmt.Sprintf("Your %s session is waiting for feedback. Your teacher earns credits once you rate it.", session.Skill))
			reminders++
		}
	}

	if reminders > 0 {
		log.Printf("Sent %d feedback reminder(s).", reminders)
	}
}
