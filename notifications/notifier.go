package notifications

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
)

// Event names emitted by the session and feedback flows. Delivery and final
// formatting belong to the mail collaborator, not to the callers.
const (
	EventSessionCreated   = "session-created"
	EventSessionCancelled = "session-cancelled"
	EventFeedbackPending  = "feedback-pending"
	EventFeedbackReceived = "feedback-received"
)

var subjects = map[string]string{
	EventSessionCreated:   "You Have a New Session Scheduled!",
	EventSessionCancelled: "A Session Was Cancelled",
	EventFeedbackPending:  "How Was Your Session? Leave Feedback",
	EventFeedbackReceived: "You Received New Feedback",
}

// Notify delivers one event to one recipient. It is best-effort by contract:
// lookup or delivery failures are logged and swallowed so a notification can
// never fail the operation that emitted it. Call sites run it in a goroutine.
func Notify(recipientID uuid.UUID, event, message string) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", recipientID).Error; err != nil {
		log.Printf("🔥 Notify: recipient %s not found: %v", recipientID, err)
		return
	}

	subject, ok := subjects[event]
	if !ok {
		subject = "SkillSwap Update"
	}

	body := fmt.Sprintf("<h1>%s</h1><p>Hi %s,</p><p>%s</p>", subject, user.FullName, message)
	SendEmail(user.FullName, user.Email, subject, body)
}
