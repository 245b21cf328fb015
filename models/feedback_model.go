package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one learner's verdict on one session. The composite unique
// index is what serializes concurrent submissions for the same pair.
type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_session_learner" json:"session_id"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_session_learner" json:"learner_id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`

	Rating      int     `gorm:"not null" json:"rating"`
	Comment     string  `gorm:"type:text" json:"comment"`
	HoursTaught float64 `gorm:"type:numeric(6,2);not null" json:"hours_taught"`

	// CreditsAwarded records what the teacher earned at submission time.
	// Later revisions of rating or comment do not recompute it.
	CreditsAwarded float64 `gorm:"type:numeric(12,2);not null" json:"credits_awarded"`

	Session Session `gorm:"foreignkey:SessionID" json:"-"`
	Learner User    `gorm:"foreignkey:LearnerID" json:"learner,omitempty"`
	Teacher User    `gorm:"foreignkey:TeacherID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
