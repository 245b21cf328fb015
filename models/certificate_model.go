package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is the rendered proof of a successful mastery claim.
type Certificate struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LearnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"learner_id"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null" json:"teacher_id"`
	SessionID   uuid.UUID `gorm:"type:uuid;not null" json:"session_id"`
	Skill       string    `gorm:"size:100;not null" json:"skill"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	IssuedAt    time.Time `gorm:"not null" json:"issued_at"`
	DocumentURL string    `gorm:"type:text;not null" json:"document_url"`

	Learner User `gorm:"foreignkey:LearnerID" json:"-"`
	Teacher User `gorm:"foreignkey:TeacherID" json:"-"`
}
