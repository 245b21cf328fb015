package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportActive    = "active"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// Report blocks new sessions between the two users involved until an admin
// resolves or dismisses it.
type Report struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReporterID uuid.UUID `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReportedID uuid.UUID `gorm:"type:uuid;not null;index" json:"reported_id"`
	Reason     string    `gorm:"type:text;not null" json:"reason"`
	Status     string    `gorm:"size:20;not null;default:'active'" json:"status"`

	ResolvedBy *uuid.UUID `gorm:"type:uuid" json:"resolved_by,omitempty"`
	Resolution *string    `gorm:"type:text" json:"resolution,omitempty"`

	Reporter User `gorm:"foreignkey:ReporterID" json:"reporter,omitempty"`
	Reported User `gorm:"foreignkey:ReportedID" json:"reported,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
