package models

import (
	"time"

	"github.com/google/uuid"
)

// Badge is one tier of the reputation ladder. Rank orders the catalog;
// SessionsRequired and CreditsRequired both have to be met before the badge
// is granted. Grants are append-only; a badge once earned is never removed.
type Badge struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"size:255;not null;unique" json:"name"`
	Rank             int       `gorm:"not null;uniqueIndex" json:"rank"`
	SessionsRequired int64     `gorm:"not null" json:"sessions_required"`
	CreditsRequired  float64   `gorm:"not null" json:"credits_required"`
	Description      string    `gorm:"type:text" json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

// BadgeTier is one rung of the reputation ladder. The catalog below is the
// single source of truth for ordering and thresholds; the table rows it
// seeds exist so operators can read (and extend) the ladder without a deploy.
type BadgeTier struct {
	Rank     int
	Sessions int64
	Credits  float64
	Name     string
}

var BadgeTiers = []BadgeTier{
	{1, 10, 100, "Beginner"},
	{2, 20, 250, "Apprentice"},
	{3, 30, 450, "Helper"},
	{4, 45, 700, "Tutor"},
	{5, 60, 1000, "Guide"},
	{6, 80, 1400, "Mentor"},
	{7, 100, 1900, "Coach"},
	{8, 125, 2500, "Instructor"},
	{9, 150, 3200, "Educator"},
	{10, 180, 4000, "Specialist"},
	{11, 210, 5000, "Expert"},
	{12, 250, 6200, "Veteran"},
	{13, 290, 7600, "Scholar"},
	{14, 340, 9200, "Maestro"},
	{15, 390, 11000, "Sage"},
	{16, 450, 13000, "Champion"},
	{17, 520, 15500, "Luminary"},
	{18, 600, 18500, "Virtuoso"},
	{19, 700, 22000, "Legend"},
	{20, 800, 26000, "Grandmaster"},
}
