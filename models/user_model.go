package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User doubles as the reputation ledger: credits, learned hours and the
// mastery counter are only ever written by the feedback and mastery services.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'member'" json:"role"`

	TeachSkills datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"teach_skills"`
	LearnSkills datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"learn_skills"`

	Credits           float64  `gorm:"type:numeric(12,2);default:0.00" json:"credits"`
	TotalLearnedHours float64  `gorm:"type:numeric(10,2);default:0.00" json:"total_learned_hours"`
	SkillsMastered    int      `gorm:"default:0" json:"skills_mastered"`
	Badges            []*Badge `gorm:"many2many:user_badges;" json:"badges,omitempty"`

	Bio               *string `gorm:"type:text" json:"bio"`
	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	TimeZone          *string `gorm:"size:100" json:"time_zone"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) CanTeach(skill string) bool {
	for _, s := range u.TeachSkills {
		if s == skill {
			return true
		}
	}
	return false
}

func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}
