package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Global session statuses. Per-user outcomes live in the overlay sets below;
// the global enum only moves at whole-session boundaries.
const (
	SessionUpcoming           = "upcoming"
	SessionCompleted          = "completed"
	SessionCancelled          = "cancelled"
	SessionExpired            = "expired"
	SessionCancelledByTeacher = "cancelled_by_teacher"
)

// MeetingLinkGraceMinutes is how long after the scheduled start a meeting
// link stays joinable before the session is considered stale.
const MeetingLinkGraceMinutes = 30

type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Skill     string    `gorm:"size:100;not null" json:"skill"`
	Status    string    `gorm:"size:30;not null;default:'upcoming';index" json:"status"`

	// Participants holds the currently-active learners. Cancelling moves an
	// id from here into CancelledParticipants.
	Participants datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"participants"`

	// LearnerID is kept for rows written before group sessions existed. New
	// writes derive it from Participants; reads go through ActiveParticipants.
	LearnerID *uuid.UUID `gorm:"type:uuid" json:"learner_id,omitempty"`

	CancelledParticipants datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"cancelled_participants"`
	CompletedParticipants datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"completed_participants"`
	FeedbackGivenBy       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"feedback_given_by"`
	SkillClaimedBy        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skill_claimed_by"`
	HiddenForUsers        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"-"`

	Date      string     `gorm:"size:20" json:"date"`
	TimeOfDay string     `gorm:"size:20" json:"time"`
	StartTime *time.Time `gorm:"index" json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	MeetingLink          *string `gorm:"size:255" json:"meeting_link,omitempty"`
	MeetingLinkActivated bool    `gorm:"default:false" json:"meeting_link_activated"`
	MeetingLinkExpired   bool    `gorm:"default:false" json:"meeting_link_expired"`

	// Legacy whole-session flags, set once every active participant has
	// performed the corresponding action.
	FeedbackGiven bool `gorm:"default:false" json:"feedback_given"`
	SkillClaimed  bool `gorm:"default:false" json:"skill_claimed"`

	Teacher User `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func contains(set datatypes.JSONSlice[string], id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

// appendUnique keeps set semantics on the JSON columns: re-adding an id that
// is already present is a no-op.
func appendUnique(set datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	if contains(set, id) {
		return set
	}
	return append(set, id)
}

func removeID(set datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	out := set[:0]
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// ActiveParticipants returns the active learner ids, folding in the legacy
// single-learner column for rows that predate group sessions.
func (s *Session) ActiveParticipants() []string {
	if len(s.Participants) > 0 {
		return s.Participants
	}
	if s.LearnerID != nil && !contains(s.CancelledParticipants, s.LearnerID.String()) {
		return []string{s.LearnerID.String()}
	}
	return nil
}

// Learner is the backward-compatible single-learner view: the first active
// participant, or the legacy column when the set is empty.
func (s *Session) Learner() *uuid.UUID {
	active := s.ActiveParticipants()
	if len(active) == 0 {
		return nil
	}
	id, err := uuid.Parse(active[0])
	if err != nil {
		return nil
	}
	return &id
}

func (s *Session) IsTeacher(userID uuid.UUID) bool {
	return s.TeacherID == userID
}

func (s *Session) HasParticipant(userID uuid.UUID) bool {
	id := userID.String()
	if contains(s.Participants, id) {
		return true
	}
	// The legacy column only counts while the learner has not cancelled,
	// mirroring ActiveParticipants.
	return s.LearnerID != nil && *s.LearnerID == userID && !contains(s.CancelledParticipants, id)
}

// HasRole reports whether the user is the teacher, an active participant or
// the legacy learner of this session.
func (s *Session) HasRole(userID uuid.UUID) bool {
	return s.IsTeacher(userID) || s.HasParticipant(userID)
}

func (s *Session) HasCancelled(userID uuid.UUID) bool {
	return contains(s.CancelledParticipants, userID.String())
}

func (s *Session) HasCompleted(userID uuid.UUID) bool {
	return contains(s.CompletedParticipants, userID.String())
}

func (s *Session) HasGivenFeedback(userID uuid.UUID) bool {
	return contains(s.FeedbackGivenBy, userID.String())
}

func (s *Session) HasClaimedSkill(userID uuid.UUID) bool {
	return contains(s.SkillClaimedBy, userID.String())
}

func (s *Session) IsHiddenFor(userID uuid.UUID) bool {
	return contains(s.HiddenForUsers, userID.String())
}

func (s *Session) AddParticipant(userID uuid.UUID) {
	s.Participants = appendUnique(s.Participants, userID.String())
}

// CancelParticipant moves a learner out of the active set. It returns true
// when no active participant remains afterwards.
func (s *Session) CancelParticipant(userID uuid.UUID) bool {
	id := userID.String()
	s.Participants = removeID(s.Participants, id)
	s.CancelledParticipants = appendUnique(s.CancelledParticipants, id)
	return len(s.ActiveParticipants()) == 0
}

func (s *Session) MarkCompleted(userID uuid.UUID) {
	s.CompletedParticipants = appendUnique(s.CompletedParticipants, userID.String())
}

func (s *Session) MarkFeedbackGiven(userID uuid.UUID) {
	s.FeedbackGivenBy = appendUnique(s.FeedbackGivenBy, userID.String())
}

func (s *Session) MarkSkillClaimed(userID uuid.UUID) {
	s.SkillClaimedBy = appendUnique(s.SkillClaimedBy, userID.String())
}

func (s *Session) HideFor(userID uuid.UUID) {
	s.HiddenForUsers = appendUnique(s.HiddenForUsers, userID.String())
}

// AllCompleted reports whether the teacher and every active participant are
// present in CompletedParticipants.
func (s *Session) AllCompleted() bool {
	if !contains(s.CompletedParticipants, s.TeacherID.String()) {
		return false
	}
	active := s.ActiveParticipants()
	if len(active) == 0 {
		return false
	}
	for _, id := range active {
		if !contains(s.CompletedParticipants, id) {
			return false
		}
	}
	return true
}

func (s *Session) AllGaveFeedback() bool {
	active := s.ActiveParticipants()
	if len(active) == 0 {
		return false
	}
	for _, id := range active {
		if !contains(s.FeedbackGivenBy, id) {
			return false
		}
	}
	return true
}

func (s *Session) AllClaimedSkill() bool {
	active := s.ActiveParticipants()
	if len(active) == 0 {
		return false
	}
	for _, id := range active {
		if !contains(s.SkillClaimedBy, id) {
			return false
		}
	}
	return true
}

// StatusFor projects the user-facing status from the overlay sets without
// touching the global enum: a learner who cancelled sees "cancelled" and one
// who completed sees "completed" even while the session runs on for others.
func (s *Session) StatusFor(userID uuid.UUID) string {
	if s.Status != SessionUpcoming && s.Status != SessionCompleted {
		return s.Status
	}
	if !s.IsTeacher(userID) {
		if s.HasCancelled(userID) {
			return SessionCancelled
		}
		if s.HasCompleted(userID) {
			return SessionCompleted
		}
	}
	return s.Status
}
