package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/kmuriithi/skillswap/configs"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
	"github.com/kmuriithi/skillswap/notifications"
	"github.com/kmuriithi/skillswap/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultSessionHours = 1.0

type CreateSessionInput struct {
	TeacherID      uuid.UUID
	ParticipantIDs []uuid.UUID
	Skill          string
	Date           string // 2006-01-02
	TimeOfDay      string // 15:04, optional
	DurationHours  float64
	EndTime        *time.Time
}

// ResolveStartTime combines the scheduling strings into a concrete start
// instant. A date without a time of day yields no start instant; such
// sessions expire on calendar date alone.
func ResolveStartTime(date, timeOfDay string) (*time.Time, error) {
	if date == "" {
		return nil, errors.New("date is required")
	}
	if timeOfDay == "" {
		if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
			return nil, err
		}
		return nil, nil
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeOfDay, time.Local)
	if err != nil {
		return nil, err
	}
	return &start, nil
}

// ResolveEndTime picks, in order: an explicit end time, a duration in hours,
// or the one-hour default.
func ResolveEndTime(start time.Time, explicit *time.Time, durationHours float64) time.Time {
	if explicit != nil && explicit.After(start) {
		return *explicit
	}
	if durationHours > 0 {
		return start.Add(time.Duration(durationHours * float64(time.Hour)))
	}
	return start.Add(time.Duration(defaultSessionHours * float64(time.Hour)))
}

// MeetingWindow classifies "now" against a session's joinable window. A
// session with a start instant opens at that instant and closes thirty
// minutes later; a date-only session is joinable on its calendar day.
// Sessions with neither are always open.
func MeetingWindow(s *models.Session, now time.Time) (open, expired bool) {
	if s.StartTime != nil {
		if now.After(s.StartTime.Add(models.MeetingLinkGraceMinutes * time.Minute)) {
			return false, true
		}
		return !now.Before(*s.StartTime), false
	}
	if day, err := time.ParseInLocation("2006-01-02", s.Date, time.Local); err == nil {
		if now.After(day.AddDate(0, 0, 1)) {
			return false, true
		}
		return !now.Before(day), false
	}
	return true, false
}

// IsStale reports whether an upcoming session has outlived its meeting
// window: thirty minutes past the start instant, or for sessions scheduled
// by date only, any time after the scheduled day.
func IsStale(s *models.Session, now time.Time) bool {
	if s.Status != models.SessionUpcoming {
		return false
	}
	if s.StartTime != nil {
		return now.After(s.StartTime.Add(models.MeetingLinkGraceMinutes * time.Minute))
	}
	if s.Date == "" {
		return false
	}
	day, err := time.ParseInLocation("2006-01-02", s.Date, time.Local)
	if err != nil {
		return false
	}
	return now.After(day.AddDate(0, 0, 1))
}

func CreateSession(in CreateSessionInput) (*models.Session, error) {
	if in.Skill == "" || in.Date == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "skill and date are required")
	}
	if len(in.ParticipantIDs) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "at least one participant is required")
	}

	start, err := ResolveStartTime(in.Date, in.TimeOfDay)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid date or time")
	}

	now := time.Now()
	if start != nil && !start.After(now) {
		return nil, fiber.NewError(fiber.StatusConflict, "session start time must be in the future")
	}
	if start == nil {
		day, _ := time.ParseInLocation("2006-01-02", in.Date, time.Local)
		if day.AddDate(0, 0, 1).Before(now) {
			return nil, fiber.NewError(fiber.StatusConflict, "session date must be in the future")
		}
	}

	var teacher models.User
	if err := database.DB.First(&teacher, "id = ?", in.TeacherID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "teacher not found")
	}
	if !teacher.CanTeach(in.Skill) {
		return nil, fiber.NewError(fiber.StatusForbidden, "you have not listed this skill as one you teach")
	}

	for _, pid := range in.ParticipantIDs {
		if pid == in.TeacherID {
			return nil, fiber.NewError(fiber.StatusBadRequest, "you cannot add yourself as a participant")
		}

		var participant models.User
		if err := database.DB.First(&participant, "id = ?", pid).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("participant %s not found", pid))
		}

		friends, err := AreFriends(in.TeacherID, pid)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to check friendship")
		}
		if !friends {
			return nil, fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("you are not friends with %s", participant.FullName))
		}

		reported, err := HasActiveReport(in.TeacherID, pid)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to check reports")
		}
		if reported {
			return nil, fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("an active report exists between you and %s", participant.FullName))
		}

		if err := CheckFairness(in.TeacherID, pid, in.Skill); err != nil {
			return nil, err
		}
	}

	participants := make(datatypes.JSONSlice[string], 0, len(in.ParticipantIDs))
	for _, pid := range in.ParticipantIDs {
		participants = append(participants, pid.String())
	}

	meetingLink := utils.GenerateMeetingLink(config.Config("MEETING_BASE_URL"))

	// learner_id stays nil on new rows; the single-learner view is derived
	// from the participant set (see Session.Learner).
	session := models.Session{
		TeacherID:    in.TeacherID,
		Skill:        in.Skill,
		Status:       models.SessionUpcoming,
		Participants: participants,
		Date:         in.Date,
		TimeOfDay:    in.TimeOfDay,
		StartTime:    start,
		MeetingLink:  &meetingLink,
	}
	if start != nil {
		end := ResolveEndTime(*start, in.EndTime, in.DurationHours)
		session.EndTime = &end
	}

	if err := database.DB.Create(&session).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to create session")
	}

	for _, pid := range in.ParticipantIDs {
		go notifications.Notify(pid, notifications.EventSessionCreated,
			fmt.Sprintf("%s scheduled a %s session with you on %s.", teacher.FullName, session.Skill, session.Date))
	}

	return &session, nil
}

// JoinSession validates the meeting window and activates the link on the
// first successful join. "Not started yet" leaves no trace; the caller polls.
func JoinSession(sessionID, actorID uuid.UUID) (*models.Session, error) {
	var session models.Session
	var joinErr error

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if !session.HasRole(actorID) {
			return fiber.NewError(fiber.StatusForbidden, "you are not part of this session")
		}
		if session.Status != models.SessionUpcoming {
			return fiber.NewError(fiber.StatusConflict, "this session is no longer joinable")
		}

		open, expired := MeetingWindow(&session, time.Now())
		if expired {
			// Returning nil keeps the transaction so the expired flag
			// still commits; the caller gets the error afterwards.
			session.MeetingLinkExpired = true
			joinErr = fiber.NewError(fiber.StatusForbidden, "the meeting link has expired")
			return tx.Save(&session).Error
		}
		if !open {
			return fiber.NewError(fiber.StatusForbidden, "start time not reached, try again closer to the session")
		}

		if !session.MeetingLinkActivated {
			session.MeetingLinkActivated = true
			if err := tx.Save(&session).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if joinErr != nil {
		return nil, joinErr
	}
	return &session, nil
}

func CancelSession(sessionID, actorID uuid.UUID) (*models.Session, error) {
	var session models.Session
	var cancelledForAll bool

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if !session.HasRole(actorID) {
			return fiber.NewError(fiber.StatusForbidden, "you are not part of this session")
		}
		if session.Status != models.SessionUpcoming {
			return fiber.NewError(fiber.StatusConflict, "only upcoming sessions can be cancelled")
		}

		if session.IsTeacher(actorID) {
			session.Status = models.SessionCancelledByTeacher
			cancelledForAll = true
		} else if session.CancelParticipant(actorID) {
			session.Status = models.SessionCancelled
		}

		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	if cancelledForAll {
		for _, id := range session.ActiveParticipants() {
			if pid, err := uuid.Parse(id); err == nil {
				go notifications.Notify(pid, notifications.EventSessionCancelled,
					fmt.Sprintf("Your %s session on %s was cancelled by the teacher.", session.Skill, session.Date))
			}
		}
	} else {
		go notifications.Notify(session.TeacherID, notifications.EventSessionCancelled,
			fmt.Sprintf("A participant left your %s session on %s.", session.Skill, session.Date))
	}

	return &session, nil
}

// CompleteSession applies one party's completion. The teacher completing (or
// the only learner of a one-to-one session) closes the whole session and
// back-fills the completed set; in group sessions a learner only records
// their own completion and the global status flips once everyone is in.
func CompleteSession(sessionID, actorID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if !session.HasRole(actorID) {
			return fiber.NewError(fiber.StatusForbidden, "you are not part of this session")
		}
		if session.Status != models.SessionUpcoming {
			return fiber.NewError(fiber.StatusConflict, "only upcoming sessions can be completed")
		}
		if !session.MeetingLinkActivated {
			return fiber.NewError(fiber.StatusConflict, "the session has not been joined yet")
		}

		active := session.ActiveParticipants()

		switch {
		case session.IsTeacher(actorID):
			session.MarkCompleted(session.TeacherID)
			for _, id := range active {
				if pid, err := uuid.Parse(id); err == nil {
					session.MarkCompleted(pid)
				}
			}
			session.Status = models.SessionCompleted

		case len(active) == 1 && active[0] == actorID.String():
			// One-to-one: the single active learner completing is symmetric
			// with the teacher completing.
			session.MarkCompleted(actorID)
			session.MarkCompleted(session.TeacherID)
			session.Status = models.SessionCompleted

		default:
			session.MarkCompleted(actorID)
			if session.AllCompleted() {
				session.Status = models.SessionCompleted
			}
		}

		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	for _, id := range session.CompletedParticipants {
		pid, err := uuid.Parse(id)
		if err != nil || pid == session.TeacherID || session.HasGivenFeedback(pid) {
			continue
		}
		go notifications.Notify(pid, notifications.EventFeedbackPending,
			fmt.Sprintf("Your %s session is complete. Please leave feedback for your teacher.", session.Skill))
	}

	return &session, nil
}

// DeleteSession is a per-user soft delete. The row survives as long as any
// other party still references it.
func DeleteSession(sessionID, actorID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if !session.HasRole(actorID) {
			return fiber.NewError(fiber.StatusForbidden, "you are not part of this session")
		}
		session.HideFor(actorID)
		return tx.Save(&session).Error
	})
}

// ExpireStaleSessions sweeps past-due upcoming sessions to expired. A single
// conditional UPDATE keeps it idempotent and safe to run from the cron job
// and opportunistically before list queries at the same time.
func ExpireStaleSessions() {
	now := time.Now()
	cutoff := now.Add(-models.MeetingLinkGraceMinutes * time.Minute)
	today := now.Format("2006-01-02")

	result := database.DB.Model(&models.Session{}).
		Where("status = ?", models.SessionUpcoming).
		Where(
			database.DB.
				Where("start_time IS NOT NULL AND start_time < ?", cutoff).
				Or("start_time IS NULL AND date < ?", today),
		).
		Updates(map[string]interface{}{"status": models.SessionExpired, "meeting_link_expired": true})

	if result.Error != nil {
		log.Printf("🔥 Failed to expire stale sessions: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("Marked %d session(s) as expired.", result.RowsAffected)
	}
}

// SessionView pairs a session with the status the requesting user should see.
type SessionView struct {
	models.Session
	UserStatus string `json:"user_status"`
}

// ListSessionsFor returns the user's sessions, newest first, minus the ones
// they soft-deleted. The expiry sweep runs first so stale rows never leak
// out as upcoming.
func ListSessionsFor(userID uuid.UUID) ([]SessionView, error) {
	ExpireStaleSessions()

	member := fmt.Sprintf("[%q]", userID.String())
	var sessions []models.Session
	err := database.DB.
		Preload("Teacher").
		Where("teacher_id = ? OR learner_id = ? OR participants::jsonb @> ? OR cancelled_participants::jsonb @> ?",
			userID, userID, member, member).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to list sessions")
	}

	views := make([]SessionView, 0, len(sessions))
	for i := range sessions {
		if sessions[i].IsHiddenFor(userID) {
			continue
		}
		views = append(views, SessionView{Session: sessions[i], UserStatus: sessions[i].StatusFor(userID)})
	}
	return views, nil
}

// GetSessionFor loads one session the user has a role in.
func GetSessionFor(sessionID, userID uuid.UUID) (*SessionView, error) {
	var session models.Session
	if err := database.DB.Preload("Teacher").First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	if !session.HasRole(userID) && !session.HasCancelled(userID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "you are not part of this session")
	}
	return &SessionView{Session: session, UserStatus: session.StatusFor(userID)}, nil
}
