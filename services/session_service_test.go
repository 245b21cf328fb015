package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kmuriithi/skillswap/models"
)

func TestResolveStartTime_DateAndTime(t *testing.T) {
	start, err := ResolveStartTime("2026-03-14", "15:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start == nil {
		t.Fatalf("expected a start instant")
	}
	if start.Hour() != 15 || start.Minute() != 30 || start.Day() != 14 {
		t.Fatalf("unexpected start instant: %v", start)
	}
}

func TestResolveStartTime_DateOnlyHasNoInstant(t *testing.T) {
	start, err := ResolveStartTime("2026-03-14", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != nil {
		t.Fatalf("date-only sessions must not resolve a start instant, got %v", start)
	}
}

func TestResolveStartTime_RejectsGarbage(t *testing.T) {
	if _, err := ResolveStartTime("not-a-date", "15:30"); err == nil {
		t.Fatalf("expected an error for a malformed date")
	}
	if _, err := ResolveStartTime("", "15:30"); err == nil {
		t.Fatalf("expected an error for a missing date")
	}
}

func TestResolveEndTime_ExplicitWins(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	explicit := start.Add(90 * time.Minute)

	end := ResolveEndTime(start, &explicit, 3)
	if !end.Equal(explicit) {
		t.Fatalf("explicit end time must win, got %v", end)
	}
}

func TestResolveEndTime_DurationFallback(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	end := ResolveEndTime(start, nil, 2.5)
	if want := start.Add(150 * time.Minute); !end.Equal(want) {
		t.Fatalf("expected %v, got %v", want, end)
	}
}

func TestResolveEndTime_DefaultsToOneHour(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	end := ResolveEndTime(start, nil, 0)
	if want := start.Add(time.Hour); !end.Equal(want) {
		t.Fatalf("expected one hour default, got %v", end)
	}
}

func TestResolveEndTime_IgnoresEndBeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	explicit := start.Add(-time.Hour)

	end := ResolveEndTime(start, &explicit, 0)
	if want := start.Add(time.Hour); !end.Equal(want) {
		t.Fatalf("an end before the start must fall through to the default, got %v", end)
	}
}

func TestMeetingWindow_WithStartInstant(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.Local)
	s := &models.Session{Status: models.SessionUpcoming, StartTime: &start}

	if open, expired := MeetingWindow(s, start.Add(-time.Hour)); open || expired {
		t.Fatalf("before the start the window is closed but not expired, got open=%v expired=%v", open, expired)
	}
	if open, expired := MeetingWindow(s, start.Add(10*time.Minute)); !open || expired {
		t.Fatalf("within the window the link is joinable, got open=%v expired=%v", open, expired)
	}
	if open, expired := MeetingWindow(s, start.Add(31*time.Minute)); open || !expired {
		t.Fatalf("past the grace window the link is expired, got open=%v expired=%v", open, expired)
	}
}

func TestMeetingWindow_DateOnlySession(t *testing.T) {
	s := &models.Session{Status: models.SessionUpcoming, Date: "2026-03-14"}

	dayBefore := time.Date(2026, 3, 13, 12, 0, 0, 0, time.Local)
	if open, expired := MeetingWindow(s, dayBefore); open || expired {
		t.Fatalf("a date-only session is not joinable before its day, got open=%v expired=%v", open, expired)
	}

	onTheDay := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	if open, expired := MeetingWindow(s, onTheDay); !open || expired {
		t.Fatalf("a date-only session is joinable on its day, got open=%v expired=%v", open, expired)
	}

	dayAfter := time.Date(2026, 3, 15, 0, 30, 0, 0, time.Local)
	if open, expired := MeetingWindow(s, dayAfter); open || !expired {
		t.Fatalf("a date-only session expires once the day has passed, got open=%v expired=%v", open, expired)
	}
}

func TestIsStale_WithStartInstant(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.Local)
	s := &models.Session{Status: models.SessionUpcoming, StartTime: &start}

	if IsStale(s, start.Add(29*time.Minute)) {
		t.Fatalf("still inside the grace window")
	}
	if !IsStale(s, start.Add(31*time.Minute)) {
		t.Fatalf("expected stale past the grace window")
	}
}

func TestIsStale_DateOnlySession(t *testing.T) {
	s := &models.Session{Status: models.SessionUpcoming, Date: "2026-03-14"}

	sameDay := time.Date(2026, 3, 14, 23, 0, 0, 0, time.Local)
	if IsStale(s, sameDay) {
		t.Fatalf("session is not stale on its own calendar day")
	}

	nextDay := time.Date(2026, 3, 15, 0, 30, 0, 0, time.Local)
	if !IsStale(s, nextDay) {
		t.Fatalf("expected stale once the calendar day has passed")
	}
}

func TestIsStale_OnlyUpcomingSessionsExpire(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.Local)
	for _, status := range []string{
		models.SessionCompleted,
		models.SessionCancelled,
		models.SessionExpired,
		models.SessionCancelledByTeacher,
	} {
		s := &models.Session{Status: status, StartTime: &start}
		if IsStale(s, start.Add(24*time.Hour)) {
			t.Fatalf("status %s must never become stale", status)
		}
	}
}

func TestCreateSession_RejectsEmptyParticipants(t *testing.T) {
	_, err := CreateSession(CreateSessionInput{
		TeacherID: uuid.New(),
		Skill:     "Guitar",
		Date:      "2030-01-01",
	})
	if err == nil {
		t.Fatalf("expected a validation error for an empty participant set")
	}
}
