package models

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func groupSession(teacher uuid.UUID, learners ...uuid.UUID) *Session {
	participants := make([]string, 0, len(learners))
	for _, l := range learners {
		participants = append(participants, l.String())
	}
	return &Session{
		TeacherID:    teacher,
		Skill:        "Guitar",
		Status:       SessionUpcoming,
		Participants: datatypes.JSONSlice[string](participants),
	}
}

func TestCancelParticipant_SessionSurvivesUntilLastLearnerLeaves(t *testing.T) {
	teacher := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	s := groupSession(teacher, a, b, c)

	if s.CancelParticipant(a) {
		t.Fatalf("two learners remain, session must survive")
	}
	if s.CancelParticipant(b) {
		t.Fatalf("one learner remains, session must survive")
	}
	if len(s.Participants) != 1 || s.Participants[0] != c.String() {
		t.Fatalf("expected only %s active, got %v", c, s.Participants)
	}
	if len(s.CancelledParticipants) != 2 {
		t.Fatalf("expected 2 cancelled, got %v", s.CancelledParticipants)
	}

	if !s.CancelParticipant(c) {
		t.Fatalf("last learner leaving must empty the session")
	}
}

func TestCancelParticipant_LegacySingleLearnerRow(t *testing.T) {
	teacher, learner := uuid.New(), uuid.New()
	s := &Session{TeacherID: teacher, Status: SessionUpcoming, LearnerID: &learner}

	if !s.HasParticipant(learner) {
		t.Fatalf("legacy learner must count as a participant")
	}
	if got := s.ActiveParticipants(); len(got) != 1 || got[0] != learner.String() {
		t.Fatalf("expected the legacy learner as the active set, got %v", got)
	}

	if !s.CancelParticipant(learner) {
		t.Fatalf("the only legacy learner cancelling must empty the session")
	}
}

func TestHasParticipant_CancelledLegacyLearnerLosesRole(t *testing.T) {
	teacher := uuid.New()
	a, b := uuid.New(), uuid.New()
	s := groupSession(teacher, a, b)
	s.LearnerID = &a

	s.CancelParticipant(a)

	if s.HasParticipant(a) {
		t.Fatalf("a cancelled participant must not keep their role through the legacy column")
	}
	if s.HasRole(a) {
		t.Fatalf("a cancelled participant must fail the role gate")
	}
	if !s.HasParticipant(b) {
		t.Fatalf("the remaining learner keeps their role")
	}

	// With a out, b alone cannot be completed on a's behalf.
	s.MarkCompleted(a)
	s.MarkCompleted(teacher)
	if s.AllCompleted() {
		t.Fatalf("completion requires the remaining active participant, not the cancelled one")
	}
}

func TestLearner_DerivedFromParticipants(t *testing.T) {
	teacher := uuid.New()
	a, b := uuid.New(), uuid.New()
	s := groupSession(teacher, a, b)

	got := s.Learner()
	if got == nil || *got != a {
		t.Fatalf("expected first participant %s, got %v", a, got)
	}

	s.CancelParticipant(a)
	got = s.Learner()
	if got == nil || *got != b {
		t.Fatalf("after a cancel, expected %s, got %v", b, got)
	}
}

func TestMarkCompleted_SetSemantics(t *testing.T) {
	teacher, a := uuid.New(), uuid.New()
	s := groupSession(teacher, a)

	s.MarkCompleted(a)
	s.MarkCompleted(a)
	if len(s.CompletedParticipants) != 1 {
		t.Fatalf("double completion must not duplicate the id, got %v", s.CompletedParticipants)
	}
}

func TestAllCompleted_RequiresTeacherAndEveryActiveParticipant(t *testing.T) {
	teacher := uuid.New()
	a, b := uuid.New(), uuid.New()
	s := groupSession(teacher, a, b)

	s.MarkCompleted(a)
	if s.AllCompleted() {
		t.Fatalf("one of three parties done, not all completed")
	}
	s.MarkCompleted(b)
	if s.AllCompleted() {
		t.Fatalf("teacher still missing, not all completed")
	}
	s.MarkCompleted(teacher)
	if !s.AllCompleted() {
		t.Fatalf("everyone is in the set, expected all completed")
	}
}

func TestAllCompleted_IgnoresCancelledParticipants(t *testing.T) {
	teacher := uuid.New()
	a, b := uuid.New(), uuid.New()
	s := groupSession(teacher, a, b)

	s.CancelParticipant(b)
	s.MarkCompleted(a)
	s.MarkCompleted(teacher)
	if !s.AllCompleted() {
		t.Fatalf("a cancelled participant must not block completion")
	}
}

func TestStatusFor_ProjectsOverlaySets(t *testing.T) {
	teacher := uuid.New()
	a, b := uuid.New(), uuid.New()
	s := groupSession(teacher, a, b)

	if got := s.StatusFor(a); got != SessionUpcoming {
		t.Fatalf("expected upcoming for an untouched learner, got %s", got)
	}

	s.CancelParticipant(a)
	if got := s.StatusFor(a); got != SessionCancelled {
		t.Fatalf("a cancelled learner must see cancelled, got %s", got)
	}
	if got := s.StatusFor(b); got != SessionUpcoming {
		t.Fatalf("the other learner still sees upcoming, got %s", got)
	}

	s.MarkCompleted(b)
	if got := s.StatusFor(b); got != SessionCompleted {
		t.Fatalf("a completed learner must see completed, got %s", got)
	}

	if got := s.StatusFor(teacher); got != SessionUpcoming {
		t.Fatalf("the teacher sees the global status, got %s", got)
	}
}

func TestStatusFor_TerminalGlobalStatusWinsForEveryone(t *testing.T) {
	teacher := uuid.New()
	a := uuid.New()
	s := groupSession(teacher, a)
	s.MarkCompleted(a)
	s.Status = SessionCancelledByTeacher

	if got := s.StatusFor(a); got != SessionCancelledByTeacher {
		t.Fatalf("a teacher cancellation overrides per-user overlays, got %s", got)
	}
}

func TestHideFor_IsPerUser(t *testing.T) {
	teacher := uuid.New()
	a := uuid.New()
	s := groupSession(teacher, a)

	s.HideFor(a)
	s.HideFor(a)
	if !s.IsHiddenFor(a) {
		t.Fatalf("expected session hidden for the deleting user")
	}
	if s.IsHiddenFor(teacher) {
		t.Fatalf("soft delete must not leak to other parties")
	}
	if len(s.HiddenForUsers) != 1 {
		t.Fatalf("hide must be idempotent, got %v", s.HiddenForUsers)
	}
}

func TestAllGaveFeedbackAndAllClaimed(t *testing.T) {
	teacher := uuid.New()
	a, b := uuid.New(), uuid.New()
	s := groupSession(teacher, a, b)

	s.MarkFeedbackGiven(a)
	if s.AllGaveFeedback() {
		t.Fatalf("only one of two learners gave feedback")
	}
	s.MarkFeedbackGiven(b)
	if !s.AllGaveFeedback() {
		t.Fatalf("both learners gave feedback")
	}

	s.MarkSkillClaimed(a)
	s.MarkSkillClaimed(b)
	if !s.AllClaimedSkill() {
		t.Fatalf("both learners claimed the skill")
	}
}

func TestCanTeach(t *testing.T) {
	u := &User{TeachSkills: datatypes.JSONSlice[string]{"Guitar", "Piano"}}
	if !u.CanTeach("Guitar") || u.CanTeach("Violin") {
		t.Fatalf("unexpected teachable skills: %v", u.TeachSkills)
	}
}
