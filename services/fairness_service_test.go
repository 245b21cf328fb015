package services

import (
	"testing"

	"github.com/google/uuid"
)

func TestRepeatBlocked_SameDirectionSameSkill(t *testing.T) {
	teacher := uuid.New()

	if !RepeatBlocked(teacher, "Guitar", teacher, "Guitar") {
		t.Fatalf("repeating the same skill in the same direction must be blocked")
	}
}

func TestRepeatBlocked_DifferentSkillAllowed(t *testing.T) {
	teacher := uuid.New()

	if RepeatBlocked(teacher, "Guitar", teacher, "Piano") {
		t.Fatalf("a different skill must be allowed")
	}
}

func TestRepeatBlocked_ReversedDirectionAllowed(t *testing.T) {
	teacher := uuid.New()
	learner := uuid.New()

	// The learner taught last time; the proposal reverses direction and is
	// fine even with the same skill.
	if RepeatBlocked(learner, "Guitar", teacher, "Guitar") {
		t.Fatalf("reciprocal teaching must be allowed")
	}
}
