package services

import "testing"

func TestComputeCredits_OneToOnePositiveComment(t *testing.T) {
	// 2h base 4 + solo bonus 2 + rating 25 + positive 6
	got := ComputeCredits(2, 1, 5, 8)
	if got != 37 {
		t.Fatalf("expected 37 credits, got %v", got)
	}
}

func TestComputeCredits_GroupBonusScalesWithParticipants(t *testing.T) {
	cases := []struct {
		participants int
		want         float64
	}{
		{1, 2},
		{2, 5},
		{3, 8},
		{5, 14},
	}
	for _, tc := range cases {
		// isolate the group bonus: zero hours, neutral comment, rating 1
		got := ComputeCredits(0, tc.participants, 1, 0)
		want := tc.want + 5 + 3
		if got != want {
			t.Fatalf("participants=%d: expected %v, got %v", tc.participants, want, got)
		}
	}
}

func TestComputeCredits_SentimentBonus(t *testing.T) {
	neutral := ComputeCredits(1, 1, 3, 0)
	positive := ComputeCredits(1, 1, 3, 4)
	negative := ComputeCredits(1, 1, 3, -4)

	if positive-neutral != 3 {
		t.Fatalf("expected positive to add 3 over neutral, got %v", positive-neutral)
	}
	if neutral-negative != 9 {
		t.Fatalf("expected negative to trail neutral by 9, got %v", neutral-negative)
	}
}

func TestComputeCredits_RatingFloorForNearZeroRating(t *testing.T) {
	got := ComputeCredits(0, 1, 0.05, 0)
	// base 0 + bonus 2 + floored rating 0.5 + neutral 3
	if got != 5.5 {
		t.Fatalf("expected 5.5, got %v", got)
	}
}

func TestComputeCredits_NeverNegative(t *testing.T) {
	got := ComputeCredits(0, 1, 0.05, -10)
	// 0 + 2 + 0.5 - 6 = -3.5, clamped
	if got != 0 {
		t.Fatalf("expected clamp at 0, got %v", got)
	}
}

func TestComputeCredits_DeterministicForSameInputs(t *testing.T) {
	a := ComputeCredits(3.5, 4, 4, 2)
	b := ComputeCredits(3.5, 4, 4, 2)
	if a != b {
		t.Fatalf("formula is not deterministic: %v vs %v", a, b)
	}
}
