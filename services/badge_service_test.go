package services

import (
	"testing"

	"github.com/kmuriithi/skillswap/models"
)

func holdingNone(string) bool { return false }

func holding(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestEarnedTiers_BeginnerRequiresBothThresholds(t *testing.T) {
	if got := EarnedTiers(10, 100, holdingNone); len(got) != 1 || got[0].Name != "Beginner" {
		t.Fatalf("expected exactly Beginner at 10 sessions / 100 credits, got %v", got)
	}
	if got := EarnedTiers(9, 100, holdingNone); len(got) != 0 {
		t.Fatalf("expected nothing at 9 sessions, got %v", got)
	}
	if got := EarnedTiers(10, 99, holdingNone); len(got) != 0 {
		t.Fatalf("expected nothing at 99 credits, got %v", got)
	}
}

func TestEarnedTiers_MultipleTiersInOneJump(t *testing.T) {
	got := EarnedTiers(35, 500, holdingNone)
	if len(got) != 3 {
		t.Fatalf("expected Beginner, Apprentice and Helper, got %v", got)
	}
	wantOrder := []string{"Beginner", "Apprentice", "Helper"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, got[i].Name)
		}
	}
}

func TestEarnedTiers_AlreadyHeldIsNoOp(t *testing.T) {
	got := EarnedTiers(35, 500, holding("Beginner", "Apprentice", "Helper"))
	if len(got) != 0 {
		t.Fatalf("re-evaluation with nothing new should grant nothing, got %v", got)
	}
}

func TestEarnedTiers_HeldBadgesAreNeverRevoked(t *testing.T) {
	// Dropping below the thresholds must not surface the badge again for
	// re-granting, and nothing in the catalog walk removes held badges.
	got := EarnedTiers(0, 0, holding("Beginner"))
	if len(got) != 0 {
		t.Fatalf("expected no grants at zero progress, got %v", got)
	}
}

func TestBadgeTiers_CatalogIsOrderedAndMonotonic(t *testing.T) {
	if len(models.BadgeTiers) != 20 {
		t.Fatalf("expected 20 tiers, got %d", len(models.BadgeTiers))
	}
	for i := 1; i < len(models.BadgeTiers); i++ {
		prev, cur := models.BadgeTiers[i-1], models.BadgeTiers[i]
		if cur.Rank != prev.Rank+1 {
			t.Fatalf("ranks must be consecutive: %d then %d", prev.Rank, cur.Rank)
		}
		if cur.Sessions <= prev.Sessions || cur.Credits <= prev.Credits {
			t.Fatalf("thresholds must increase: %v then %v", prev, cur)
		}
	}
	if models.BadgeTiers[0].Name != "Beginner" || models.BadgeTiers[0].Sessions != 10 || models.BadgeTiers[0].Credits != 100 {
		t.Fatalf("unexpected first tier: %v", models.BadgeTiers[0])
	}
}
