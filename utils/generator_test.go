package utils

import (
	"strings"
	"testing"
)

func TestGenerateMeetingLink(t *testing.T) {
	link := GenerateMeetingLink("https://meet.example.com")

	if !strings.HasPrefix(link, "https://meet.example.com/room/") {
		t.Fatalf("unexpected link shape: %s", link)
	}

	code := strings.TrimPrefix(link, "https://meet.example.com/room/")
	if len(code) != roomCodeLength {
		t.Fatalf("expected a %d-char room code, got %q", roomCodeLength, code)
	}
	for _, r := range code {
		if !strings.ContainsRune(roomCodeChars, r) {
			t.Fatalf("unexpected character %q in room code %q", r, code)
		}
	}
}
