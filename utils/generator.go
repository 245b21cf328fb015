package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const roomCodeLength = 10
const roomCodeChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateMeetingLink builds the room URL handed to session members. Codes
// are random but not checked for uniqueness; collisions on a 10-char code are
// rare enough that the meeting provider's namespace absorbs them.
func GenerateMeetingLink(baseURL string) string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, roomCodeLength)
	for i := range b {
		b[i] = roomCodeChars[seededRand.Intn(len(roomCodeChars))]
	}
	return fmt.Sprintf("%s/room/%s", baseURL, string(b))
}
