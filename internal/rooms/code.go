package rooms

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"
)

// RoomIDLength is the number of characters in a room code.
const RoomIDLength = 6

// generateRoomID creates a 6-character uppercase alphanumeric code.
func generateRoomID() string {
	b := make([]byte, 4) // 4 bytes = 32 bits, base32 encodes to 8 chars, we take 6
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%06X", time.Now().UnixNano()&0xFFFFFF)
	}
	return base32.StdEncoding.EncodeToString(b)[:RoomIDLength]
}

// NormalizeRoomID trims and uppercases a user-typed room code.
func NormalizeRoomID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
