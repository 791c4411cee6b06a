package game

import (
	"strings"

	"github.com/vovakirdan/ladders/internal/config"
)

// computerSeatPrefix marks a seat played by the engine. The difficulty tag follows it.
const computerSeatPrefix = "computer_"

// ComputerSeat returns the seat marker for a computer opponent.
func ComputerSeat(d config.Difficulty) string {
	return computerSeatPrefix + string(d)
}

// ParseComputerSeat extracts the difficulty from a computer seat marker.
func ParseComputerSeat(token string) (config.Difficulty, bool) {
	tag, ok := strings.CutPrefix(token, computerSeatPrefix)
	if !ok {
		return "", false
	}
	d := config.Difficulty(tag)
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// IsComputerSeat reports whether token is a computer seat marker.
func IsComputerSeat(token string) bool {
	return strings.HasPrefix(token, computerSeatPrefix)
}

// entity names a seat in log lines.
func entity(token string) string {
	if IsComputerSeat(token) {
		return "Computer"
	}
	return "Player"
}
