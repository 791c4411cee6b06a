package config

import (
	"errors"
	"strings"
)

// ErrInvalidDifficulty is returned for an unsupported computer difficulty tag.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty represents a named computer opponent tier.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyNormal  Difficulty = "normal"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

// Difficulties lists every supported tier, weakest first.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExtreme}
}

// Valid reports whether d is a supported tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExtreme:
		return true
	default:
		return false
	}
}

// ParseDifficulty converts a user-supplied tag into a Difficulty.
// Matching is exact: the tag doubles as part of the computer seat marker.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// DifficultyNames returns the tiers joined for help text.
func DifficultyNames() string {
	names := make([]string, 0, 4)
	for _, d := range Difficulties() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
