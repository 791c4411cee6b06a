package rooms

import (
	"errors"

	"github.com/vovakirdan/ladders/internal/config"
)

// Room lifecycle errors. Engine errors from package game pass through unchanged.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")

	ErrInvalidDifficulty = config.ErrInvalidDifficulty
)
