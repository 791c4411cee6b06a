package game

import "errors"

// Action errors. Each is returned wrapped with a reason; match with errors.Is.
// A failed action never mutates the state it was given.
var (
	ErrGameNotActive = errors.New("game not active")
	ErrWrongTurn     = errors.New("wrong turn")
	ErrWrongPhase    = errors.New("wrong phase")
	ErrInvalidPawn   = errors.New("invalid pawn")
)
