// Package game holds the room state aggregate and the turn engine that
// applies roll and move actions to it.
package game

import (
	"github.com/vovakirdan/ladders/internal/board"
)

// Status is the lifecycle stage of a room.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// Phase is the sub-action expected next within the current turn.
type Phase string

const (
	PhaseRoll Phase = "ROLL"
	PhaseMove Phase = "MOVE"
)

// MaxSeats is the number of players in a room.
const MaxSeats = 2

// State is the complete, persisted state of one room.
// It is loaded, transformed by a single action and saved back whole.
type State struct {
	RoomID        string      `json:"room_id"`
	Status        Status      `json:"status"`
	Players       []string    `json:"players"`
	TurnIndex     int         `json:"turn_index"`
	Board         board.Board `json:"board_config"`
	Positions     [][]int     `json:"positions"`
	FinishedPawns [][]bool    `json:"finished_pawns"`
	LastRoll      *int        `json:"last_roll"`
	Phase         Phase       `json:"phase"`
	Winner        *int        `json:"winner"`
	Moves         int         `json:"moves"`
	Log           []string    `json:"log"`
}

// NewState seeds a waiting room with its creator in seat 0.
// Positions are allocated for both seats up front.
func NewState(roomID, creator string, b board.Board, pawnsPerPlayer int) *State {
	positions := make([][]int, MaxSeats)
	finished := make([][]bool, MaxSeats)
	for i := range MaxSeats {
		positions[i] = make([]int, pawnsPerPlayer)
		finished[i] = make([]bool, pawnsPerPlayer)
	}

	return &State{
		RoomID:        roomID,
		Status:        StatusWaiting,
		Players:       []string{creator},
		TurnIndex:     0,
		Board:         b,
		Positions:     positions,
		FinishedPawns: finished,
		Phase:         PhaseRoll,
		Log:           []string{},
	}
}

// PawnsPerPlayer returns how many pawns each seat moves.
func (s *State) PawnsPerPlayer() int {
	if len(s.Positions) == 0 {
		return 0
	}
	return len(s.Positions[0])
}

// Seated reports how many seats are occupied.
func (s *State) Seated() int {
	return len(s.Players)
}

// CurrentPlayer returns the token of the seat whose turn it is, or "" if that seat is empty.
func (s *State) CurrentPlayer() string {
	if s.TurnIndex < 0 || s.TurnIndex >= len(s.Players) {
		return ""
	}
	return s.Players[s.TurnIndex]
}

// SeatOf returns the seat index held by token, or -1.
func (s *State) SeatOf(token string) int {
	for i, p := range s.Players {
		if p == token {
			return i
		}
	}
	return -1
}

// AddPlayer fills the next free seat and starts the game.
// The caller checks capacity first.
func (s *State) AddPlayer(token string) {
	s.Players = append(s.Players, token)
	s.Status = StatusPlaying
	if d, ok := ParseComputerSeat(token); ok {
		s.logf("Computer %s joined. Game Start!", d)
		return
	}
	s.logf("Player %d joined. Game Start!", len(s.Players))
}

// UnfinishedPawns returns the indexes of a seat's pawns that are not yet home.
func (s *State) UnfinishedPawns(seat int) []int {
	out := make([]int, 0, len(s.FinishedPawns[seat]))
	for i, done := range s.FinishedPawns[seat] {
		if !done {
			out = append(out, i)
		}
	}
	return out
}

// FinishedCount returns how many of a seat's pawns are home.
func (s *State) FinishedCount(seat int) int {
	n := 0
	for _, done := range s.FinishedPawns[seat] {
		if done {
			n++
		}
	}
	return n
}

// AllFinished reports whether every pawn of a seat is home.
func (s *State) AllFinished(seat int) bool {
	return s.FinishedCount(seat) == len(s.FinishedPawns[seat])
}

// Clone returns a deep copy so an action can work on its own copy.
func (s *State) Clone() *State {
	c := *s
	c.Players = append([]string{}, s.Players...)
	c.Board = s.Board.Clone()
	c.Positions = make([][]int, len(s.Positions))
	for i, p := range s.Positions {
		c.Positions[i] = append([]int{}, p...)
	}
	c.FinishedPawns = make([][]bool, len(s.FinishedPawns))
	for i, f := range s.FinishedPawns {
		c.FinishedPawns[i] = append([]bool{}, f...)
	}
	if s.LastRoll != nil {
		r := *s.LastRoll
		c.LastRoll = &r
	}
	if s.Winner != nil {
		w := *s.Winner
		c.Winner = &w
	}
	c.Log = append([]string{}, s.Log...)
	return &c
}
