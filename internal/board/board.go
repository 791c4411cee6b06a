// Package board generates and validates snake and ladder layouts.
package board

import (
	"fmt"
	"sort"
)

// Tile bounds. Tile 0 is off-board (pawn not entered) and FinalTile is home.
const (
	FirstTile = 1
	FinalTile = 100
)

// Board maps transition start tiles to their end tiles.
// Immutable once a room is created.
type Board struct {
	Snakes  map[int]int `json:"snakes"`
	Ladders map[int]int `json:"ladders"`
}

// Transition describes a single snake or ladder.
type Transition struct {
	Start int
	End   int
	Snake bool
}

// New returns an empty board.
func New() Board {
	return Board{
		Snakes:  make(map[int]int),
		Ladders: make(map[int]int),
	}
}

// Destination resolves the tile a pawn rests on after landing on tile.
// Snakes are checked before ladders. ok is false when tile starts no transition.
func (b Board) Destination(tile int) (end int, snake bool, ok bool) {
	if end, ok := b.Snakes[tile]; ok {
		return end, true, true
	}
	if end, ok := b.Ladders[tile]; ok {
		return end, false, true
	}
	return tile, false, false
}

// IsSnakeHead reports whether tile is the start of a snake.
func (b Board) IsSnakeHead(tile int) bool {
	_, ok := b.Snakes[tile]
	return ok
}

// IsLadderFoot reports whether tile is the start of a ladder.
func (b Board) IsLadderFoot(tile int) bool {
	_, ok := b.Ladders[tile]
	return ok
}

// Transitions returns every snake and ladder ordered by start tile.
func (b Board) Transitions() []Transition {
	out := make([]Transition, 0, len(b.Snakes)+len(b.Ladders))
	for s, e := range b.Snakes {
		out = append(out, Transition{Start: s, End: e, Snake: true})
	}
	for s, e := range b.Ladders {
		out = append(out, Transition{Start: s, End: e})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	c := New()
	for s, e := range b.Snakes {
		c.Snakes[s] = e
	}
	for s, e := range b.Ladders {
		c.Ladders[s] = e
	}
	return c
}

// Validate checks the structural invariants of a board:
// snakes descend, ladders ascend, all tiles lie on the board, no tile starts
// two transitions, and no transition ends on another transition's start.
func (b Board) Validate() error {
	starts := make(map[int]bool)

	for s, e := range b.Snakes {
		if e >= s {
			return fmt.Errorf("board: snake %d->%d does not descend", s, e)
		}
		if s <= FirstTile || s >= FinalTile || e < FirstTile+1 {
			return fmt.Errorf("board: snake %d->%d is off the board", s, e)
		}
		starts[s] = true
	}
	for s, e := range b.Ladders {
		if e <= s {
			return fmt.Errorf("board: ladder %d->%d does not ascend", s, e)
		}
		if s <= FirstTile || e >= FinalTile {
			return fmt.Errorf("board: ladder %d->%d is off the board", s, e)
		}
		if starts[s] {
			return fmt.Errorf("board: tile %d starts both a snake and a ladder", s)
		}
		starts[s] = true
	}

	for _, t := range b.Transitions() {
		if starts[t.End] {
			return fmt.Errorf("board: transition %d->%d ends on another transition's start", t.Start, t.End)
		}
	}
	return nil
}
