package ai

import (
	"github.com/vovakirdan/ladders/internal/board"
	"github.com/vovakirdan/ladders/internal/game"
)

// Priority weights used by HeuristicPawn.
const (
	PrioritySnake       = -100
	PriorityLadder      = 100
	PriorityFinish      = 300
	PriorityEarlyFinish = -200
	PriorityHomeStretch = 20

	// HomeStretch is the tile from which pawns wait for each other before finishing.
	HomeStretch = 90
)

// Priority scores moving one pawn by roll. Overshooting scores zero.
func Priority(st *game.State, seat, pawn, roll int) int {
	current := st.Positions[seat][pawn]
	target := current + roll
	if target > board.FinalTile {
		return 0
	}

	priority := 0
	if st.Board.IsSnakeHead(target) {
		priority += PrioritySnake
	} else if st.Board.IsLadderFoot(target) {
		priority += PriorityLadder
	}

	switch {
	case target == board.FinalTile:
		if st.FinishedCount(seat) == 0 && !packNearHome(st, seat) {
			priority += PriorityEarlyFinish
		} else {
			priority += PriorityFinish
		}
	case target >= HomeStretch && current < HomeStretch:
		priority += PriorityHomeStretch
	}
	return priority
}

// packNearHome reports whether every unfinished pawn of seat is in the home stretch.
func packNearHome(st *game.State, seat int) bool {
	for _, i := range st.UnfinishedPawns(seat) {
		if st.Positions[seat][i] < HomeStretch {
			return false
		}
	}
	return true
}

// HeuristicPawn picks the unfinished pawn with the strictly highest priority.
// Ties go to the pawn furthest behind. When every candidate scores below zero
// the first unfinished pawn moves.
func HeuristicPawn(st *game.State, seat, roll int) int {
	choices := st.UnfinishedPawns(seat)
	if len(choices) == 0 {
		return 0
	}

	best, bestPriority := -1, -1
	for _, i := range choices {
		p := Priority(st, seat, i, roll)
		switch {
		case p > bestPriority:
			best, bestPriority = i, p
		case p == bestPriority && best >= 0 && st.Positions[seat][i] < st.Positions[seat][best]:
			best = i
		}
	}

	if best < 0 {
		return choices[0]
	}
	return best
}
