package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ladders/internal/board"
	"github.com/vovakirdan/ladders/internal/dice"
)

// Engine applies roll and move actions. It is stateless apart from its
// random source and safe for concurrent use across rooms.
type Engine struct {
	src dice.Source
}

// NewEngine creates an engine drawing dice from src.
func NewEngine(src dice.Source) *Engine {
	return &Engine{src: src}
}

// Roll throws the die for the seat at TurnIndex and moves the turn into the
// MOVE phase. bias may be nil for a fair die.
//
// The input state is never modified; the returned state is a new copy.
func (e *Engine) Roll(st *State, token string, bias dice.Bias) (*State, error) {
	if err := checkActor(st, token); err != nil {
		return nil, err
	}
	if st.Phase != PhaseRoll {
		return nil, fmt.Errorf("%w: already rolled, waiting for move", ErrWrongPhase)
	}

	next := st.Clone()
	face := dice.Roll(e.src, bias)
	next.LastRoll = &face
	next.Phase = PhaseMove
	next.logf("%s %d rolled a %d", entity(token), next.TurnIndex+1, face)

	return next, nil
}

// Move advances one of the acting seat's pawns by the pending roll.
//
// A roll that would carry the pawn past the final tile is forfeited. Otherwise
// the pawn lands on pos+roll and is redirected by a snake or ladder starting
// there. Reaching the final tile finishes the pawn; finishing every pawn wins.
// Rolling the maximum face keeps the turn, any other face passes it. The phase
// always returns to ROLL.
//
// The input state is never modified; the returned state is a new copy.
func (e *Engine) Move(st *State, token string, pawn *int) (*State, error) {
	if err := checkActor(st, token); err != nil {
		return nil, err
	}
	if st.Phase != PhaseMove || st.LastRoll == nil {
		return nil, fmt.Errorf("%w: must roll first", ErrWrongPhase)
	}
	if pawn == nil {
		return nil, fmt.Errorf("%w: pawn index missing", ErrInvalidPawn)
	}

	seat := st.TurnIndex
	idx := *pawn
	if idx < 0 || idx >= st.PawnsPerPlayer() {
		return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidPawn, idx)
	}
	if st.FinishedPawns[seat][idx] {
		return nil, fmt.Errorf("%w: pawn %d already finished", ErrInvalidPawn, idx+1)
	}

	next := st.Clone()
	who := entity(token)
	roll := *next.LastRoll
	current := next.Positions[seat][idx]

	// Overshoot is judged on the raw target, before any snake or ladder.
	target := current + roll
	if target > board.FinalTile {
		next.logf("Pawn %d needs exact roll. Stayed at %d.", idx+1, current)
	} else {
		landed := ""
		if end, snake, ok := next.Board.Destination(target); ok {
			kind := "Ladder"
			if snake {
				kind = "Snake"
			}
			landed = fmt.Sprintf(" (%s! %d->%d)", kind, target, end)
			target = end
		}

		next.Positions[seat][idx] = target
		next.logf("%s %d moved Pawn %d to %d%s", who, seat+1, idx+1, target, landed)

		if target == board.FinalTile {
			next.FinishedPawns[seat][idx] = true
			next.logf("%s %d's Pawn %d Finished!", who, seat+1, idx+1)
		}
	}
	next.Moves++

	if next.AllFinished(seat) {
		winner := seat
		next.Status = StatusFinished
		next.Winner = &winner
		next.logf("%s %d WINS!", strings.ToUpper(who), seat+1)
	} else if roll == dice.MaxFace {
		next.logf("%s %d rolled %d, goes again!", who, seat+1, roll)
	} else {
		next.TurnIndex = 1 - next.TurnIndex
	}

	next.Phase = PhaseRoll
	next.LastRoll = nil

	return next, nil
}

// checkActor validates the checks shared by every action.
func checkActor(st *State, token string) error {
	if st.Status != StatusPlaying {
		return fmt.Errorf("%w: room is %s", ErrGameNotActive, st.Status)
	}
	if st.CurrentPlayer() != token {
		return fmt.Errorf("%w: seat %d is to act", ErrWrongTurn, st.TurnIndex+1)
	}
	return nil
}

func (s *State) logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
}
