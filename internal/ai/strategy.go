// Package ai drives computer seats. A Strategy is built for one difficulty
// tier and produces the dice bias for a roll and, once the roll is known, the
// pawn to move.
package ai

import (
	"fmt"

	"github.com/vovakirdan/ladders/internal/board"
	"github.com/vovakirdan/ladders/internal/config"
	"github.com/vovakirdan/ladders/internal/dice"
	"github.com/vovakirdan/ladders/internal/game"
)

// Selector picks the pawn a seat moves with a known roll.
// It is only called while the seat has at least one unfinished pawn.
type Selector func(st *game.State, seat, roll int) int

// Strategy is the (bias, selector) pair for one difficulty tier.
type Strategy struct {
	Difficulty config.Difficulty

	weights dice.Bias
	endgame config.EndgameConfig
	selectP Selector
}

// New builds the strategy for a difficulty from the configured tiers.
// Random pawn choices are drawn from src.
func New(cfg config.Config, d config.Difficulty, src dice.Source) (*Strategy, error) {
	cc, err := cfg.ComputerFor(d)
	if err != nil {
		return nil, err
	}

	sel, err := newSelector(cc.Selection, src)
	if err != nil {
		return nil, fmt.Errorf("%w (difficulty %s)", err, d)
	}

	return &Strategy{
		Difficulty: d,
		weights:    dice.Bias(cc.Weights).Clone(),
		endgame:    cc.Endgame,
		selectP:    sel,
	}, nil
}

// Bias returns the die weights for the next roll given the seat's pawn
// positions. A nil result means a fair die.
//
// Once every pawn sits at or beyond the endgame threshold the tier switches to
// a near-fair die with the exact finishing face boosted.
func (s *Strategy) Bias(positions []int) dice.Bias {
	if s.endgame.Enabled && len(positions) > 0 {
		lowest := positions[0]
		for _, p := range positions[1:] {
			lowest = min(lowest, p)
		}
		if lowest >= s.endgame.Threshold {
			bias := dice.Bias(s.endgame.Weights).Clone()
			if bias == nil {
				bias = dice.Bias{}
			}
			if win := board.FinalTile - lowest; win >= dice.MinFace && win <= dice.MaxFace {
				bias[win] *= s.endgame.WinFaceMultiplier
			}
			return bias
		}
	}
	return s.weights.Clone()
}

// SelectPawn picks the pawn to move for the given roll.
func (s *Strategy) SelectPawn(st *game.State, seat, roll int) int {
	return s.selectP(st, seat, roll)
}

func randomSelector(src dice.Source) Selector {
	return func(st *game.State, seat, _ int) int {
		choices := st.UnfinishedPawns(seat)
		if len(choices) == 0 {
			return 0
		}
		return choices[src.Intn(len(choices))]
	}
}
