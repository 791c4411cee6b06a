package board

import (
	"github.com/vovakirdan/ladders/internal/config"
	"github.com/vovakirdan/ladders/internal/dice"
)

// placement tracks occupied tiles while a board is being built.
type placement struct {
	board      Board
	snakeEnds  map[int]bool
	ladderEnds map[int]bool
}

func newPlacement() *placement {
	return &placement{
		board:      New(),
		snakeEnds:  make(map[int]bool),
		ladderEnds: make(map[int]bool),
	}
}

func (p *placement) isStart(tile int) bool {
	return p.board.IsSnakeHead(tile) || p.board.IsLadderFoot(tile)
}

func (p *placement) isEnd(tile int) bool {
	return p.snakeEnds[tile] || p.ladderEnds[tile]
}

// canPlace rejects a candidate whose start is already used by any transition,
// whose end is some transition's start, or whose end is shared with another
// transition of the same kind.
func (p *placement) canPlace(start, end int, snake bool) bool {
	if p.isStart(start) || p.isEnd(start) || p.isStart(end) {
		return false
	}
	if snake {
		return !p.snakeEnds[end]
	}
	return !p.ladderEnds[end]
}

func (p *placement) place(start, end int, snake bool) {
	if snake {
		p.board.Snakes[start] = end
		p.snakeEnds[end] = true
		return
	}
	p.board.Ladders[start] = end
	p.ladderEnds[end] = true
}

// Generate builds a random board for a variant using rejection sampling:
// ladders first, then general snakes, then the danger snake. Candidates that
// break a placement rule are discarded and redrawn until each count is met.
//
// The variant must pass config.Variant.Validate.
func Generate(src dice.Source, v config.Variant) Board {
	p := newPlacement()

	l := v.Ladders
	for len(p.board.Ladders) < l.Count {
		start := dice.IntRange(src, l.StartMin, l.StartMax)
		end := dice.IntRange(src, start+l.MinRise, l.EndMax)
		if p.canPlace(start, end, false) {
			p.place(start, end, false)
		}
	}

	s := v.Snakes
	for len(p.board.Snakes) < s.Count {
		start := dice.IntRange(src, s.StartMin, s.StartMax)
		end := dice.IntRange(src, s.EndMin, start-s.MinDrop)
		if p.canPlace(start, end, true) {
			p.place(start, end, true)
		}
	}

	if d := v.DangerSnake; d.Enabled {
		for placed := false; !placed; {
			start := dice.IntRange(src, d.StartMin, d.StartMax)
			end := dice.IntRange(src, d.EndMin, start-d.MinDrop)
			if p.canPlace(start, end, true) {
				p.place(start, end, true)
				placed = true
			}
		}
	}

	return p.board
}
