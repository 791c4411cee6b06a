package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vovakirdan/ladders/internal/board"
	"github.com/vovakirdan/ladders/internal/dice"
)

const (
	host  = "host-token"
	guest = "guest-token"
)

// face forces the die to land on f.
func face(f int) dice.Bias {
	return dice.Bias{f: 1}
}

func pawn(i int) *int {
	return &i
}

func emptyBoard() board.Board {
	return board.New()
}

// playing returns a two-seat room that has just started.
func playing(b board.Board, pawns int) *State {
	st := NewState("ROOM01", host, b, pawns)
	st.AddPlayer(guest)
	return st
}

// withRoll returns a copy of st in the MOVE phase with the given pending roll.
func withRoll(st *State, roll int) *State {
	next := st.Clone()
	next.LastRoll = &roll
	next.Phase = PhaseMove
	return next
}

func TestRollAdvancesPhase(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	st := playing(emptyBoard(), 2)

	next, err := e.Roll(st, host, face(4))
	require.NoError(t, err)
	assert.Equal(t, PhaseMove, next.Phase)
	require.NotNil(t, next.LastRoll)
	assert.Equal(t, 4, *next.LastRoll)
	assert.Len(t, next.Log, len(st.Log)+1, "one new log entry")

	// Input untouched
	assert.Equal(t, PhaseRoll, st.Phase)
	assert.Nil(t, st.LastRoll)
}

func TestRollTwiceIsWrongPhase(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	st := playing(emptyBoard(), 2)

	st, err := e.Roll(st, host, nil)
	require.NoError(t, err)

	_, err = e.Roll(st, host, nil)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestRollRejections(t *testing.T) {
	e := NewEngine(dice.NewSource(1))

	waiting := NewState("ROOM01", host, emptyBoard(), 2)
	finished := playing(emptyBoard(), 2)
	finished.Status = StatusFinished

	tests := []struct {
		name  string
		state *State
		token string
		want  error
	}{
		{"waiting room", waiting, host, ErrGameNotActive},
		{"finished room", finished, host, ErrGameNotActive},
		{"not your turn", playing(emptyBoard(), 2), guest, ErrWrongTurn},
		{"unknown token", playing(emptyBoard(), 2), "stranger", ErrWrongTurn},
		{"move pending", withRoll(playing(emptyBoard(), 2), 3), host, ErrWrongPhase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state.Clone()
			_, err := e.Roll(tt.state, tt.token, nil)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, tt.state, "failed Roll() must not mutate state")
		})
	}
}

func TestMoveRejections(t *testing.T) {
	e := NewEngine(dice.NewSource(1))

	done := withRoll(playing(emptyBoard(), 2), 3)
	done.FinishedPawns[0][1] = true
	done.Positions[0][1] = board.FinalTile

	tests := []struct {
		name  string
		state *State
		token string
		pawn  *int
		want  error
	}{
		{"before roll", playing(emptyBoard(), 2), host, pawn(0), ErrWrongPhase},
		{"not your turn", withRoll(playing(emptyBoard(), 2), 3), guest, pawn(0), ErrWrongTurn},
		{"missing pawn", withRoll(playing(emptyBoard(), 2), 3), host, nil, ErrInvalidPawn},
		{"negative pawn", withRoll(playing(emptyBoard(), 2), 3), host, pawn(-1), ErrInvalidPawn},
		{"pawn out of range", withRoll(playing(emptyBoard(), 2), 3), host, pawn(2), ErrInvalidPawn},
		{"pawn finished", done, host, pawn(1), ErrInvalidPawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state.Clone()
			_, err := e.Move(tt.state, tt.token, tt.pawn)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, tt.state, "failed Move() must not mutate state")
		})
	}
}

func TestMoveSnakeRedirects(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	b := board.Board{Snakes: map[int]int{20: 5}, Ladders: map[int]int{}}
	st := playing(b, 2)
	st.Positions[0][0] = 18

	next, err := e.Move(withRoll(st, 2), host, pawn(0))
	require.NoError(t, err)
	assert.Equal(t, 5, next.Positions[0][0], "snake from 20 ends at 5")
	assert.Contains(t, next.Log[len(next.Log)-1], "Snake! 20->5")
}

func TestMoveLadderRedirects(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	b := board.Board{Snakes: map[int]int{}, Ladders: map[int]int{4: 30}}
	st := playing(b, 2)

	next, err := e.Move(withRoll(st, 4), host, pawn(1))
	require.NoError(t, err)
	assert.Equal(t, 30, next.Positions[0][1])
	assert.Equal(t, 1, next.TurnIndex, "turn passes to seat 2")
}

func TestMoveOvershootOnMaxFace(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	st := playing(emptyBoard(), 3)
	st.Positions[0][2] = 97

	next, err := e.Move(withRoll(st, 6), host, pawn(2))
	require.NoError(t, err)
	assert.Equal(t, 97, next.Positions[0][2], "overshoot leaves the pawn in place")
	assert.Equal(t, 0, next.TurnIndex, "a six keeps the turn")
	assert.Equal(t, PhaseRoll, next.Phase)
	assert.Nil(t, next.LastRoll)
	assert.False(t, next.FinishedPawns[0][2])
	assert.Equal(t, 1, next.Moves, "a forfeited move still counts")
}

func TestMoveSnakeBeyondFinalIsIgnoredOnOvershoot(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	// A transition keyed past the final tile can never be reached.
	b := board.Board{Snakes: map[int]int{101: 10}, Ladders: map[int]int{}}
	st := playing(b, 2)
	st.Positions[0][0] = 98

	next, err := e.Move(withRoll(st, 3), host, pawn(0))
	require.NoError(t, err)
	assert.Equal(t, 98, next.Positions[0][0])
}

func TestMoveExactFinishAndWin(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	st := playing(emptyBoard(), 2)
	st.Positions[0] = []int{100, 97}
	st.FinishedPawns[0] = []bool{true, false}

	next, err := e.Move(withRoll(st, 3), host, pawn(1))
	require.NoError(t, err)
	assert.True(t, next.FinishedPawns[0][1], "pawn reaching 100 is finished")
	assert.Equal(t, StatusFinished, next.Status)
	require.NotNil(t, next.Winner)
	assert.Equal(t, 0, *next.Winner)
	assert.Equal(t, 0, next.TurnIndex, "turn does not advance when the game ends")
	assert.Equal(t, PhaseRoll, next.Phase)
	assert.Nil(t, next.LastRoll)

	// Nothing more can happen in a finished room
	_, err = e.Roll(next, host, nil)
	assert.ErrorIs(t, err, ErrGameNotActive)
}

func TestMoveWinCheckUsesRedirectedTile(t *testing.T) {
	e := NewEngine(dice.NewSource(1))

	t.Run("snake from 99", func(t *testing.T) {
		b := board.Board{Snakes: map[int]int{99: 60}, Ladders: map[int]int{}}
		st := playing(b, 2)
		st.Positions[0] = []int{100, 95}
		st.FinishedPawns[0] = []bool{true, false}

		next, err := e.Move(withRoll(st, 4), host, pawn(1))
		require.NoError(t, err)
		assert.Equal(t, 60, next.Positions[0][1])
		assert.False(t, next.FinishedPawns[0][1])
		assert.Equal(t, StatusPlaying, next.Status)
	})

	t.Run("ladder to 100", func(t *testing.T) {
		b := board.Board{Snakes: map[int]int{}, Ladders: map[int]int{90: 100}}
		st := playing(b, 2)
		st.Positions[0] = []int{100, 88}
		st.FinishedPawns[0] = []bool{true, false}

		next, err := e.Move(withRoll(st, 2), host, pawn(1))
		require.NoError(t, err)
		assert.True(t, next.FinishedPawns[0][1])
		assert.Equal(t, StatusFinished, next.Status)
	})
}

func TestMoveSixKeepsTurn(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	st := playing(emptyBoard(), 2)

	next, err := e.Move(withRoll(st, 6), host, pawn(0))
	require.NoError(t, err)
	assert.Equal(t, 0, next.TurnIndex)
	assert.Equal(t, 6, next.Positions[0][0])
	assert.Contains(t, next.Log[len(next.Log)-1], "goes again")
}

func TestComputerLogLines(t *testing.T) {
	e := NewEngine(dice.NewSource(1))
	st := NewState("ROOM01", host, emptyBoard(), 2)
	st.AddPlayer(ComputerSeat("hard"))
	assert.Contains(t, st.Log[len(st.Log)-1], "Computer hard joined")

	st.TurnIndex = 1
	next, err := e.Roll(st, ComputerSeat("hard"), face(2))
	require.NoError(t, err)
	assert.Equal(t, "Computer 2 rolled a 2", next.Log[len(next.Log)-1])
}

// With no six rolled the turn flips after every move; with a six it stays.
func TestTurnAlternation_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := NewEngine(dice.NewSource(rapid.Int64().Draw(rt, "seed")))
		st := playing(emptyBoard(), rapid.IntRange(2, 3).Draw(rt, "pawns"))
		tokens := []string{host, guest}

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps && st.Status == StatusPlaying; i++ {
			f := rapid.IntRange(1, 6).Draw(rt, "face")
			token := tokens[st.TurnIndex]

			rolled, err := e.Roll(st, token, face(f))
			require.NoError(rt, err)
			choices := rolled.UnfinishedPawns(rolled.TurnIndex)
			p := rapid.SampledFrom(choices).Draw(rt, "pawn")

			moved, err := e.Move(rolled, token, &p)
			require.NoError(rt, err)

			if moved.Status == StatusFinished {
				assert.Equal(rt, st.TurnIndex, moved.TurnIndex)
			} else if f == dice.MaxFace {
				assert.Equal(rt, st.TurnIndex, moved.TurnIndex, "six must keep the turn")
			} else {
				assert.Equal(rt, 1-st.TurnIndex, moved.TurnIndex, "turn must flip")
			}
			assert.Equal(rt, PhaseRoll, moved.Phase)
			assert.Nil(rt, moved.LastRoll)
			st = moved
		}
	})
}

// An overshooting move changes nothing but the phase, roll, turn and log.
func TestOvershootIdempotence_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := NewEngine(dice.NewSource(1))
		st := playing(emptyBoard(), 3)
		pos := rapid.IntRange(95, 99).Draw(rt, "pos")
		roll := rapid.IntRange(board.FinalTile-pos+1, 6).Draw(rt, "roll")
		idx := rapid.IntRange(0, 2).Draw(rt, "pawn")
		st.Positions[0][idx] = pos

		before := withRoll(st, roll)
		after, err := e.Move(before, host, &idx)
		require.NoError(rt, err)
		assert.Equal(rt, before.Positions, after.Positions)
		assert.Equal(rt, before.FinishedPawns, after.FinishedPawns)
		assert.Equal(rt, PhaseRoll, after.Phase)
		assert.Nil(rt, after.LastRoll)
	})
}

// A seat wins exactly when all of its pawns are home.
func TestWinDetection_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := NewEngine(dice.NewSource(1))
		st := playing(emptyBoard(), 3)
		for i := range 3 {
			if rapid.Bool().Draw(rt, "home") {
				st.Positions[0][i] = board.FinalTile
				st.FinishedPawns[0][i] = true
			}
		}
		choices := st.UnfinishedPawns(0)
		if len(choices) == 0 {
			rt.Skip("nothing left to move")
		}
		p := rapid.SampledFrom(choices).Draw(rt, "pawn")
		roll := rapid.IntRange(1, 6).Draw(rt, "roll")
		st.Positions[0][p] = board.FinalTile - roll

		after, err := e.Move(withRoll(st, roll), host, &p)
		require.NoError(rt, err)
		if len(choices) == 1 {
			assert.Equal(rt, StatusFinished, after.Status)
			require.NotNil(rt, after.Winner)
			assert.Equal(rt, 0, *after.Winner)
		} else {
			assert.Equal(rt, StatusPlaying, after.Status)
			assert.Nil(rt, after.Winner)
		}
	})
}

func TestResult(t *testing.T) {
	st := playing(emptyBoard(), 2)
	_, ok := st.Result()
	assert.False(t, ok, "a playing room has no result")

	w := 1
	st.Status = StatusFinished
	st.Winner = &w
	st.Moves = 42

	r, ok := st.Result()
	require.True(t, ok)
	assert.Equal(t, guest, r.WinnerSeat)
	assert.Equal(t, 42, r.Moves)
	assert.Equal(t, host, r.Player1)
}

func TestParseComputerSeat(t *testing.T) {
	d, ok := ParseComputerSeat("computer_extreme")
	assert.True(t, ok)
	assert.EqualValues(t, "extreme", d)

	_, ok = ParseComputerSeat("computer_godlike")
	assert.False(t, ok)
	_, ok = ParseComputerSeat("5f0c7c1e-uuid")
	assert.False(t, ok)
}
