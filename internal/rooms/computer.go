package rooms

import (
	"context"

	"github.com/vovakirdan/ladders/internal/ai"
	"github.com/vovakirdan/ladders/internal/game"
)

// computerTurn plays while the seat to act is a computer and the game is on.
// Each roll and each move is saved before the next step. On any failure the
// loop stops and the last saved state is returned.
//
// A roll saved by an earlier, interrupted loop is moved on rather than rolled again.
// The caller holds the room lock.
func (s *Service) computerTurn(ctx context.Context, st *game.State) *game.State {
	for st.Status == game.StatusPlaying {
		token := st.CurrentPlayer()
		d, ok := game.ParseComputerSeat(token)
		if !ok {
			return st
		}
		if ctx.Err() != nil {
			return st
		}

		strategy, err := ai.New(s.cfg, d, s.src)
		if err != nil {
			s.logger.Warn("computer turn aborted", "room", st.RoomID, "error", err)
			return st
		}
		seat := st.TurnIndex

		if st.Phase == game.PhaseRoll {
			rolled, err := s.engine.Roll(st, token, strategy.Bias(st.Positions[seat]))
			if err != nil {
				s.logger.Warn("computer roll failed", "room", st.RoomID, "error", err)
				return st
			}
			if err := s.store.Save(ctx, rolled); err != nil {
				s.logger.Warn("computer roll not saved", "room", st.RoomID, "error", err)
				return st
			}
			st = rolled
		} else {
			s.logger.Debug("resuming computer move", "room", st.RoomID)
		}

		if st.LastRoll == nil {
			s.logger.Warn("computer turn aborted", "room", st.RoomID, "error", "no pending roll")
			return st
		}
		pawn := strategy.SelectPawn(st, seat, *st.LastRoll)
		moved, err := s.engine.Move(st, token, &pawn)
		if err != nil {
			s.logger.Warn("computer move failed", "room", st.RoomID, "error", err)
			return st
		}
		if err := s.store.Save(ctx, moved); err != nil {
			s.logger.Warn("computer move not saved", "room", st.RoomID, "error", err)
			return st
		}
		s.recordResult(ctx, st, moved)
		st = moved
	}
	return st
}
