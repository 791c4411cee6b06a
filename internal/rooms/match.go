package rooms

import (
	"context"
	"fmt"

	"github.com/vovakirdan/ladders/internal/ai"
	"github.com/vovakirdan/ladders/internal/game"
)

// maxMatchPolls bounds PlayMatch in case a room stops making progress.
const maxMatchPolls = 100000

// PlayMatch plays one full game through the service. Seat 1 is driven by
// driver through Roll and Move; seat 2 is a computer of the given difficulty
// that plays whenever the room is polled with State.
func PlayMatch(ctx context.Context, svc *Service, variant string, driver *ai.Strategy, opponent string) (*game.State, error) {
	ticket, err := svc.Create(ctx, variant)
	if err != nil {
		return nil, err
	}
	if _, err := svc.PlayComputer(ctx, ticket.RoomID, opponent); err != nil {
		return nil, err
	}

	for range maxMatchPolls {
		st, err := svc.State(ctx, ticket.RoomID)
		if err != nil {
			return nil, err
		}
		if st.Status == game.StatusFinished {
			return st, nil
		}
		if st.CurrentPlayer() != ticket.Token {
			return nil, fmt.Errorf("room %s: computer seat did not finish its turn", ticket.RoomID)
		}

		rolled, err := svc.Roll(ctx, ticket.RoomID, Action{Token: ticket.Token, Bias: driver.Bias(st.Positions[0])})
		if err != nil {
			return nil, err
		}
		pawn := driver.SelectPawn(rolled, 0, *rolled.LastRoll)
		if _, err := svc.Move(ctx, ticket.RoomID, Action{Token: ticket.Token, Pawn: &pawn}); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("room %s: no winner after %d turns", ticket.RoomID, maxMatchPolls)
}
