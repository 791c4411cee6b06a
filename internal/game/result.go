package game

// Result summarizes a finished room for the history table.
type Result struct {
	RoomID     string
	Player1    string
	Player2    string
	Winner     int    // Seat index of the winner
	WinnerSeat string // Token or computer marker of the winner
	Moves      int
}

// Result returns the outcome of a finished room. ok is false while the room
// is still waiting or playing.
func (s *State) Result() (Result, bool) {
	if s.Status != StatusFinished || s.Winner == nil || len(s.Players) < MaxSeats {
		return Result{}, false
	}
	w := *s.Winner
	return Result{
		RoomID:     s.RoomID,
		Player1:    s.Players[0],
		Player2:    s.Players[1],
		Winner:     w,
		WinnerSeat: s.Players[w],
		Moves:      s.Moves,
	}, true
}
