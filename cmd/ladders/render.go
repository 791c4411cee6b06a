package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ladders/internal/board"
	"github.com/vovakirdan/ladders/internal/game"
)

// theme holds the text styles used by room and board output.
type theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Snake    lipgloss.Style
	Ladder   lipgloss.Style
	Seat     [game.MaxSeats]lipgloss.Style
	Finished lipgloss.Style
	Empty    lipgloss.Style
	LogLine  lipgloss.Style
	Box      lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Snake:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // Red
		Ladder: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Green
		Seat: [game.MaxSeats]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),  // Cyan
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")), // Pink
		},
		Finished: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		LogLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// renderState summarizes a room: seats, pawns, the pending action and the log tail.
func renderState(th theme, st *game.State, logTail int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", th.Title.Render("Room "+st.RoomID), th.Label.Render("("+string(st.Status)+")"))

	for seat := range game.MaxSeats {
		who := th.Empty.Render("empty seat")
		if seat < len(st.Players) {
			who = seatName(st.Players[seat])
		}
		marker := "  "
		if st.Status == game.StatusPlaying && seat == st.TurnIndex {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, th.Seat[seat].Render(fmt.Sprintf("Seat %d", seat+1)), who)

		pawns := make([]string, len(st.Positions[seat]))
		for i, pos := range st.Positions[seat] {
			cell := fmt.Sprintf("P%d:%d", i+1, pos)
			if st.FinishedPawns[seat][i] {
				cell = th.Finished.Render(fmt.Sprintf("P%d:home", i+1))
			}
			pawns[i] = cell
		}
		fmt.Fprintf(&b, "    %s\n", strings.Join(pawns, "  "))
	}

	switch {
	case st.Status == game.StatusFinished && st.Winner != nil:
		fmt.Fprintf(&b, "%s\n", th.Title.Render(fmt.Sprintf("Seat %d wins after %d moves", *st.Winner+1, st.Moves)))
	case st.Status == game.StatusPlaying && st.Phase == game.PhaseMove && st.LastRoll != nil:
		fmt.Fprintf(&b, "%s %d, choose a pawn\n", th.Label.Render("Rolled"), *st.LastRoll)
	case st.Status == game.StatusPlaying:
		fmt.Fprintf(&b, "%s\n", th.Label.Render("Waiting for a roll"))
	}

	if logTail > 0 && len(st.Log) > 0 {
		start := max(0, len(st.Log)-logTail)
		lines := make([]string, 0, logTail)
		for _, line := range st.Log[start:] {
			lines = append(lines, th.LogLine.Render(line))
		}
		b.WriteString(th.Box.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBoard draws the 10x10 board, row 100 on top, alternating direction
// per row. Pawns are shown by seat number over the tile.
func renderBoard(th theme, st *game.State) string {
	occupant := make(map[int][]int) // tile -> seats with a pawn there
	for seat, positions := range st.Positions {
		for i, pos := range positions {
			if pos > 0 && !st.FinishedPawns[seat][i] {
				occupant[pos] = append(occupant[pos], seat)
			}
		}
	}

	var b strings.Builder
	for row := 9; row >= 0; row-- {
		cells := make([]string, 10)
		for col := range 10 {
			tile := row*10 + col + 1
			idx := col
			if row%2 == 1 {
				idx = 9 - col
			}
			cells[idx] = renderTile(th, st.Board, tile, occupant[tile])
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, tr := range st.Board.Transitions() {
		style, kind := th.Ladder, "ladder"
		if tr.Snake {
			style, kind = th.Snake, "snake "
		}
		fmt.Fprintf(&b, "%s %3d -> %3d\n", style.Render(kind), tr.Start, tr.End)
	}
	return b.String()
}

func renderTile(th theme, b board.Board, tile int, seats []int) string {
	text := fmt.Sprintf("%4d", tile)
	if len(seats) > 0 {
		return th.Seat[seats[0]].Render(fmt.Sprintf("%3s%d", "@", seats[0]+1))
	}
	switch {
	case b.IsSnakeHead(tile):
		return th.Snake.Render(text)
	case b.IsLadderFoot(tile):
		return th.Ladder.Render(text)
	default:
		return th.Empty.Render(text)
	}
}

// seatName shortens a uuid token for display. Computer seats show their tier.
func seatName(token string) string {
	if d, ok := game.ParseComputerSeat(token); ok {
		return "computer (" + string(d) + ")"
	}
	if len(token) > 8 {
		return token[:8]
	}
	return token
}
