package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders/internal/game"
)

var flagStatus string

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms",
	Long: `List stored rooms, most recently updated first.

Examples:
  ladders rooms
  ladders rooms --status waiting`,
	Args: cobra.NoArgs,
	RunE: runRooms,
}

func init() {
	roomsCmd.Flags().StringVar(&flagStatus, "status", "", "Only rooms in this status: waiting, playing, finished")
}

func runRooms(cmd *cobra.Command, _ []string) error {
	status := game.Status(flagStatus)
	switch status {
	case "", game.StatusWaiting, game.StatusPlaying, game.StatusFinished:
	default:
		return fmt.Errorf("unknown status %q", flagStatus)
	}

	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	states, err := svc.List(cmd.Context(), status)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		fmt.Println("No rooms yet. Open one with 'ladders create'.")
		return nil
	}

	fmt.Printf("  %-6s  %-8s  %-5s  %-5s  %s\n", "Room", "Status", "Pawns", "Moves", "Opponent")
	fmt.Printf("  %-6s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "--------")
	for _, st := range states {
		opponent := "-"
		if len(st.Players) > 1 {
			opponent = seatName(st.Players[1])
		}
		fmt.Printf("  %-6s  %-8s  %-5d  %-5d  %s\n", st.RoomID, st.Status, st.PawnsPerPlayer(), st.Moves, opponent)
	}
	return nil
}
