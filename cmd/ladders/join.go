package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders/internal/config"
)

var joinCmd = &cobra.Command{
	Use:   "join <room>",
	Short: "Take the second seat in a room",
	Long: `Join a waiting room as the second player. The game starts at once and
the room creator moves first.

Examples:
  ladders join K3QF7A`,
	Args: cobra.ExactArgs(1),
	RunE: runJoin,
}

var vsComputerCmd = &cobra.Command{
	Use:   "vs-computer <room> <level>",
	Short: "Seat a computer opponent",
	Long: `Fill the second seat of a room with a computer opponent.

Levels: ` + config.DifficultyNames() + `

The computer plays its turns whenever the room is read with 'ladders state'.

Examples:
  ladders vs-computer K3QF7A normal
  ladders vs-computer K3QF7A extreme`,
	Args: cobra.ExactArgs(2),
	RunE: runVsComputer,
}

func runJoin(cmd *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	ticket, err := svc.Join(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Joined room %s as Player 2\n", ticket.RoomID)
	fmt.Printf("Token: %s\n", ticket.Token)
	return nil
}

func runVsComputer(cmd *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	ticket, err := svc.PlayComputer(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Room %s: %s joined. You move first.\n", ticket.RoomID, seatName(ticket.Token))
	return nil
}
