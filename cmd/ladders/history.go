package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished games",
	Long: `Show the most recently finished games with their winner and length.

Examples:
  ladders history
  ladders history --limit 50`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of games to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	_, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.RecentResults(cmd.Context(), flagLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No finished games yet.")
		return nil
	}

	fmt.Printf("  %-6s  %-20s  %-5s  %s\n", "Room", "Winner", "Moves", "Date")
	fmt.Printf("  %-6s  %-20s  %-5s  %s\n", "----", "------", "-----", "----")
	for _, e := range entries {
		winner := fmt.Sprintf("Seat %d %s", e.Winner+1, seatName(e.WinnerSeat))
		fmt.Printf("  %-6s  %-20s  %-5d  %s\n", e.RoomID, winner, e.Moves, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
