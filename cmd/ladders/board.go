package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board <room>",
	Short: "Draw a room's board",
	Long: `Draw the 10x10 board of a room with its snakes, ladders and pawns.
Tile 1 is bottom left and rows alternate direction up to 100.

Examples:
  ladders board K3QF7A`,
	Args: cobra.ExactArgs(1),
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := svc.State(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Print(renderBoard(defaultTheme(), st))
	return nil
}
