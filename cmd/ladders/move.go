package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders/internal/rooms"
)

var flagPawn int

var moveCmd = &cobra.Command{
	Use:   "move <room>",
	Short: "Move a pawn by the pending roll",
	Long: `Move one of your pawns by the roll you just made. Pawns are numbered
from 1, as in the room log.

A roll that would carry the pawn past 100 is lost. Rolling a 6 gives
you another turn.

Examples:
  ladders move K3QF7A --token <token> --pawn 1`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagToken, "token", "", "Your seat token")
	moveCmd.Flags().IntVarP(&flagPawn, "pawn", "p", 0, "Pawn number (1-based)")
	_ = moveCmd.MarkFlagRequired("token")
	_ = moveCmd.MarkFlagRequired("pawn")
}

func runMove(cmd *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	pawn := flagPawn - 1
	st, err := svc.Move(cmd.Context(), args[0], rooms.Action{Token: flagToken, Pawn: &pawn})
	if err != nil {
		return err
	}

	fmt.Print(renderState(defaultTheme(), st, 4))
	return nil
}
