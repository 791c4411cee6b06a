package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagLogTail int
)

var stateCmd = &cobra.Command{
	Use:   "state <room>",
	Short: "Show a room",
	Long: `Show the current state of a room. If it is the computer's turn, the
computer plays first, so polling this command drives a game against it.

Examples:
  ladders state K3QF7A
  ladders state K3QF7A --json`,
	Args: cobra.ExactArgs(1),
	RunE: runState,
}

func init() {
	stateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the full state as JSON")
	stateCmd.Flags().IntVar(&flagLogTail, "log", 8, "Number of log lines to show")
}

func runState(cmd *cobra.Command, args []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := svc.State(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	fmt.Print(renderState(defaultTheme(), st, flagLogTail))
	return nil
}
