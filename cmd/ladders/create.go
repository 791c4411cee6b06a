package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagVariant string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new room",
	Long: `Open a room with a freshly generated board and take the first seat.

Prints the room code to share and your seat token. Keep the token: every
roll and move must carry it.

Examples:
  ladders create
  ladders create --variant quick`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&flagVariant, "variant", "", "Board variant (default from config)")
}

func runCreate(cmd *cobra.Command, _ []string) error {
	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	ticket, err := svc.Create(cmd.Context(), flagVariant)
	if err != nil {
		return fmt.Errorf("%w (variants: %s)", err, strings.Join(appConfig.VariantNames(), ", "))
	}

	fmt.Printf("Room:  %s\n", ticket.RoomID)
	fmt.Printf("Token: %s\n", ticket.Token)
	fmt.Println()
	fmt.Printf("Share the room code, or play the computer with 'ladders vs-computer %s <level>'.\n", ticket.RoomID)
	return nil
}
