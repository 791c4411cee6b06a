package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders/internal/dice"
	"github.com/vovakirdan/ladders/internal/rooms"
)

var (
	flagToken string
	flagBias  string
)

var rollCmd = &cobra.Command{
	Use:   "roll <room>",
	Short: "Roll the die",
	Long: `Roll the die for your seat. After a roll, move a pawn with 'ladders move'.

--bias weights the die, as face=weight pairs. Weights are relative and faces
left out are never rolled.

Examples:
  ladders roll K3QF7A --token <token>
  ladders roll K3QF7A --token <token> --bias 5=1,6=3`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&flagToken, "token", "", "Your seat token")
	rollCmd.Flags().StringVar(&flagBias, "bias", "", "Die weights, e.g. 1=1,6=2")
	_ = rollCmd.MarkFlagRequired("token")
}

func runRoll(cmd *cobra.Command, args []string) error {
	bias, err := parseBias(flagBias)
	if err != nil {
		return err
	}

	svc, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := svc.Roll(cmd.Context(), args[0], rooms.Action{Token: flagToken, Bias: bias})
	if err != nil {
		return err
	}

	fmt.Print(renderState(defaultTheme(), st, 3))
	return nil
}

// parseBias reads "face=weight,face=weight". Empty input means a fair die.
func parseBias(s string) (dice.Bias, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	bias := dice.Bias{}
	for _, pair := range strings.Split(s, ",") {
		faceStr, weightStr, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("bias %q: want face=weight", pair)
		}
		face, err := strconv.Atoi(strings.TrimSpace(faceStr))
		if err != nil || face < dice.MinFace || face > dice.MaxFace {
			return nil, fmt.Errorf("bias %q: face must be %d-%d", pair, dice.MinFace, dice.MaxFace)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil || weight < 0 {
			return nil, fmt.Errorf("bias %q: weight must be a non-negative number", pair)
		}
		bias[face] = weight
	}
	return bias, nil
}
