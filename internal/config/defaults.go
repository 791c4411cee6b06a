package config

import (
	_ "embed"
)

//go:embed defaults/ladders.yaml
var defaultLaddersYAML []byte

// DefaultConfig returns the default ladders configuration.
func DefaultConfig() Config {
	endgameWeights := map[int]float64{1: 0.1666, 2: 0.1666, 3: 0.1667, 4: 0.1667, 5: 0.1667, 6: 0.1667}

	return Config{
		Variant: "classic",
		Variants: map[string]Variant{
			"classic": {
				PawnsPerPlayer: 3,
				Ladders:        LadderRules{Count: 5, StartMin: 2, StartMax: 80, MinRise: 10, EndMax: 94},
				Snakes:         SnakeRules{Count: 4, StartMin: 15, StartMax: 97, MinDrop: 10, EndMin: 2},
				DangerSnake:    DangerRules{Enabled: true, StartMin: 98, StartMax: 99, MinDrop: 10, EndMin: 50},
			},
			"quick": {
				PawnsPerPlayer: 2,
				Ladders:        LadderRules{Count: 6, StartMin: 2, StartMax: 80, MinRise: 10, EndMax: 98},
				Snakes:         SnakeRules{Count: 6, StartMin: 15, StartMax: 97, MinDrop: 10, EndMin: 2},
			},
		},
		Computer: map[Difficulty]ComputerConfig{
			DifficultyEasy: {
				Selection: SelectRandom,
				Weights:   map[int]float64{1: 0.2857, 2: 0.2381, 3: 0.1905, 4: 0.1429, 5: 0.0952, 6: 0.0476},
			},
			DifficultyNormal: {
				Selection: SelectHeuristic,
			},
			DifficultyHard: {
				Selection: SelectHeuristic,
				Weights:   map[int]float64{1: 0.0476, 2: 0.0952, 3: 0.1429, 4: 0.1905, 5: 0.2381, 6: 0.2857},
				Endgame: EndgameConfig{
					Enabled:           true,
					Threshold:         94,
					Weights:           endgameWeights,
					WinFaceMultiplier: 2,
				},
			},
			DifficultyExtreme: {
				Selection: SelectHeuristic,
				Weights:   map[int]float64{1: 0.0110, 2: 0.0440, 3: 0.0989, 4: 0.1758, 5: 0.2747, 6: 0.3956},
				Endgame: EndgameConfig{
					Enabled:           true,
					Threshold:         94,
					Weights:           endgameWeights,
					WinFaceMultiplier: 3,
				},
			},
		},
		Store: StoreConfig{
			Path: "~/.ladders/ladders.db",
		},
	}
}
