// Package config provides YAML-based configuration loading for the ladders
// engine: board variants, computer difficulty tiers and the state store.
package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/ladders/internal/dice"
)

// Config is the root configuration document.
type Config struct {
	Variant        string                        `yaml:"variant"` // Default variant for new rooms
	Variants       map[string]Variant            `yaml:"variants"`
	Computer       map[Difficulty]ComputerConfig `yaml:"computer"`
	Store          StoreConfig                   `yaml:"store"`
	AutoplayOnMove bool                          `yaml:"autoplay_on_move"`
}

// Variant describes one rule set: how many pawns each player moves and how
// the board is populated.
type Variant struct {
	PawnsPerPlayer int         `yaml:"pawns_per_player"`
	Ladders        LadderRules `yaml:"ladders"`
	Snakes         SnakeRules  `yaml:"snakes"`
	DangerSnake    DangerRules `yaml:"danger_snake"`
}

// LadderRules bounds ladder placement. End is drawn from [start+MinRise, EndMax].
type LadderRules struct {
	Count    int `yaml:"count"`
	StartMin int `yaml:"start_min"`
	StartMax int `yaml:"start_max"`
	MinRise  int `yaml:"min_rise"`
	EndMax   int `yaml:"end_max"`
}

// SnakeRules bounds general snake placement. End is drawn from [EndMin, start-MinDrop].
type SnakeRules struct {
	Count    int `yaml:"count"`
	StartMin int `yaml:"start_min"`
	StartMax int `yaml:"start_max"`
	MinDrop  int `yaml:"min_drop"`
	EndMin   int `yaml:"end_min"`
}

// DangerRules configures the single snake guarded near the final tile.
type DangerRules struct {
	Enabled  bool `yaml:"enabled"`
	StartMin int  `yaml:"start_min"`
	StartMax int  `yaml:"start_max"`
	MinDrop  int  `yaml:"min_drop"`
	EndMin   int  `yaml:"end_min"`
}

// SelectionMode is how a computer tier picks which pawn to move.
type SelectionMode string

const (
	SelectRandom    SelectionMode = "random"
	SelectHeuristic SelectionMode = "heuristic"
)

// ComputerConfig parameterizes one difficulty tier.
type ComputerConfig struct {
	Weights   map[int]float64 `yaml:"weights"` // Face -> relative weight; empty means a fair die
	Selection SelectionMode   `yaml:"selection"`
	Endgame   EndgameConfig   `yaml:"endgame"`
}

// EndgameConfig switches to a near-fair die once every pawn is within reach
// of the last tile, boosting the exact winning face.
type EndgameConfig struct {
	Enabled           bool            `yaml:"enabled"`
	Threshold         int             `yaml:"threshold"` // Minimum pawn position that triggers the override
	Weights           map[int]float64 `yaml:"weights"`
	WinFaceMultiplier float64         `yaml:"win_face_multiplier"`
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// VariantByName returns a named variant, or the default variant when name is empty.
func (c Config) VariantByName(name string) (Variant, error) {
	if name == "" {
		name = c.Variant
	}
	v, ok := c.Variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("config: unknown variant %q", name)
	}
	if err := v.Validate(); err != nil {
		return Variant{}, fmt.Errorf("config: variant %q: %w", name, err)
	}
	return v, nil
}

// VariantNames returns the configured variant names, sorted.
func (c Config) VariantNames() []string {
	names := make([]string, 0, len(c.Variants))
	for name := range c.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComputerFor returns the validated tier configuration for a difficulty.
// A tier with no selection mode uses the built-in tier's mode.
func (c Config) ComputerFor(d Difficulty) (ComputerConfig, error) {
	if !d.Valid() {
		return ComputerConfig{}, fmt.Errorf("config: %w: %q", ErrInvalidDifficulty, d)
	}
	cc, ok := c.Computer[d]
	if !ok {
		return ComputerConfig{}, fmt.Errorf("config: no computer settings for %q", d)
	}
	if cc.Selection == "" {
		cc.Selection = DefaultConfig().Computer[d].Selection
	}
	if err := cc.Validate(); err != nil {
		return ComputerConfig{}, fmt.Errorf("config: computer %q: %w", d, err)
	}
	return cc, nil
}

// Validate checks the die weights and the endgame override.
func (cc ComputerConfig) Validate() error {
	if err := validateWeights(cc.Weights); err != nil {
		return fmt.Errorf("weights: %w", err)
	}

	e := cc.Endgame
	if !e.Enabled {
		return nil
	}
	if e.Threshold < 1 || e.Threshold > 100 {
		return fmt.Errorf("endgame threshold must be within 1..100, got %d", e.Threshold)
	}
	if e.WinFaceMultiplier < 1 {
		return fmt.Errorf("endgame win_face_multiplier must be at least 1, got %v", e.WinFaceMultiplier)
	}
	if err := validateWeights(e.Weights); err != nil {
		return fmt.Errorf("endgame weights: %w", err)
	}
	return nil
}

func validateWeights(w map[int]float64) error {
	for face, weight := range w {
		if face < dice.MinFace || face > dice.MaxFace {
			return fmt.Errorf("face %d is not on the die", face)
		}
		if weight < 0 {
			return fmt.Errorf("face %d has negative weight %v", face, weight)
		}
	}
	return nil
}

// Validate checks that the placement ranges can be satisfied.
func (v Variant) Validate() error {
	if v.PawnsPerPlayer < 1 {
		return fmt.Errorf("pawns_per_player must be positive, got %d", v.PawnsPerPlayer)
	}
	l := v.Ladders
	if l.StartMin < 2 || l.StartMin > l.StartMax || l.StartMax+l.MinRise > l.EndMax || l.EndMax > 99 {
		return fmt.Errorf("ladder ranges are unsatisfiable")
	}
	s := v.Snakes
	if s.EndMin < 2 || s.StartMin > s.StartMax || s.StartMax > 99 || s.StartMin-s.MinDrop < s.EndMin {
		return fmt.Errorf("snake ranges are unsatisfiable")
	}
	if d := v.DangerSnake; d.Enabled {
		if d.StartMin > d.StartMax || d.StartMax > 99 || d.StartMin-d.MinDrop < d.EndMin {
			return fmt.Errorf("danger snake ranges are unsatisfiable")
		}
	}
	return nil
}
