package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	def := DefaultConfig()
	var embedded Config
	if err := yaml.Unmarshal(defaultLaddersYAML, &embedded); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if embedded.Variant != def.Variant || embedded.Store.Path != def.Store.Path {
		t.Errorf("embedded top-level settings differ: %+v", embedded)
	}

	for _, name := range def.VariantNames() {
		got, ok := embedded.Variants[name]
		if !ok {
			t.Fatalf("embedded defaults missing variant %q", name)
		}
		if got != def.Variants[name] {
			t.Errorf("variant %q: embedded %+v, hardcoded %+v", name, got, def.Variants[name])
		}
	}
	for _, d := range Difficulties() {
		if len(embedded.Computer[d].Weights) != len(def.Computer[d].Weights) {
			t.Errorf("difficulty %s: weight tables differ", d)
		}
		for face, w := range def.Computer[d].Weights {
			if embedded.Computer[d].Weights[face] != w {
				t.Errorf("difficulty %s face %d: embedded %v, hardcoded %v", d, face, embedded.Computer[d].Weights[face], w)
			}
		}
		if embedded.Computer[d].Selection != def.Computer[d].Selection {
			t.Errorf("difficulty %s: selection %q, want %q", d, embedded.Computer[d].Selection, def.Computer[d].Selection)
		}
		if embedded.Computer[d].Endgame.WinFaceMultiplier != def.Computer[d].Endgame.WinFaceMultiplier {
			t.Errorf("difficulty %s: endgame multiplier differs", d)
		}
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ladders.yaml")
	data := []byte(`
variant: quick
variants:
  quick:
    pawns_per_player: 2
    ladders: {count: 1, start_min: 2, start_max: 10, min_rise: 10, end_max: 30}
    snakes: {count: 1, start_min: 40, start_max: 50, min_drop: 10, end_min: 2}
store:
  path: /tmp/x.db
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	v, err := cfg.VariantByName("")
	if err != nil {
		t.Fatalf("VariantByName() failed: %v", err)
	}
	if v.PawnsPerPlayer != 2 || v.Ladders.Count != 1 {
		t.Errorf("unexpected variant %+v", v)
	}
	if cfg.Store.Path != "/tmp/x.db" {
		t.Errorf("store path = %q", cfg.Store.Path)
	}

	// Computer tiers absent from the file fall back to defaults
	if _, err := cfg.ComputerFor(DifficultyExtreme); err != nil {
		t.Errorf("ComputerFor(extreme) failed: %v", err)
	}
}

func TestVariantByNameUnknown(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.VariantByName("nope"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestVariantValidate(t *testing.T) {
	cfg := DefaultConfig()
	for _, name := range cfg.VariantNames() {
		if err := cfg.Variants[name].Validate(); err != nil {
			t.Errorf("default variant %q invalid: %v", name, err)
		}
	}

	bad := cfg.Variants["classic"]
	bad.Ladders.EndMax = bad.Ladders.StartMax
	if err := bad.Validate(); err == nil {
		t.Error("expected unsatisfiable ladder ranges to fail validation")
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		got, err := ParseDifficulty(string(d))
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %q, %v", d, got, err)
		}
	}

	for _, s := range []string{"", "EASY", "impossible", "fixed"} {
		if _, err := ParseDifficulty(s); err != ErrInvalidDifficulty {
			t.Errorf("ParseDifficulty(%q) error = %v, want ErrInvalidDifficulty", s, err)
		}
	}
}

func TestComputerForInvalid(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.ComputerFor("silly"); err == nil {
		t.Error("expected error for invalid difficulty")
	}
}

func TestComputerConfigValidate(t *testing.T) {
	endgame := func(threshold int, mult float64, weights map[int]float64) EndgameConfig {
		return EndgameConfig{Enabled: true, Threshold: threshold, WinFaceMultiplier: mult, Weights: weights}
	}

	tests := []struct {
		name    string
		cc      ComputerConfig
		wantErr bool
	}{
		{"fair die", ComputerConfig{}, false},
		{"skewed die", ComputerConfig{Weights: map[int]float64{1: 0.5, 6: 2}}, false},
		{"zero weight", ComputerConfig{Weights: map[int]float64{1: 0, 2: 1}}, false},
		{"face above six", ComputerConfig{Weights: map[int]float64{9: 1}}, true},
		{"face zero", ComputerConfig{Weights: map[int]float64{0: 1, 3: 1}}, true},
		{"negative weight", ComputerConfig{Weights: map[int]float64{2: -0.5, 3: 1}}, true},
		{"endgame ok", ComputerConfig{Endgame: endgame(94, 2, nil)}, false},
		{"endgame threshold zero", ComputerConfig{Endgame: endgame(0, 2, nil)}, true},
		{"endgame threshold past final tile", ComputerConfig{Endgame: endgame(101, 2, nil)}, true},
		{"endgame multiplier below one", ComputerConfig{Endgame: endgame(94, 0.5, nil)}, true},
		{"endgame face off the die", ComputerConfig{Endgame: endgame(94, 2, map[int]float64{7: 1})}, true},
		{"endgame negative weight", ComputerConfig{Endgame: endgame(94, 2, map[int]float64{1: -1})}, true},
		{"disabled endgame is ignored", ComputerConfig{Endgame: EndgameConfig{Threshold: 500, WinFaceMultiplier: 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cc.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	def := DefaultConfig()
	for _, d := range Difficulties() {
		if err := def.Computer[d].Validate(); err != nil {
			t.Errorf("default tier %s invalid: %v", d, err)
		}
	}
}

func TestComputerForRejectsInvalidTier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Computer[DifficultyEasy] = ComputerConfig{Weights: map[int]float64{9: 1}}

	if _, err := cfg.ComputerFor(DifficultyEasy); err == nil {
		t.Error("expected a weight on face 9 to be rejected")
	}
}

func TestComputerForFillsSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Computer[DifficultyEasy] = ComputerConfig{}
	cfg.Computer[DifficultyHard] = ComputerConfig{}

	easy, err := cfg.ComputerFor(DifficultyEasy)
	if err != nil {
		t.Fatalf("ComputerFor(easy) failed: %v", err)
	}
	if easy.Selection != SelectRandom {
		t.Errorf("easy selection = %q, want %q", easy.Selection, SelectRandom)
	}

	hard, err := cfg.ComputerFor(DifficultyHard)
	if err != nil {
		t.Fatalf("ComputerFor(hard) failed: %v", err)
	}
	if hard.Selection != SelectHeuristic {
		t.Errorf("hard selection = %q, want %q", hard.Selection, SelectHeuristic)
	}
}

func TestLoadPartialTierKeepsDefaultSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ladders.yaml")
	data := []byte(`
computer:
  easy:
    weights: {1: 3, 2: 1}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	easy := cfg.Computer[DifficultyEasy]
	if easy.Selection != SelectRandom {
		t.Errorf("easy selection = %q, want %q", easy.Selection, SelectRandom)
	}
	if easy.Weights[1] != 3 {
		t.Errorf("easy weights were not taken from the file: %v", easy.Weights)
	}
}
