package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the ladders configuration.
// Search order: customPath -> ~/.ladders/config.yaml -> ./configs/ladders.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ladders.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLaddersYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return withDefaults(cfg), nil
}

// withDefaults fills sections a partial user file left out.
func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if len(cfg.Variants) == 0 {
		cfg.Variants = def.Variants
	}
	if cfg.Variant == "" {
		cfg.Variant = def.Variant
	}
	if cfg.Computer == nil {
		cfg.Computer = make(map[Difficulty]ComputerConfig)
	}
	for d, defTier := range def.Computer {
		cc, ok := cfg.Computer[d]
		if !ok {
			cfg.Computer[d] = defTier
			continue
		}
		if cc.Selection == "" {
			cc.Selection = defTier.Selection
		}
		cfg.Computer[d] = cc
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = def.Store.Path
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ladders", filename)
}
