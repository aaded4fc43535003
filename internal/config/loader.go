package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBowmaster loads the duel configuration.
// Search order: customPath -> ~/.bowmaster/configs/bowmaster.yaml -> ./configs/bowmaster.yaml -> embedded default
func LoadBowmaster(customPath string) (BowmasterConfig, error) {
	cfg, err := load(customPath, "bowmaster.yaml", defaultBowmasterYAML, DefaultBowmasterConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load decodes the first readable config on the search path. Files are
// decoded over the hard-coded defaults, so a partial file only overrides the
// keys it names.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	candidate := defaults()
	if err := yaml.Unmarshal(embedded, &candidate); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return candidate, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bowmaster", "configs", filename)
}

// ApplyBowmasterPreset modifies the config based on a difficulty preset.
func ApplyBowmasterPreset(cfg *BowmasterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust survivability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 140
		cfg.Difficulty.Scaling.Jitter *= 1.5
	case DifficultyHard:
		cfg.Player.Health = 80
		cfg.Difficulty.Scaling.AimBlend = 1.0
	}
}
