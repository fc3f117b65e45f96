package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change starting values; nothing ramps up during a session.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// The empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Spawn.MinIntervalMS = 1500
		cfg.Spawn.MaxIntervalMS = 2500
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Spawn.MinIntervalMS = 500
		cfg.Spawn.MaxIntervalMS = 1200
	}
}
