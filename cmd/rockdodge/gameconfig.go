package main

import (
	"github.com/vovakirdan/rockdodge/internal/config"
	"github.com/vovakirdan/rockdodge/internal/games/dodge"
)

// loadGameConfig resolves the configuration selected by --config and
// --difficulty, and hands the same choice to the dodge game so that its
// Reset sees it.
func loadGameConfig() (config.DodgeConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DodgeConfig{}, "", err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.DodgeConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(preset)
	return cfg, source, nil
}
