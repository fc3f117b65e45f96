package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration.
// It mirrors defaults/dodge.yaml and backs it up if the embed cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:  30,
			Speed: 5,
			Lives: 3,
		},
		Obstacles: ObstacleConfig{
			Capacity: 100,
			MinSize:  20,
			MaxSize:  200,
			MinSpeed: 15,
			MaxSpeed: 25,
		},
		Spawn: SpawnConfig{
			InitialDelayMS: 1000,
			MinIntervalMS:  1000,
			MaxIntervalMS:  2000,
			Bonus:          1,
		},
		Timing: TimingConfig{
			Clock: ClockTicks,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
