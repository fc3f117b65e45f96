// Package config provides YAML-based game configuration loading and
// difficulty presets for the rock dodging game.
package config

import (
	"errors"
	"fmt"
)

// Clock names accepted by TimingConfig.Clock.
const (
	ClockTicks = "ticks" // game time advances one frame per simulation tick
	ClockWall  = "wall"  // game time follows the monotonic wall clock
)

// DodgeConfig contains all configuration for the rock dodging game.
// Distances are world units; the world is projected onto the terminal.
type DodgeConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Timing    TimingConfig   `yaml:"timing"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`  // diameter
	Speed float64 `yaml:"speed"` // units per tick while a direction is held
	Lives int     `yaml:"lives"`
}

// ObstacleConfig defines the falling rocks.
type ObstacleConfig struct {
	Capacity int     `yaml:"capacity"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// SpawnConfig defines when rocks appear and what spawning is worth.
type SpawnConfig struct {
	InitialDelayMS int `yaml:"initial_delay_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	MaxIntervalMS  int `yaml:"max_interval_ms"`
	Bonus          int `yaml:"bonus"`
}

// TimingConfig selects the time source for the spawn scheduler.
type TimingConfig struct {
	Clock string `yaml:"clock"` // "ticks" or "wall"
}

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %g", c.Player.Size))
	}
	if c.Player.Size > c.World.Width {
		errs = append(errs, fmt.Errorf("player size %g does not fit world width %g", c.Player.Size, c.World.Width))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %g", c.Player.Speed))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player lives must be positive, got %d", c.Player.Lives))
	}
	if c.Obstacles.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("obstacle capacity must be positive, got %d", c.Obstacles.Capacity))
	}
	if c.Obstacles.MinSize <= 0 || c.Obstacles.MinSize > c.Obstacles.MaxSize {
		errs = append(errs, fmt.Errorf("invalid obstacle size range [%g, %g]", c.Obstacles.MinSize, c.Obstacles.MaxSize))
	}
	if c.Obstacles.MinSpeed < 0 || c.Obstacles.MinSpeed > c.Obstacles.MaxSpeed {
		errs = append(errs, fmt.Errorf("invalid obstacle speed range [%g, %g]", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed))
	}
	if c.Spawn.InitialDelayMS < 0 {
		errs = append(errs, fmt.Errorf("initial spawn delay must not be negative, got %d", c.Spawn.InitialDelayMS))
	}
	if c.Spawn.MinIntervalMS < 0 || c.Spawn.MinIntervalMS > c.Spawn.MaxIntervalMS {
		errs = append(errs, fmt.Errorf("invalid spawn interval range [%d, %d]", c.Spawn.MinIntervalMS, c.Spawn.MaxIntervalMS))
	}
	if c.Spawn.Bonus < 0 {
		errs = append(errs, fmt.Errorf("spawn bonus must not be negative, got %d", c.Spawn.Bonus))
	}
	switch c.Timing.Clock {
	case ClockTicks, ClockWall:
	default:
		errs = append(errs, fmt.Errorf("unknown clock %q (want %q or %q)", c.Timing.Clock, ClockTicks, ClockWall))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
