// Package dodge implements a rock dodging game.
// Rocks of random size and speed fall from the top of the world; the player
// slides along the bottom to avoid them. Every rock spawned scores a bonus,
// every rock that falls past the bottom scores its size, and every hit costs
// a life.
package dodge

import (
	"github.com/vovakirdan/rockdodge/internal/config"
	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
// The empty preset keeps the config as loaded.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts a Session to the platform's game interface.
type Game struct {
	session  *Session
	runtime  core.RuntimeConfig
	cfg      config.DodgeConfig
	fixedCfg bool // cfg was supplied by the caller, skip loading
	clock    Clock
	paused   bool
	tick     uint64
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.DodgeConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rock Dodge"
}

// Description returns a one-line summary for game listings.
func (g *Game) Description() string {
	return "Slide left and right to dodge falling rocks"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, _, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultDodgeConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	if g.cfg.Timing.Clock == config.ClockWall {
		g.clock = NewWallClock()
	} else {
		g.clock = NewTickClock(runtime.FrameMillis())
	}

	g.session = NewSession(g.cfg, NewRand(runtime.Seed), g.clock.Now())
	g.paused = false
	g.tick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Phase() == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.setPaused(false)
			g.session.Restart(g.clock.Now())
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clock.Step()
	res := g.session.Tick(g.clock.Now(), in.Has(core.ActionLeft), in.Has(core.ActionRight))

	return core.StepResult{State: g.State(), LivesLost: res.Hits}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.clock.SetPaused(paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}
