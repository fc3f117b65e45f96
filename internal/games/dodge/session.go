package dodge

import (
	"github.com/vovakirdan/rockdodge/internal/config"
	"github.com/vovakirdan/rockdodge/internal/core"
)

// Phase is the session's position in the game loop state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Stats counts what happened during a session.
type Stats struct {
	Spawned int // rocks created
	Dodged  int // rocks that fell past the bottom
	Hits    int // rocks that hit the player
}

// TickResult summarizes one call to Session.Tick.
type TickResult struct {
	Spawned bool
	Dodged  int
	Hits    int
}

// Session owns all state of one game: the rocks, the player, score, lives
// and the spawn deadline. It is not safe for concurrent use; the game loop
// is its only caller.
type Session struct {
	cfg       config.DodgeConfig
	rng       Rand
	obstacles []Obstacle
	player    Player
	score     int
	lives     int
	nextSpawn int64 // game time (ms) at which the next rock may appear
	phase     Phase
	stats     Stats
}

// NewSession creates a session in the Playing phase at game time now.
func NewSession(cfg config.DodgeConfig, rng Rand, now int64) *Session {
	s := &Session{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, cfg.Obstacles.Capacity),
	}
	s.Restart(now)
	return s
}

// Restart reinitializes the whole session: score 0, full lives, no rocks,
// player back at the start position, and the first spawn one initial
// delay after now.
func (s *Session) Restart(now int64) {
	s.obstacles = s.obstacles[:0]
	s.player = Player{
		Pos: core.Vec2{
			X: s.cfg.World.Width / 2,
			Y: s.cfg.World.Height - s.cfg.Player.Size*2,
		},
		Size: s.cfg.Player.Size,
	}
	s.score = 0
	s.lives = s.cfg.Player.Lives
	s.nextSpawn = now + int64(s.cfg.Spawn.InitialDelayMS)
	s.phase = PhasePlaying
	s.stats = Stats{}
}

// Tick runs one frame: player movement, spawning, rock motion, cleanup
// and collisions, in that order. In GameOver it does nothing.
func (s *Session) Tick(now int64, left, right bool) TickResult {
	if s.phase == PhaseGameOver {
		return TickResult{}
	}

	var res TickResult
	s.MovePlayer(left, right)
	res.Spawned = s.MaybeSpawn(now)
	s.Advance()
	res.Dodged = s.Cleanup()
	res.Hits = s.ResolveCollisions()
	return res
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives. It can drop below zero when several
// rocks hit in the final tick.
func (s *Session) Lives() int { return s.lives }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// NextSpawn returns the game time of the next spawn attempt.
func (s *Session) NextSpawn() int64 { return s.nextSpawn }

// Stats returns the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Obstacles returns a copy of the active rocks in insertion order.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.DodgeConfig { return s.cfg }
