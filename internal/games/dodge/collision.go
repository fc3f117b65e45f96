package dodge

import "github.com/vovakirdan/rockdodge/internal/core"

// ResolveCollisions removes every rock touching the player and takes one
// life per rock. All rocks are checked even after lives run out; the
// session becomes terminal once the pass is complete.
func (s *Session) ResolveCollisions() int {
	player := s.player.Circle()

	hits := 0
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Circle().Collides(player) {
			hits++
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept

	s.lives -= hits
	s.stats.Hits += hits
	if s.lives <= 0 {
		s.phase = PhaseGameOver
	}
	return hits
}

// MovePlayer applies held movement. Left is evaluated before right, so
// holding both cancels out, and the result is clamped to the world.
func (s *Session) MovePlayer(left, right bool) {
	speed := s.cfg.Player.Speed
	if left {
		s.player.Pos.X -= speed
	}
	if right {
		s.player.Pos.X += speed
	}
	s.player.Pos.X = s.clampPlayerX(s.player.Pos.X)
}

func (s *Session) clampPlayerX(x float64) float64 {
	half := s.player.Size / 2
	return core.ClampF(x, half, s.cfg.World.Width-half)
}
