package dodge

// ObstacleView is a read-only copy of one rock.
type ObstacleView struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Snapshot captures the complete game state for rendering, determinism
// testing and headless runs. It shares no memory with the game.
type Snapshot struct {
	Tick       uint64
	Now        int64 // game time in ms
	Phase      Phase
	Paused     bool
	Score      int
	Lives      int
	NextSpawn  int64
	WorldW     float64
	WorldH     float64
	PlayerX    float64
	PlayerY    float64
	PlayerSize float64
	Obstacles  []ObstacleView
	Stats      Stats
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	views := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		views[i] = ObstacleView{X: o.Pos.X, Y: o.Pos.Y, Size: o.size, Speed: o.speed}
	}
	return Snapshot{
		Phase:      s.phase,
		Score:      s.score,
		Lives:      s.lives,
		NextSpawn:  s.nextSpawn,
		WorldW:     s.cfg.World.Width,
		WorldH:     s.cfg.World.Height,
		PlayerX:    s.player.Pos.X,
		PlayerY:    s.player.Pos.Y,
		PlayerSize: s.player.Size,
		Obstacles:  views,
		Stats:      s.stats,
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Tick = g.tick
	snap.Now = g.clock.Now()
	snap.Paused = g.paused
	return snap
}
