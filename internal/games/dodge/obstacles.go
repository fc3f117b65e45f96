package dodge

import (
	"github.com/vovakirdan/rockdodge/internal/core"
)

// Obstacle is a falling rock. Pos is the center of the rock.
// Size and speed are fixed when the rock is created.
type Obstacle struct {
	Pos   core.Vec2
	size  float64 // diameter
	speed float64 // units per tick
}

func newObstacle(x, y, size, speed float64) Obstacle {
	return Obstacle{Pos: core.Vec2{X: x, Y: y}, size: size, speed: speed}
}

// Size returns the rock's diameter.
func (o Obstacle) Size() float64 { return o.size }

// Speed returns how far the rock falls per tick.
func (o Obstacle) Speed() float64 { return o.speed }

// Circle returns the rock's collision circle.
func (o Obstacle) Circle() core.Circle {
	return core.Circle{Center: o.Pos, Radius: o.size / 2}
}

// exited reports whether the rock has left through the bottom boundary.
// A rock exactly on the threshold is still in play.
func (o Obstacle) exited(height float64) bool {
	return o.Pos.Y-o.size > height
}

// Player is the controlled actor. Pos is the center of its body.
type Player struct {
	Pos  core.Vec2
	Size float64 // diameter
}

// Circle returns the player's collision circle.
func (p Player) Circle() core.Circle {
	return core.Circle{Center: p.Pos, Radius: p.Size / 2}
}

// MaybeSpawn creates a rock when the spawn deadline has passed and the
// collection has room. It reports whether a rock was created.
// At capacity nothing happens, not even a new deadline.
func (s *Session) MaybeSpawn(now int64) bool {
	if now < s.nextSpawn || len(s.obstacles) >= s.cfg.Obstacles.Capacity {
		return false
	}

	oc := s.cfg.Obstacles
	size := s.rng.Float64Range(oc.MinSize, oc.MaxSize)
	x := s.rng.Float64Range(0, s.cfg.World.Width)
	speed := s.rng.Float64Range(oc.MinSpeed, oc.MaxSpeed)

	s.obstacles = append(s.obstacles, newObstacle(x, -size, size, speed))
	s.score += s.cfg.Spawn.Bonus
	s.stats.Spawned++

	interval := s.rng.IntRange(s.cfg.Spawn.MinIntervalMS, s.cfg.Spawn.MaxIntervalMS)
	s.nextSpawn = now + int64(interval)
	return true
}

// Advance moves every rock down by its speed.
func (s *Session) Advance() {
	for i := range s.obstacles {
		s.obstacles[i].Pos = s.obstacles[i].Pos.Add(core.Vec2{Y: s.obstacles[i].speed})
	}
}

// Cleanup removes rocks that fell past the bottom, awarding each one's
// size (rounded down) as score. It returns the number removed.
// Running it again without moving the rocks removes nothing.
func (s *Session) Cleanup() int {
	removed := 0
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.exited(s.cfg.World.Height) {
			s.score += int(o.size)
			removed++
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
	s.stats.Dodged += removed
	return removed
}
