package dodge

import "time"

// Clock supplies monotonic game time in milliseconds.
type Clock interface {
	// Step is called once per simulation tick, before Now is read.
	Step()
	// Now returns the current game time.
	Now() int64
	// SetPaused stops or resumes game time.
	SetPaused(paused bool)
}

// TickClock advances a fixed amount per tick, which keeps a seeded game
// fully reproducible.
type TickClock struct {
	now  int64
	step int64
}

// NewTickClock creates a clock that advances stepMillis per tick.
func NewTickClock(stepMillis int64) *TickClock {
	if stepMillis <= 0 {
		stepMillis = 1
	}
	return &TickClock{step: stepMillis}
}

func (c *TickClock) Step()      { c.now += c.step }
func (c *TickClock) Now() int64 { return c.now }

// SetPaused is a no-op: a paused game does not call Step.
func (c *TickClock) SetPaused(bool) {}

// WallClock reports milliseconds elapsed since it was created, minus the
// time spent paused.
type WallClock struct {
	wall     func() time.Time
	start    time.Time
	pausedAt time.Time // zero while running
	stopped  time.Duration
}

// NewWallClock starts a wall clock at zero.
func NewWallClock() *WallClock {
	return newWallClock(time.Now)
}

func newWallClock(wall func() time.Time) *WallClock {
	return &WallClock{wall: wall, start: wall()}
}

func (c *WallClock) Step() {}

func (c *WallClock) Now() int64 {
	now := c.wall()
	if !c.pausedAt.IsZero() {
		now = c.pausedAt
	}
	return now.Sub(c.start).Milliseconds() - c.stopped.Milliseconds()
}

func (c *WallClock) SetPaused(paused bool) {
	switch {
	case paused && c.pausedAt.IsZero():
		c.pausedAt = c.wall()
	case !paused && !c.pausedAt.IsZero():
		c.stopped += c.wall().Sub(c.pausedAt)
		c.pausedAt = time.Time{}
	}
}
