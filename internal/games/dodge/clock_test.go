package dodge

import (
	"testing"
	"time"
)

func TestTickClock(t *testing.T) {
	c := NewTickClock(16)
	if c.Now() != 0 {
		t.Fatalf("Now() = %d, expected 0", c.Now())
	}
	for i := 0; i < 3; i++ {
		c.Step()
	}
	if c.Now() != 48 {
		t.Errorf("Now() = %d, expected 48", c.Now())
	}

	z := NewTickClock(0)
	z.Step()
	if z.Now() != 1 {
		t.Errorf("zero step should clamp to 1, got %d", z.Now())
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(5)
	for i := 0; i < 1000; i++ {
		if f := r.Float64Range(20, 200); f < 20 || f >= 200 {
			t.Fatalf("Float64Range out of bounds: %g", f)
		}
		if n := r.IntRange(1000, 2000); n < 1000 || n > 2000 {
			t.Fatalf("IntRange out of bounds: %d", n)
		}
	}
	if n := r.IntRange(7, 7); n != 7 {
		t.Errorf("IntRange(7, 7) = %d", n)
	}
}

func TestRandSameSeedSameSequence(t *testing.T) {
	a, b := NewRand(123), NewRand(123)
	for i := 0; i < 100; i++ {
		if a.Float64Range(0, 1) != b.Float64Range(0, 1) {
			t.Fatal("sequences diverged")
		}
	}
}

type fakeWall struct{ t time.Time }

func (f *fakeWall) now() time.Time          { return f.t }
func (f *fakeWall) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestWallClockExcludesPausedTime(t *testing.T) {
	wall := &fakeWall{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := newWallClock(wall.now)

	wall.advance(300 * time.Millisecond)
	if c.Now() != 300 {
		t.Fatalf("Now() = %d, expected 300", c.Now())
	}

	c.SetPaused(true)
	wall.advance(time.Second)
	if c.Now() != 300 {
		t.Errorf("Now() while paused = %d, expected 300", c.Now())
	}
	c.SetPaused(true) // already paused
	c.SetPaused(false)
	if c.Now() != 300 {
		t.Errorf("Now() after resume = %d, expected 300", c.Now())
	}

	wall.advance(50 * time.Millisecond)
	if c.Now() != 350 {
		t.Errorf("Now() = %d, expected 350", c.Now())
	}
}
