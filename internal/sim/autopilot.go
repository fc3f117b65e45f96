// Package sim runs games without a terminal, for the sim command, smoke
// runs and tests.
package sim

import (
	"math"

	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/games/dodge"
)

// Autopilot steers the player away from the closest rock that is on
// course to hit it.
type Autopilot struct {
	// Margin is extra clearance added to the collision distance.
	Margin float64
}

// NewAutopilot creates an autopilot with a small safety margin.
func NewAutopilot() *Autopilot {
	return &Autopilot{Margin: 10}
}

// Decide returns the movement input for the next tick.
func (a *Autopilot) Decide(snap dodge.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase != dodge.PhasePlaying || snap.Paused {
		return in
	}

	threat, ok := a.closestThreat(snap)
	if !ok {
		return in
	}

	half := snap.PlayerSize / 2
	goLeft := threat.X >= snap.PlayerX
	if goLeft && snap.PlayerX-half <= 0 {
		goLeft = false
	} else if !goLeft && snap.PlayerX+half >= snap.WorldW {
		goLeft = true
	}

	if goLeft {
		in.Set(core.ActionLeft)
	} else {
		in.Set(core.ActionRight)
	}
	return in
}

// closestThreat finds the lowest rock that overlaps the player's column
// and has not yet passed the player.
func (a *Autopilot) closestThreat(snap dodge.Snapshot) (dodge.ObstacleView, bool) {
	var best dodge.ObstacleView
	found := false
	half := snap.PlayerSize / 2

	for _, o := range snap.Obstacles {
		r := o.Size / 2
		if o.Y-r > snap.PlayerY+half {
			continue
		}
		if math.Abs(o.X-snap.PlayerX) >= r+half+a.Margin {
			continue
		}
		if !found || o.Y > best.Y {
			best, found = o, true
		}
	}
	return best, found
}
