package tui

import (
	"time"

	"github.com/vovakirdan/rockdodge/internal/core"
)

// DefaultHoldDuration is how long a key counts as held after its last
// press. It has to bridge the gap between terminal auto-repeat events.
const DefaultHoldDuration = 120 * time.Millisecond

// HoldTracker emulates key-held state on terminals, which report presses
// and auto-repeats but never releases.
type HoldTracker struct {
	hold  time.Duration
	last  map[core.Action]time.Time
	other map[core.Action]core.Action
}

// NewHoldTracker creates a tracker with the given hold window.
// A non-positive hold uses DefaultHoldDuration.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HoldTracker{
		hold: hold,
		last: make(map[core.Action]time.Time),
		other: map[core.Action]core.Action{
			core.ActionLeft:  core.ActionRight,
			core.ActionRight: core.ActionLeft,
		},
	}
}

// Press records a press of a at now. Pressing one direction releases the
// opposite one, so reversing is immediate.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.last[a] = now
	if o, ok := h.other[a]; ok {
		delete(h.last, o)
	}
}

// Held reports whether a was pressed within the hold window before now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) < h.hold
}

// Apply marks every held action in the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.last {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Reset releases all keys.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
