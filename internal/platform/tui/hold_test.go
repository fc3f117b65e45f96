package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/rockdodge/internal/core"
)

func TestHoldTracker(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(100 * time.Millisecond)

	if h.Held(core.ActionLeft, start) {
		t.Fatal("unpressed key reported held")
	}

	h.Press(core.ActionLeft, start)
	tests := []struct {
		after time.Duration
		want  bool
	}{
		{0, true},
		{99 * time.Millisecond, true},
		{100 * time.Millisecond, false},
		{time.Second, false},
	}
	for _, tc := range tests {
		if got := h.Held(core.ActionLeft, start.Add(tc.after)); got != tc.want {
			t.Errorf("Held after %v = %v, expected %v", tc.after, got, tc.want)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(core.ActionRight, start)
	h.Press(core.ActionRight, start.Add(80*time.Millisecond))
	if !h.Held(core.ActionRight, start.Add(150*time.Millisecond)) {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(0)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now.Add(10*time.Millisecond))
	if h.Held(core.ActionLeft, now.Add(20*time.Millisecond)) {
		t.Error("left still held after pressing right")
	}

	frame := core.NewInputFrame()
	h.Apply(&frame, now.Add(20*time.Millisecond))
	if !frame.Has(core.ActionRight) || frame.Has(core.ActionLeft) {
		t.Errorf("Apply produced %v", frame.Actions)
	}

	h.Reset()
	if h.Held(core.ActionRight, now.Add(20*time.Millisecond)) {
		t.Error("Reset did not release keys")
	}
}
