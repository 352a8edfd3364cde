package terminal

import (
	"time"

	"github.com/lixenwraith/cube-dodge/game"
)

// Action is one steering direction
type Action uint8

const (
	ActLeft Action = iota
	ActRight
	ActForward
	ActBack
	actionCount
)

// opposite pairs share an axis, pressing one releases the other
var opposite = [actionCount]Action{
	ActLeft:    ActRight,
	ActRight:   ActLeft,
	ActForward: ActBack,
	ActBack:    ActForward,
}

// HoldTracker emulates key state from press-only input
// A first press holds for initial, long enough to reach the terminal's auto-repeat;
// each repeat while held extends the deadline by repeat
type HoldTracker struct {
	initial, repeat time.Duration
	until           [actionCount]time.Time
}

// NewHoldTracker creates a tracker with the given hold windows
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{initial: initial, repeat: repeat}
}

// Press records a key event for a at now
func (h *HoldTracker) Press(a Action, now time.Time) {
	if a >= actionCount {
		return
	}
	if h.Held(a, now) {
		h.until[a] = now.Add(h.repeat)
	} else {
		h.until[a] = now.Add(h.initial)
	}
	h.until[opposite[a]] = time.Time{}
}

// Held reports whether a is still within its hold window
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	return now.Before(h.until[a])
}

// ReleaseAll drops every held key
func (h *HoldTracker) ReleaseAll() {
	h.until = [actionCount]time.Time{}
}

// Controls samples the held keys at now
func (h *HoldTracker) Controls(now time.Time) game.Controls {
	return game.Controls{
		Left:    h.Held(ActLeft, now),
		Right:   h.Held(ActRight, now),
		Forward: h.Held(ActForward, now),
		Back:    h.Held(ActBack, now),
	}
}

// actionForRune maps the WASD keys, either case
func actionForRune(r rune) (Action, bool) {
	switch r {
	case 'a', 'A':
		return ActLeft, true
	case 'd', 'D':
		return ActRight, true
	case 'w', 'W':
		return ActForward, true
	case 's', 'S':
		return ActBack, true
	}
	return 0, false
}
