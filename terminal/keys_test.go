package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/cube-dodge/game"
)

func TestHoldTrackerInitialAndRepeat(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.False(t, h.Held(ActLeft, t0))

	h.Press(ActLeft, t0)
	assert.True(t, h.Held(ActLeft, t0.Add(400*time.Millisecond)), "covers the auto-repeat delay")
	assert.False(t, h.Held(ActLeft, t0.Add(500*time.Millisecond)))

	// Auto-repeat while held extends by the short window
	h.Press(ActLeft, t0.Add(450*time.Millisecond))
	assert.True(t, h.Held(ActLeft, t0.Add(540*time.Millisecond)))
	assert.False(t, h.Held(ActLeft, t0.Add(560*time.Millisecond)), "released soon after repeats stop")
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	now := time.Unix(1000, 0)

	h.Press(ActForward, now)
	h.Press(ActLeft, now)
	h.Press(ActRight, now.Add(10*time.Millisecond))

	c := h.Controls(now.Add(20 * time.Millisecond))
	assert.Equal(t, game.Controls{Right: true, Forward: true}, c)

	h.ReleaseAll()
	assert.Equal(t, game.Controls{}, h.Controls(now.Add(20*time.Millisecond)))
}

func TestActionForRune(t *testing.T) {
	cases := map[rune]Action{'a': ActLeft, 'D': ActRight, 'w': ActForward, 'S': ActBack}
	for r, want := range cases {
		got, ok := actionForRune(r)
		assert.True(t, ok, string(r))
		assert.Equal(t, want, got, string(r))
	}

	_, ok := actionForRune('x')
	assert.False(t, ok)
}
