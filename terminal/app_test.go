package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/cube-dodge/config"
	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/physics"
	"github.com/lixenwraith/cube-dodge/vmath"
)

type fakeMuter struct{ muted bool }

func (f *fakeMuter) ToggleMute() bool { f.muted = !f.muted; return f.muted }
func (f *fakeMuter) Muted() bool      { return f.muted }

type harness struct {
	app    *App
	screen tcell.SimulationScreen
	world  *game.World
	clock  time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)

	w := game.NewWorld(game.DefaultTuning(), 1)
	h := &harness{
		screen: s,
		world:  w,
		clock:  time.Unix(1000, 0),
	}
	h.app = New(s, game.NewSession(w, nil, zap.NewNop()), config.Default(), &fakeMuter{}, nil)
	h.app.now = func() time.Time { return h.clock }
	return h
}

func (h *harness) key(k tcell.Key) bool {
	return h.app.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (h *harness) press(r rune) bool {
	return h.app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *harness) frame() {
	h.clock = h.clock.Add(16 * time.Millisecond)
	h.app.Frame()
}

func (h *harness) text() string {
	w, ht := h.screen.Size()
	var sb strings.Builder
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := h.screen.GetContent(x, y)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestTitleScreen(t *testing.T) {
	h := newHarness(t)
	h.app.draw()

	out := h.text()
	assert.Contains(t, out, "CUBE DODGE")
	assert.Contains(t, out, "press Enter to start")
	assert.Contains(t, out, "TIME 0")
	assert.Contains(t, out, string(halfBlock), "scene drawn with half blocks")
}

func TestEnterStartsAndSteers(t *testing.T) {
	h := newHarness(t)

	require.True(t, h.key(tcell.KeyEnter))
	assert.Equal(t, game.PhaseRunning, h.world.Phase())

	require.True(t, h.press('d'))
	for i := 0; i < 5; i++ {
		h.frame()
	}
	assert.InDelta(t, 0.4, h.world.Player.Position.X, 1e-9)
	assert.NotContains(t, h.text(), "CUBE DODGE")
	assert.Contains(t, h.text(), "TIME 1")
}

func TestHeldKeyExpires(t *testing.T) {
	h := newHarness(t)
	h.key(tcell.KeyEnter)
	h.press('a')

	h.clock = h.clock.Add(time.Second)
	h.app.Frame()
	assert.Zero(t, h.world.Player.Position.X, "released after the hold window")
}

func TestQuitKeys(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.press('q'))
	assert.False(t, h.key(tcell.KeyEscape))
	assert.False(t, h.key(tcell.KeyCtrlC))
	assert.True(t, h.press('x'))
}

func TestGameOverPanelAndRestart(t *testing.T) {
	h := newHarness(t)
	h.key(tcell.KeyEnter)

	blocker := physics.NewBox(vmath.Vec3F{X: 1, Y: 1, Z: 1}, vmath.Vec3F{}, vmath.Vec3F{}, 0)
	h.world.Enemies = append(h.world.Enemies, blocker)
	h.frame()

	require.Equal(t, game.PhaseOver, h.world.Phase())
	out := h.text()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Total Score: 1")

	h.press('r')
	assert.Equal(t, game.PhaseReady, h.world.Phase())
	h.app.draw()
	assert.Contains(t, h.text(), "CUBE DODGE")
}

func TestMuteToggleShownInHUD(t *testing.T) {
	h := newHarness(t)
	h.app.draw()
	assert.Contains(t, h.text(), "sound on")

	h.press('m')
	h.app.draw()
	assert.Contains(t, h.text(), "sound off")
}

func TestCameraKeys(t *testing.T) {
	h := newHarness(t)
	before := h.app.camera.Position()
	dist := h.app.camera.Distance()

	h.key(tcell.KeyLeft)
	assert.NotEqual(t, before, h.app.camera.Position())

	h.press('-')
	assert.Greater(t, h.app.camera.Distance(), dist)
	h.press('+')
	assert.InDelta(t, dist, h.app.camera.Distance(), 1e-9)
}

func TestRunStopsOnQuitKey(t *testing.T) {
	h := newHarness(t)

	done := make(chan error, 1)
	go func() { done <- h.app.Run(context.Background()) }()

	require.NoError(t, h.screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestResizeReallocatesFramebuffer(t *testing.T) {
	h := newHarness(t)
	h.app.draw()
	require.Equal(t, 80, h.app.fb.Width)
	require.Equal(t, 60, h.app.fb.Height)

	h.screen.SetSize(100, 40)
	assert.True(t, h.app.HandleEvent(tcell.NewEventResize(100, 40)))

	assert.Equal(t, 100, h.app.fb.Width)
	assert.Equal(t, 80, h.app.fb.Height, "two pixel rows per cell")
	assert.Len(t, h.app.fb.Pix, 100*80)
}

func TestRunReturnsFrameLoopPanic(t *testing.T) {
	h := newHarness(t)
	h.app.now = func() time.Time { panic("clock failure") }

	done := make(chan error, 1)
	go func() { done <- h.app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "frame loop crashed")
		assert.Contains(t, err.Error(), "clock failure")
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the frame loop panicked")
	}
}
