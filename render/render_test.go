package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/vmath"
)

func defaultCamera() *Camera {
	return NewCamera(vmath.Vec3F{X: 2, Y: 3, Z: 8}, vmath.Vec3F{}, 75)
}

func TestCameraPositionRoundTrip(t *testing.T) {
	c := defaultCamera()
	p := c.Position()

	assert.InDelta(t, 2.0, p.X, 1e-9)
	assert.InDelta(t, 3.0, p.Y, 1e-9)
	assert.InDelta(t, 8.0, p.Z, 1e-9)
	assert.InDelta(t, math.Sqrt(77), c.Distance(), 1e-9)
}

func TestCameraOrbitKeepsDistance(t *testing.T) {
	c := defaultCamera()
	d := c.Distance()

	c.Orbit(0.7, -0.3)
	assert.InDelta(t, d, vmath.V3FMag(c.Position()), 1e-9)

	c.Orbit(0, -10)
	p := c.Position()
	assert.Greater(t, p.Y, 0.0)
	assert.Less(t, math.Abs(p.X)+math.Abs(p.Z), 0.1*d, "clamped near the pole")
}

func TestCameraZoomClamped(t *testing.T) {
	c := defaultCamera()
	c.Zoom(100)
	assert.InDelta(t, 40.0, c.Distance(), 1e-9)
	c.Zoom(0.0001)
	assert.InDelta(t, 3.0, c.Distance(), 1e-9)
	c.Zoom(-1)
	assert.InDelta(t, 3.0, c.Distance(), 1e-9, "non-positive factor ignored")
}

func TestProjectTargetToCenter(t *testing.T) {
	view := defaultCamera().View()
	vp := Viewport{Width: 80, Height: 48, PixelAspect: 1}

	cam := view.ToCamera(vmath.Vec3F{})
	assert.InDelta(t, 0, cam.X, 1e-9)
	assert.InDelta(t, 0, cam.Y, 1e-9)
	assert.InDelta(t, math.Sqrt(77), cam.Z, 1e-9)

	p := view.Project(cam, vp)
	assert.InDelta(t, 40, p.X, 1e-9)
	assert.InDelta(t, 24, p.Y, 1e-9)

	// Points above the target land higher on screen
	above := view.Project(view.ToCamera(vmath.Vec3F{Y: 1}), vp)
	assert.Less(t, above.Y, p.Y)
}

func TestClipNear(t *testing.T) {
	square := []vmath.Vec3F{
		{X: -1, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: 1},
		{X: -1, Y: 0, Z: 1},
	}

	out := ClipNear(square, 0.5, nil)
	require.Len(t, out, 4)
	for _, v := range out {
		assert.GreaterOrEqual(t, v.Z, 0.5)
	}

	assert.Empty(t, ClipNear(square, 5, nil), "fully behind")
	assert.Len(t, ClipNear(square, -5, nil), 4, "fully in front")
	assert.Empty(t, ClipNear(nil, 0, nil))
}

func TestFillConvex(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear(Background)
	red := RGB{R: 255}

	fb.FillConvex([]Point{{2, 2}, {6, 2}, {6, 5}, {2, 5}}, red)

	filled := 0
	for _, c := range fb.Pix {
		if c == red {
			filled++
		}
	}
	assert.Equal(t, 12, filled)
	assert.Equal(t, red, fb.At(2, 2))
	assert.Equal(t, red, fb.At(5, 4))
	assert.Equal(t, Background, fb.At(6, 2))
	assert.Equal(t, Background, fb.At(-1, 0))

	// Reverse winding and off-screen parts are fine
	fb.Clear(Background)
	fb.FillConvex([]Point{{-5, -5}, {-5, 20}, {20, 20}, {20, -5}}, red)
	assert.Equal(t, red, fb.At(0, 0))
	assert.Equal(t, red, fb.At(9, 9))
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Resize(2, 3)
	assert.Len(t, fb.Pix, 6)
	fb.Resize(-1, 3)
	assert.Empty(t, fb.Pix)
}

func TestHexAndShade(t *testing.T) {
	assert.Equal(t, RGB{R: 0x64, G: 0xe2, B: 0x24}, HexRGB(0x64e224))

	l := DefaultLight()
	lit := l.Shade(RGB{R: 100, G: 100, B: 100}, vmath.Vec3F{Y: 1})
	dark := l.Shade(RGB{R: 100, G: 100, B: 100}, vmath.Vec3F{Y: -1})
	assert.Greater(t, lit.R, dark.R)
	assert.Equal(t, uint8(50), dark.R, "ambient only")
	assert.Equal(t, RGB{R: 255}, RGB{R: 200}.Scale(2), "saturates")
}

func TestSceneOrdering(t *testing.T) {
	w := game.NewWorld(game.DefaultTuning(), 1)
	w.Start()
	w.Step(game.Controls{})
	snap := w.Snapshot(nil)

	b := NewSceneBuilder()
	polys := b.Build(snap, defaultCamera().View(), Viewport{Width: 120, Height: 80, PixelAspect: 1})
	require.NotEmpty(t, polys)

	assert.Equal(t, game.KindGround, polys[0].Kind, "ground drawn first from above")
	assert.False(t, polys[0].Shadow)

	shadows, playerFaces := 0, 0
	for _, p := range polys {
		if p.Shadow {
			shadows++
		} else if p.Kind == game.KindPlayer {
			playerFaces++
		}
		assert.GreaterOrEqual(t, len(p.Points), 3)
	}
	assert.Equal(t, 2, shadows)
	assert.Equal(t, 3, playerFaces, "a cube shows at most three faces")
	assert.Equal(t, game.KindPlayer, polys[len(polys)-1].Kind, "nearest box last")
}

func TestSceneFromBelowDrawsGroundLast(t *testing.T) {
	w := game.NewWorld(game.DefaultTuning(), 1)
	snap := w.Snapshot(nil)

	cam := NewCamera(vmath.Vec3F{X: 0.5, Y: -6, Z: 6}, vmath.Vec3F{}, 75)
	polys := NewSceneBuilder().Build(snap, cam.View(), Viewport{Width: 60, Height: 40, PixelAspect: 1})
	require.NotEmpty(t, polys)

	assert.Equal(t, game.KindGround, polys[len(polys)-1].Kind)
	for _, p := range polys {
		assert.False(t, p.Shadow, "no shadows seen from below")
	}
}

func TestSceneRendersIntoFramebuffer(t *testing.T) {
	w := game.NewWorld(game.DefaultTuning(), 1)
	snap := w.Snapshot(nil)
	vp := Viewport{Width: 80, Height: 48, PixelAspect: 1}

	fb := NewFramebuffer(vp.Width, vp.Height)
	fb.DrawScene(NewSceneBuilder().Build(snap, defaultCamera().View(), vp))

	// The player sits on the view axis
	assert.NotEqual(t, Background, fb.At(40, 24))
}
