package physics

import (
	"github.com/lixenwraith/cube-dodge/vmath"
)

// BorderTouch reports contact between a and b using cached sides
// The vertical test is predictive: a's bottom is advanced by a's own vertical velocity,
// so a box resting on or about to reach b's top counts as touching
func BorderTouch(a, b *Box) bool {
	as, bs := a.Sides, b.Sides

	xBorder := vmath.Overlap1D(as.Left(), as.Right(), bs.Left(), bs.Right())
	zBorder := vmath.Overlap1D(as.Back(), as.Front(), bs.Back(), bs.Front())
	yBorder := as.Top() >= bs.Bottom() && as.Bottom()+a.Velocity.Y <= bs.Top()

	return xBorder && zBorder && yBorder
}

// OverPlatform reports whether a's footprint still overlaps the ground footprint
func OverPlatform(a, ground *Box) bool {
	return a.Sides.OverlapsXZ(ground.Sides)
}
