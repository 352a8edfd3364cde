package render

import (
	"math"

	"github.com/lixenwraith/cube-dodge/constants"
	"github.com/lixenwraith/cube-dodge/vmath"
)

// polar limits keep the view basis defined, the camera never sits on the up axis
const (
	minPolar = 0.01
	maxPolar = math.Pi - 0.01
)

var worldUp = vmath.Vec3F{Y: 1}

// Camera is a perspective camera orbiting a target point
// Orientation is stored as spherical coordinates around Target
type Camera struct {
	FOV    float64 // vertical, degrees
	Near   float64
	Target vmath.Vec3F

	distance float64
	azimuth  float64 // around +Y, 0 looks down -Z
	polar    float64 // from +Y

	minDist, maxDist float64
}

// NewCamera places the camera at pos looking at target
func NewCamera(pos, target vmath.Vec3F, fov float64) *Camera {
	c := &Camera{
		FOV:     fov,
		Near:    constants.CameraNear,
		Target:  target,
		minDist: constants.CameraMinDist,
		maxDist: constants.CameraMaxDist,
	}
	c.SetPosition(pos)
	return c
}

// SetPosition re-derives the orbit from a world position
func (c *Camera) SetPosition(pos vmath.Vec3F) {
	off := vmath.V3FSub(pos, c.Target)
	c.distance = vmath.V3FMag(off)
	if c.distance == 0 {
		c.distance = c.minDist
		off = vmath.Vec3F{Z: c.distance}
	}
	c.polar = math.Acos(vmath.Clamp(off.Y/c.distance, -1, 1))
	c.azimuth = math.Atan2(off.X, off.Z)
	c.polar = vmath.Clamp(c.polar, minPolar, maxPolar)
}

// Position returns the eye point in world space
func (c *Camera) Position() vmath.Vec3F {
	sp := math.Sin(c.polar)
	return vmath.V3FAdd(c.Target, vmath.Vec3F{
		X: c.distance * sp * math.Sin(c.azimuth),
		Y: c.distance * math.Cos(c.polar),
		Z: c.distance * sp * math.Cos(c.azimuth),
	})
}

// Distance returns the eye-to-target distance
func (c *Camera) Distance() float64 {
	return c.distance
}

// Orbit rotates around the target, angles in radians
func (c *Camera) Orbit(dAzimuth, dPolar float64) {
	c.azimuth = math.Mod(c.azimuth+dAzimuth, 2*math.Pi)
	c.polar = vmath.Clamp(c.polar+dPolar, minPolar, maxPolar)
}

// Zoom scales the orbit distance, factor > 1 moves away
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.distance = vmath.Clamp(c.distance*factor, c.minDist, c.maxDist)
}

// View maps world points into camera space: +X right, +Y up, +Z depth along the view direction
type View struct {
	eye, right, up, forward vmath.Vec3F
	focal                   float64 // 1 / tan(fov/2)
	near                    float64
}

// View freezes the current orientation for one frame
func (c *Camera) View() View {
	eye := c.Position()
	forward := vmath.V3FNormalize(vmath.V3FSub(c.Target, eye))
	right := vmath.V3FNormalize(vmath.V3FCross(forward, worldUp))
	up := vmath.V3FCross(right, forward)

	return View{
		eye:     eye,
		right:   right,
		up:      up,
		forward: forward,
		focal:   1 / math.Tan(c.FOV*math.Pi/360),
		near:    c.Near,
	}
}

// Eye returns the camera position the view was built from
func (v View) Eye() vmath.Vec3F {
	return v.eye
}

// ToCamera converts a world point into camera space
func (v View) ToCamera(p vmath.Vec3F) vmath.Vec3F {
	d := vmath.V3FSub(p, v.eye)
	return vmath.Vec3F{
		X: vmath.V3FDot(d, v.right),
		Y: vmath.V3FDot(d, v.up),
		Z: vmath.V3FDot(d, v.forward),
	}
}

// Viewport is the pixel grid a scene is projected onto
type Viewport struct {
	Width, Height int
	// PixelAspect is pixel width over pixel height, 1 for square pixels
	PixelAspect float64
}

// Project maps a camera-space point with Z >= near to pixel coordinates
func (v View) Project(p vmath.Vec3F, vp Viewport) Point {
	aspect := float64(vp.Width) * vp.PixelAspect / float64(vp.Height)
	ndcX := v.focal * p.X / (p.Z * aspect)
	ndcY := v.focal * p.Y / p.Z
	return Point{
		X: (ndcX + 1) / 2 * float64(vp.Width),
		Y: (1 - ndcY) / 2 * float64(vp.Height),
	}
}
