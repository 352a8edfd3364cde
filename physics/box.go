package physics

import (
	"github.com/lixenwraith/cube-dodge/constants"
	"github.com/lixenwraith/cube-dodge/vmath"
)

// Box is a solid axis-aligned body, velocities are in world units per frame
type Box struct {
	Size     vmath.Vec3F
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Color    uint32

	Gravity float64 // added to Velocity.Y each frame
	Bounce  float64 // vertical damping applied on ground contact
	ZAccel  float64 // added to Velocity.Z each frame, 0 disables

	// Sides is the cached bounding box, refreshed only by UpdateSides
	Sides vmath.AABB
}

// NewBox creates a box with default gravity and bounce, sides computed from position
func NewBox(size, position, velocity vmath.Vec3F, color uint32) *Box {
	b := &Box{
		Size:     size,
		Position: position,
		Velocity: velocity,
		Color:    color,
		Gravity:  constants.Gravity,
		Bounce:   constants.BounceDamping,
	}
	b.UpdateSides()
	return b
}

// UpdateSides recomputes Sides from the current position
func (b *Box) UpdateSides() {
	b.Sides = vmath.NewAABB(b.Position, b.Size)
}

// Update advances one frame against ground and reports whether the box bounced
// Sides are refreshed before moving, so contact tests this frame see the pre-move footprint
func (b *Box) Update(ground *Box) bool {
	b.UpdateSides()

	if b.ZAccel != 0 {
		b.Velocity.Z += b.ZAccel
	}

	b.Position.X += b.Velocity.X
	b.Position.Z += b.Velocity.Z

	return b.applyGravity(ground)
}

func (b *Box) applyGravity(ground *Box) bool {
	b.Velocity.Y += b.Gravity

	if BorderTouch(b, ground) {
		b.Velocity.Y = -(b.Velocity.Y * b.Bounce)
		return true
	}

	b.Position.Y += b.Velocity.Y
	return false
}
