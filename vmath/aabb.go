package vmath

// AABB is an axis-aligned box in world space
// Naming follows the game axes: x left/right, y bottom/top, z back/front (+z toward camera)
type AABB struct {
	Min, Max Vec3F
}

// NewAABB builds a box from its center and full extents
func NewAABB(center, size Vec3F) AABB {
	half := V3FScale(size, 0.5)
	return AABB{
		Min: V3FSub(center, half),
		Max: V3FAdd(center, half),
	}
}

func (b AABB) Left() float64   { return b.Min.X }
func (b AABB) Right() float64  { return b.Max.X }
func (b AABB) Bottom() float64 { return b.Min.Y }
func (b AABB) Top() float64    { return b.Max.Y }
func (b AABB) Back() float64   { return b.Min.Z }
func (b AABB) Front() float64  { return b.Max.Z }

// Center returns the box midpoint
func (b AABB) Center() Vec3F {
	return V3FScale(V3FAdd(b.Min, b.Max), 0.5)
}

// Corners returns the 8 vertices, bit 0 = x, bit 1 = y, bit 2 = z (0 min, 1 max)
func (b AABB) Corners() [8]Vec3F {
	var c [8]Vec3F
	for i := range c {
		c[i] = b.Min
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// Overlap1D reports whether [aMin,aMax] and [bMin,bMax] intersect, touching edges included
func Overlap1D(aMin, aMax, bMin, bMax float64) bool {
	return aMax >= bMin && aMin <= bMax
}

// OverlapsXZ is the footprint test, y ignored
func (b AABB) OverlapsXZ(o AABB) bool {
	return Overlap1D(b.Min.X, b.Max.X, o.Min.X, o.Max.X) &&
		Overlap1D(b.Min.Z, b.Max.Z, o.Min.Z, o.Max.Z)
}

// Intersects is the inclusive 3-axis overlap test
func (b AABB) Intersects(o AABB) bool {
	return b.OverlapsXZ(o) && Overlap1D(b.Min.Y, b.Max.Y, o.Min.Y, o.Max.Y)
}
