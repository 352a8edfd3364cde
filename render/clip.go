package render

import "github.com/lixenwraith/cube-dodge/vmath"

// ClipNear clips a camera-space polygon against the plane Z = near
// Sutherland-Hodgman over a single plane, out is reused when it has capacity
func ClipNear(poly []vmath.Vec3F, near float64, out []vmath.Vec3F) []vmath.Vec3F {
	out = out[:0]
	n := len(poly)
	if n == 0 {
		return out
	}

	prev := poly[n-1]
	prevIn := prev.Z >= near
	for _, cur := range poly {
		curIn := cur.Z >= near
		if curIn != prevIn {
			t := (near - prev.Z) / (cur.Z - prev.Z)
			hit := vmath.V3FLerp(prev, cur, t)
			hit.Z = near
			out = append(out, hit)
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}
