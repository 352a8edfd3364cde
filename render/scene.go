package render

import (
	"sort"

	"github.com/lixenwraith/cube-dodge/constants"
	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/vmath"
)

// shadowLift keeps shadows just above the ground top in depth order
const shadowLift = 0.001

// Polygon is one filled convex shape in pixel space, emitted in draw order
type Polygon struct {
	Points []Point
	Color  RGB
	Kind   game.BoxKind
	Shadow bool
}

// Light is a directional light plus flat ambient term
type Light struct {
	Dir       vmath.Vec3F // unit vector pointing toward the light
	Intensity float64
	Ambient   float64
}

// DefaultLight shines from (0,3,1) toward the origin
func DefaultLight() Light {
	return Light{
		Dir:       vmath.V3FNormalize(vmath.Vec3F{X: constants.LightX, Y: constants.LightY, Z: constants.LightZ}),
		Intensity: constants.LightIntensity,
		Ambient:   constants.AmbientLevel,
	}
}

// Shade returns base lit by a surface with unit normal n
func (l Light) Shade(base RGB, n vmath.Vec3F) RGB {
	diffuse := vmath.V3FDot(n, l.Dir)
	if diffuse < 0 {
		diffuse = 0
	}
	return base.Scale(l.Ambient + l.Intensity*diffuse)
}

type face struct {
	normal  vmath.Vec3F
	corners [4]int // indices into AABB.Corners, cyclic
}

var boxFaces = [6]face{
	{vmath.Vec3F{X: -1}, [4]int{0, 2, 6, 4}},
	{vmath.Vec3F{X: 1}, [4]int{1, 3, 7, 5}},
	{vmath.Vec3F{Y: -1}, [4]int{0, 1, 5, 4}},
	{vmath.Vec3F{Y: 1}, [4]int{2, 3, 7, 6}},
	{vmath.Vec3F{Z: -1}, [4]int{0, 1, 3, 2}},
	{vmath.Vec3F{Z: 1}, [4]int{4, 5, 7, 6}},
}

// SceneBuilder turns snapshots into ordered polygons, buffers are reused across frames
// Boxes are drawn far to near as whole units; a convex box's visible faces never overlap each other
type SceneBuilder struct {
	Light Light

	polys  []Polygon
	points []Point
	order  []int
	dist   []float64
	cam    []vmath.Vec3F
	clip   []vmath.Vec3F
}

// NewSceneBuilder uses DefaultLight
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{Light: DefaultLight()}
}

// Build projects snap through view onto vp
// The returned slice is valid until the next call
func (b *SceneBuilder) Build(snap game.Snapshot, view View, vp Viewport) []Polygon {
	b.polys = b.polys[:0]
	b.points = b.points[:0]
	if vp.Width <= 0 || vp.Height <= 0 || len(snap.Boxes) == 0 {
		return b.polys
	}

	eye := view.Eye()
	groundIdx := -1
	b.order = b.order[:0]
	b.dist = b.dist[:0]
	for i, box := range snap.Boxes {
		b.dist = append(b.dist, vmath.V3FMagSq(vmath.V3FSub(box.Bounds.Center(), eye)))
		if box.Kind == game.KindGround && groundIdx < 0 {
			groundIdx = i
			continue
		}
		b.order = append(b.order, i)
	}
	sort.SliceStable(b.order, func(i, j int) bool {
		return b.dist[b.order[i]] > b.dist[b.order[j]]
	})

	// The ground slab is below every other box, so from above it is always farthest
	groundFirst := false
	if groundIdx >= 0 {
		ground := snap.Boxes[groundIdx]
		groundFirst = eye.Y >= ground.Bounds.Top()
		if groundFirst {
			b.addBox(ground, view, vp)
			b.addShadows(snap.Boxes, ground, view, vp)
		}
	}

	for _, i := range b.order {
		b.addBox(snap.Boxes[i], view, vp)
	}

	if groundIdx >= 0 && !groundFirst {
		b.addBox(snap.Boxes[groundIdx], view, vp)
	}

	return b.polys
}

func (b *SceneBuilder) addBox(box game.BoxView, view View, vp Viewport) {
	corners := box.Bounds.Corners()
	center := box.Bounds.Center()
	half := vmath.V3FScale(vmath.V3FSub(box.Bounds.Max, box.Bounds.Min), 0.5)
	eye := view.Eye()
	base := HexRGB(box.Color)

	for _, f := range boxFaces {
		faceCenter := vmath.V3FAdd(center, vmath.Vec3F{
			X: f.normal.X * half.X,
			Y: f.normal.Y * half.Y,
			Z: f.normal.Z * half.Z,
		})
		if vmath.V3FDot(f.normal, vmath.V3FSub(eye, faceCenter)) <= 0 {
			continue
		}

		b.cam = b.cam[:0]
		for _, ci := range f.corners {
			b.cam = append(b.cam, view.ToCamera(corners[ci]))
		}
		b.emit(b.cam, view, vp, Polygon{
			Color: b.Light.Shade(base, f.normal),
			Kind:  box.Kind,
		})
	}
}

// addShadows drops each box's footprint onto the ground top along the light direction
func (b *SceneBuilder) addShadows(boxes []game.BoxView, ground game.BoxView, view View, vp Viewport) {
	l := b.Light.Dir
	if l.Y <= 0 {
		return
	}
	top := ground.Bounds.Top()
	shade := b.Light.Shade(HexRGB(ground.Color), vmath.Vec3F{Y: 1}).Scale(0.55)

	for _, box := range boxes {
		if box.Kind == game.KindGround {
			continue
		}
		h := box.Bounds.Bottom() - top
		if h < 0 {
			continue
		}
		dx, dz := -l.X*h/l.Y, -l.Z*h/l.Y

		x0 := vmath.Clamp(box.Bounds.Min.X+dx, ground.Bounds.Min.X, ground.Bounds.Max.X)
		x1 := vmath.Clamp(box.Bounds.Max.X+dx, ground.Bounds.Min.X, ground.Bounds.Max.X)
		z0 := vmath.Clamp(box.Bounds.Min.Z+dz, ground.Bounds.Min.Z, ground.Bounds.Max.Z)
		z1 := vmath.Clamp(box.Bounds.Max.Z+dz, ground.Bounds.Min.Z, ground.Bounds.Max.Z)
		if x1-x0 <= 0 || z1-z0 <= 0 {
			continue
		}

		y := top + shadowLift
		b.cam = append(b.cam[:0],
			view.ToCamera(vmath.Vec3F{X: x0, Y: y, Z: z0}),
			view.ToCamera(vmath.Vec3F{X: x1, Y: y, Z: z0}),
			view.ToCamera(vmath.Vec3F{X: x1, Y: y, Z: z1}),
			view.ToCamera(vmath.Vec3F{X: x0, Y: y, Z: z1}),
		)
		b.emit(b.cam, view, vp, Polygon{Color: shade, Kind: box.Kind, Shadow: true})
	}
}

func (b *SceneBuilder) emit(cam []vmath.Vec3F, view View, vp Viewport, p Polygon) {
	b.clip = ClipNear(cam, view.near, b.clip)
	if len(b.clip) < 3 {
		return
	}

	start := len(b.points)
	for _, v := range b.clip {
		b.points = append(b.points, view.Project(v, vp))
	}
	p.Points = b.points[start:len(b.points):len(b.points)]
	b.polys = append(b.polys, p)
}
