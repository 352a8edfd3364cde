package game

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/cube-dodge/physics"
	"github.com/lixenwraith/cube-dodge/vmath"
)

// BoxKind tags a box for renderers
type BoxKind uint8

const (
	KindGround BoxKind = iota
	KindPlayer
	KindEnemy
)

// BoxView is a read-only copy of a box at the end of a frame
type BoxView struct {
	Kind   BoxKind
	Bounds vmath.AABB // from the current position, not the cached sides
	Color  uint32
}

// Snapshot is everything a frontend draws
type Snapshot struct {
	RunID  uuid.UUID
	Phase  Phase
	Score  int
	Frames int
	Boxes  []BoxView
}

// Snapshot copies renderable state, buf is reused when it has capacity
func (w *World) Snapshot(buf []BoxView) Snapshot {
	boxes := buf[:0]
	boxes = append(boxes, view(KindGround, w.Ground))
	for _, e := range w.Enemies {
		boxes = append(boxes, view(KindEnemy, e))
	}
	boxes = append(boxes, view(KindPlayer, w.Player))

	return Snapshot{
		RunID:  w.RunID,
		Phase:  w.phase,
		Score:  w.Score,
		Frames: w.Frames,
		Boxes:  boxes,
	}
}

func view(kind BoxKind, b *physics.Box) BoxView {
	return BoxView{
		Kind:   kind,
		Bounds: vmath.NewAABB(b.Position, b.Size),
		Color:  b.Color,
	}
}
