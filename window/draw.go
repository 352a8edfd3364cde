package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/render"
)

// Debug font cell size used by ebitenutil.DebugPrintAt
const (
	glyphW = 6
	glyphH = 16
)

// maxBatchVertices keeps a batch inside uint16 indices
const maxBatchVertices = 1 << 15

var (
	panelBg     = color.RGBA{R: 10, G: 12, B: 20, A: 220}
	panelBorder = color.RGBA{R: 90, G: 100, B: 130, A: 255}
)

// canvas batches scene polygons into DrawTriangles calls
type canvas struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

func (c *canvas) source() *ebiten.Image {
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return c.white
}

// drawPolygons fills polys in order; triangles within one call keep submission order
func (c *canvas) drawPolygons(dst *ebiten.Image, polys []render.Polygon) {
	src := c.source()
	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]

	for _, p := range polys {
		if len(c.vertices)+len(p.Points) > maxBatchVertices {
			dst.DrawTriangles(c.vertices, c.indices, src, &c.op)
			c.vertices = c.vertices[:0]
			c.indices = c.indices[:0]
		}
		c.vertices, c.indices = appendPolygon(c.vertices, c.indices, p)
	}
	if len(c.indices) > 0 {
		dst.DrawTriangles(c.vertices, c.indices, src, &c.op)
	}
}

// appendPolygon fan-triangulates a convex polygon with a flat vertex color
func appendPolygon(vs []ebiten.Vertex, is []uint16, p render.Polygon) ([]ebiten.Vertex, []uint16) {
	if len(p.Points) < 3 {
		return vs, is
	}

	r := float32(p.Color.R) / 255
	g := float32(p.Color.G) / 255
	b := float32(p.Color.B) / 255

	base := uint16(len(vs))
	for _, pt := range p.Points {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(pt.X), DstY: float32(pt.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
		})
	}
	for i := 1; i+1 < len(p.Points); i++ {
		is = append(is, base, base+uint16(i), base+uint16(i+1))
	}
	return vs, is
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// drawHUD prints the counter and phase panels over the scene
func drawHUD(dst *ebiten.Image, snap game.Snapshot, muted bool) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("TIME %d", snap.Score), 8, 4)

	sound := "[m] sound on"
	if muted {
		sound = "[m] sound off"
	}
	ebitenutil.DebugPrintAt(dst, sound, w-len(sound)*glyphW-8, 4)
	ebitenutil.DebugPrintAt(dst, "WASD move  drag/arrows orbit  wheel zoom  R restart  Esc quit", 8, h-glyphH-4)

	switch {
	case snap.Phase == game.PhaseReady:
		drawPanel(dst, readyLines())
	case snap.Phase.GameOver():
		drawPanel(dst, gameOverLines(snap.Score))
	}
}

func readyLines() []string {
	return []string{
		"CUBE DODGE",
		"",
		"Steer the green cube with W A S D.",
		"Dodge the red cubes sliding toward you.",
		"Stay on the platform.",
		"Your score is the time you survive.",
		"",
		"press Enter to start",
	}
}

func gameOverLines(score int) []string {
	return []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Total Score: %d", score),
		"",
		"press R to play again",
	}
}

// panelRect returns the centered box that fits lines with padding
func panelRect(w, h int, lines []string) image.Rectangle {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	pw := width*glyphW + 32
	ph := len(lines)*glyphH + 24
	x := (w - pw) / 2
	y := (h - ph) / 2
	return image.Rect(x, y, x+pw, y+ph)
}

func drawPanel(dst *ebiten.Image, lines []string) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	r := panelRect(w, h, lines)

	x, y := float32(r.Min.X), float32(r.Min.Y)
	pw, ph := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(dst, x, y, pw, ph, panelBg, false)
	vector.StrokeRect(dst, x, y, pw, ph, 2, panelBorder, false)

	for i, l := range lines {
		lx := r.Min.X + (r.Dx()-len(l)*glyphW)/2
		ebitenutil.DebugPrintAt(dst, l, lx, r.Min.Y+12+i*glyphH)
	}
}
