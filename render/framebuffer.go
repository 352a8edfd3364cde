package render

import "math"

// Point is a position in pixel space, pixel (x,y) covers [x,x+1)×[y,y+1)
type Point struct {
	X, Y float64
}

// Framebuffer is a row-major RGB pixel grid
type Framebuffer struct {
	Width, Height int
	Pix           []RGB
}

// NewFramebuffer allocates a w×h buffer
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates only when the pixel count grows
func (fb *Framebuffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	fb.Width, fb.Height = w, h
	if cap(fb.Pix) < w*h {
		fb.Pix = make([]RGB, w*h)
	}
	fb.Pix = fb.Pix[:w*h]
}

// Clear fills every pixel with c
func (fb *Framebuffer) Clear(c RGB) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// At returns the pixel at (x,y), out of range reads return Background
func (fb *Framebuffer) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return Background
	}
	return fb.Pix[y*fb.Width+x]
}

// FillConvex paints every pixel whose center lies inside the convex polygon pts
// Winding may be either direction
func (fb *Framebuffer) FillConvex(pts []Point, c RGB) {
	if len(pts) < 3 || fb.Width == 0 || fb.Height == 0 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	y0 := max(int(math.Ceil(minY-0.5)), 0)
	y1 := min(int(math.Ceil(maxY-0.5))-1, fb.Height-1)

	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		left, right := math.Inf(1), math.Inf(-1)

		prev := pts[len(pts)-1]
		for _, cur := range pts {
			if (prev.Y <= yc && yc < cur.Y) || (cur.Y <= yc && yc < prev.Y) {
				x := prev.X + (yc-prev.Y)*(cur.X-prev.X)/(cur.Y-prev.Y)
				left = math.Min(left, x)
				right = math.Max(right, x)
			}
			prev = cur
		}
		if left > right {
			continue
		}

		x0 := max(int(math.Ceil(left-0.5)), 0)
		x1 := min(int(math.Ceil(right-0.5))-1, fb.Width-1)
		row := fb.Pix[y*fb.Width : (y+1)*fb.Width]
		for x := x0; x <= x1; x++ {
			row[x] = c
		}
	}
}

// DrawScene clears to Background and fills every polygon in order
func (fb *Framebuffer) DrawScene(polys []Polygon) {
	fb.Clear(Background)
	for i := range polys {
		fb.FillConvex(polys[i].Points, polys[i].Color)
	}
}
