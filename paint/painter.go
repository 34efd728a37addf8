package paint

import "math"

// Painter draws 2D primitives into a Target.
//
// Create it once and reuse it; it holds no per-frame state.
type Painter struct {
	ClearColor Color
}

// NewPainter creates a painter with the given background color.
func NewPainter(clear Color) *Painter {
	return &Painter{ClearColor: clear}
}

// Clear fills the whole target with the painter's clear color.
func (p *Painter) Clear(t Target) {
	if p == nil || t == nil {
		return
	}
	t.Clear(p.ClearColor)
}

// Line draws a 1px Bresenham line between two points.
func (p *Painter) Line(t Target, x0, y0, x1, y1 int, c Color) {
	if t == nil {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeLine draws a line of the given pixel width.
//
// Widths above one are built from parallel 1px lines offset along the
// perpendicular, which is exact for axis-aligned strokes and close enough for
// short diagonal ones.
func (p *Painter) StrokeLine(t Target, x0, y0, x1, y1, width int, c Color) {
	if t == nil {
		return
	}
	p.Line(t, x0, y0, x1, y1, c)
	if width <= 1 {
		return
	}
	fdx := float64(x1 - x0)
	fdy := float64(y1 - y0)
	l := math.Hypot(fdx, fdy)
	if l == 0 {
		// Degenerate stroke: paint a width-sized dot.
		r := width / 2
		for oy := -r; oy <= r; oy++ {
			for ox := -r; ox <= r; ox++ {
				t.SetPixel(x0+ox, y0+oy, c)
			}
		}
		return
	}
	ux := -fdy / l
	uy := fdx / l
	for i := 1; i <= width/2; i++ {
		ox := int(math.Round(ux * float64(i)))
		oy := int(math.Round(uy * float64(i)))
		p.Line(t, x0+ox, y0+oy, x1+ox, y1+oy, c)
		if i <= (width-1)/2 {
			p.Line(t, x0-ox, y0-oy, x1-ox, y1-oy, c)
		}
	}
}

// HLine draws a horizontal 1px line spanning [x0,x1] at row y.
func (p *Painter) HLine(t Target, x0, x1, y int, c Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		t.SetPixel(x, y, c)
	}
}

// VLine draws a vertical 1px line spanning [y0,y1] at column x.
func (p *Painter) VLine(t Target, x, y0, y1 int, c Color) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		t.SetPixel(x, y, c)
	}
}

// FillTriangle rasterizes a filled triangle. Winding order does not matter.
func (p *Painter) FillTriangle(t Target, x0, y0, x1, y1, x2, y2 int, c Color) {
	if t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		// Collapsed triangle still leaves a visible mark.
		p.Line(t, min3(x0, x1, x2), min3(y0, y1, y2), max3(x0, x1, x2), max3(y0, y1, y2), c)
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
