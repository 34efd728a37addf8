// Package field implements the pointer-reactive grid of arrows.
//
// A Field owns a fixed lattice of Vectors. Every update rederives each
// vector's orientation, length and color from the latest pointer position and
// redraws the whole surface; nothing is cached across frames.
package field

import (
	"math"

	"vecfield/paint"
)

// CellSize is the default grid density: one cell per this many pixels.
const CellSize = 28

// DefaultOffset is the default top-left lattice anchor, in pixels.
const DefaultOffset = 20

// Field is the full grid of vectors plus its gridlines.
//
// Cols, Rows and the anchors in Grid are fixed at Init time and never change
// afterwards; the surface is not re-measured on resize.
type Field struct {
	Cols, Rows       int
	XOffset, YOffset float64
	GridColor        paint.Color

	// Grid holds the vectors in row-major order.
	Grid [][]Vector
}

// New creates an empty field; call Init to place the lattice.
func New(cols, rows int, xOffset, yOffset float64) *Field {
	return &Field{
		Cols:      cols,
		Rows:      rows,
		XOffset:   xOffset,
		YOffset:   yOffset,
		GridColor: paint.RGB(0xD3, 0xD3, 0xD3),
	}
}

// ForSurface builds and initializes a field for a width×height surface with
// one cell per cell pixels, anchored at the given offsets.
func ForSurface(width, height, cell int, xOffset, yOffset float64) *Field {
	if cell <= 0 {
		cell = CellSize
	}
	f := New(width/cell, height/cell, xOffset, yOffset)
	f.Init(width, height)
	return f
}

// Init places vector anchors on a regular lattice starting at the offsets,
// row-major, with even spacing floor(width/cols) × floor(height/rows).
//
// Init is deterministic: re-running it with the same inputs produces the same
// anchors.
func (f *Field) Init(width, height int) {
	var sx, sy float64
	if f.Cols > 0 {
		sx = math.Floor(float64(width) / float64(f.Cols))
	}
	if f.Rows > 0 {
		sy = math.Floor(float64(height) / float64(f.Rows))
	}

	f.Grid = make([][]Vector, f.Rows)
	y := f.YOffset
	for r := range f.Grid {
		row := make([]Vector, f.Cols)
		x := f.XOffset
		for i := range row {
			row[i] = Vector{MidX: x, MidY: y}
			x += sx
		}
		f.Grid[r] = row
		y += sy
	}
}

// DrawGrid strokes the lattice: one thin horizontal line per row and one
// vertical line per column, each spanning the full surface. It is drawn
// before the vectors so their strokes overlay the gridlines.
func (f *Field) DrawGrid(p *paint.Painter, t paint.Target) {
	w, h := t.Size()
	for r := range f.Grid {
		if len(f.Grid[r]) == 0 {
			continue
		}
		p.HLine(t, 0, w-1, round(f.Grid[r][0].MidY), f.GridColor)
	}
	if len(f.Grid) > 0 {
		for i := range f.Grid[0] {
			p.VLine(t, round(f.Grid[0][i].MidX), 0, h-1, f.GridColor)
		}
	}
}

// Update redraws the whole field for a pointer position: gridlines first,
// then every vector in row-major order. No dirty-region tracking; the caller
// clears the surface beforehand.
func (f *Field) Update(p *paint.Painter, t paint.Target, px, py float64) {
	f.DrawGrid(p, t)
	for r := range f.Grid {
		for i := range f.Grid[r] {
			f.Grid[r][i].Update(p, t, px, py)
		}
	}
}
