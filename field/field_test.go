package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecfield/paint"
)

// recordTarget remembers every painted pixel for assertions.
type recordTarget struct {
	w, h   int
	pixels map[[2]int]paint.Color
	clears int
}

func newRecordTarget(w, h int) *recordTarget {
	return &recordTarget{w: w, h: h, pixels: map[[2]int]paint.Color{}}
}

func (t *recordTarget) Size() (int, int) { return t.w, t.h }

func (t *recordTarget) SetPixel(x, y int, c paint.Color) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.pixels[[2]int{x, y}] = c
}

func (t *recordTarget) Clear(c paint.Color) {
	t.pixels = map[[2]int]paint.Color{}
	t.clears++
}

func (t *recordTarget) rowFullyPainted(y int) bool {
	for x := 0; x < t.w; x++ {
		if _, ok := t.pixels[[2]int{x, y}]; !ok {
			return false
		}
	}
	return true
}

func (t *recordTarget) colFullyPainted(x int) bool {
	for y := 0; y < t.h; y++ {
		if _, ok := t.pixels[[2]int{x, y}]; !ok {
			return false
		}
	}
	return true
}

func TestInitLattice(t *testing.T) {
	f := New(10, 10, 20, 20)
	f.Init(280, 280)

	require.Len(t, f.Grid, 10)
	for _, row := range f.Grid {
		require.Len(t, row, 10)
	}

	assert.Equal(t, 20.0, f.Grid[0][0].MidX)
	assert.Equal(t, 20.0, f.Grid[0][0].MidY)
	assert.Equal(t, 48.0, f.Grid[0][1].MidX, "spacing should be 28px")
	assert.Equal(t, 272.0, f.Grid[9][9].MidX)
	assert.Equal(t, 272.0, f.Grid[9][9].MidY)
}

func TestInitIdempotent(t *testing.T) {
	f := New(7, 5, 20, 20)
	f.Init(333, 222)
	first := make([][]Vector, len(f.Grid))
	for i, row := range f.Grid {
		first[i] = append([]Vector(nil), row...)
	}

	f.Init(333, 222)
	assert.Equal(t, first, f.Grid)
}

func TestForSurfaceDensity(t *testing.T) {
	f := ForSurface(1120, 700, 28, 20, 20)
	assert.Equal(t, 40, f.Cols)
	assert.Equal(t, 25, f.Rows)

	// Non-positive cell size falls back to the default density.
	f = ForSurface(280, 280, 0, 20, 20)
	assert.Equal(t, 10, f.Cols)
	assert.Equal(t, 10, f.Rows)
}

func TestDrawGridLineCounts(t *testing.T) {
	f := New(10, 10, 20, 20)
	f.Init(280, 280)

	rt := newRecordTarget(280, 280)
	f.DrawGrid(paint.NewPainter(paint.RGB(0xFF, 0xFF, 0xFF)), rt)

	var fullRows, fullCols int
	for y := 0; y < rt.h; y++ {
		if rt.rowFullyPainted(y) {
			fullRows++
		}
	}
	for x := 0; x < rt.w; x++ {
		if rt.colFullyPainted(x) {
			fullCols++
		}
	}
	assert.Equal(t, 10, fullRows)
	assert.Equal(t, 10, fullCols)

	// Lines sit on the anchor coordinates.
	assert.True(t, rt.rowFullyPainted(20))
	assert.True(t, rt.rowFullyPainted(272))
	assert.True(t, rt.colFullyPainted(20))
	assert.True(t, rt.colFullyPainted(272))
}

func TestUpdateRedrawsEveryVector(t *testing.T) {
	f := New(2, 2, 10, 10)
	f.Init(100, 100)

	rt := newRecordTarget(100, 100)
	p := paint.NewPainter(paint.RGB(0xFA, 0xFA, 0xFA))
	f.Update(p, rt, 90.0, 90.0)

	for r := range f.Grid {
		for i := range f.Grid[r] {
			v := f.Grid[r][i]
			if v.MidX == 90 && v.MidY == 90 {
				continue
			}
			assert.NotZero(t, v.Len, "vector (%v,%v) should have been reoriented", v.MidX, v.MidY)
		}
	}

	// Vector strokes paint more than the bare gridlines would.
	gridOnly := newRecordTarget(100, 100)
	f.DrawGrid(p, gridOnly)
	assert.Greater(t, len(rt.pixels), len(gridOnly.pixels))
}
