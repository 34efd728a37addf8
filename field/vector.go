package field

import (
	"math"

	"vecfield/paint"
)

const (
	strokeWidth = 3
	arrowRadius = 5

	// maxLen caps the shaft length no matter how far the pointer is.
	maxLen   = 30
	lenScale = 200

	// distanceScale normalizes pointer distance against the surface width.
	distanceScale = 1.3
	hueScale      = 1.1

	hueSaturation = 0.70
	hueLightness  = 0.35
)

// Vector is a single arrow pivoting around a fixed midpoint.
//
// The midpoint never moves; Angle and Len are rederived from the latest
// pointer position on every update.
type Vector struct {
	MidX, MidY float64
	Angle      float64 // radians, from the midpoint towards the pointer
	Len        float64 // pixels, in [0, maxLen]
}

// Factor is the normalized distance ratio driving both color and length.
func Factor(dist, surfaceWidth float64) float64 {
	return dist / (surfaceWidth * distanceScale)
}

// Hue maps a factor to a hue in degrees, wrapping cyclically into [0, 360).
func Hue(factor float64) float64 {
	return math.Mod(math.Floor(360*factor*hueScale), 360)
}

// Length maps a factor to a shaft length in pixels, capped at maxLen.
func Length(factor float64) float64 {
	return math.Min(lenScale*factor, maxLen)
}

// Reorient rederives the vector's angle and length from the pointer position
// and returns the color it should be drawn in.
//
// The pointer sitting exactly on the midpoint yields angle 0, length 0 and
// hue 0: a zero-length shaft with only the arrowhead visible.
func (v *Vector) Reorient(px, py, surfaceWidth float64) paint.Color {
	dx := px - v.MidX
	dy := py - v.MidY
	v.Angle = math.Atan2(dy, dx)
	factor := Factor(math.Hypot(dx, dy), surfaceWidth)
	v.Len = Length(factor)
	return paint.HSL(Hue(factor), hueSaturation, hueLightness)
}

// Update reorients the vector towards the pointer and draws it immediately.
func (v *Vector) Update(p *paint.Painter, t paint.Target, px, py float64) {
	w, _ := t.Size()
	c := v.Reorient(px, py, float64(w))
	v.Draw(p, t, c)
}

// Draw strokes the shaft and the arrowhead in the given color.
//
// The midpoint of the stroked segment is the vector's anchor, not one of its
// ends, so arrows pivot around their grid point instead of growing from it.
// The arrowhead sits on the pointer-facing end.
func (v *Vector) Draw(p *paint.Painter, t paint.Target, c paint.Color) {
	hx := math.Cos(v.Angle) * v.Len / 2
	hy := math.Sin(v.Angle) * v.Len / 2

	headX := v.MidX + hx
	headY := v.MidY + hy
	tailX := v.MidX - hx
	tailY := v.MidY - hy

	p.StrokeLine(t, round(tailX), round(tailY), round(headX), round(headY), strokeWidth, c)
	v.drawArrow(p, t, headX, headY, c)
}

// drawArrow fills an equilateral triangle of circumradius arrowRadius centered
// on (x, y), with one vertex pointing along the vector's angle.
func (v *Vector) drawArrow(p *paint.Painter, t paint.Target, x, y float64, c paint.Color) {
	var xs, ys [3]int
	for i := 0; i < 3; i++ {
		a := v.Angle + float64(i)*(2*math.Pi/3)
		xs[i] = round(x + math.Cos(a)*arrowRadius)
		ys[i] = round(y + math.Sin(a)*arrowRadius)
	}
	p.FillTriangle(t, xs[0], ys[0], xs[1], ys[1], xs[2], ys[2], c)
}

func round(v float64) int { return int(math.Round(v)) }
