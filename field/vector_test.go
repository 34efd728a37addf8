package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorientTowardsPointer(t *testing.T) {
	v := &Vector{MidX: 0, MidY: 0}
	v.Reorient(100, 0, 1000)

	assert.Equal(t, 0.0, v.Angle)
	assert.InDelta(t, 15.3846, v.Len, 0.001)
	assert.Equal(t, 30.0, Hue(Factor(100, 1000)))
}

func TestReorientDegenerate(t *testing.T) {
	v := &Vector{MidX: 100, MidY: 100}
	v.Reorient(100, 100, 1000)

	assert.Equal(t, 0.0, v.Angle)
	assert.Equal(t, 0.0, v.Len)
	assert.Equal(t, 0.0, Hue(0))
}

func TestAngleMatchesAtan2(t *testing.T) {
	cases := []struct {
		mx, my, px, py float64
	}{
		{0, 0, 10, 10},
		{0, 0, -10, 10},
		{0, 0, -10, -10},
		{0, 0, 10, -10},
		{50, 80, 50, 200},
		{50, 80, 50, -200},
		{272, 272, 0, 0},
	}
	for _, c := range cases {
		v := &Vector{MidX: c.mx, MidY: c.my}
		v.Reorient(c.px, c.py, 1000)
		want := math.Atan2(c.py-c.my, c.px-c.mx)
		assert.Equal(t, want, v.Angle, "anchor (%v,%v) pointer (%v,%v)", c.mx, c.my, c.px, c.py)
	}
}

func TestLengthAlwaysCapped(t *testing.T) {
	for _, factor := range []float64{0, 0.01, 0.15, 0.5, 1, 10, 1e6} {
		l := Length(factor)
		require.GreaterOrEqual(t, l, 0.0)
		require.LessOrEqual(t, l, 30.0)
	}

	// Anywhere past factor 0.15 the cap takes over.
	assert.Equal(t, 30.0, Length(0.15))

	v := &Vector{}
	v.Reorient(1e9, 1e9, 1000)
	assert.Equal(t, 30.0, v.Len)
}

func TestHueWrapsCyclically(t *testing.T) {
	for _, factor := range []float64{0, 0.25, 0.5, 1, 2.5, 123.456, 1e4} {
		h := Hue(factor)
		require.GreaterOrEqual(t, h, 0.0, "factor %v", factor)
		require.Less(t, h, 360.0, "factor %v", factor)
	}

	// Past one full wrap: factor 1 lands at 396 degrees -> 36.
	assert.Equal(t, 36.0, Hue(1))
}

func TestFactorNormalizesAgainstWidth(t *testing.T) {
	assert.InDelta(t, 0.076923, Factor(100, 1000), 1e-6)
	assert.InDelta(t, 1.0, Factor(1300, 1000), 1e-9)
}
