package paint

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// HSL converts a hue (degrees), saturation and lightness (0..1) to a Color.
//
// The hue is taken modulo 360 so callers may pass unwrapped ramps.
func HSL(h, s, l float64) Color {
	h -= 360 * float64(int(h/360))
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, s, l).RGB255()
	return Color{R: r, G: g, B: b, A: 0xFF}
}
