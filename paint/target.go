package paint

// Target is a minimal pixel target for software painting.
//
// Implementations must clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}
