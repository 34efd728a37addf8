// Package hal is the only contact point between the field renderer and the
// outside world.
//
// A HAL provides three things: a framebuffer-backed display, a
// pointer-movement event stream, and a base tick stream. Host builds offer a
// desktop window, a terminal renderer and a headless runner; TinyGo builds
// drive an SPI panel.
package hal

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// PointerEvent is a pointer movement in surface pixel coordinates.
type PointerEvent struct {
	X, Y int
}

// Pointer provides pointer-movement events (best-effort on each platform).
//
// Implementations drop rather than block when the consumer lags; the field is
// redrawn from the latest position anyway.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to the pointer device.
type Input interface {
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; the app only counts ticks.
type Time interface {
	Ticks() <-chan uint64
}

// HAL bundles the platform backends.
type HAL interface {
	Display() Display
	Input() Input
	Time() Time
}
