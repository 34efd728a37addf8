package hal

import "math"

// sweepPointer synthesizes pointer movement along a Lissajous path, for
// runners without a pointing device (headless host, SPI panels).
type sweepPointer struct {
	ch   chan PointerEvent
	w, h float64
	hz   float64
	n    uint64
}

func newSweepPointer(width, height, hz int) *sweepPointer {
	if hz <= 0 {
		hz = 60
	}
	return &sweepPointer{
		ch: make(chan PointerEvent, 64),
		w:  float64(width),
		h:  float64(height),
		hz: float64(hz),
	}
}

func (p *sweepPointer) Events() <-chan PointerEvent { return p.ch }

// step advances the sweep by one tick and emits the new position.
func (p *sweepPointer) step() {
	p.n++
	t := float64(p.n) / p.hz
	x := p.w * (0.5 + 0.42*math.Sin(0.9*t))
	y := p.h * (0.5 + 0.42*math.Sin(1.3*t+math.Pi/5))
	select {
	case p.ch <- PointerEvent{X: int(x), Y: int(y)}:
	default:
	}
}
