//go:build !tinygo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostPointer turns the polled ebiten cursor into a movement-event stream.
//
// poll runs once per tick on the game loop; an event is emitted only when the
// cursor actually moved, so a resting pointer produces no redraws.
type hostPointer struct {
	ch    chan PointerEvent
	lastX int
	lastY int
	seen  bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	if p.seen && x == p.lastX && y == p.lastY {
		return
	}
	p.seen = true
	p.lastX, p.lastY = x, y
	select {
	case p.ch <- PointerEvent{X: x, Y: y}:
	default:
	}
}
