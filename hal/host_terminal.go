//go:build !tinygo

package hal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the in-terminal runner.
type TerminalConfig struct {
	Hz int
}

// termPointer feeds tcell mouse motion into the pointer stream.
type termPointer struct {
	ch chan PointerEvent
}

func (p *termPointer) Events() <-chan PointerEvent { return p.ch }

func (p *termPointer) emit(x, y int) {
	select {
	case p.ch <- PointerEvent{X: x, Y: y}:
	default:
	}
}

// RunTerminal renders the framebuffer into the terminal using half-block
// cells: one cell is one pixel wide and two pixels tall. Mouse motion maps
// cell coordinates back to pixel coordinates. Blocks until Escape, q, Ctrl+C
// or context cancellation.
//
// The surface is sized once from the terminal at startup; resizing the
// terminal later does not re-measure it.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.EnableMouse(tcell.MouseMotionEvents | tcell.MouseButtonEvents)
	s.Clear()

	termW, termH := s.Size()
	ptr := &termPointer{ch: make(chan PointerEvent, 64)}
	h := newHostHAL(termW, termH*2, ptr)
	step := newApp(h)

	evCh := make(chan tcell.Event, 16)
	quitCh := make(chan struct{})
	go s.ChannelEvents(evCh, quitCh)
	defer close(quitCh)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	scratch := make([]byte, len(h.fb.buf))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-evCh:
			switch ev := ev.(type) {
			case *tcell.EventMouse:
				x, y := ev.Position()
				ptr.emit(x, y*2)
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			blitTerminal(s, h.fb, scratch, termW, termH)
		}
	}
}

func blitTerminal(s tcell.Screen, fb *hostFramebuffer, scratch []byte, termW, termH int) {
	fb.snapshotRGB565(scratch)

	pixel := func(x, y int) tcell.Color {
		off := y*fb.stride + x*2
		if off < 0 || off+1 >= len(scratch) {
			return tcell.ColorBlack
		}
		r, g, b := rgb888From565(uint16(scratch[off]) | uint16(scratch[off+1])<<8)
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}

	for ty := 0; ty < termH; ty++ {
		for x := 0; x < termW; x++ {
			st := tcell.StyleDefault.
				Foreground(pixel(x, ty*2)).
				Background(pixel(x, ty*2+1))
			s.SetContent(x, ty, '▀', nil, st)
		}
	}
	s.Show()
}
