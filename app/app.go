// Package app wires a platform HAL to the vector field and owns the per-tick
// redraw step.
package app

import (
	"vecfield/field"
	"vecfield/hal"
	"vecfield/internal/config"
	"vecfield/paint"
)

// App threads the drawing surface, painter and field through the step
// function; there are no process-wide mutable bindings.
type App struct {
	fb      hal.Framebuffer
	pointer <-chan hal.PointerEvent
	ticks   <-chan uint64

	painter *paint.Painter
	target  *paint.RGB565Target
	field   *field.Field

	hud    bool
	px, py float64
	tick   uint64
	frames uint64
	dirty  bool
}

// New builds the field for the HAL's surface and returns the per-tick step
// function. The app lives as long as the process; there is no teardown.
func New(h hal.HAL, cfg config.Config) func() error {
	fb := h.Display().Framebuffer()

	f := field.ForSurface(fb.Width(), fb.Height(), cfg.CellSize, cfg.XOffset, cfg.YOffset)
	f.GridColor = paint.RGB(cfg.Gridline.R, cfg.Gridline.G, cfg.Gridline.B)

	a := &App{
		fb:      fb,
		pointer: h.Input().Pointer().Events(),
		ticks:   h.Time().Ticks(),
		painter: paint.NewPainter(paint.RGB(cfg.Background.R, cfg.Background.G, cfg.Background.B)),
		target: &paint.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		field: f,
		hud:   cfg.HUD,

		// First frame: assume the pointer at the surface center so the
		// display is never blank before the first movement event.
		px:    float64(fb.Width()) / 2,
		py:    float64(fb.Height()) / 2,
		dirty: true,
	}
	return a.step
}

// step runs once per platform tick: it drains pending pointer movement,
// keeps only the latest position, and if it changed clears the surface and
// redraws the whole field. Runs to completion before the next tick; the
// framebuffer is touched from nowhere else.
func (a *App) step() error {
drainTicks:
	for {
		select {
		case n := <-a.ticks:
			a.tick = n
		default:
			break drainTicks
		}
	}

drainPointer:
	for {
		select {
		case ev := <-a.pointer:
			a.px = float64(ev.X)
			a.py = float64(ev.Y)
			a.dirty = true
		default:
			break drainPointer
		}
	}

	if !a.dirty {
		return nil
	}
	a.dirty = false
	a.frames++

	a.painter.Clear(a.target)
	a.field.Update(a.painter, a.target, a.px, a.py)
	if a.hud {
		a.drawHUD()
	}
	return a.fb.Present()
}
