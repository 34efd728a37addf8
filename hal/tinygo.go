//go:build tinygo

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/st7789"
)

const (
	panelW = 240
	panelH = 240
	tickHz = 60
)

// New returns a HAL driving an ST7789 panel over SPI.
//
// The panel has no pointing device, so the pointer is a synthetic sweep.
func New() HAL {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 62_500_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
	})

	d := st7789.New(machine.SPI0, machine.GP20, machine.GP16, machine.GP17, machine.GP21)
	d.Configure(st7789.Config{
		Width:  panelW,
		Height: panelH,
	})

	fb := newPanelFramebuffer(&d, panelW, panelH)
	ptr := newSweepPointer(panelW, panelH, tickHz)
	t := &tinyTime{ch: make(chan uint64, 16)}

	// One loop owns both the tick stream and the pointer sweep.
	go func() {
		ticker := time.NewTicker(time.Second / tickHz)
		defer ticker.Stop()
		for range ticker.C {
			ptr.step()
			t.step()
		}
	}()

	return &tinyHAL{fb: fb, ptr: ptr, t: t}
}

type tinyHAL struct {
	fb  *panelFramebuffer
	ptr *sweepPointer
	t   *tinyTime
}

func (h *tinyHAL) Display() Display { return tinyDisplay{fb: h.fb} }
func (h *tinyHAL) Input() Input     { return tinyInput{ptr: h.ptr} }
func (h *tinyHAL) Time() Time       { return h.t }

type tinyDisplay struct {
	fb *panelFramebuffer
}

func (d tinyDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyInput struct {
	ptr *sweepPointer
}

func (in tinyInput) Pointer() Pointer { return in.ptr }

type tinyTime struct {
	ch  chan uint64
	seq uint64
}

func (t *tinyTime) Ticks() <-chan uint64 { return t.ch }

func (t *tinyTime) step() {
	t.seq++
	select {
	case t.ch <- t.seq:
	default:
	}
}

// panelFramebuffer keeps pixels little-endian like the host and swaps into
// the panel's big-endian order on Present.
type panelFramebuffer struct {
	d      *st7789.Device
	width  int
	height int
	stride int
	buf    []byte
	tx     []byte
}

func newPanelFramebuffer(d *st7789.Device, width, height int) *panelFramebuffer {
	stride := width * 2
	return &panelFramebuffer{
		d:      d,
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		tx:     make([]byte, stride*height),
	}
}

func (f *panelFramebuffer) Width() int          { return f.width }
func (f *panelFramebuffer) Height() int         { return f.height }
func (f *panelFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *panelFramebuffer) StrideBytes() int    { return f.stride }
func (f *panelFramebuffer) Buffer() []byte      { return f.buf }

func (f *panelFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *panelFramebuffer) Present() error {
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.tx[i] = f.buf[i+1]
		f.tx[i+1] = f.buf[i]
	}
	return f.d.DrawRGBBitmap8(0, 0, f.tx, int16(f.width), int16(f.height))
}
