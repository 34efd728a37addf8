//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64 // stop after N ticks; 0 runs forever
}

// RunHeadless runs the field without opening a window, driving the pointer
// along a synthetic sweep.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1120
	}
	if cfg.Height <= 0 {
		cfg.Height = 700
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	ptr := newSweepPointer(cfg.Width, cfg.Height, cfg.Hz)
	h := newHostHAL(cfg.Width, cfg.Height, ptr)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			ptr.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
