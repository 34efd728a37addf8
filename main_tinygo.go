//go:build tinygo

package main

import (
	"vecfield/app"
	"vecfield/hal"
	"vecfield/internal/config"
)

func main() {
	h := hal.New()

	cfg := config.Default()
	cfg.CellSize = 24
	cfg.XOffset, cfg.YOffset = 12, 12

	step := app.New(h, cfg)
	for range h.Time().Ticks() {
		if err := step(); err != nil {
			return
		}
	}
}
