//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"

	"vecfield/app"
	"vecfield/hal"
	"vecfield/internal/buildinfo"
	"vecfield/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file.")
		headless   = flag.Bool("headless", false, "Run without a window, sweeping a synthetic pointer.")
		terminal   = flag.Bool("terminal", false, "Render into the terminal; needs mouse reporting.")
		hz         = flag.Int("hz", 60, "Tick rate in headless/terminal mode.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	)
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading config", "err", err)
		os.Exit(1)
	}

	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	switch {
	case *headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		log.Info("running headless", "width", cfg.Width, "height", cfg.Height, "hz", *hz, "ticks", *ticks)
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Hz:     *hz,
			Ticks:  *ticks,
		})
	case *terminal:
		if *configPath == "" {
			// Terminal cells are coarse; tighten the default grid and skip
			// the HUD unless a config file chose its own layout.
			cfg.CellSize = 8
			cfg.XOffset, cfg.YOffset = 2, 2
			cfg.HUD = false
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: *hz})
	default:
		log.Info("opening window", "width", cfg.Width, "height", cfg.Height, "build", buildinfo.Short())
		err = hal.RunWindow(hal.WindowConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Title:  "vecfield",
		}, newApp)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}
