// Package config loads the optional YAML configuration.
//
// Everything has a sensible default; a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Config holds the surface and field parameters.
//
// The surface size and grid layout are fixed at startup; they are not
// re-measured when a window or terminal is resized later.
type Config struct {
	// Surface size in pixels (window and headless modes; the terminal
	// runner measures the terminal instead).
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Grid density: one cell per this many pixels.
	CellSize int `yaml:"cell_size"`

	// Top-left lattice anchor.
	XOffset float64 `yaml:"x_offset"`
	YOffset float64 `yaml:"y_offset"`

	// HUD draws the pointer position and frame count in a corner.
	HUD bool `yaml:"hud"`

	Background Color `yaml:"background"`
	Gridline   Color `yaml:"gridline"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:      1120,
		Height:     700,
		CellSize:   28,
		XOffset:    20,
		YOffset:    20,
		HUD:        true,
		Background: Color{R: 0xFA, G: 0xFA, B: 0xFA},
		Gridline:   Color{R: 0xD3, G: 0xD3, B: 0xD3},
	}
}

// Load reads config from a YAML file over the defaults.
// An empty path or a missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %s: surface %dx%d is not drawable", path, cfg.Width, cfg.Height)
	}
	if cfg.CellSize <= 0 {
		return cfg, fmt.Errorf("config %s: cell_size must be positive", path)
	}

	return cfg, nil
}
