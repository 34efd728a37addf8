package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"width: 280\nheight: 280\ncell_size: 28\nhud: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 280, cfg.Width)
	assert.Equal(t, 280, cfg.Height)
	assert.Equal(t, 28, cfg.CellSize)
	assert.False(t, cfg.HUD)

	// Untouched keys keep their defaults.
	assert.Equal(t, Default().Background, cfg.Background)
	assert.Equal(t, 20.0, cfg.XOffset)
}

func TestLoadRejectsUndrawableSurface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: -5\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
