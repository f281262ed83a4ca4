package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkyblackness/pax-sdl-demos/internal/demo"
)

func writeConfig(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gui", cfg.Mode)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, demo.DefaultOptions(), cfg.Options())
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "# empty", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := writeConfig(t,
		"mode: arcs",
		"resizable: false",
		"opaque: true",
		"log_level: debug",
		"arcs:",
		"  count: 4",
		"  outline: false",
		"gui:",
		"  children: 5",
		"",
	)
	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "arcs", cfg.Mode)
	assert.False(t, cfg.Resizable)
	assert.True(t, cfg.Opaque)
	assert.Equal(t, 4, cfg.Arcs.Count)
	assert.False(t, cfg.Arcs.Outline)
	// Keys not in the file keep their defaults.
	assert.Equal(t, 60.0, cfg.Arcs.Spacing)
	assert.Equal(t, 5, cfg.GUI.Children)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	opts := cfg.Options()
	assert.True(t, opts.Opaque)
	assert.Equal(t, 4, opts.ArcCount)
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "colour: red", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		path string
	}{
		{"mode", "mode: tetris", "mode"},
		{"size", "width: 0", "width/height"},
		{"children", "gui:\n  children: 7", "gui.children"},
		{"passes", "text:\n  passes: 0", "text.passes"},
		{"samples", "frametime_samples: -1", "frametime_samples"},
		{"level", "log_level: loud", "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, tt.yaml, ""))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.path, verr.Path)
		})
	}
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "paxdemo", "config.yaml"), path)
}
