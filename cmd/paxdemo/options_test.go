package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stderr bytes.Buffer
	cfg, status := setup(nil, &stderr)
	require.NotNil(t, cfg, stderr.String())
	assert.Equal(t, exitOK, status)
	assert.Equal(t, "gui", cfg.Mode)
	assert.True(t, cfg.Resizable)
}

func TestSetup_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: text\nopaque: true\nlog_level: warn\n"), 0644))

	var stderr bytes.Buffer
	cfg, _ := setup([]string{"-config", path, "-mode", "arcs", "-fixed"}, &stderr)
	require.NotNil(t, cfg, stderr.String())
	assert.Equal(t, "arcs", cfg.Mode)
	assert.False(t, cfg.Resizable)
	// Flags left out keep the file's values.
	assert.True(t, cfg.Opaque)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestSetup_ExitCodes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"-h"}, exitOK},
		{"unknown flag", []string{"-colour"}, exitUsage},
		{"stray argument", []string{"extra"}, exitUsage},
		{"unknown mode", []string{"-mode", "tetris"}, exitFatal},
		{"bad level", []string{"-log-level", "loud"}, exitFatal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, status := setup(tt.args, &bytes.Buffer{})
			assert.Nil(t, cfg)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, _ := setup([]string{"-log-level", "debug"}, &bytes.Buffer{})
	require.NotNil(t, cfg)
	var out bytes.Buffer
	newLogger(&out, cfg).Debug("hello", "k", 1)
	assert.Contains(t, out.String(), "msg=hello")
}
