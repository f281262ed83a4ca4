// Package config loads the demo settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inkyblackness/pax-sdl-demos/internal/demo"
)

// ErrInvalid matches every validation failure.
var ErrInvalid = errors.New("invalid config")

// ValidationError reports which key failed validation.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Arcs configures the arc demo.
type Arcs struct {
	Count   int     `yaml:"count"`
	Spacing float64 `yaml:"spacing"`
	Radius  float64 `yaml:"radius"`
	Outline bool    `yaml:"outline"`
}

// GUI configures the widget grid.
type GUI struct {
	Children int `yaml:"children"` // 5 or 6
}

// Text configures the scrolling text demo.
type Text struct {
	Passes int `yaml:"passes"`
}

// Config is the full demo configuration.
type Config struct {
	Mode      string `yaml:"mode"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	Opaque    bool   `yaml:"opaque"`
	// VideoDriver overrides the SDL video driver hint. Empty picks wayland
	// when WAYLAND_DISPLAY is set.
	VideoDriver      string `yaml:"video_driver"`
	LogLevel         string `yaml:"log_level"`
	FrametimeSamples int    `yaml:"frametime_samples"`

	Arcs Arcs `yaml:"arcs"`
	GUI  GUI  `yaml:"gui"`
	Text Text `yaml:"text"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	opts := demo.DefaultOptions()
	return &Config{
		Mode:             string(demo.ModeGUI),
		Width:            800,
		Height:           480,
		Resizable:        true,
		LogLevel:         "info",
		FrametimeSamples: opts.FrameSamples,
		Arcs: Arcs{
			Count:   opts.ArcCount,
			Spacing: opts.ArcSpacing,
			Radius:  opts.ArcRadius,
			Outline: opts.ArcOutline,
		},
		GUI:  GUI{Children: opts.GUIChildren},
		Text: Text{Passes: opts.TextPasses},
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := demo.ParseMode(c.Mode); err != nil {
		return &ValidationError{Path: "mode", Err: err}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return &ValidationError{Path: "width/height", Err: fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)}
	}
	if _, err := c.Level(); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	if c.FrametimeSamples <= 0 {
		return &ValidationError{Path: "frametime_samples", Err: fmt.Errorf("frametime_samples must be > 0")}
	}
	if c.Arcs.Count < 0 {
		return &ValidationError{Path: "arcs.count", Err: fmt.Errorf("arcs.count must be >= 0")}
	}
	if c.Arcs.Radius <= 0 {
		return &ValidationError{Path: "arcs.radius", Err: fmt.Errorf("arcs.radius must be > 0")}
	}
	if c.GUI.Children != 5 && c.GUI.Children != 6 {
		return &ValidationError{Path: "gui.children", Err: fmt.Errorf("gui.children must be 5 or 6")}
	}
	if c.Text.Passes <= 0 {
		return &ValidationError{Path: "text.passes", Err: fmt.Errorf("text.passes must be > 0")}
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, err
	}
	return l, nil
}

// Options converts the payload settings.
func (c *Config) Options() demo.Options {
	return demo.Options{
		Opaque:       c.Opaque,
		FrameSamples: c.FrametimeSamples,
		ArcCount:     c.Arcs.Count,
		ArcSpacing:   c.Arcs.Spacing,
		ArcRadius:    c.Arcs.Radius,
		ArcOutline:   c.Arcs.Outline,
		GUIChildren:  c.GUI.Children,
		TextPasses:   c.Text.Passes,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/paxdemo/config.yaml, falling
// back to ~/.config.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "paxdemo", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "paxdemo", "config.yaml"), nil
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing file yields the
// defaults; unknown keys are rejected.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
