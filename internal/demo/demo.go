// Package demo holds the payloads the host can draw: a widget grid, the arc
// animation, scrolling text and the sprite showcase.
package demo

import (
	"errors"
	"fmt"
	"time"

	"github.com/inkyblackness/pax-sdl-demos/internal/fonts"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/gui"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// ErrUnknownMode is returned for a mode name no payload answers to.
var ErrUnknownMode = errors.New("unknown demo mode")

// Mode names a payload.
type Mode string

const (
	ModeGUI     Mode = "gui"
	ModeArcs    Mode = "arcs"
	ModeText    Mode = "text"
	ModeSprites Mode = "sprites"
	// ModeImGui is served by the Dear ImGui host instead of a payload.
	ModeImGui Mode = "imgui"
)

// Modes lists every mode in the order shown by -help.
var Modes = []Mode{ModeGUI, ModeArcs, ModeText, ModeSprites, ModeImGui}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Payload is something the host draws into its pixel buffer.
type Payload interface {
	Name() string
	// Continuous payloads are redrawn on every loop iteration; the others
	// only after events.
	Continuous() bool
	// Resized is called after each (re)creation of the buffer, before the
	// first Draw into it.
	Resized(buf *gfx.Buffer) error
	// Draw paints one full frame. elapsed is the time since start.
	Draw(buf *gfx.Buffer, elapsed time.Duration) error
}

// Interactive payloads also consume key events.
type Interactive interface {
	Payload
	// Event handles ev and repaints what it changed. The host flushes the
	// buffer whenever the response is not gui.RespNone.
	Event(buf *gfx.Buffer, ev input.Event) (gui.Resp, error)
}

// Options tune the payloads.
type Options struct {
	// Opaque draws the arc shapes without translucency.
	Opaque bool
	// FrameSamples is the number of frames the FPS counters average.
	FrameSamples int

	ArcCount   int
	ArcSpacing float64
	ArcRadius  float64
	ArcOutline bool

	// GUIChildren selects the 5 or 6 widget variant of the grid.
	GUIChildren int
	// TextPasses is the number of overlapping text layers.
	TextPasses int
}

// DefaultOptions returns the stock options.
func DefaultOptions() Options {
	return Options{
		FrameSamples: 128,
		ArcCount:     10,
		ArcSpacing:   60,
		ArcRadius:    200,
		ArcOutline:   true,
		GUIChildren:  6,
		TextPasses:   8,
	}
}

// New builds the payload for mode.
func New(mode Mode, set *fonts.Set, opts Options) (Payload, error) {
	switch mode {
	case ModeGUI:
		return NewGUI(set, opts), nil
	case ModeArcs:
		return NewArcs(set, opts), nil
	case ModeText:
		return NewText(set, opts), nil
	case ModeSprites:
		return NewSprites(set), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
}
