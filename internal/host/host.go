// Package host drives a payload: it owns the pixel buffer, recreates it when
// the window changes size, routes key events and flushes frames to the
// window.
package host

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/inkyblackness/pax-sdl-demos/internal/demo"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/gui"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// Window is the native window the host presents into.
type Window interface {
	// DrawableSize returns the window size in pixels.
	DrawableSize() (width, height int)
	// Present copies a straight-alpha RGBA frame onto the window.
	Present(pix []byte, width, height int) error
}

// SizeFixer is implemented by windows that can be forced back to a size in
// pixels. It is used in fixed-size mode before the buffer is recreated.
type SizeFixer interface {
	FixSize(width, height int) error
}

// EventKind tells the events of a Source apart.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventQuit
	EventWindow
	EventKey
)

// WindowChange is the subset of window events the host reacts to.
type WindowChange uint8

const (
	WindowOther WindowChange = iota
	WindowResized
	WindowSizeChanged
	WindowFocusGained
)

// Event is one item from the window system's queue.
type Event struct {
	Kind   EventKind
	Window WindowChange
	Key    input.KeyEvent
}

// Source produces window system events.
type Source interface {
	// Wait blocks for the next event.
	Wait() (Event, error)
	// Poll returns the next pending event, or false if there is none.
	Poll() (Event, bool)
}

// errQuit unwinds the loop when the user asked to quit.
var errQuit = errors.New("quit")

// Options configure a Host.
type Options struct {
	// Fixed keeps the buffer at Width×Height and only checks the window size
	// when it regains focus.
	Fixed         bool
	Width, Height int
	Logger        *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Host is the application context shared by the event loop and the payload.
type Host struct {
	win     Window
	payload demo.Payload
	opts    Options
	log     *slog.Logger
	buf     *gfx.Buffer
	start   time.Time
}

// New returns a host for payload presenting into win. Call Resize before the
// first frame.
func New(win Window, payload demo.Payload, opts Options) *Host {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Host{
		win:     win,
		payload: payload,
		opts:    opts,
		log:     log.With("mode", payload.Name()),
		start:   opts.Now(),
	}
}

// Buffer returns the current pixel buffer, nil before the first Resize.
func (h *Host) Buffer() *gfx.Buffer { return h.buf }

func (h *Host) elapsed() time.Duration { return h.opts.Now().Sub(h.start) }

// Resize tears down the buffer, recreates it at the drawable size, lets the
// payload lay itself out and flushes a full frame.
func (h *Host) Resize() error {
	if h.opts.Fixed {
		if f, ok := h.win.(SizeFixer); ok {
			if err := f.FixSize(h.opts.Width, h.opts.Height); err != nil {
				return fmt.Errorf("fix window size: %w", err)
			}
		}
	}
	if h.buf != nil {
		if err := h.buf.Close(); err != nil {
			return fmt.Errorf("close buffer: %w", err)
		}
		h.buf = nil
	}
	w, ht := h.win.DrawableSize()
	buf, err := gfx.New(w, ht)
	if err != nil {
		return fmt.Errorf("create buffer: %w", err)
	}
	h.buf = buf
	h.log.Debug("buffer resized", "width", w, "height", ht)
	if err := h.payload.Resized(buf); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := h.draw(); err != nil {
		return err
	}
	return h.Flush()
}

func (h *Host) draw() error {
	if err := h.buf.Reset(); err != nil {
		return err
	}
	if err := h.payload.Draw(h.buf, h.elapsed()); err != nil {
		return fmt.Errorf("draw %s: %w", h.payload.Name(), err)
	}
	return nil
}

// Flush copies the buffer onto the window.
func (h *Host) Flush() error {
	if h.buf == nil || h.buf.Closed() {
		return gfx.ErrClosed
	}
	if err := h.win.Present(h.buf.Pixels(), h.buf.Width(), h.buf.Height()); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// needsResize decides whether a window event invalidates the buffer.
func (h *Host) needsResize(change WindowChange) bool {
	w, ht := h.win.DrawableSize()
	if h.opts.Fixed {
		return change == WindowFocusGained &&
			(abs(w-h.opts.Width) > 2 || abs(ht-h.opts.Height) > 2)
	}
	if h.buf == nil {
		return true
	}
	return w != h.buf.Width() || ht != h.buf.Height()
}

// HandleWindow reacts to a window event, resizing when needed.
func (h *Host) HandleWindow(change WindowChange) error {
	if !h.needsResize(change) {
		return nil
	}
	return h.Resize()
}

// HandleKey routes a key event to the payload. It reports true when the
// event asks to quit.
func (h *Host) HandleKey(ev input.KeyEvent) (bool, error) {
	p, ok := h.payload.(demo.Interactive)
	if !ok {
		return false, nil
	}
	if input.IsQuit(ev) {
		return true, nil
	}
	tev, ok := input.Translate(ev)
	if !ok {
		return false, nil
	}
	resp, err := p.Event(h.buf, tev)
	if err != nil {
		return false, err
	}
	switch resp {
	case gui.RespNone:
		return false, nil
	case gui.RespCapturedErr:
		h.log.Warn("input rejected", "signal", tev.Input, "type", tev.Type, "value", tev.Value)
	}
	return false, h.Flush()
}

// Frame draws and flushes one frame of a free-running payload.
func (h *Host) Frame() error {
	if err := h.draw(); err != nil {
		return err
	}
	return h.Flush()
}

// Handle processes one event.
func (h *Host) Handle(ev Event) error {
	switch ev.Kind {
	case EventQuit:
		return errQuit
	case EventWindow:
		return h.HandleWindow(ev.Window)
	case EventKey:
		quit, err := h.HandleKey(ev.Key)
		if err != nil {
			return err
		}
		if quit {
			return errQuit
		}
	}
	return nil
}

// Run is the main loop. Event-driven payloads block on the queue, the
// others drain it and draw once per iteration. Run returns nil on quit.
func (h *Host) Run(src Source) error {
	if h.buf == nil {
		if err := h.Resize(); err != nil {
			return err
		}
	}
	err := h.loop(src)
	if errors.Is(err, errQuit) {
		h.log.Info("quit")
		return nil
	}
	return err
}

func (h *Host) loop(src Source) error {
	for {
		if !h.payload.Continuous() {
			ev, err := src.Wait()
			if err != nil {
				return err
			}
			if err := h.Handle(ev); err != nil {
				return err
			}
			continue
		}
		for {
			ev, ok := src.Poll()
			if !ok {
				break
			}
			if err := h.Handle(ev); err != nil {
				return err
			}
		}
		if err := h.Frame(); err != nil {
			return err
		}
	}
}

// Close releases the buffer.
func (h *Host) Close() error {
	if h.buf == nil {
		return nil
	}
	err := h.buf.Close()
	h.buf = nil
	return err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
