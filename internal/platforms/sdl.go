//go:build sdl
// +build sdl

// Package platforms binds the host to SDL: a window whose surface receives
// the pixel buffer, and the event queue translated into host events.
package platforms

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/inkyblackness/pax-sdl-demos/internal/host"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

const videoDriverHint = "SDL_VIDEODRIVER"

// WindowConfig describes the window to open.
type WindowConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	// VideoDriver is passed as the SDL video driver hint. Empty selects
	// wayland when WAYLAND_DISPLAY is set and leaves SDL's default otherwise.
	VideoDriver string
	Logger      *slog.Logger
}

// SDL is the native window with its event queue.
type SDL struct {
	window *sdl.Window
	log    *slog.Logger
}

// Version returns the linked SDL version as major.minor.patch.
func Version() string {
	var v sdl.Version
	sdl.GetVersion(&v)
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// NewSDL initializes SDL video and opens the window. The calling goroutine
// is locked to its OS thread for the lifetime of the process.
func NewSDL(cfg WindowConfig) (*SDL, error) {
	runtime.LockOSThread()
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	driver := cfg.VideoDriver
	if driver == "" && os.Getenv("WAYLAND_DISPLAY") != "" {
		driver = "wayland"
	}
	if driver != "" {
		sdl.SetHint(videoDriverHint, driver)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log.Info("window opened", "sdl", Version(), "driver", driver,
		"width", cfg.Width, "height", cfg.Height, "resizable", cfg.Resizable)
	return &SDL{window: window, log: log}, nil
}

// Dispose closes the window and shuts SDL down.
func (platform *SDL) Dispose() {
	if platform.window != nil {
		if err := platform.window.Destroy(); err != nil {
			platform.log.Warn("destroying window", "err", err)
		}
		platform.window = nil
	}
	sdl.Quit()
}

// Window returns the SDL window.
func (platform *SDL) Window() *sdl.Window { return platform.window }

// DrawableSize returns the size of the window surface in pixels.
func (platform *SDL) DrawableSize() (int, int) {
	surface, err := platform.window.GetSurface()
	if err != nil {
		w, h := platform.window.GetSize()
		return int(w), int(h)
	}
	return int(surface.W), int(surface.H)
}

// Present blits a straight-alpha RGBA frame onto the window surface and
// shows it.
func (platform *SDL) Present(pix []byte, width, height int) error {
	if len(pix) < 4*width*height || width <= 0 || height <= 0 {
		return fmt.Errorf("frame of %d bytes does not hold %dx%d pixels", len(pix), width, height)
	}
	dst, err := platform.window.GetSurface()
	if err != nil {
		return fmt.Errorf("window surface: %w", err)
	}
	src, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&pix[0]),
		int32(width), int32(height), 32, int32(4*width), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return fmt.Errorf("wrap frame: %w", err)
	}
	defer src.Free()
	if err := src.SetBlendMode(sdl.BLENDMODE_NONE); err != nil {
		return err
	}
	if err := src.Blit(nil, dst, nil); err != nil {
		return fmt.Errorf("blit frame: %w", err)
	}
	return platform.window.UpdateSurface()
}

// FixSize resizes the window so that its surface measures width×height
// pixels, compensating for high-DPI scaling.
func (platform *SDL) FixSize(width, height int) error {
	pw, ph := platform.DrawableSize()
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("window has no drawable area")
	}
	lw, lh := platform.window.GetSize()
	platform.window.SetSize(int32(width)*lw/int32(pw), int32(height)*lh/int32(ph))
	return nil
}

// errNoSDLError stands in when SDL fails without setting an error string.
var errNoSDLError = errors.New("no error reported by SDL")

func wrapSDLError(op string, err error) error {
	if err == nil {
		err = errNoSDLError
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Wait blocks for the next event.
func (platform *SDL) Wait() (host.Event, error) {
	for {
		event := sdl.WaitEvent()
		if event == nil {
			return host.Event{}, wrapSDLError("waiting for event", sdl.GetError())
		}
		if ev, ok := convertEvent(event); ok {
			return ev, nil
		}
	}
}

// Poll returns the next pending event the host cares about.
func (platform *SDL) Poll() (host.Event, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := convertEvent(event); ok {
			return ev, true
		}
	}
	return host.Event{}, false
}

func convertEvent(event sdl.Event) (host.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return host.Event{Kind: host.EventQuit}, true
	case *sdl.WindowEvent:
		return host.Event{Kind: host.EventWindow, Window: windowChange(e.Event)}, true
	case *sdl.KeyboardEvent:
		return host.Event{Kind: host.EventKey, Key: keyEvent(e)}, true
	}
	return host.Event{}, false
}

func windowChange(id uint8) host.WindowChange {
	switch id {
	case sdl.WINDOWEVENT_RESIZED:
		return host.WindowResized
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		return host.WindowSizeChanged
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		return host.WindowFocusGained
	}
	return host.WindowOther
}

// keyEvent converts by cast: the input package uses SDL numbering.
func keyEvent(e *sdl.KeyboardEvent) input.KeyEvent {
	return input.KeyEvent{
		Sym:    input.Keycode(e.Keysym.Sym),
		Mod:    input.Mod(e.Keysym.Mod),
		Down:   e.Type == sdl.KEYDOWN,
		Repeat: e.Repeat != 0,
	}
}
