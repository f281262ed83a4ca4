//go:build sdl
// +build sdl

package platforms

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// Key slots handed to Dear ImGui. Signals use their own value as the slot;
// the two keys the signal vocabulary folds together get slots of their own.
const (
	slotSpace     = 32
	slotEscape    = 33
	slotModifiers = 40
)

var modifierBits = [...]input.Mod{
	input.ModLShift, input.ModRShift,
	input.ModLCtrl, input.ModRCtrl,
	input.ModLAlt, input.ModRAlt,
}

var imguiKeys = map[int]int{
	imgui.KeyUpArrow:    int(input.Up),
	imgui.KeyDownArrow:  int(input.Down),
	imgui.KeyLeftArrow:  int(input.Left),
	imgui.KeyRightArrow: int(input.Right),
	imgui.KeyEnter:      int(input.Accept),
	imgui.KeyBackspace:  int(input.Back),
	imgui.KeyPageUp:     int(input.PageUp),
	imgui.KeyPageDown:   int(input.PageDown),
	imgui.KeyHome:       int(input.Home),
	imgui.KeyEnd:        int(input.End),
	imgui.KeySpace:      slotSpace,
	imgui.KeyEscape:     slotEscape,
}

// ImGui feeds the SDL window's events into Dear ImGui. Keyboard input goes
// through the same translator as the pixel buffer payloads.
type ImGui struct {
	*SDL
	io       imgui.IO
	renderer *sdl.Renderer

	time        uint64
	buttonsDown [3]bool
	shouldStop  bool
}

// NewImGui attaches io to platform's window.
func NewImGui(platform *SDL, io imgui.IO) *ImGui {
	p := &ImGui{SDL: platform, io: io}
	for imguiKey, slot := range imguiKeys {
		io.KeyMap(imguiKey, slot)
	}
	io.SetConfigFlags(imgui.ConfigFlagsNavEnableKeyboard)
	return p
}

// CreateRenderer creates the SDL renderer of the window. The window surface
// must not be used afterwards.
func (platform *ImGui) CreateRenderer() (*sdl.Renderer, error) {
	if platform.renderer != nil {
		return platform.renderer, nil
	}
	renderer, err := sdl.CreateRenderer(platform.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	platform.renderer = renderer
	return renderer, nil
}

// Dispose destroys the renderer and the window.
func (platform *ImGui) Dispose() {
	if platform.renderer != nil {
		if err := platform.renderer.Destroy(); err != nil {
			platform.log.Warn("destroying renderer", "err", err)
		}
		platform.renderer = nil
	}
	platform.SDL.Dispose()
}

// ShouldStop reports whether the user asked to quit.
func (platform *ImGui) ShouldStop() bool { return platform.shouldStop }

// ProcessEvents drains the event queue.
func (platform *ImGui) ProcessEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		platform.processEvent(event)
	}
}

// DisplaySize returns the window size in screen coordinates.
func (platform *ImGui) DisplaySize() [2]float32 {
	w, h := platform.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the renderer output size in pixels.
func (platform *ImGui) FramebufferSize() [2]float32 {
	if platform.renderer == nil {
		return platform.DisplaySize()
	}
	w, h, err := platform.renderer.GetOutputSize()
	if err != nil {
		return platform.DisplaySize()
	}
	return [2]float32{float32(w), float32(h)}
}

// NewFrame updates display size, time step and mouse state for the next
// ImGui frame.
func (platform *ImGui) NewFrame() {
	displaySize := platform.DisplaySize()
	platform.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	frequency := sdl.GetPerformanceFrequency()
	currentTime := sdl.GetPerformanceCounter()
	if platform.time > 0 {
		platform.io.SetDeltaTime(float32(currentTime-platform.time) / float32(frequency))
	} else {
		platform.io.SetDeltaTime(1.0 / 60.0)
	}
	platform.time = currentTime

	x, y, state := sdl.GetMouseState()
	platform.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		down := state&(1<<(button-1)) != 0
		platform.io.SetMouseButtonDown(i, platform.buttonsDown[i] || down)
		platform.buttonsDown[i] = false
	}
}

func (platform *ImGui) processEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		platform.shouldStop = true
	case *sdl.MouseWheelEvent:
		platform.io.AddMouseWheelDelta(float32(e.X), float32(e.Y))
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			return
		}
		switch e.Button {
		case sdl.BUTTON_LEFT:
			platform.buttonsDown[0] = true
		case sdl.BUTTON_RIGHT:
			platform.buttonsDown[1] = true
		case sdl.BUTTON_MIDDLE:
			platform.buttonsDown[2] = true
		}
	case *sdl.KeyboardEvent:
		raw := keyEvent(e)
		if input.IsQuit(raw) {
			platform.shouldStop = true
			return
		}
		if ev, ok := input.Translate(raw); ok {
			platform.feedKey(ev)
		}
	}
}

// feedKey hands a translated key to ImGui.
func (platform *ImGui) feedKey(ev input.Event) {
	platform.io.KeyShift(platform.modifier(ev.Mods, 0), platform.modifier(ev.Mods, 1))
	platform.io.KeyCtrl(platform.modifier(ev.Mods, 2), platform.modifier(ev.Mods, 3))
	platform.io.KeyAlt(platform.modifier(ev.Mods, 4), platform.modifier(ev.Mods, 5))

	slot := keySlot(ev)
	if ev.Type == input.Release {
		if slot >= 0 {
			platform.io.KeyRelease(slot)
		}
		return
	}
	if slot >= 0 {
		platform.io.KeyPress(slot)
	}
	if ev.Value >= 0x20 && ev.Value != 0x7f {
		platform.io.AddInputCharacters(string(ev.Value))
	}
}

// keySlot returns the slot of ev's key, or -1 if ImGui does not know it.
func keySlot(ev input.Event) int {
	switch {
	case ev.Input == input.Back && ev.Value == 0x1b:
		return slotEscape
	case ev.Input != input.None:
		return int(ev.Input)
	case ev.Value == ' ':
		return slotSpace
	}
	return -1
}

// modifier tracks the i-th entry of modifierBits in its slot and returns
// the slot while the modifier is held, 0 otherwise. Slot 0 is never pressed.
func (platform *ImGui) modifier(mods input.Mod, i int) int {
	slot := slotModifiers + i
	if mods&modifierBits[i] == 0 {
		platform.io.KeyRelease(slot)
		return 0
	}
	platform.io.KeyPress(slot)
	return slot
}
