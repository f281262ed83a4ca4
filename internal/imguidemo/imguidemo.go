// Package imguidemo shows the sample widget grid built with Dear ImGui.
package imguidemo

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/inkyblackness/pax-sdl-demos/internal/frametime"
)

// Platform covers the windowing side of an ImGui frame.
type Platform interface {
	// ShouldStop is true once the user asked to quit.
	ShouldStop() bool
	// ProcessEvents feeds pending input into ImGui.
	ProcessEvents()
	// NewFrame prepares display size, time step and mouse state.
	NewFrame()
	DisplaySize() [2]float32
	FramebufferSize() [2]float32
}

// Renderer draws the ImGui output.
type Renderer interface {
	PreRender(clearColor [4]float32)
	Render(displaySize [2]float32, framebufferSize [2]float32, drawData imgui.DrawData)
	PostRender()
}

const sleepDuration = time.Millisecond * 10

var (
	languages = []string{"English", "Deutsch", "Français"}
	sizes     = []string{"Small", "Medium", "Large"}
)

// State is what the widgets edit.
type State struct {
	Name     string
	Language int
	Size     int
	// Sizes enables the second dropdown.
	Sizes   bool
	Presses int
}

// NewState returns the initial widget values. children selects the five or
// six widget variant.
func NewState(children int) *State {
	return &State{Size: 1, Sizes: children >= 6}
}

// selectOption commits option i of a dropdown into dst, reporting whether it
// changed.
func selectOption(dst *int, options []string, i int) bool {
	if i < 0 || i >= len(options) || *dst == i {
		return false
	}
	*dst = i
	return true
}

// Run renders frames until the platform stops.
func Run(p Platform, r Renderer, state *State, samples int, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	est := frametime.New(samples)
	clearColor := [4]float32{1, 1, 1, 1}
	last := time.Now()

	for !p.ShouldStop() {
		p.ProcessEvents()
		p.NewFrame()
		imgui.NewFrame()

		now := time.Now()
		fps := est.Push(now.Sub(last))
		last = now

		drawGrid(state, fps, log)

		imgui.Render()
		r.PreRender(clearColor)
		r.Render(p.DisplaySize(), p.FramebufferSize(), imgui.RenderedDrawData())
		r.PostRender()

		<-time.After(sleepDuration)
	}
}

func drawGrid(state *State, fps float64, log *slog.Logger) {
	imgui.SetNextWindowPos(imgui.Vec2{X: 10, Y: 10})
	imgui.Begin("PAX SDL")
	defer imgui.End()

	imgui.Text(fmt.Sprintf("%6.1f FPS", fps))
	if !imgui.BeginTable("grid", 3) {
		return
	}
	defer imgui.EndTable()

	imgui.TableNextColumn()
	imgui.Text("Name")
	imgui.TableNextColumn()
	imgui.InputText("##name", &state.Name)
	imgui.TableNextColumn()
	if imgui.Button("OK") {
		state.Presses++
		log.Info("button pressed", "name", state.Name, "presses", state.Presses)
	}

	imgui.TableNextColumn()
	imgui.Text("Language")
	imgui.TableNextColumn()
	if combo("##language", &state.Language, languages) {
		log.Info("language changed", "value", languages[state.Language])
	}
	if state.Sizes {
		imgui.TableNextColumn()
		if combo("##size", &state.Size, sizes) {
			log.Info("size changed", "value", sizes[state.Size])
		}
	}
}

func combo(label string, selected *int, options []string) bool {
	changed := false
	if imgui.BeginCombo(label, options[*selected]) {
		for i, opt := range options {
			if imgui.SelectableV(opt, i == *selected, 0, imgui.Vec2{}) {
				changed = selectOption(selected, options, i) || changed
			}
		}
		imgui.EndCombo()
	}
	return changed
}
