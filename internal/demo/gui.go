package demo

import (
	"time"

	"github.com/inkyblackness/pax-sdl-demos/internal/fonts"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/gui"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// GUI is the widget grid payload.
type GUI struct {
	Root  *gui.Grid
	Theme *gui.Theme

	// Presses counts button callbacks, Changes counts committed dropdown
	// selections. Both are for whoever wants to observe the grid.
	Presses int
	Changes int
}

// NewGUI builds the sample widget grid. opts.GUIChildren selects the five or
// six widget variant; the sixth is a second dropdown.
func NewGUI(set *fonts.Set, opts Options) *GUI {
	g := &GUI{Theme: gui.DefaultTheme(set.Sans.Face(0))}

	name := gui.NewTextbox("")
	ok := gui.NewButton("OK", func(*gui.Button) error {
		g.Presses++
		return nil
	})
	lang := gui.NewDropdown("English", "Deutsch", "Français")
	lang.OnChange = g.changed
	children := []gui.Node{
		gui.NewLabel("Name"),
		name,
		ok,
		gui.NewLabel("Language"),
		lang,
	}
	if opts.GUIChildren >= 6 {
		size := gui.NewDropdown("Small", "Medium", "Large")
		size.Selected = 1
		size.OnChange = g.changed
		children = append(children, size)
	}
	g.Root = gui.NewGrid(3, 2, children...)
	return g
}

func (g *GUI) changed(*gui.Dropdown) error {
	g.Changes++
	return nil
}

func (g *GUI) Name() string     { return string(ModeGUI) }
func (g *GUI) Continuous() bool { return false }

func (g *GUI) Resized(buf *gfx.Buffer) error {
	gui.CalcLayout(buf.Dims(), g.Root, g.Theme)
	return nil
}

func (g *GUI) Draw(buf *gfx.Buffer, _ time.Duration) error {
	if err := buf.Background(g.Theme.Palette.Bg); err != nil {
		return err
	}
	return gui.Draw(buf, g.Root, g.Theme)
}

// Event routes ev into the grid and repaints what changed. The caller
// should flush whenever the response is not gui.RespNone.
func (g *GUI) Event(buf *gfx.Buffer, ev input.Event) (gui.Resp, error) {
	resp := gui.Event(buf.Dims(), g.Root, g.Theme, ev)
	if resp == gui.RespNone {
		return resp, nil
	}
	if g.Root.Has(gui.Dirty) {
		if err := buf.Background(g.Theme.Palette.Bg); err != nil {
			return resp, err
		}
	}
	if err := gui.Redraw(buf, g.Root, g.Theme); err != nil {
		return resp, err
	}
	return resp, nil
}
