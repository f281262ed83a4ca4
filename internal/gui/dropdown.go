package gui

import (
	"image"

	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// Dropdown selects one of a fixed list of options. Accept opens the list,
// Up/Down move through it, Accept commits and Back cancels.
type Dropdown struct {
	Elem
	Options  []string
	Selected int
	// OnChange, if set, runs when a different option is committed. An error
	// turns the response into RespCapturedErr.
	OnChange func(d *Dropdown) error

	cursor int
}

// NewDropdown returns a dropdown with the first option selected.
func NewDropdown(options ...string) *Dropdown {
	return &Dropdown{Elem: Elem{Kind: KindDropdown}, Options: options}
}

// Open reports whether the option list is showing.
func (d *Dropdown) Open() bool { return d.Has(Active) }

// Cursor returns the option under the cursor while open.
func (d *Dropdown) Cursor() int { return d.cursor }

// Value returns the selected option, "" when there are none.
func (d *Dropdown) Value() string {
	if d.Selected < 0 || d.Selected >= len(d.Options) {
		return ""
	}
	return d.Options[d.Selected]
}

func (d *Dropdown) MinSize(th *Theme) image.Point {
	var s image.Point
	for _, o := range d.Options {
		if b := th.boxSize(o); b.X > s.X {
			s = b
		}
	}
	if s == (image.Point{}) {
		s = th.boxSize(" ")
	}
	// Room for the arrow.
	s.X += s.Y
	return s
}

func (d *Dropdown) Place(r image.Rectangle, _ *Theme) {
	d.Pos, d.Size = r.Min, r.Size()
}

func (d *Dropdown) Draw(buf *gfx.Buffer, th *Theme) error {
	r := d.Rect()
	if err := th.clearRect(buf, r); err != nil {
		return err
	}
	if err := th.drawBox(buf, r, th.Palette.InputBg, th.border(&d.Elem)); err != nil {
		return err
	}
	fg := th.fg(&d.Elem)
	if err := buf.TextAligned(th.Face, fg,
		float64(r.Min.X+th.Padding+1), float64(r.Min.Y+r.Dy()/2),
		d.Value(), gfx.AlignBegin, gfx.AlignCenter); err != nil {
		return err
	}
	// Arrow in a square at the right edge.
	a := float64(r.Dy()) / 4
	cx := float64(r.Max.X) - float64(r.Dy())/2
	cy := float64(r.Min.Y + r.Dy()/2)
	if err := buf.FillTri(fg, cx-a, cy-a/2, cx+a, cy-a/2, cx, cy+a/2); err != nil {
		return err
	}
	if d.Open() {
		return d.drawOverlay(buf, th)
	}
	return nil
}

// listRect is the area the open option list covers, directly below the box.
func (d *Dropdown) listRect() image.Rectangle {
	r := d.Rect()
	h := r.Dy() * len(d.Options)
	return image.Rect(r.Min.X, r.Max.Y, r.Max.X, r.Max.Y+h)
}

func (d *Dropdown) drawOverlay(buf *gfx.Buffer, th *Theme) error {
	lr := d.listRect()
	if err := th.drawBox(buf, lr, th.Palette.InputBg, th.Palette.Active); err != nil {
		return err
	}
	rowH := d.Size.Y
	for i, o := range d.Options {
		row := image.Rect(lr.Min.X, lr.Min.Y+i*rowH, lr.Max.X, lr.Min.Y+(i+1)*rowH)
		if i == d.cursor {
			inset := row.Inset(2)
			if err := buf.FillRect(th.Palette.Highlight, float64(inset.Min.X), float64(inset.Min.Y),
				float64(inset.Dx()), float64(inset.Dy())); err != nil {
				return err
			}
		}
		if err := buf.TextAligned(th.Face, th.Palette.Fg,
			float64(row.Min.X+th.Padding+1), float64(row.Min.Y+rowH/2),
			o, gfx.AlignBegin, gfx.AlignCenter); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dropdown) Event(ev input.Event) Resp {
	if d.Has(Inactive) || len(d.Options) == 0 || !isPress(ev) {
		return RespNone
	}
	if !d.Open() {
		if ev.Input == input.Accept && ev.Type == input.Press {
			d.set(Active)
			d.cursor = d.Selected
			d.markDirty()
			return RespCaptured
		}
		return RespNone
	}

	switch ev.Input {
	case input.Up:
		return d.moveCursor(d.cursor - 1)
	case input.Down:
		return d.moveCursor(d.cursor + 1)
	case input.Home, input.PageUp:
		return d.moveCursor(0)
	case input.End, input.PageDown:
		return d.moveCursor(len(d.Options) - 1)
	case input.Accept:
		if ev.Type != input.Press {
			return RespNone
		}
		prev := d.Selected
		d.Selected = d.cursor
		d.close()
		if prev != d.Selected && d.OnChange != nil {
			if err := d.OnChange(d); err != nil {
				return RespCapturedErr
			}
		}
		return RespCaptured
	case input.Back:
		d.close()
		return RespCaptured
	}
	// The open list is modal.
	return RespCaptured
}

func (d *Dropdown) moveCursor(to int) Resp {
	if to < 0 || to >= len(d.Options) {
		return RespCapturedErr
	}
	if to != d.cursor {
		d.cursor = to
		d.markDirty()
	}
	return RespCaptured
}

// close hides the list. The list was drawn outside the box, so the whole
// tree needs repainting.
func (d *Dropdown) close() {
	d.clear(Active)
	d.set(Dirty | DirtyTree)
}

func (d *Dropdown) blur() {
	if d.Open() {
		d.close()
	}
}
