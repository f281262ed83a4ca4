package gui

import (
	"image"
	"unicode/utf8"

	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

const keyEscape = 0x1b

// Textbox is a single line of editable text. Accept starts editing; while
// editing, characters are inserted at the cursor and Accept or Escape stops.
type Textbox struct {
	Elem
	Text string
	// OnChange, if set, runs after each edit.
	OnChange func(t *Textbox)

	cursor int // byte offset into Text
}

// NewTextbox returns a textbox holding text.
func NewTextbox(text string) *Textbox {
	return &Textbox{Elem: Elem{Kind: KindTextbox}, Text: text, cursor: len(text)}
}

// Editing reports whether the textbox owns keyboard focus.
func (t *Textbox) Editing() bool { return t.Has(Active) }

// Cursor returns the cursor position in bytes.
func (t *Textbox) Cursor() int { return t.cursor }

func (t *Textbox) MinSize(th *Theme) image.Point {
	s := th.boxSize(t.Text + "_")
	if floor := th.boxSize("MMMMMMMM"); s.X < floor.X {
		s.X = floor.X
	}
	return s
}

func (t *Textbox) Place(r image.Rectangle, _ *Theme) {
	t.Pos, t.Size = r.Min, r.Size()
}

func (t *Textbox) Draw(buf *gfx.Buffer, th *Theme) error {
	r := t.Rect()
	if err := th.clearRect(buf, r); err != nil {
		return err
	}
	if err := th.drawBox(buf, r, th.Palette.InputBg, th.border(&t.Elem)); err != nil {
		return err
	}
	x := float64(r.Min.X + th.Padding + 1)
	y := float64(r.Min.Y + r.Dy()/2)
	if err := buf.TextAligned(th.Face, th.fg(&t.Elem), x, y, t.Text, gfx.AlignBegin, gfx.AlignCenter); err != nil {
		return err
	}
	if !t.Editing() || th.Face == nil {
		return nil
	}
	cx := x + th.Face.Advance(t.Text[:t.cursor])
	h := th.Face.Metrics().LineHeight()
	return buf.ThickLine(th.Palette.Active, cx, y-h/2, cx, y+h/2, 1)
}

func (t *Textbox) Event(ev input.Event) Resp {
	if t.Has(Inactive) || !isPress(ev) {
		return RespNone
	}
	if !t.Editing() {
		if ev.Input == input.Accept && ev.Type == input.Press {
			t.set(Active)
			t.cursor = len(t.Text)
			t.markDirty()
			return RespCaptured
		}
		return RespNone
	}

	switch ev.Input {
	case input.Accept:
		// A held Enter must not end the edit it just started.
		if ev.Type != input.Press {
			return RespNone
		}
		t.stopEditing()
		return RespCaptured
	case input.Back:
		if ev.Value == keyEscape {
			t.stopEditing()
			return RespCaptured
		}
		if t.cursor == 0 {
			return RespCapturedErr
		}
		_, n := utf8.DecodeLastRuneInString(t.Text[:t.cursor])
		t.Text = t.Text[:t.cursor-n] + t.Text[t.cursor:]
		t.cursor -= n
		t.changed()
		return RespCaptured
	case input.Left:
		if t.cursor == 0 {
			return RespCapturedErr
		}
		_, n := utf8.DecodeLastRuneInString(t.Text[:t.cursor])
		t.cursor -= n
		t.markDirty()
		return RespCaptured
	case input.Right:
		if t.cursor == len(t.Text) {
			return RespCapturedErr
		}
		_, n := utf8.DecodeRuneInString(t.Text[t.cursor:])
		t.cursor += n
		t.markDirty()
		return RespCaptured
	case input.Home:
		t.cursor = 0
		t.markDirty()
		return RespCaptured
	case input.End:
		t.cursor = len(t.Text)
		t.markDirty()
		return RespCaptured
	case input.Up, input.Down, input.PageUp, input.PageDown:
		// Leave vertical movement to the enclosing grid.
		return RespNone
	}

	if ev.Value < 0x20 || ev.Value == 0x7f {
		return RespNone
	}
	s := string(ev.Value)
	t.Text = t.Text[:t.cursor] + s + t.Text[t.cursor:]
	t.cursor += len(s)
	t.changed()
	return RespCaptured
}

func (t *Textbox) stopEditing() {
	t.clear(Active)
	t.markDirty()
}

func (t *Textbox) changed() {
	t.markDirty()
	if t.OnChange != nil {
		t.OnChange(t)
	}
}

// blur ends editing when the grid moves the selection away.
func (t *Textbox) blur() {
	if t.Editing() {
		t.stopEditing()
	}
}
