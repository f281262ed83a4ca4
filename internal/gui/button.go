package gui

import (
	"image"

	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// Button runs OnPress when accepted.
type Button struct {
	Elem
	Text string
	// OnPress may be nil. A non-nil error turns the response into
	// RespCapturedErr.
	OnPress func(b *Button) error

	pressed bool
}

// NewButton returns a button labelled text.
func NewButton(text string, onPress func(b *Button) error) *Button {
	return &Button{Elem: Elem{Kind: KindButton}, Text: text, OnPress: onPress}
}

// Pressed reports whether Accept is currently held on the button.
func (b *Button) Pressed() bool { return b.pressed }

func (b *Button) MinSize(th *Theme) image.Point { return th.boxSize(b.Text) }

func (b *Button) Place(r image.Rectangle, _ *Theme) {
	b.Pos, b.Size = r.Min, r.Size()
}

func (b *Button) Draw(buf *gfx.Buffer, th *Theme) error {
	r := b.Rect()
	if err := th.clearRect(buf, r); err != nil {
		return err
	}
	fill := th.Palette.ButtonBg
	if b.pressed {
		fill = th.Palette.Highlight
	}
	if err := th.drawBox(buf, r, fill, th.border(&b.Elem)); err != nil {
		return err
	}
	return buf.TextAligned(th.Face, th.fg(&b.Elem),
		float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2),
		b.Text, gfx.AlignCenter, gfx.AlignCenter)
}

func (b *Button) Event(ev input.Event) Resp {
	if ev.Input != input.Accept || b.Has(Inactive) {
		return RespNone
	}
	switch ev.Type {
	case input.Press:
		b.pressed = true
		b.markDirty()
		if b.OnPress != nil {
			if err := b.OnPress(b); err != nil {
				return RespCapturedErr
			}
		}
		return RespCaptured
	case input.Hold:
		return RespCaptured
	case input.Release:
		if !b.pressed {
			return RespNone
		}
		b.pressed = false
		b.markDirty()
		return RespCaptured
	}
	return RespNone
}
