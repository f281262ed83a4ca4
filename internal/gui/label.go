package gui

import (
	"image"

	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// Label is static text. It never takes the selection.
type Label struct {
	Elem
	Text string
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{Elem: Elem{Kind: KindLabel}, Text: text}
}

func (l *Label) MinSize(th *Theme) image.Point { return th.boxSize(l.Text) }

func (l *Label) Place(r image.Rectangle, _ *Theme) {
	l.Pos, l.Size = r.Min, r.Size()
}

func (l *Label) Draw(buf *gfx.Buffer, th *Theme) error {
	r := l.Rect()
	if err := th.clearRect(buf, r); err != nil {
		return err
	}
	return buf.TextAligned(th.Face, th.fg(&l.Elem),
		float64(r.Min.X+th.Padding+1), float64(r.Min.Y+r.Dy()/2),
		l.Text, gfx.AlignBegin, gfx.AlignCenter)
}

func (l *Label) Event(input.Event) Resp { return RespNone }
