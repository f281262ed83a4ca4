package gui

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
)

// Palette holds the colors of one theme variant.
type Palette struct {
	Bg        gg.RGBA
	Fg        gg.RGBA
	InputBg   gg.RGBA
	ButtonBg  gg.RGBA
	Border    gg.RGBA
	Highlight gg.RGBA
	Active    gg.RGBA
	Inactive  gg.RGBA
}

// Theme is the visual style shared by a tree.
type Theme struct {
	Palette Palette
	Face    text.Face

	Padding     int // inner padding of widgets
	Gap         int // space between grid cells
	BorderWidth float64
	Rounding    float64
}

// DefaultTheme returns the stock theme drawing text with face.
func DefaultTheme(face text.Face) *Theme {
	return &Theme{
		Palette: Palette{
			Bg:        gfx.ARGB(0xffffffff),
			Fg:        gfx.ARGB(0xff000000),
			InputBg:   gfx.ARGB(0xffffffff),
			ButtonBg:  gfx.ARGB(0xffdfdfdf),
			Border:    gfx.ARGB(0xff7f7f7f),
			Highlight: gfx.ARGB(0xff00afff),
			Active:    gfx.ARGB(0xff0000ff),
			Inactive:  gfx.ARGB(0xffafafaf),
		},
		Face:        face,
		Padding:     4,
		Gap:         4,
		BorderWidth: 1,
		Rounding:    3,
	}
}

// textSize measures s in the theme face, rounded up to whole pixels.
func (th *Theme) textSize(s string) image.Point {
	if th.Face == nil {
		return image.Point{}
	}
	w := th.Face.Advance(s)
	h := th.Face.Metrics().LineHeight()
	return image.Pt(int(math.Ceil(w)), int(math.Ceil(h)))
}

// boxSize is the size of a bordered widget showing s.
func (th *Theme) boxSize(s string) image.Point {
	ts := th.textSize(s)
	return ts.Add(image.Pt(2*th.Padding+2, 2*th.Padding+2))
}

// fg picks the text color for a node's state.
func (th *Theme) fg(e *Elem) gg.RGBA {
	if e.Has(Inactive) {
		return th.Palette.Inactive
	}
	return th.Palette.Fg
}

// border picks the border color for a node's state.
func (th *Theme) border(e *Elem) gg.RGBA {
	switch {
	case e.Has(Active):
		return th.Palette.Active
	case e.Has(Highlight):
		return th.Palette.Highlight
	}
	return th.Palette.Border
}

// drawBox paints a filled, bordered rectangle.
func (th *Theme) drawBox(buf *gfx.Buffer, r image.Rectangle, fill, border gg.RGBA) error {
	dc, err := buf.Context()
	if err != nil {
		return err
	}
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	dc.SetColor(fill.Color())
	dc.DrawRoundedRectangle(x, y, w, h, th.Rounding)
	if err := dc.Fill(); err != nil {
		return err
	}
	half := th.BorderWidth / 2
	dc.SetColor(border.Color())
	dc.SetLineWidth(th.BorderWidth)
	dc.DrawRoundedRectangle(x+half, y+half, w-th.BorderWidth, h-th.BorderWidth, th.Rounding)
	return dc.Stroke()
}

// clearRect fills r with the background color.
func (th *Theme) clearRect(buf *gfx.Buffer, r image.Rectangle) error {
	return buf.FillRect(th.Palette.Bg, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}
