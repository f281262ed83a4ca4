package gfx

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Align positions text relative to its anchor.
type Align uint8

const (
	AlignBegin Align = iota
	AlignCenter
	AlignEnd
)

func (a Align) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1
	}
	return 0
}

// FillRect fills an axis-aligned rectangle in the current transform.
func (b *Buffer) FillRect(col gg.RGBA, x, y, w, h float64) error {
	if b.closed {
		return ErrClosed
	}
	b.dc.SetColor(col.Color())
	b.dc.DrawRectangle(x, y, w, h)
	return b.dc.Fill()
}

// OutlineRect strokes a rectangle with a one pixel line.
func (b *Buffer) OutlineRect(col gg.RGBA, x, y, w, h float64) error {
	if b.closed {
		return ErrClosed
	}
	b.dc.SetColor(col.Color())
	b.dc.SetLineWidth(1)
	b.dc.DrawRectangle(x+0.5, y+0.5, w, h)
	return b.dc.Stroke()
}

// FillTri fills a triangle.
func (b *Buffer) FillTri(col gg.RGBA, x0, y0, x1, y1, x2, y2 float64) error {
	if b.closed {
		return ErrClosed
	}
	b.dc.SetColor(col.Color())
	b.dc.MoveTo(x0, y0)
	b.dc.LineTo(x1, y1)
	b.dc.LineTo(x2, y2)
	b.dc.ClosePath()
	return b.dc.Fill()
}

// ThickLine strokes a line of the given device-space width.
func (b *Buffer) ThickLine(col gg.RGBA, x0, y0, x1, y1, width float64) error {
	if b.closed {
		return ErrClosed
	}
	b.dc.SetColor(col.Color())
	b.dc.SetLineWidth(width)
	b.dc.SetLineCap(gg.LineCapRound)
	b.dc.MoveTo(x0, y0)
	b.dc.LineTo(x1, y1)
	return b.dc.Stroke()
}

// FillCircle fills a circle.
func (b *Buffer) FillCircle(col gg.RGBA, x, y, r float64) error {
	if b.closed {
		return ErrClosed
	}
	b.dc.SetColor(col.Color())
	b.dc.DrawCircle(x, y, r)
	return b.dc.Fill()
}

// Sector fills the pie slice of radius r around (x, y) between angles a0
// and a1. a1 may be smaller than a0; sweeps beyond a full turn are capped.
// The slice is built from line segments so the whole transform applies.
func (b *Buffer) Sector(col gg.RGBA, x, y, r, a0, a1 float64) error {
	if b.closed {
		return ErrClosed
	}
	sweep := a1 - a0
	if math.Abs(sweep) < 1e-6 {
		return nil
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	} else if sweep < -2*math.Pi {
		sweep = -2 * math.Pi
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 90)))
	b.dc.SetColor(col.Color())
	b.dc.ClearPath()
	b.dc.MoveTo(x, y)
	for i := 0; i <= n; i++ {
		a := a0 + sweep*float64(i)/float64(n)
		b.dc.LineTo(x+r*math.Cos(a), y+r*math.Sin(a))
	}
	b.dc.ClosePath()
	return b.dc.Fill()
}

// Text draws s with its top edge at y. The transform is not applied to text.
func (b *Buffer) Text(face text.Face, col gg.RGBA, x, y float64, s string) error {
	return b.TextAligned(face, col, x, y, s, AlignBegin, AlignBegin)
}

// TextAligned draws s anchored at (x, y) with the given alignment on each
// axis.
func (b *Buffer) TextAligned(face text.Face, col gg.RGBA, x, y float64, s string, h, v Align) error {
	if b.closed {
		return ErrClosed
	}
	if face == nil || s == "" {
		return nil
	}
	m := face.Metrics()
	w := face.Advance(s)
	x -= w * h.factor()
	y -= m.LineHeight() * v.factor()
	b.dc.SetFont(face)
	b.dc.SetColor(col.Color())
	b.dc.DrawString(s, x, y+m.Ascent)
	return nil
}
