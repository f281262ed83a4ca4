package demo

import (
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/inkyblackness/pax-sdl-demos/internal/fonts"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
)

// Arcs is the animated arc demo: a row of pie slices, each with a square
// riding on its start and a triangle on its end.
type Arcs struct {
	opts Options
	fps  *fpsCounter
}

// NewArcs returns the arc demo.
func NewArcs(set *fonts.Set, opts Options) *Arcs {
	return &Arcs{opts: opts, fps: newFPSCounter(set.Mono.Face(36), opts.FrameSamples)}
}

func (a *Arcs) Name() string                 { return string(ModeArcs) }
func (a *Arcs) Continuous() bool             { return true }
func (a *Arcs) Resized(buf *gfx.Buffer) error { return nil }

// arcAngles returns the three angles of the animation at elapsed. a0 moves
// the arc start, a1 is the arc length in [-2π, 2π) and a2 spins the frame
// the arc is drawn in.
func arcAngles(elapsed time.Duration) (a0, a1, a2 float64) {
	ms := float64(elapsed.Milliseconds())
	a0 = ms / 5000 * math.Pi
	a1 = math.Mod(a0, 4*math.Pi) - 2*math.Pi
	a2 = ms / 8000 * math.Pi
	return a0, a1, a2
}

// arcColors returns the arc and fill colors at elapsed.
func arcColors(elapsed time.Duration, opaque bool) (stroke, fill gg.RGBA) {
	alpha := 127
	if opaque {
		alpha = 255
	}
	hue := int(elapsed.Milliseconds() * 255 / 8000)
	return gfx.AHSV(alpha, hue+127, 255, 255), gfx.AHSV(alpha, hue, 255, 255)
}

// arcOffsets returns the horizontal offset of each arc from the buffer
// center.
func arcOffsets(n int, dx float64) []float64 {
	out := make([]float64, n)
	if n <= 1 {
		return out
	}
	for i := range out {
		out[i] = -dx/2*float64(n-1) + dx*float64(i)
	}
	return out
}

func (a *Arcs) Draw(buf *gfx.Buffer, elapsed time.Duration) error {
	if err := buf.Background(gfx.ARGB(0xff000000)); err != nil {
		return err
	}
	a0, a1, a2 := arcAngles(elapsed)
	color0, color1 := arcColors(elapsed, a.opts.Opaque)
	r := a.opts.ArcRadius
	lw := 0.05 * r
	cx, cy := float64(buf.Width())/2, float64(buf.Height())/2

	for _, off := range arcOffsets(a.opts.ArcCount, a.opts.ArcSpacing) {
		if err := a.drawOne(buf, cx+off, cy, r, lw, a0, a1, a2, color0, color1); err != nil {
			return err
		}
	}
	return a.fps.draw(buf, elapsed)
}

func (a *Arcs) drawOne(buf *gfx.Buffer, x, y, r, lw, a0, a1, a2 float64, color0, color1 gg.RGBA) error {
	buf.Push()
	defer buf.Pop()
	buf.Translate(x, y)
	buf.Rotate(-a2)

	if err := buf.Sector(color0, 0, 0, r, a0+a2, a0+a1+a2); err != nil {
		return err
	}

	buf.Rotate(a0 + a2)
	if err := a.square(buf, r, lw, color0, color1); err != nil {
		return err
	}

	// The triangle keeps pointing the same way on screen.
	buf.Rotate(a1)
	return a.triangle(buf, r, lw, -a0-a1+math.Pi/2, color0, color1)
}

// square draws the box riding at the arc start.
func (a *Arcs) square(buf *gfx.Buffer, r, lw float64, stroke, fill gg.RGBA) error {
	buf.Push()
	defer buf.Pop()
	buf.Translate(r, 0)
	s := 0.25 * r
	if err := buf.FillRect(fill, -s, -s, 2*s, 2*s); err != nil {
		return err
	}
	if !a.opts.ArcOutline {
		return nil
	}
	corners := [][2]float64{{-s, -s}, {-s, s}, {s, s}, {s, -s}}
	for i := range corners {
		p, q := corners[i], corners[(i+1)%len(corners)]
		if err := buf.ThickLine(stroke, p[0], p[1], q[0], q[1], lw); err != nil {
			return err
		}
	}
	return nil
}

// triangle draws the triangle riding at the arc end, turned by spin.
func (a *Arcs) triangle(buf *gfx.Buffer, r, lw, spin float64, stroke, fill gg.RGBA) error {
	buf.Push()
	defer buf.Pop()
	buf.Translate(r, 0)
	buf.Rotate(spin)
	pts := [3][2]float64{
		{0.25 * r, 0},
		{-0.125 * r, 0.2165 * r},
		{-0.125 * r, -0.2165 * r},
	}
	if err := buf.FillTri(fill, pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1]); err != nil {
		return err
	}
	if !a.opts.ArcOutline {
		return nil
	}
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		if err := buf.ThickLine(stroke, p[0], p[1], q[0], q[1], lw); err != nil {
			return err
		}
	}
	return nil
}
