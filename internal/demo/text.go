package demo

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/inkyblackness/pax-sdl-demos/internal/fonts"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
)

const scrollLine = "This is a bit of text repeated very often."

// Text scrolls repeated lines in several fonts, layered in passes.
type Text struct {
	faces  []text.Face
	passes int
	offset float64
	fps    *fpsCounter
}

// NewText returns the scrolling text demo.
func NewText(set *fonts.Set, opts Options) *Text {
	t := &Text{
		passes: opts.TextPasses,
		fps:    newFPSCounter(set.Mono.Face(36), opts.FrameSamples),
	}
	for _, f := range set.Scroll() {
		t.faces = append(t.faces, f.Face(0))
	}
	return t
}

func (t *Text) Name() string                 { return string(ModeText) }
func (t *Text) Continuous() bool             { return true }
func (t *Text) Resized(buf *gfx.Buffer) error { return nil }

// totalHeight is the height of one cycle of lines, one per face.
func (t *Text) totalHeight() float64 {
	var total float64
	for _, f := range t.faces {
		total += f.Metrics().LineHeight()
	}
	return total
}

// advance moves the scroll offset by dy, keeping it in [0, total).
func (t *Text) advance(dy float64) {
	t.offset = wrapOffset(t.offset+dy, t.totalHeight())
}

func wrapOffset(off, total float64) float64 {
	if total <= 0 {
		return 0
	}
	for off >= total {
		off -= total
	}
	for off < 0 {
		off += total
	}
	return off
}

// passLayout returns the tint and origin of pass i out of n. Back passes are
// the most translucent and sit furthest up and right; the hue ramps across
// passes at full saturation.
func passLayout(i, n int, offset float64) (gg.RGBA, float64, float64) {
	col := gfx.AHSV(128+127*i/n, 255*i/n, 255, 255)
	shift := float64(n - i - 1)
	return col, shift, -(shift + offset)
}

func (t *Text) Draw(buf *gfx.Buffer, elapsed time.Duration) error {
	if err := buf.Background(gfx.ARGB(0xff000000)); err != nil {
		return err
	}
	total := t.totalHeight()
	if total > 0 {
		height := float64(buf.Height())
		n := t.passes
		for i := 0; i < n; i++ {
			col, x, y := passLayout(i, n, t.offset)
			for y < height {
				for _, f := range t.faces {
					if err := buf.Text(f, col, x, y, scrollLine); err != nil {
						return err
					}
					y += f.Metrics().LineHeight()
				}
			}
		}
	}
	t.advance(1)
	return t.fps.draw(buf, elapsed)
}
