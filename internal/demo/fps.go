package demo

import (
	"fmt"
	"time"

	"github.com/gogpu/gg/text"

	"github.com/inkyblackness/pax-sdl-demos/internal/frametime"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
)

// fpsCounter draws the running frame rate in the top-left corner.
type fpsCounter struct {
	est  *frametime.Estimator
	face text.Face
	last time.Duration
}

func newFPSCounter(face text.Face, samples int) *fpsCounter {
	return &fpsCounter{est: frametime.New(samples), face: face}
}

// draw records the frame ending at elapsed and paints the estimate.
func (f *fpsCounter) draw(buf *gfx.Buffer, elapsed time.Duration) error {
	rate := f.est.Push(elapsed - f.last)
	f.last = elapsed
	return buf.Text(f.face, gfx.ARGB(0xffffffff), 5, 5, fmt.Sprintf("%6.1f FPS", rate))
}
