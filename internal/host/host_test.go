package host

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkyblackness/pax-sdl-demos/internal/demo"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/gui"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

type fakeWindow struct {
	w, h     int
	presents int
	lastSize [2]int
	fixed    [][2]int
}

func (f *fakeWindow) DrawableSize() (int, int) { return f.w, f.h }

func (f *fakeWindow) Present(pix []byte, w, h int) error {
	if len(pix) != 4*w*h {
		return errors.New("short frame")
	}
	f.presents++
	f.lastSize = [2]int{w, h}
	return nil
}

type fixingWindow struct{ fakeWindow }

func (f *fixingWindow) FixSize(w, h int) error {
	f.fixed = append(f.fixed, [2]int{w, h})
	f.w, f.h = w, h
	return nil
}

// recorder is a payload that remembers every buffer it was handed.
type recorder struct {
	continuous bool
	resized    []*gfx.Buffer
	draws      int
	resp       gui.Resp
	events     []input.Event
}

func (r *recorder) Name() string     { return "recorder" }
func (r *recorder) Continuous() bool { return r.continuous }

func (r *recorder) Resized(buf *gfx.Buffer) error {
	r.resized = append(r.resized, buf)
	return nil
}

func (r *recorder) Draw(buf *gfx.Buffer, _ time.Duration) error {
	r.draws++
	return buf.Background(gfx.ARGB(0xff000000))
}

type interactive struct{ recorder }

func (r *interactive) Event(buf *gfx.Buffer, ev input.Event) (gui.Resp, error) {
	r.events = append(r.events, ev)
	return r.resp, nil
}

type scripted struct {
	events []Event
	waits  int
}

func (s *scripted) next() (Event, bool) {
	if len(s.events) == 0 {
		return Event{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func (s *scripted) Wait() (Event, error) {
	s.waits++
	ev, ok := s.next()
	if !ok {
		return Event{Kind: EventQuit}, nil
	}
	return ev, nil
}

func (s *scripted) Poll() (Event, bool) { return s.next() }

func TestResize_RecreatesBuffer(t *testing.T) {
	win := &fakeWindow{w: 100, h: 50}
	p := &recorder{}
	h := New(win, p, Options{})
	require.NoError(t, h.Resize())
	first := h.Buffer()
	assert.Equal(t, 100, first.Width())
	assert.Equal(t, 1, win.presents)

	win.w, win.h = 120, 80
	require.NoError(t, h.HandleWindow(WindowResized))
	second := h.Buffer()
	assert.NotSame(t, first, second)
	assert.True(t, first.Closed())
	assert.ErrorIs(t, first.Background(gfx.ARGB(0)), gfx.ErrClosed)
	assert.Equal(t, [2]int{120, 80}, win.lastSize)
	assert.Equal(t, []*gfx.Buffer{first, second}, p.resized)
	assert.Equal(t, 2, p.draws)
}

func TestHandleWindow_SameSizeIsIgnored(t *testing.T) {
	win := &fakeWindow{w: 100, h: 50}
	h := New(win, &recorder{}, Options{})
	require.NoError(t, h.Resize())
	buf := h.Buffer()
	require.NoError(t, h.HandleWindow(WindowSizeChanged))
	assert.Same(t, buf, h.Buffer())
	assert.Equal(t, 1, win.presents)
}

func TestHandleWindow_FixedOnlyOnFocus(t *testing.T) {
	win := &fixingWindow{fakeWindow{w: 800, h: 480}}
	h := New(win, &recorder{}, Options{Fixed: true, Width: 800, Height: 480})
	require.NoError(t, h.Resize())
	buf := h.Buffer()

	win.w, win.h = 1600, 960
	require.NoError(t, h.HandleWindow(WindowResized))
	assert.Same(t, buf, h.Buffer(), "resize events are ignored in fixed mode")

	win.w, win.h = 801, 482
	require.NoError(t, h.HandleWindow(WindowFocusGained))
	assert.Same(t, buf, h.Buffer(), "within tolerance")

	win.w, win.h = 1600, 960
	require.NoError(t, h.HandleWindow(WindowFocusGained))
	assert.NotSame(t, buf, h.Buffer())
	assert.Equal(t, 800, h.Buffer().Width())
	assert.Equal(t, [][2]int{{800, 480}, {800, 480}}, win.fixed)
}

func TestHandleKey_FlushesOnCapture(t *testing.T) {
	win := &fakeWindow{w: 10, h: 10}
	p := &interactive{}
	h := New(win, p, Options{})
	require.NoError(t, h.Resize())

	quit, err := h.HandleKey(input.KeyEvent{Sym: input.KeyDown, Down: true})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 1, win.presents, "RespNone does not flush")

	p.resp = gui.RespCapturedErr
	_, err = h.HandleKey(input.KeyEvent{Sym: input.KeyDown, Down: true})
	require.NoError(t, err)
	assert.Equal(t, 2, win.presents)

	// Dropped events never reach the payload.
	_, err = h.HandleKey(input.KeyEvent{Sym: 0x40000100, Down: true})
	require.NoError(t, err)
	assert.Len(t, p.events, 2)
}

func TestHandleKey_CtrlQ(t *testing.T) {
	win := &fakeWindow{w: 10, h: 10}
	h := New(win, &interactive{}, Options{})
	require.NoError(t, h.Resize())

	quit, err := h.HandleKey(input.KeyEvent{Sym: input.KeyQ, Mod: input.ModLCtrl, Down: true})
	require.NoError(t, err)
	assert.True(t, quit)

	// Payloads without input ignore keys entirely.
	h = New(win, &recorder{}, Options{})
	quit, err = h.HandleKey(input.KeyEvent{Sym: input.KeyQ, Mod: input.ModLCtrl, Down: true})
	require.NoError(t, err)
	assert.False(t, quit)
}

func TestRun_EventDriven(t *testing.T) {
	win := &fakeWindow{w: 10, h: 10}
	p := &interactive{}
	p.resp = gui.RespCaptured
	src := &scripted{events: []Event{
		{Kind: EventKey, Key: input.KeyEvent{Sym: input.KeyUp, Down: true}},
		{Kind: EventKey, Key: input.KeyEvent{Sym: input.KeyUp}},
	}}
	h := New(win, p, Options{})
	require.NoError(t, h.Run(src))
	assert.Equal(t, 3, src.waits)
	assert.Equal(t, 1, p.draws, "only the initial frame is drawn")
	assert.Equal(t, 3, win.presents)
}

func TestRun_ContinuousDrawsEachIteration(t *testing.T) {
	win := &fakeWindow{w: 10, h: 10}
	p := &recorder{continuous: true}
	src := &scripted{events: []Event{{Kind: EventWindow, Window: WindowOther}}}
	clock := time.Unix(0, 0)
	h := New(win, p, Options{Now: func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}})

	require.NoError(t, h.Run(&countingSource{src: src, after: 3, p: p}))
	assert.Equal(t, 0, src.waits)
	assert.Equal(t, 1+3, p.draws)
}

// countingSource quits once the payload has drawn more than after frames.
type countingSource struct {
	src   *scripted
	after int
	p     *recorder
}

func (c *countingSource) Wait() (Event, error) { return c.src.Wait() }

func (c *countingSource) Poll() (Event, bool) {
	if ev, ok := c.src.Poll(); ok {
		return ev, true
	}
	if c.p.draws > c.after {
		return Event{Kind: EventQuit}, true
	}
	return Event{}, false
}

func TestFlush_BeforeResize(t *testing.T) {
	h := New(&fakeWindow{w: 1, h: 1}, &recorder{}, Options{})
	assert.ErrorIs(t, h.Flush(), gfx.ErrClosed)
}

func TestInterfaces(t *testing.T) {
	var _ demo.Interactive = (*demo.GUI)(nil)
	var _ demo.Payload = (*recorder)(nil)
	var _ SizeFixer = (*fixingWindow)(nil)
}
