// Package gfx owns the pixel buffer the demos draw into and the few drawing
// helpers gg does not provide directly.
package gfx

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// ErrClosed is returned when drawing through a buffer that was torn down.
var ErrClosed = errors.New("gfx: buffer closed")

// Buffer is a straight-alpha RGBA pixel buffer with a gg drawing context
// bound to it.
type Buffer struct {
	pm     *gg.Pixmap
	dc     *gg.Context
	closed bool
}

// New allocates a buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gfx: invalid buffer size %dx%d", width, height)
	}
	pm := gg.NewPixmap(width, height)
	return &Buffer{
		pm: pm,
		dc: gg.NewContext(width, height, gg.WithPixmap(pm)),
	}, nil
}

// Close releases the drawing context. Any later draw fails with ErrClosed.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	err := b.dc.Close()
	b.dc = nil
	b.pm = nil
	return err
}

// Closed reports whether Close has been called.
func (b *Buffer) Closed() bool { return b.closed }

// Width returns the width in pixels, 0 once closed.
func (b *Buffer) Width() int {
	if b.closed {
		return 0
	}
	return b.pm.Width()
}

// Height returns the height in pixels, 0 once closed.
func (b *Buffer) Height() int {
	if b.closed {
		return 0
	}
	return b.pm.Height()
}

// Dims returns the buffer size as a point.
func (b *Buffer) Dims() image.Point {
	return image.Pt(b.Width(), b.Height())
}

// Pixels returns the raw RGBA bytes, row-major with a stride of 4*Width.
func (b *Buffer) Pixels() []byte {
	if b.closed {
		return nil
	}
	return b.pm.Data()
}

// Size returns the byte size of Pixels.
func (b *Buffer) Size() int { return len(b.Pixels()) }

// Context returns the drawing context.
func (b *Buffer) Context() (*gg.Context, error) {
	if b.closed {
		return nil, ErrClosed
	}
	return b.dc, nil
}

// Image wraps the pixel bytes without copying.
func (b *Buffer) Image() (*image.NRGBA, error) {
	if b.closed {
		return nil, ErrClosed
	}
	return &image.NRGBA{
		Pix:    b.pm.Data(),
		Stride: 4 * b.pm.Width(),
		Rect:   image.Rect(0, 0, b.pm.Width(), b.pm.Height()),
	}, nil
}

// Background fills the whole buffer with col, ignoring the transform.
func (b *Buffer) Background(col gg.RGBA) error {
	if b.closed {
		return ErrClosed
	}
	b.dc.ClearWithColor(col)
	return nil
}

// Reset drops any transform left behind by a previous draw.
func (b *Buffer) Reset() error {
	if b.closed {
		return ErrClosed
	}
	b.dc.Identity()
	b.dc.ClearPath()
	return nil
}

// Push saves the current transform.
func (b *Buffer) Push() {
	if !b.closed {
		b.dc.Push()
	}
}

// Pop restores the transform saved by the matching Push.
func (b *Buffer) Pop() {
	if !b.closed {
		b.dc.Pop()
	}
}

// Translate moves the origin by (x, y).
func (b *Buffer) Translate(x, y float64) {
	if !b.closed {
		b.dc.Translate(x, y)
	}
}

// Rotate rotates the coordinate system by angle radians, clockwise on screen.
func (b *Buffer) Rotate(angle float64) {
	if !b.closed {
		b.dc.Rotate(angle)
	}
}
