package gfx

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmptySize(t *testing.T) {
	_, err := New(0, 10)
	require.Error(t, err)
	_, err = New(10, -1)
	require.Error(t, err)
}

func TestBuffer_DimsAndPixels(t *testing.T) {
	b, err := New(32, 16)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, image.Pt(32, 16), b.Dims())
	assert.Equal(t, 32*16*4, b.Size())
	assert.Len(t, b.Pixels(), b.Size())
}

func TestBuffer_ClosedRejectsDrawing(t *testing.T) {
	b, err := New(8, 8)
	require.NoError(t, err)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close(), "close is idempotent")

	assert.True(t, b.Closed())
	assert.Nil(t, b.Pixels())
	assert.Equal(t, image.Point{}, b.Dims())
	assert.ErrorIs(t, b.Background(gg.Black), ErrClosed)
	assert.ErrorIs(t, b.FillRect(gg.White, 0, 0, 1, 1), ErrClosed)
	assert.ErrorIs(t, b.Reset(), ErrClosed)
	_, err = b.Context()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = b.Image()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBuffer_Background(t *testing.T) {
	b, err := New(4, 4)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Background(ARGB(0xff102030)))
	pix := b.Pixels()
	for i := 0; i < len(pix); i += 4 {
		require.Equal(t, []byte{0x10, 0x20, 0x30, 0xff}, pix[i:i+4])
	}
}

func TestARGB(t *testing.T) {
	c := ARGB(0x80ff0040)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 64.0/255, c.B, 1e-9)
	assert.InDelta(t, 128.0/255, c.A, 1e-9)
}

func TestAHSV(t *testing.T) {
	red := AHSV(255, 0, 255, 255)
	assert.InDelta(t, 1.0, red.R, 1e-9)
	assert.InDelta(t, 0.0, red.G, 1e-9)
	assert.InDelta(t, 0.0, red.B, 1e-9)
	assert.InDelta(t, 1.0, red.A, 1e-9)

	// Hue wraps every 256 steps.
	assert.Equal(t, AHSV(127, 40, 255, 255), AHSV(127, 40+256*3, 255, 255))

	grey := AHSV(255, 99, 0, 255)
	assert.InDelta(t, 1.0, grey.R, 1e-9)
	assert.InDelta(t, 1.0, grey.G, 1e-9)
	assert.InDelta(t, 1.0, grey.B, 1e-9)
}

// numbered returns a w×h image whose pixel (x, y) has red x and green y.
func numbered(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+3] = byte(x), byte(y), 0xff
		}
	}
	return img
}

func TestRotateQuarter(t *testing.T) {
	src := numbered(3, 2)

	r1 := RotateQuarter(src, 1)
	require.Equal(t, image.Rect(0, 0, 2, 3), r1.Rect)
	// Clockwise: the bottom-left source pixel becomes the top-left.
	assert.Equal(t, []byte{0, 1, 0, 0xff}, r1.Pix[r1.PixOffset(0, 0):r1.PixOffset(0, 0)+4])

	r2 := RotateQuarter(src, 2)
	assert.Equal(t, []byte{2, 1, 0, 0xff}, r2.Pix[0:4])

	assert.Equal(t, src.Pix, RotateQuarter(src, 4).Pix)
	assert.Equal(t, RotateQuarter(src, 3).Pix, RotateQuarter(src, -1).Pix)
	assert.Equal(t, src.Pix, RotateQuarter(RotateQuarter(src, 1), 3).Pix)
}

func TestBlitRot_MatchesRotateQuarter(t *testing.T) {
	sprite, err := New(4, 4)
	require.NoError(t, err)
	defer sprite.Close()
	copy(sprite.Pixels(), numbered(4, 4).Pix)

	for turns := 0; turns < 4; turns++ {
		dst, err := New(8, 8)
		require.NoError(t, err)
		require.NoError(t, dst.BlitRot(sprite, 2, 3, turns))

		img, err := sprite.Image()
		require.NoError(t, err)
		want := RotateQuarter(img, turns)
		got, err := dst.Image()
		require.NoError(t, err)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				assert.Equalf(t, want.NRGBAAt(x, y), got.NRGBAAt(x+2, y+3), "turn %d at %d,%d", turns, x, y)
			}
		}
		require.NoError(t, dst.Close())
	}
}

func TestBlitRawRot_ClipsAtEdges(t *testing.T) {
	dst, err := New(3, 3)
	require.NoError(t, err)
	defer dst.Close()

	src := numbered(2, 2)
	require.NoError(t, dst.BlitRawRot(src.Pix, image.Pt(2, 2), 2, 2, 0))
	got, err := dst.Image()
	require.NoError(t, err)
	assert.Equal(t, src.NRGBAAt(0, 0), got.NRGBAAt(2, 2))

	require.NoError(t, dst.BlitRawRot(src.Pix, image.Pt(2, 2), -1, -1, 0))
	assert.Equal(t, src.NRGBAAt(1, 1), got.NRGBAAt(0, 0))

	assert.Error(t, dst.BlitRawRot(src.Pix[:8], image.Pt(2, 2), 0, 0, 0))
}

func TestBlitRot_ClosedSprite(t *testing.T) {
	dst, err := New(4, 4)
	require.NoError(t, err)
	defer dst.Close()
	sprite, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, sprite.Close())

	assert.ErrorIs(t, dst.BlitRot(sprite, 0, 0, 1), ErrClosed)
	assert.ErrorIs(t, dst.DrawSpriteRot(sprite, 0, 0, 1), ErrClosed)
}

func TestSector_FillsOnlyItsSweep(t *testing.T) {
	b, err := New(40, 40)
	require.NoError(t, err)
	defer b.Close()
	require.NoError(t, b.Background(ARGB(0xff000000)))

	// The lower half disc, drawn with the angles reversed.
	require.NoError(t, b.Sector(ARGB(0xffffffff), 20, 20, 15, 3.14159265, 0))
	img, err := b.Image()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), img.NRGBAAt(20, 30).R, "inside the slice")
	assert.Equal(t, uint8(0x00), img.NRGBAAt(20, 10).R, "outside the slice")
	assert.Equal(t, uint8(0x00), img.NRGBAAt(20, 38).R, "beyond the radius")

	assert.NoError(t, b.Sector(ARGB(0xffffffff), 20, 20, 15, 1, 1), "empty sweep")
}
