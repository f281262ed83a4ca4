package gfx

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Quarter-turn sine and cosine, exact so rotated rows stay pixel aligned.
var (
	quarterCos = [4]float64{1, 0, -1, 0}
	quarterSin = [4]float64{0, 1, 0, -1}
)

func quarter(turns int) int { return ((turns % 4) + 4) % 4 }

// rotatedSize returns the bounding size of a w×h image after turns quarter
// turns.
func rotatedSize(w, h, turns int) (int, int) {
	if quarter(turns)%2 == 1 {
		return h, w
	}
	return w, h
}

// RotateQuarter returns a copy of src rotated clockwise by turns quarter
// turns.
func RotateQuarter(src *image.NRGBA, turns int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dw, dh := rotatedSize(w, h, turns)
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	q := quarter(turns)
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			var dx, dy int
			switch q {
			case 0:
				dx, dy = sx, sy
			case 1:
				dx, dy = h-1-sy, sx
			case 2:
				dx, dy = w-1-sx, h-1-sy
			case 3:
				dx, dy = sy, w-1-sx
			}
			si := src.PixOffset(b.Min.X+sx, b.Min.Y+sy)
			di := dst.PixOffset(dx, dy)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}

// quarterAff3 maps a w×h source onto a destination whose rotated top-left
// corner lands on (x, y).
func quarterAff3(w, h, x, y, turns int) f64.Aff3 {
	q := quarter(turns)
	c, s := quarterCos[q], quarterSin[q]
	dw, dh := rotatedSize(w, h, turns)
	cx, cy := float64(w)/2, float64(h)/2
	ox, oy := float64(x)+float64(dw)/2, float64(y)+float64(dh)/2
	return f64.Aff3{
		c, -s, ox - c*cx + s*cy,
		s, c, oy - s*cx - c*cy,
	}
}

// BlitRot copies sprite into b rotated by turns quarter turns with its
// top-left corner at (x, y). Destination pixels are replaced, not blended.
func (b *Buffer) BlitRot(sprite *Buffer, x, y, turns int) error {
	dst, err := b.Image()
	if err != nil {
		return err
	}
	src, err := sprite.Image()
	if err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	m := quarterAff3(src.Rect.Dx(), src.Rect.Dy(), x, y, turns)
	xdraw.NearestNeighbor.Transform(dst, m, src, src.Rect, xdraw.Src, nil)
	return nil
}

// DrawSpriteRot draws sprite rotated by turns quarter turns, alpha blended.
func (b *Buffer) DrawSpriteRot(sprite *Buffer, x, y, turns int) error {
	if b.closed {
		return ErrClosed
	}
	src, err := sprite.Image()
	if err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	img := gg.ImageBufFromImage(RotateQuarter(src, turns))
	b.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             float64(x),
		Y:             float64(y),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// BlitRawRot copies raw RGBA bytes of the given size into b rotated by turns
// quarter turns. Pixels falling outside b are clipped.
func (b *Buffer) BlitRawRot(pix []byte, size image.Point, x, y, turns int) error {
	if b.closed {
		return ErrClosed
	}
	if len(pix) < 4*size.X*size.Y {
		return fmt.Errorf("gfx: raw blit of %dx%d needs %d bytes, got %d",
			size.X, size.Y, 4*size.X*size.Y, len(pix))
	}
	src := &image.NRGBA{Pix: pix, Stride: 4 * size.X, Rect: image.Rect(0, 0, size.X, size.Y)}
	rot := RotateQuarter(src, turns)
	dst := b.pm.Data()
	bw, bh := b.pm.Width(), b.pm.Height()
	rw, rh := rot.Rect.Dx(), rot.Rect.Dy()
	for ry := 0; ry < rh; ry++ {
		dy := y + ry
		if dy < 0 || dy >= bh {
			continue
		}
		for rx := 0; rx < rw; rx++ {
			dx := x + rx
			if dx < 0 || dx >= bw {
				continue
			}
			si := rot.PixOffset(rx, ry)
			di := 4 * (dy*bw + dx)
			copy(dst[di:di+4], rot.Pix[si:si+4])
		}
	}
	return nil
}

// DrawImage draws sprite unrotated, alpha blended, at (x, y).
func (b *Buffer) DrawImage(sprite *Buffer, x, y int) error {
	return b.DrawSpriteRot(sprite, x, y, 0)
}
