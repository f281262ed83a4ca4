package demo

import (
	"fmt"
	"time"

	"github.com/inkyblackness/pax-sdl-demos/internal/fonts"
	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
)

const (
	spriteSize   = 20
	spriteCopies = 8
)

// Sprites shows one small composite sprite blitted with each of the rotation
// primitives.
type Sprites struct {
	set    *fonts.Set
	sprite *gfx.Buffer
}

// NewSprites returns the sprite showcase. The sprite itself is rendered on
// the first Resized.
func NewSprites(set *fonts.Set) *Sprites {
	return &Sprites{set: set}
}

func (s *Sprites) Name() string     { return string(ModeSprites) }
func (s *Sprites) Continuous() bool { return false }

func (s *Sprites) Resized(*gfx.Buffer) error {
	if s.sprite != nil {
		return nil
	}
	sprite, err := renderSprite(s.set)
	if err != nil {
		return fmt.Errorf("render sprite: %w", err)
	}
	s.sprite = sprite
	return nil
}

// renderSprite paints the translucent sprite: two circles, a label and a
// white outline.
func renderSprite(set *fonts.Set) (*gfx.Buffer, error) {
	sp, err := gfx.New(spriteSize, spriteSize)
	if err != nil {
		return nil, err
	}
	const c = spriteSize / 2
	steps := []func() error{
		func() error { return sp.Background(gfx.ARGB(0x00ff00ff)) },
		func() error { return sp.FillCircle(gfx.ARGB(0x7fff00ff), c, c, 10) },
		func() error { return sp.FillCircle(gfx.ARGB(0xffcf00cf), c, c, 6) },
		func() error {
			return sp.TextAligned(set.Sans.Face(9), gfx.ARGB(0xff00ff00), c, c, "the",
				gfx.AlignCenter, gfx.AlignCenter)
		},
		func() error { return sp.OutlineRect(gfx.ARGB(0xffffffff), 0, 0, spriteSize-1, spriteSize-1) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			sp.Close()
			return nil, err
		}
	}
	return sp, nil
}

func (s *Sprites) Draw(buf *gfx.Buffer, _ time.Duration) error {
	if s.sprite == nil {
		if err := s.Resized(buf); err != nil {
			return err
		}
	}
	if err := buf.Background(gfx.ARGB(0xff3f3f3f)); err != nil {
		return err
	}
	raw, err := s.sprite.Image()
	if err != nil {
		return err
	}
	for i := 0; i < spriteCopies; i++ {
		x := 5 + spriteSize*i
		if err := buf.BlitRot(s.sprite, x, 5, i); err != nil {
			return fmt.Errorf("affine blit %d: %w", i, err)
		}
		if err := buf.DrawSpriteRot(s.sprite, x, 30, i); err != nil {
			return fmt.Errorf("image draw %d: %w", i, err)
		}
		if err := buf.BlitRawRot(raw.Pix, raw.Rect.Size(), x, 55, i); err != nil {
			return fmt.Errorf("raw blit %d: %w", i, err)
		}
	}
	return buf.DrawImage(s.sprite, 5, 80)
}

// Close releases the sprite.
func (s *Sprites) Close() error {
	if s.sprite == nil {
		return nil
	}
	err := s.sprite.Close()
	s.sprite = nil
	return err
}
