package gfx

import (
	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// AHSV builds a color from 8-bit alpha, hue, saturation and value. Hue wraps
// around every 256 steps, so callers may pass an ever-growing counter.
func AHSV(a, h, s, v int) gg.RGBA {
	hue := float64(((h%256)+256)%256) * 360 / 256
	c := colorful.Hsv(hue, unit(s), unit(v))
	r, g, bl := c.Clamped().RGB255()
	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(bl) / 255,
		A: unit(a),
	}
}

// ARGB converts a packed 0xAARRGGBB value.
func ARGB(v uint32) gg.RGBA {
	return gg.RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(v>>24) / 255,
	}
}

func unit(v int) float64 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 1
	}
	return float64(v) / 255
}
