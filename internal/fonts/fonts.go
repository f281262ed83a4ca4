// Package fonts loads the faces used by the demos from the Go font family.
package fonts

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Font is a named font source with the size its face is normally drawn at.
type Font struct {
	Name        string
	DefaultSize float64
	source      *text.FontSource
}

// Face returns a face of the font at size, or at its default size when size
// is not positive.
func (f *Font) Face(size float64) text.Face {
	if size <= 0 {
		size = f.DefaultSize
	}
	return f.source.Face(size)
}

// Set holds every font the demos draw with.
type Set struct {
	// Sans is the general UI face.
	Sans *Font
	// Mono is used by the FPS counters.
	Mono *Font
	// Marker and Condensed add variety to the text demo.
	Marker    *Font
	Condensed *Font
}

// Load parses the embedded Go fonts.
func Load() (*Set, error) {
	var s Set
	specs := []struct {
		dst  **Font
		name string
		data []byte
		size float64
	}{
		{&s.Sans, "Go Regular", goregular.TTF, 18},
		{&s.Mono, "Go Mono", gomono.TTF, 18},
		{&s.Marker, "Go Bold Italic", gobolditalic.TTF, 22},
		{&s.Condensed, "Go Smallcaps", gosmallcaps.TTF, 24},
	}
	for _, spec := range specs {
		src, err := text.NewFontSource(spec.data)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("load font %s: %w", spec.name, err)
		}
		*spec.dst = &Font{Name: spec.name, DefaultSize: spec.size, source: src}
	}
	return &s, nil
}

// Scroll returns the fonts cycled through by the text demo, in draw order.
func (s *Set) Scroll() []*Font {
	return []*Font{s.Sans, s.Marker, s.Condensed}
}

// Close releases the font sources.
func (s *Set) Close() error {
	for _, f := range []*Font{s.Sans, s.Mono, s.Marker, s.Condensed} {
		if f != nil && f.source != nil {
			_ = f.source.Close()
		}
	}
	return nil
}
