package graphics

import (
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// Palette resolves color names. Implementations must be pure lookups.
type Palette interface {
	Lookup(name string) (Color, bool)
}

// PaletteFunc adapts a function to Palette.
type PaletteFunc func(name string) (Color, bool)

// Lookup calls f(name).
func (f PaletteFunc) Lookup(name string) (Color, bool) { return f(name) }

// MapPalette is a static name table. Keys are matched case-insensitively
// and must be stored lowercase.
type MapPalette map[string]Color

// Lookup returns the color stored under the lowercased name.
func (p MapPalette) Lookup(name string) (Color, bool) {
	c, ok := p[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

var (
	defaultPaletteOnce sync.Once
	defaultPalette     MapPalette
)

// DefaultPalette returns the SVG 1.1 named colors plus "transparent".
func DefaultPalette() Palette {
	defaultPaletteOnce.Do(func() {
		defaultPalette = make(MapPalette, len(colornames.Map)+1)
		for name, c := range colornames.Map {
			defaultPalette[name] = RGBA8(c.R, c.G, c.B, c.A)
		}
		defaultPalette["transparent"] = ColorTransparent
	})
	return defaultPalette
}

// Chain returns a palette that consults each palette in order.
func Chain(palettes ...Palette) Palette {
	return PaletteFunc(func(name string) (Color, bool) {
		for _, p := range palettes {
			if p == nil {
				continue
			}
			if c, ok := p.Lookup(name); ok {
				return c, true
			}
		}
		return 0, false
	})
}
