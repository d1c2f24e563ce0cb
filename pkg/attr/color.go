package attr

import (
	"encoding/json"

	"github.com/go-drift/livenative/pkg/errors"
	"github.com/go-drift/livenative/pkg/graphics"
)

// Color parses a hex ARGB string or a palette name. A nil palette means
// [graphics.DefaultPalette].
func Color(s string, palette graphics.Palette, def graphics.Color) graphics.Color {
	if c, ok := lookupColor(s, palette); ok {
		return c
	}
	return def
}

func lookupColor(s string, palette graphics.Palette) (graphics.Color, bool) {
	if s == "" {
		return 0, false
	}
	if c, ok := graphics.ParseHex(s); ok {
		return c, true
	}
	if palette == nil {
		palette = graphics.DefaultPalette()
	}
	return palette.Lookup(s)
}

// ColorMap decodes a JSON object of named sub-colors, for example
// {"container":"#FF112233","content":"white"}. Entries whose value is not a
// color are dropped. A payload that is not a JSON object is reported as a
// diagnostic and treated as absent (nil).
func ColorMap(name, s string, palette graphics.Palette) map[string]graphics.Color {
	if s == "" {
		return nil
	}
	var raw map[string]string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		errors.Report(&errors.RenderError{
			Op:   "attr.ColorMap",
			Kind: errors.KindPayload,
			Err:  &errors.PayloadError{Attribute: name, Payload: s, Err: err},
		})
		return nil
	}
	out := make(map[string]graphics.Color, len(raw))
	for k, v := range raw {
		if c, ok := lookupColor(v, palette); ok {
			out[k] = c
		}
	}
	return out
}
