package widgets

import (
	"strings"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
)

// TagIcon is the tag of [Icon].
const TagIcon = "icon"

// Icons maps icon names to glyphs. It is populated at startup and only read
// afterwards; unknown names render [MissingGlyph].
var Icons = map[string]rune{
	"add":           '\uE145',
	"arrow-back":    '\uE5C4',
	"arrow-forward": '\uE5C8',
	"check":         '\uE5CA',
	"close":         '\uE5CD',
	"delete":        '\uE872',
	"edit":          '\uE3C9',
	"favorite":      '\uE87D',
	"home":          '\uE88A',
	"info":          '\uE88E',
	"mail":          '\uE158',
	"menu":          '\uE5D2',
	"notifications": '\uE7F4',
	"person":        '\uE7FD',
	"remove":        '\uE15B',
	"search":        '\uE8B6',
	"settings":      '\uE8B8',
	"share":         '\uE80D',
	"star":          '\uE838',
	"warning":       '\uE002',
}

// MissingGlyph is rendered for icon names not in [Icons].
const MissingGlyph = '\uFFFD'

// LookupIcon resolves an icon name. Names are matched case-insensitively and
// underscores are treated as dashes.
func LookupIcon(name string) (rune, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	g, ok := Icons[key]
	return g, ok
}

// IconConfig holds the attributes of icon.
type IconConfig struct {
	Name  string
	Glyph rune
	Size  int
	Tint  graphics.Color
}

// Icon renders a single glyph from the icon table.
type Icon struct {
	core.Base
	IconConfig
}

var iconRules = attr.Rules[IconConfig]{
	"name": func(c IconConfig, v string, _ attr.Env) IconConfig {
		c.Name = v
		if g, ok := LookupIcon(v); ok {
			c.Glyph = g
		} else {
			c.Glyph = MissingGlyph
		}
		return c
	},
	"icon-size": func(c IconConfig, v string, _ attr.Env) IconConfig {
		c.Size = attr.Dp(v, 24)
		return c
	},
	"tint": func(c IconConfig, v string, env attr.Env) IconConfig {
		c.Tint = attr.Color(v, env.Palette, graphics.ColorBlack)
		return c
	},
}

func newIcon(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, IconConfig{Glyph: MissingGlyph, Size: 24, Tint: graphics.ColorBlack}, iconRules)
	b := core.NewBase(TagIcon, p.Common)
	b.Leaf = true
	return &Icon{Base: b, IconConfig: p.Config}, nil
}
