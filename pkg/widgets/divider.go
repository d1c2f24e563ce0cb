package widgets

import (
	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
)

// TagDivider is the tag of [Divider].
const TagDivider = "divider"

// DividerConfig holds the attributes of divider.
//
// A zero Thickness means no visible line.
type DividerConfig struct {
	Thickness int
	Color     graphics.Color
	Vertical  bool
}

// Divider renders a thin line separating content.
type Divider struct {
	core.Base
	DividerConfig
}

// DefaultDivider is the configuration of a divider without attributes.
var DefaultDivider = DividerConfig{Thickness: 1, Color: graphics.RGB(0xCA, 0xC4, 0xD0)}

var dividerRules = attr.Rules[DividerConfig]{
	"thickness": func(c DividerConfig, v string, _ attr.Env) DividerConfig {
		c.Thickness = attr.Dp(v, DefaultDivider.Thickness)
		return c
	},
	"color": func(c DividerConfig, v string, env attr.Env) DividerConfig {
		c.Color = attr.Color(v, env.Palette, DefaultDivider.Color)
		return c
	},
	"vertical": func(c DividerConfig, v string, _ attr.Env) DividerConfig {
		c.Vertical = attr.Bool(v, false)
		return c
	},
}

func newDivider(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, DefaultDivider, dividerRules)
	b := core.NewBase(TagDivider, p.Common)
	b.Leaf = true
	return &Divider{Base: b, DividerConfig: p.Config}, nil
}
