package widgets

import (
	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
)

// Shape is the outline of a surface.
type Shape int

const (
	ShapeRounded Shape = iota
	ShapeRectangle
	ShapeCircle
	ShapePill
)

// Shapes maps shape names to shapes.
var Shapes = map[string]Shape{
	"rounded":   ShapeRounded,
	"rectangle": ShapeRectangle,
	"circle":    ShapeCircle,
	"pill":      ShapePill,
}

// CardConfig holds the attributes of card.
type CardConfig struct {
	Elevation    int
	CornerRadius int
	Shape        Shape
	Background   graphics.Color
	// Colors are named sub-colors, e.g. {"container":"#FFFFFF","content":"black"}.
	Colors map[string]graphics.Color
}

// DefaultCard is the configuration of a card without attributes.
var DefaultCard = CardConfig{Elevation: 1, CornerRadius: 12, Background: graphics.ColorWhite}

var cardRoles = []core.Role{{
	Name:      RoleHeader,
	Templates: []string{RoleHeader},
	Exclusive: true,
}}

var cardAttrRules = attr.Rules[CardConfig]{
	"elevation": func(c CardConfig, v string, _ attr.Env) CardConfig {
		c.Elevation = attr.Dp(v, DefaultCard.Elevation)
		return c
	},
	"corner-radius": func(c CardConfig, v string, _ attr.Env) CardConfig {
		c.CornerRadius = attr.Dp(v, DefaultCard.CornerRadius)
		return c
	},
	"shape": func(c CardConfig, v string, _ attr.Env) CardConfig {
		c.Shape = attr.Enum(Shapes, v, ShapeRounded)
		return c
	},
	"background": func(c CardConfig, v string, env attr.Env) CardConfig {
		c.Background = attr.Color(v, env.Palette, DefaultCard.Background)
		return c
	},
	"colors": func(c CardConfig, v string, env attr.Env) CardConfig {
		c.Colors = attr.ColorMap("colors", v, env.Palette)
		return c
	},
}

// Card groups content on a raised surface. A child with template="header"
// fills the header slot.
type Card struct {
	core.Base
	CardConfig
	children core.Children
}

// Header returns the node filling the header slot, or nil.
func (c *Card) Header() *core.Node {
	return c.children.Slot(RoleHeader)
}

// Content returns the children outside the header slot.
func (c *Card) Content() []*core.Node {
	return c.children.Content()
}

func newCard(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, DefaultCard, cardAttrRules)
	cfg := p.Config
	if bg, ok := cfg.Colors["container"]; ok {
		cfg.Background = bg
	}
	return &Card{
		Base:       core.NewBase(TagCard, p.Common),
		CardConfig: cfg,
		children:   ctx.Children,
	}, nil
}
