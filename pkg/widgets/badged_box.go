package widgets

import (
	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
)

// Slot tags.
const (
	TagBadge     = "badge"
	TagBadgedBox = "badged-box"
	TagCard      = "card"

	RoleBadge  = "badge"
	RoleHeader = "header"
)

// BadgeConfig holds the attributes of badge.
type BadgeConfig struct {
	Content    string
	Background graphics.Color
}

// Badge is a small status marker, usually placed in a [BadgedBox].
type Badge struct {
	core.Base
	BadgeConfig
}

var badgeRules = attr.Rules[BadgeConfig]{
	"text": func(c BadgeConfig, v string, _ attr.Env) BadgeConfig {
		c.Content = v
		return c
	},
	"background": func(c BadgeConfig, v string, env attr.Env) BadgeConfig {
		c.Background = attr.Color(v, env.Palette, graphics.ColorRed)
		return c
	},
}

func newBadge(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, BadgeConfig{Content: ctx.Descriptor.Text, Background: graphics.ColorRed}, badgeRules)
	b := core.NewBase(TagBadge, p.Common)
	b.Role = RoleBadge
	return &Badge{Base: b, BadgeConfig: p.Config}, nil
}

// BadgedBox anchors one badge to the corner of its content.
//
//	<badged-box>
//	  <badge>3</badge>
//	  <icon name="mail"/>
//	</badged-box>
//
// The first child tagged badge, or carrying template="badge", fills the
// badge slot. Any later match is shown as ordinary content.
type BadgedBox struct {
	core.Base
	children core.Children
}

// Badge returns the node filling the badge slot, or nil.
func (b *BadgedBox) Badge() *core.Node {
	return b.children.Slot(RoleBadge)
}

// Content returns every other child in document order.
func (b *BadgedBox) Content() []*core.Node {
	return b.children.Content()
}

var badgedBoxRoles = []core.Role{{
	Name:      RoleBadge,
	Tags:      []string{TagBadge},
	Templates: []string{RoleBadge},
	Exclusive: true,
}}

func newBadgedBox(ctx *core.BuildContext) (core.Widget, error) {
	return &BadgedBox{
		Base:     core.NewBase(TagBadgedBox, ctx.Modifiers()),
		children: ctx.Children,
	}, nil
}
