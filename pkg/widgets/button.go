package widgets

import (
	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/event"
	"github.com/go-drift/livenative/pkg/graphics"
)

// TagButton is the tag of [Button].
const TagButton = "button"

// ButtonVariant selects the button's emphasis.
type ButtonVariant int

const (
	ButtonFilled ButtonVariant = iota
	ButtonOutlined
	ButtonText
	ButtonElevated
	ButtonTonal
)

var buttonVariantLiterals = map[string]ButtonVariant{
	"filled":   ButtonFilled,
	"outlined": ButtonOutlined,
	"text":     ButtonText,
	"elevated": ButtonElevated,
	"tonal":    ButtonTonal,
}

// ButtonConfig holds the attributes of button.
type ButtonConfig struct {
	Label   string
	Variant ButtonVariant
	// Color is the container color; zero means the variant's default.
	Color graphics.Color
}

// Button emits its phx-click event, carrying phx-value, when tapped.
// Its children are the button content.
type Button struct {
	core.Base
	ButtonConfig
	onTap    func(value any)
	disposed bool
}

var buttonRules = attr.Rules[ButtonConfig]{
	"label": func(c ButtonConfig, v string, _ attr.Env) ButtonConfig {
		c.Label = v
		return c
	},
	"variant": func(c ButtonConfig, v string, _ attr.Env) ButtonConfig {
		c.Variant = attr.Enum(buttonVariantLiterals, v, ButtonFilled)
		return c
	},
	"color": func(c ButtonConfig, v string, env attr.Env) ButtonConfig {
		c.Color = attr.Color(v, env.Palette, graphics.ColorTransparent)
		return c
	},
}

func newButton(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, ButtonConfig{Label: ctx.Descriptor.Text}, buttonRules)
	return &Button{
		Base:         core.NewBase(TagButton, p.Common),
		ButtonConfig: p.Config,
		onTap:        ctx.Bind(event.KindClick, p.Common.Events.Click, p.Common),
	}, nil
}

// Tap performs a user tap. A disabled or disposed button ignores it.
func (b *Button) Tap() {
	if !b.Mods.Enabled || b.disposed {
		return
	}
	b.onTap(clickValue(b.Mods.Events.Value))
}

// Dispose detaches the button; later taps emit nothing.
func (b *Button) Dispose() { b.disposed = true }

// clickValue is the payload sent with a click: the phx-value string, or an
// empty object when none is given.
func clickValue(v string) any {
	if v == "" {
		return map[string]any{}
	}
	return map[string]any{"value": v}
}
