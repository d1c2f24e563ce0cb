package widgets

import (
	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/changeable"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
)

// Toggle tags.
const (
	TagCheckbox = "checkbox"
	TagSwitch   = "switch"
)

// ToggleConfig holds the attributes of checkbox and switch.
type ToggleConfig struct {
	Checked bool
	Label   string
	// CheckedColor is the fill when checked; zero means the toolkit default.
	CheckedColor graphics.Color
}

var toggleRules = attr.Rules[ToggleConfig]{
	"checked": func(c ToggleConfig, v string, _ attr.Env) ToggleConfig {
		c.Checked = attr.Bool(v, false)
		return c
	},
	"value": func(c ToggleConfig, v string, _ attr.Env) ToggleConfig {
		c.Checked = attr.Bool(v, false)
		return c
	},
	"label": func(c ToggleConfig, v string, _ attr.Env) ToggleConfig {
		c.Label = v
		return c
	},
	"checked-color": func(c ToggleConfig, v string, env attr.Env) ToggleConfig {
		c.CheckedColor = attr.Color(v, env.Palette, graphics.ColorTransparent)
		return c
	},
}

// Checkbox is a two-state control. Each toggle is emitted immediately unless
// the node asks for debounce or throttle.
//
// Checkbox is NOT thread-safe. It must only be used from the UI thread.
type Checkbox struct {
	core.Base
	ToggleConfig
	state *changeable.Changeable[bool]
}

// Switch is a Checkbox rendered as a switch.
type Switch struct {
	Checkbox
}

func buildToggle(ctx *core.BuildContext, tag string) Checkbox {
	p := core.FoldProps(ctx, ToggleConfig{}, toggleRules)
	b := core.NewBase(tag, p.Common)
	b.Leaf = true
	return Checkbox{
		Base:         b,
		ToggleConfig: p.Config,
		state:        bindValue(ctx, p.Common, p.Config.Checked, changeable.Immediate),
	}
}

func newCheckbox(ctx *core.BuildContext) (core.Widget, error) {
	c := buildToggle(ctx, TagCheckbox)
	return &c, nil
}

func newSwitch(ctx *core.BuildContext) (core.Widget, error) {
	return &Switch{Checkbox: buildToggle(ctx, TagSwitch)}, nil
}

// Checked returns the local value.
func (c *Checkbox) Checked() bool { return c.state.Value() }

// Toggle flips the value as a user tap would. It reports false when the
// widget is disabled or disposed.
func (c *Checkbox) Toggle() bool { return c.state.Set(!c.state.Value()) }

// State exposes the value pipeline.
func (c *Checkbox) State() *changeable.Changeable[bool] { return c.state }

// Dispose discards any pending emission.
func (c *Checkbox) Dispose() { c.state.Dispose() }
