package widgets

import (
	"math"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/changeable"
	"github.com/go-drift/livenative/pkg/core"
)

// TagSlider is the tag of [Slider].
const TagSlider = "slider"

// SliderConfig holds the attributes of slider.
type SliderConfig struct {
	Value float64
	Min   float64
	Max   float64
	// Step snaps values to multiples of Step above Min; zero means continuous.
	Step float64
}

// DefaultSlider is the configuration of a slider without attributes.
var DefaultSlider = SliderConfig{Min: 0, Max: 1}

var sliderRules = attr.Rules[SliderConfig]{
	"value": func(c SliderConfig, v string, _ attr.Env) SliderConfig {
		c.Value = attr.Float(v, 0)
		return c
	},
	"min": func(c SliderConfig, v string, _ attr.Env) SliderConfig {
		c.Min = attr.Float(v, DefaultSlider.Min)
		return c
	},
	"max": func(c SliderConfig, v string, _ attr.Env) SliderConfig {
		c.Max = attr.Float(v, DefaultSlider.Max)
		return c
	},
	"step": func(c SliderConfig, v string, _ attr.Env) SliderConfig {
		if s := attr.Float(v, 0); s > 0 {
			c.Step = s
		} else {
			c.Step = 0
		}
		return c
	},
}

// Slider selects a number in [Min, Max]. Dragging produces many changes, so
// change events are throttled by default.
//
// Slider is NOT thread-safe. It must only be used from the UI thread.
type Slider struct {
	core.Base
	SliderConfig
	state *changeable.Changeable[float64]
}

func newSlider(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, DefaultSlider, sliderRules)
	cfg := p.Config
	if cfg.Max < cfg.Min {
		cfg.Min, cfg.Max = DefaultSlider.Min, DefaultSlider.Max
	}
	b := core.NewBase(TagSlider, p.Common)
	b.Leaf = true
	s := &Slider{Base: b, SliderConfig: cfg}
	s.state = bindValue(ctx, p.Common, s.constrain(cfg.Value), changeable.Throttle)
	return s, nil
}

func (s *Slider) constrain(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		v = math.Min(s.Max, v)
	}
	return v
}

// Value returns the local value.
func (s *Slider) Value() float64 { return s.state.Value() }

// SetValue moves the thumb as a drag would. The value is clamped to the
// range and snapped to Step. It reports false when the widget is disabled
// or disposed.
func (s *Slider) SetValue(v float64) bool { return s.state.Set(s.constrain(v)) }

// Release ends a drag, emitting a held trailing value now.
func (s *Slider) Release() { s.state.Flush() }

// State exposes the value pipeline.
func (s *Slider) State() *changeable.Changeable[float64] { return s.state }

// Dispose discards any pending emission.
func (s *Slider) Dispose() { s.state.Dispose() }
