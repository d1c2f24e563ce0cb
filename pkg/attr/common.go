package attr

import (
	"strconv"
	"strings"
	"time"
)

// FillLiteral is the size value meaning "occupy all available space".
const FillLiteral = "fill"

// Dimension is a size along one axis. The zero value means "wrap content".
type Dimension struct {
	// Dp is the fixed size in device-independent units, valid when Set.
	Dp int
	// Set reports whether a fixed size was given.
	Set bool
	// Fill reports whether the widget fills the axis.
	Fill bool
}

// Fixed returns a fixed dimension of dp units.
func Fixed(dp int) Dimension { return Dimension{Dp: dp, Set: true} }

// Fill is the dimension that occupies all available space.
var Fill = Dimension{Fill: true}

func (d Dimension) String() string {
	switch {
	case d.Fill:
		return FillLiteral
	case d.Set:
		return strconv.Itoa(d.Dp) + "dp"
	default:
		return "wrap"
	}
}

// Size parses a size attribute: "fill" or a non-negative integer. Anything
// else leaves prev untouched.
func Size(s string, prev Dimension) Dimension {
	s = strings.TrimSpace(s)
	if s == FillLiteral {
		return Fill
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return prev
	}
	return Fixed(v)
}

// EdgeInsets holds per-edge padding in device-independent units.
type EdgeInsets struct {
	Top, End, Bottom, Start int
}

// All returns insets with every edge set to v.
func All(v int) EdgeInsets { return EdgeInsets{v, v, v, v} }

// Insets parses "all", "vertical,horizontal" or "top,end,bottom,start".
// Any malformed or negative component yields def.
func Insets(s string, def EdgeInsets) EdgeInsets {
	parts := strings.Split(s, ",")
	vals := make([]int, len(parts))
	for i, p := range parts {
		v := Dp(p, -1)
		if v < 0 {
			return def
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		return All(vals[0])
	case 2:
		return EdgeInsets{Top: vals[0], Bottom: vals[0], Start: vals[1], End: vals[1]}
	case 4:
		return EdgeInsets{Top: vals[0], End: vals[1], Bottom: vals[2], Start: vals[3]}
	default:
		return def
	}
}

// Bindings names the server events a widget is bound to. An empty name
// means the interaction is not reported.
type Bindings struct {
	Click  string
	Change string
	KeyUp  string
	Blur   string
	Focus  string
	Submit string
	// Target is the component the events are routed to.
	Target string
	// Value is the static payload sent with click events.
	Value string
}

// RateLimit carries the timing policy requested for value-change events.
type RateLimit struct {
	// Debounce is the quiet window; zero means not requested.
	Debounce time.Duration
	// DebounceOnBlur holds changes until the widget loses focus.
	DebounceOnBlur bool
	// Throttle is the throttle window; zero means not requested.
	Throttle time.Duration
}

// Modifiers are the properties every widget accepts.
type Modifiers struct {
	ID                 string
	Width              Dimension
	Height             Dimension
	Padding            EdgeInsets
	Enabled            bool
	ContentDescription string
	Events             Bindings
	Rate               RateLimit
}

// DefaultModifiers returns the modifiers of a node with no common attributes.
func DefaultModifiers() Modifiers {
	return Modifiers{Enabled: true}
}

// Common attribute names.
const (
	AttrID                 = "id"
	AttrWidth              = "width"
	AttrHeight             = "height"
	AttrSize               = "size"
	AttrPadding            = "padding"
	AttrPaddingHorizontal  = "padding-horizontal"
	AttrPaddingVertical    = "padding-vertical"
	AttrPaddingTop         = "padding-top"
	AttrPaddingBottom      = "padding-bottom"
	AttrPaddingStart       = "padding-start"
	AttrPaddingEnd         = "padding-end"
	AttrEnabled            = "enabled"
	AttrContentDescription = "content-description"
	AttrClick              = "phx-click"
	AttrChange             = "phx-change"
	AttrKeyUp              = "phx-keyup"
	AttrBlur               = "phx-blur"
	AttrFocus              = "phx-focus"
	AttrSubmit             = "phx-submit"
	AttrTarget             = "phx-target"
	AttrValue              = "phx-value"
	AttrDebounce           = "phx-debounce"
	AttrThrottle           = "phx-throttle"
)

// BlurLiteral is the phx-debounce value that defers changes until blur.
const BlurLiteral = "blur"

// commonRules is the handler shared by all widgets.
var commonRules = Rules[Modifiers]{
	AttrID: func(m Modifiers, v string, _ Env) Modifiers { m.ID = v; return m },
	AttrWidth: func(m Modifiers, v string, _ Env) Modifiers {
		m.Width = Size(v, m.Width)
		return m
	},
	AttrHeight: func(m Modifiers, v string, _ Env) Modifiers {
		m.Height = Size(v, m.Height)
		return m
	},
	AttrSize: func(m Modifiers, v string, _ Env) Modifiers {
		m.Width = Size(v, m.Width)
		m.Height = Size(v, m.Height)
		return m
	},
	AttrPadding: func(m Modifiers, v string, _ Env) Modifiers {
		m.Padding = Insets(v, m.Padding)
		return m
	},
	AttrPaddingHorizontal: func(m Modifiers, v string, _ Env) Modifiers {
		m.Padding.Start = Dp(v, m.Padding.Start)
		m.Padding.End = Dp(v, m.Padding.End)
		return m
	},
	AttrPaddingVertical: func(m Modifiers, v string, _ Env) Modifiers {
		m.Padding.Top = Dp(v, m.Padding.Top)
		m.Padding.Bottom = Dp(v, m.Padding.Bottom)
		return m
	},
	AttrPaddingTop: func(m Modifiers, v string, _ Env) Modifiers {
		m.Padding.Top = Dp(v, m.Padding.Top)
		return m
	},
	AttrPaddingBottom: func(m Modifiers, v string, _ Env) Modifiers {
		m.Padding.Bottom = Dp(v, m.Padding.Bottom)
		return m
	},
	AttrPaddingStart: func(m Modifiers, v string, _ Env) Modifiers {
		m.Padding.Start = Dp(v, m.Padding.Start)
		return m
	},
	AttrPaddingEnd: func(m Modifiers, v string, _ Env) Modifiers {
		m.Padding.End = Dp(v, m.Padding.End)
		return m
	},
	AttrEnabled: func(m Modifiers, v string, _ Env) Modifiers {
		m.Enabled = Bool(v, true)
		return m
	},
	AttrContentDescription: func(m Modifiers, v string, _ Env) Modifiers {
		m.ContentDescription = v
		return m
	},
	AttrClick:  func(m Modifiers, v string, _ Env) Modifiers { m.Events.Click = v; return m },
	AttrChange: func(m Modifiers, v string, _ Env) Modifiers { m.Events.Change = v; return m },
	AttrKeyUp:  func(m Modifiers, v string, _ Env) Modifiers { m.Events.KeyUp = v; return m },
	AttrBlur:   func(m Modifiers, v string, _ Env) Modifiers { m.Events.Blur = v; return m },
	AttrFocus:  func(m Modifiers, v string, _ Env) Modifiers { m.Events.Focus = v; return m },
	AttrSubmit: func(m Modifiers, v string, _ Env) Modifiers { m.Events.Submit = v; return m },
	AttrTarget: func(m Modifiers, v string, _ Env) Modifiers { m.Events.Target = v; return m },
	AttrValue:  func(m Modifiers, v string, _ Env) Modifiers { m.Events.Value = v; return m },
	AttrDebounce: func(m Modifiers, v string, _ Env) Modifiers {
		if v == BlurLiteral {
			m.Rate.DebounceOnBlur = true
			m.Rate.Debounce = 0
			return m
		}
		if d := Duration(v, -1); d >= 0 {
			m.Rate.Debounce = d
			m.Rate.DebounceOnBlur = false
		}
		return m
	},
	AttrThrottle: func(m Modifiers, v string, _ Env) Modifiers {
		if d := Duration(v, -1); d >= 0 {
			m.Rate.Throttle = d
		}
		return m
	},
}

// specificity ranks common attributes that overlap: a shorthand covers the
// fields of its longhands, so it is applied first and the longhand wins
// regardless of attribute order. Names absent here touch disjoint fields.
var specificity = map[string]int{
	AttrSize:              1,
	AttrWidth:             2,
	AttrHeight:            2,
	AttrPadding:           1,
	AttrPaddingHorizontal: 2,
	AttrPaddingVertical:   2,
	AttrPaddingTop:        3,
	AttrPaddingBottom:     3,
	AttrPaddingStart:      3,
	AttrPaddingEnd:        3,
}

// ApplyCommon folds one attribute into m. It reports false when name is not
// a common attribute.
func ApplyCommon(m Modifiers, name, value string, env Env) (Modifiers, bool) {
	rule, ok := commonRules[name]
	if !ok {
		return m, false
	}
	return rule(m, value, env), true
}

// IsCommon reports whether name is handled by the common handler.
func IsCommon(name string) bool {
	_, ok := commonRules[name]
	return ok
}
