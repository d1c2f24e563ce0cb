package widgets

import (
	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
)

// TagText is the tag of [Text].
const TagText = "text"

// FontWeight is the weight of a text run.
type FontWeight int

const (
	FontWeightNormal FontWeight = iota
	FontWeightThin
	FontWeightLight
	FontWeightMedium
	FontWeightSemiBold
	FontWeightBold
	FontWeightBlack
)

var fontWeightLiterals = map[string]FontWeight{
	"normal":    FontWeightNormal,
	"thin":      FontWeightThin,
	"light":     FontWeightLight,
	"medium":    FontWeightMedium,
	"semi-bold": FontWeightSemiBold,
	"bold":      FontWeightBold,
	"black":     FontWeightBlack,
}

// TextAlign is the horizontal alignment of text.
type TextAlign int

const (
	TextAlignStart TextAlign = iota
	TextAlignCenter
	TextAlignEnd
	TextAlignJustify
)

var textAlignLiterals = map[string]TextAlign{
	"start":   TextAlignStart,
	"center":  TextAlignCenter,
	"end":     TextAlignEnd,
	"justify": TextAlignJustify,
}

// TextStyle holds the attributes shared by text-bearing widgets.
type TextStyle struct {
	Color      graphics.Color
	FontSize   float64
	FontWeight FontWeight
	Align      TextAlign
	// MaxLines limits the number of lines; zero means unlimited.
	MaxLines int
}

// DefaultTextStyle is the style of a text node without style attributes.
var DefaultTextStyle = TextStyle{Color: graphics.ColorBlack, FontSize: 14}

func textStyleRules[C any](get func(*C) *TextStyle) attr.Rules[C] {
	return attr.Rules[C]{
		"color": func(c C, v string, env attr.Env) C {
			get(&c).Color = attr.Color(v, env.Palette, DefaultTextStyle.Color)
			return c
		},
		"font-size": func(c C, v string, _ attr.Env) C {
			if f := attr.Float(v, DefaultTextStyle.FontSize); f > 0 {
				get(&c).FontSize = f
			} else {
				get(&c).FontSize = DefaultTextStyle.FontSize
			}
			return c
		},
		"font-weight": func(c C, v string, _ attr.Env) C {
			get(&c).FontWeight = attr.Enum(fontWeightLiterals, v, FontWeightNormal)
			return c
		},
		"text-align": func(c C, v string, _ attr.Env) C {
			get(&c).Align = attr.Enum(textAlignLiterals, v, TextAlignStart)
			return c
		},
		"max-lines": func(c C, v string, _ attr.Env) C {
			get(&c).MaxLines = attr.Dp(v, 0)
			return c
		},
	}
}

// TextConfig holds the attributes of text.
type TextConfig struct {
	Content string
	Style   TextStyle
}

// Text displays a run of text. The content comes from the text attribute or,
// when absent, the element's character data.
type Text struct {
	core.Base
	TextConfig
}

var textRules = func() attr.Rules[TextConfig] {
	r := textStyleRules(func(c *TextConfig) *TextStyle { return &c.Style })
	r["text"] = func(c TextConfig, v string, _ attr.Env) TextConfig {
		c.Content = v
		return c
	}
	return r
}()

func newText(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, TextConfig{Content: ctx.Descriptor.Text, Style: DefaultTextStyle}, textRules)
	b := core.NewBase(TagText, p.Common)
	b.Leaf = true
	return &Text{Base: b, TextConfig: p.Config}, nil
}
