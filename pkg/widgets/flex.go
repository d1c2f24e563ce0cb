package widgets

import (
	"fmt"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
)

// Layout tags.
const (
	TagColumn = "column"
	TagRow    = "row"
	TagBox    = "box"
	TagSpacer = "spacer"
)

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for [Row], vertical for [Column]).
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right for Row, bottom for Column).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space evenly, with half-sized
	// spaces at the start and end.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly, including
	// equal space before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

// mainAxisLiterals maps arrangement attribute values to alignments.
var mainAxisLiterals = map[string]MainAxisAlignment{
	"start":         MainAxisAlignmentStart,
	"top":           MainAxisAlignmentStart,
	"end":           MainAxisAlignmentEnd,
	"bottom":        MainAxisAlignmentEnd,
	"center":        MainAxisAlignmentCenter,
	"space-between": MainAxisAlignmentSpaceBetween,
	"space-around":  MainAxisAlignmentSpaceAround,
	"space-evenly":  MainAxisAlignmentSpaceEvenly,
}

func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space-between"
	case MainAxisAlignmentSpaceAround:
		return "space-around"
	case MainAxisAlignmentSpaceEvenly:
		return "space-evenly"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis
// (vertical for [Row], horizontal for [Column]).
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentStretch stretches children to fill the cross axis.
	CrossAxisAlignmentStretch
)

var crossAxisLiterals = map[string]CrossAxisAlignment{
	"start":   CrossAxisAlignmentStart,
	"top":     CrossAxisAlignmentStart,
	"end":     CrossAxisAlignmentEnd,
	"bottom":  CrossAxisAlignmentEnd,
	"center":  CrossAxisAlignmentCenter,
	"stretch": CrossAxisAlignmentStretch,
}

func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Axis is the direction a [Flex] lays its children out in.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// FlexConfig holds the attributes of column and row.
type FlexConfig struct {
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	// Spacing is the gap between children in dp.
	Spacing int
	// Scroll makes the container scrollable along its main axis.
	Scroll bool
}

// Flex lays out its children along one axis. The column tag builds a
// vertical Flex and the row tag a horizontal one.
type Flex struct {
	core.Base
	Axis Axis
	FlexConfig
}

func flexRules(mainAttr, crossAttr string) attr.Rules[FlexConfig] {
	return attr.Rules[FlexConfig]{
		mainAttr: func(c FlexConfig, v string, _ attr.Env) FlexConfig {
			c.MainAxisAlignment = attr.Enum(mainAxisLiterals, v, MainAxisAlignmentStart)
			return c
		},
		crossAttr: func(c FlexConfig, v string, _ attr.Env) FlexConfig {
			c.CrossAxisAlignment = attr.Enum(crossAxisLiterals, v, CrossAxisAlignmentStart)
			return c
		},
		"spacing": func(c FlexConfig, v string, _ attr.Env) FlexConfig {
			c.Spacing = attr.Dp(v, 0)
			return c
		},
		"scroll": func(c FlexConfig, v string, _ attr.Env) FlexConfig {
			c.Scroll = attr.Bool(v, false)
			return c
		},
	}
}

var (
	columnRules = flexRules("vertical-arrangement", "horizontal-alignment")
	rowRules    = flexRules("horizontal-arrangement", "vertical-alignment")
)

func newColumn(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, FlexConfig{}, columnRules)
	return &Flex{Base: core.NewBase(TagColumn, p.Common), Axis: Vertical, FlexConfig: p.Config}, nil
}

func newRow(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, FlexConfig{}, rowRules)
	return &Flex{Base: core.NewBase(TagRow, p.Common), Axis: Horizontal, FlexConfig: p.Config}, nil
}

// Alignment positions content inside a [Box].
type Alignment int

const (
	AlignTopStart Alignment = iota
	AlignTopCenter
	AlignTopEnd
	AlignCenterStart
	AlignCenter
	AlignCenterEnd
	AlignBottomStart
	AlignBottomCenter
	AlignBottomEnd
)

var alignmentLiterals = map[string]Alignment{
	"top-start":     AlignTopStart,
	"top-center":    AlignTopCenter,
	"top-end":       AlignTopEnd,
	"center-start":  AlignCenterStart,
	"center":        AlignCenter,
	"center-end":    AlignCenterEnd,
	"bottom-start":  AlignBottomStart,
	"bottom-center": AlignBottomCenter,
	"bottom-end":    AlignBottomEnd,
}

// BoxConfig holds the attributes of box.
type BoxConfig struct {
	ContentAlignment Alignment
	Background       graphics.Color
}

// Box stacks its children on top of each other.
type Box struct {
	core.Base
	BoxConfig
}

var boxRules = attr.Rules[BoxConfig]{
	"content-alignment": func(c BoxConfig, v string, _ attr.Env) BoxConfig {
		c.ContentAlignment = attr.Enum(alignmentLiterals, v, AlignTopStart)
		return c
	},
	"background": func(c BoxConfig, v string, env attr.Env) BoxConfig {
		c.Background = attr.Color(v, env.Palette, graphics.ColorTransparent)
		return c
	},
}

func newBox(ctx *core.BuildContext) (core.Widget, error) {
	p := core.FoldProps(ctx, BoxConfig{}, boxRules)
	return &Box{Base: core.NewBase(TagBox, p.Common), BoxConfig: p.Config}, nil
}

// Spacer occupies empty space. Its size comes from the common width, height
// and size attributes.
type Spacer struct {
	core.Base
}

func newSpacer(ctx *core.BuildContext) (core.Widget, error) {
	b := core.NewBase(TagSpacer, ctx.Modifiers())
	b.Leaf = true
	return Spacer{Base: b}, nil
}
