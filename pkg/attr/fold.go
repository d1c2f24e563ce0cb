package attr

import (
	"cmp"
	"slices"

	"github.com/go-drift/livenative/pkg/graphics"
	"github.com/go-drift/livenative/pkg/node"
)

// Env carries the read-only lookup tables rules may consult.
type Env struct {
	// Palette resolves color names. Nil means graphics.DefaultPalette.
	Palette graphics.Palette
}

// Rule folds one raw attribute value into a configuration record and returns
// the updated copy. Rules must be pure.
type Rule[C any] func(cfg C, value string, env Env) C

// Rules is a dispatch table from attribute name to rule.
type Rules[C any] map[string]Rule[C]

// Props is the result of folding an attribute set: the common modifiers
// plus the widget's own configuration record.
type Props[C any] struct {
	Common Modifiers
	Config C
}

// Fold folds set left to right starting from defaults. Each name dispatches
// to rules first, then to the common handler; unclaimed names are ignored.
// Because later attributes overwrite earlier ones, the last value given for a
// name wins. Overlapping common attributes fold from the general to the
// specific, so width beats size and padding-top beats padding in any order.
// Folding never mutates its inputs, so folding the same set twice yields
// equal results.
func Fold[C any](set node.AttributeSet, defaults C, rules Rules[C], env Env) Props[C] {
	p := Props[C]{Common: DefaultModifiers(), Config: defaults}
	var ranked []node.Attribute
	for i := 0; i < set.Len(); i++ {
		a := set.At(i)
		if rule, ok := rules[a.Name]; ok {
			p.Config = rule(p.Config, a.Value, env)
			continue
		}
		if _, ok := specificity[a.Name]; ok {
			ranked = append(ranked, a)
			continue
		}
		p.Common, _ = ApplyCommon(p.Common, a.Name, a.Value, env)
	}
	slices.SortStableFunc(ranked, func(a, b node.Attribute) int {
		return cmp.Compare(specificity[a.Name], specificity[b.Name])
	})
	for _, a := range ranked {
		p.Common, _ = ApplyCommon(p.Common, a.Name, a.Value, env)
	}
	return p
}

// FoldCommon folds only the common attributes of set.
func FoldCommon(set node.AttributeSet, env Env) Modifiers {
	return Fold[struct{}](set, struct{}{}, nil, env).Common
}
