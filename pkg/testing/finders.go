package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/widgets"
)

// Finder locates nodes in a resolved tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *core.Node) []*core.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*core.Node
	finder Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *core.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *core.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *core.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*core.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Widget returns the widget of the first match. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget
}

// WidgetAs returns the widget of the first match of r as T. It reports false
// when nothing matched or the widget is not a T.
func WidgetAs[T core.Widget](r FinderResult) (T, bool) {
	var zero T
	n := r.FirstOrNil()
	if n == nil {
		return zero, false
	}
	w, ok := n.Widget.(T)
	return w, ok
}

type predicateFinder struct {
	fn   func(*core.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *core.Node) []*core.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(*core.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByType returns a finder that matches nodes whose widget is type T.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &predicateFinder{
		fn:   func(n *core.Node) bool { return reflect.TypeOf(n.Widget) == t },
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByTag returns a finder that matches nodes built from tag, compared
// case-insensitively.
func ByTag(tag string) Finder {
	return &predicateFinder{
		fn:   func(n *core.Node) bool { return strings.EqualFold(n.SourceTag, tag) },
		desc: fmt.Sprintf("ByTag(%s)", tag),
	}
}

// ByKind returns a finder that matches nodes whose widget kind is kind.
// Placeholders have the kind "placeholder".
func ByKind(kind string) Finder {
	return &predicateFinder{
		fn:   func(n *core.Node) bool { return n.Widget.Kind() == kind },
		desc: fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByRole returns a finder that matches nodes filling role in their parent.
func ByRole(role string) Finder {
	return &predicateFinder{
		fn:   func(n *core.Node) bool { return n.Role == role },
		desc: fmt.Sprintf("ByRole(%s)", role),
	}
}

// ByID returns a finder that matches nodes whose id attribute is id.
func ByID(id string) Finder {
	return &predicateFinder{
		fn:   func(n *core.Node) bool { return n.Widget.Modifiers().ID == id },
		desc: fmt.Sprintf("ByID(%s)", id),
	}
}

// ByText returns a finder that matches text, badge and button nodes whose
// displayed text is exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(n *core.Node) bool {
			s, ok := displayedText(n.Widget)
			return ok && s == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches text, badge and button
// nodes whose displayed text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(n *core.Node) bool {
			s, ok := displayedText(n.Widget)
			return ok && strings.Contains(s, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

func displayedText(w core.Widget) (string, bool) {
	switch w := w.(type) {
	case *widgets.Text:
		return w.Content, true
	case *widgets.Badge:
		return w.Content, true
	case *widgets.Button:
		return w.Label, true
	}
	return "", false
}

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *core.Node) []*core.Node {
	var results []*core.Node
	seen := make(map[*core.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// The ancestor itself is not a candidate.
		for _, child := range ancestor.Children {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds nodes matching 'matching' that are ancestors
// of nodes matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root *core.Node) []*core.Node {
	descendants := f.of.Evaluate(root)
	if len(descendants) == 0 {
		return nil
	}
	var results []*core.Node
	for _, candidate := range f.matching.Evaluate(root) {
		for _, d := range descendants {
			if candidate != d && candidate.Find(func(n *core.Node) bool { return n == d }) != nil {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches nodes satisfying 'matching'
// that are ancestors of nodes matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

func collectMatches(root *core.Node, predicate func(*core.Node) bool) []*core.Node {
	if root == nil {
		return nil
	}
	return root.FindAll(predicate)
}
