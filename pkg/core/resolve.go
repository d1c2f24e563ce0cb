package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/errors"
	"github.com/go-drift/livenative/pkg/event"
	"github.com/go-drift/livenative/pkg/node"
)

// FailurePolicy decides what takes the place of a child that failed to
// resolve. The failure itself is always returned to the caller.
type FailurePolicy int

const (
	// PolicyPlaceholder substitutes a placeholder widget for the failed subtree.
	PolicyPlaceholder FailurePolicy = iota
	// PolicyOmit leaves the failed subtree out of the tree.
	PolicyOmit
	// PolicyAbort stops the resolve; no tree is returned.
	PolicyAbort
)

func (p FailurePolicy) String() string {
	switch p {
	case PolicyPlaceholder:
		return "placeholder"
	case PolicyOmit:
		return "omit"
	case PolicyAbort:
		return "abort"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// errAborted unwinds the walk after a failure under PolicyAbort. It is never
// returned to callers.
var errAborted = errors.New("resolve aborted")

var errNilWidget = errors.New("factory returned a nil widget")

// Resolver turns descriptor trees into node trees using a registry.
type Resolver struct {
	Registry *Registry
	Policy   FailurePolicy
}

// NewResolver returns a resolver over reg with PolicyPlaceholder. A nil reg
// means DefaultRegistry.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{Registry: reg}
}

// Resolve builds the node tree for desc. The registry is read once at the
// start, so registrations made while Resolve runs are not observed.
//
// A failing subtree never prevents its siblings from resolving. Every
// failure is returned, joined, as *errors.RenderError values whose chain
// carries an *errors.UnknownTagError or *errors.BuildError. When the root
// itself fails, or the policy is PolicyAbort, the returned node is nil.
func (r *Resolver) Resolve(desc node.NodeDescriptor, sink event.Sink, scope *Scope) (*Node, error) {
	if sink == nil {
		sink = event.Discard
	}
	if scope == nil {
		scope = NewScope(sink, nil)
	} else {
		scope = scope.Child()
		scope.Sink = sink
	}
	return r.run(desc, RootPath, scope, nil)
}

// ResolveChild resolves desc as the replacement for the child at index i of
// parent. The child is built with the scope parent handed to its children
// and is classified against the parent's roles; an exclusive role already
// filled by another sibling leaves desc as generic content.
//
// The replacement keeps the document path of the child it replaces.
//
// When desc itself fails the policy applies as it does inside Resolve: a
// placeholder node is returned under PolicyPlaceholder and nil otherwise.
func (r *Resolver) ResolveChild(parent *Node, i int, desc node.NodeDescriptor) (*Node, error) {
	scope := parent.childScope
	if scope == nil {
		scope = NewScope(event.Discard, nil)
	}
	var role *Role
	if entry, ok := r.registry().Lookup(parent.SourceTag); ok {
		role = matchRole(entry.Roles, desc, func(name string) bool {
			for j, c := range parent.Children {
				if j != i && c.Role == name {
					return true
				}
			}
			return false
		})
	}
	path := node.ChildPath(parent.Path, i)
	if i >= 0 && i < len(parent.Children) && parent.Children[i].Path != "" {
		path = parent.Children[i].Path
	}
	n, err := r.run(desc, path, scope, role)
	if n == nil && err != nil && r.Policy == PolicyPlaceholder {
		n = &Node{
			Widget:    placeholderFor(desc.Tag, err),
			SourceTag: desc.Tag,
			Path:      path,
		}
		n.SourceTemplate, n.HasTemplate = desc.Template()
	}
	if n != nil && role != nil {
		n.Role = role.Name
	}
	return n, err
}

func (r *Resolver) registry() *Registry {
	if r.Registry == nil {
		return DefaultRegistry
	}
	return r.Registry
}

func (r *Resolver) run(desc node.NodeDescriptor, path string, scope *Scope, role *Role) (*Node, error) {
	sink := scope.Sink
	if sink == nil {
		sink = event.Discard
	}
	w := &walker{
		entries: r.registry().snapshot(),
		policy:  r.Policy,
		sink:    sink,
	}
	root, err := w.resolve(desc, path, scope, role)
	if err != nil {
		if err != errAborted {
			w.errs = append(w.errs, err)
		}
		return nil, errors.Join(w.errs...)
	}
	return root, errors.Join(w.errs...)
}

// RootPath is the document path of a resolved root.
const RootPath = "0"

// Resolve resolves desc against DefaultRegistry with PolicyPlaceholder.
func Resolve(desc node.NodeDescriptor, sink event.Sink, scope *Scope) (*Node, error) {
	return NewResolver(DefaultRegistry).Resolve(desc, sink, scope)
}

type walker struct {
	entries map[string]Entry
	policy  FailurePolicy
	sink    event.Sink
	errs    []error
}

func (w *walker) lookup(tag string) (Entry, bool) {
	e, ok := w.entries[strings.ToLower(tag)]
	return e, ok
}

// resolve builds one node. It returns the node's own failure; failures of
// descendants are recorded in w.errs by the parent that handled them.
func (w *walker) resolve(desc node.NodeDescriptor, path string, scope *Scope, role *Role) (*Node, error) {
	entry, known := w.lookup(desc.Tag)
	factory := entry.Factory
	if role != nil && role.Factory != nil {
		factory = role.Factory
	} else if !known {
		scope.logger().Debug("unknown tag", "tag", desc.Tag, "path", path)
		return nil, &errors.RenderError{
			Op:   "core.Resolve",
			Kind: errors.KindStructural,
			Tag:  desc.Tag,
			Path: path,
			Err:  &errors.UnknownTagError{Tag: desc.Tag},
		}
	}

	ctx := &BuildContext{
		Descriptor: desc,
		Attributes: desc.Attributes,
		Sink:       w.sink,
		Scope:      scope,
		Path:       path,
	}
	if role != nil {
		ctx.Role = role.Name
	}

	// The children's scope exists before any child is built.
	childScope := scope.Child()
	if target, ok := desc.Attributes.Get(attr.AttrTarget); ok && target != "" {
		childScope.Target = target
	}
	if entry.Provide != nil {
		if provided := entry.Provide(childScope, ctx); provided != nil {
			childScope = provided
		}
	}

	assigned := classify(entry.Roles, desc.Children, func(i int, name string) {
		scope.logger().Debug("extra child for exclusive role treated as content",
			"tag", desc.Tag, "role", name, "path", node.ChildPath(path, i))
	})

	children := make([]*Node, 0, len(desc.Children))
	for i, child := range desc.Children {
		childPath := node.ChildPath(path, i)
		n, err := w.resolve(child, childPath, childScope, assigned[i].role)
		if err == errAborted {
			disposeAll(children)
			return nil, errAborted
		}
		if err != nil {
			w.errs = append(w.errs, err)
			switch w.policy {
			case PolicyAbort:
				disposeAll(children)
				return nil, errAborted
			case PolicyOmit:
				continue
			default:
				n = &Node{
					Widget:    placeholderFor(child.Tag, err),
					SourceTag: child.Tag,
					Path:      childPath,
				}
				n.SourceTemplate, n.HasTemplate = child.Template()
			}
		}
		if r := assigned[i].role; r != nil {
			n.Role = r.Name
		}
		children = append(children, n)
	}
	n := &Node{
		Children:   children,
		SourceTag:  desc.Tag,
		Path:       path,
		childScope: childScope,
	}
	n.SourceTemplate, n.HasTemplate = desc.Template()
	ctx.Children = Children{owner: n}

	widget, err := safeBuild(factory, ctx)
	if err != nil {
		disposeAll(children)
		return nil, &errors.RenderError{
			Op:   "core.Resolve",
			Kind: errors.KindBuild,
			Tag:  desc.Tag,
			Path: path,
			Err:  err,
		}
	}
	if !widget.AcceptsChildren() {
		disposeAll(children)
		n.Children = nil
	}
	n.Widget = widget
	return n, nil
}

// safeBuild runs a factory with panic recovery. Panics and nil widgets are
// reported to the global error handler as build errors.
func safeBuild(factory Factory, ctx *BuildContext) (widget Widget, err error) {
	var buildErr *errors.BuildError
	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Tag:        ctx.Tag(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		widget, err = factory(ctx)
	}()

	switch {
	case buildErr != nil:
	case err != nil:
		buildErr = &errors.BuildError{Tag: ctx.Tag(), Err: err, Timestamp: time.Now()}
	case widget == nil:
		buildErr = &errors.BuildError{Tag: ctx.Tag(), Err: errNilWidget, Timestamp: time.Now()}
	default:
		return widget, nil
	}
	errors.ReportBuildError(buildErr)
	return nil, buildErr
}

func disposeAll(nodes []*Node) {
	for _, n := range nodes {
		n.Dispose()
	}
}
