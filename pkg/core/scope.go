package core

import (
	"log/slog"
	"time"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/event"
	"github.com/go-drift/livenative/pkg/loop"
	"github.com/go-drift/livenative/pkg/node"
)

// Defaults holds the fallback timing windows for value-change events.
type Defaults struct {
	Debounce time.Duration
	Throttle time.Duration
}

// DefaultDefaults are the library timing defaults.
var DefaultDefaults = Defaults{
	Debounce: 300 * time.Millisecond,
	Throttle: 300 * time.Millisecond,
}

// Scope is the environment handed down the tree during a resolve. A child
// scope shadows its parent; values not set on the child are read through.
type Scope struct {
	Sink      event.Sink
	Scheduler loop.Scheduler
	Env       attr.Env
	Defaults  Defaults
	// Target is the inherited phx-target for events raised below this scope.
	Target string
	Logger *slog.Logger

	parent *Scope
	key    any
	value  any
}

// NewScope returns a root scope with the library defaults.
func NewScope(sink event.Sink, sched loop.Scheduler) *Scope {
	return &Scope{Sink: sink, Scheduler: sched, Defaults: DefaultDefaults}
}

// Child returns a scope inheriting every field of s.
func (s *Scope) Child() *Scope {
	if s == nil {
		return &Scope{Defaults: DefaultDefaults}
	}
	c := *s
	c.parent = s
	c.key, c.value = nil, nil
	return &c
}

// WithValue returns a child scope carrying value under key.
func (s *Scope) WithValue(key, value any) *Scope {
	c := s.Child()
	c.key, c.value = key, value
	return c
}

// Value returns the value bound to key by the nearest WithValue ancestor.
func (s *Scope) Value(key any) any {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.key != nil && cur.key == key {
			return cur.value
		}
	}
	return nil
}

func (s *Scope) logger() *slog.Logger {
	if s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// BuildContext is what a factory receives.
type BuildContext struct {
	Descriptor node.NodeDescriptor
	Attributes node.AttributeSet
	Children   Children
	// Sink is the event sink for this node, never nil.
	Sink  event.Sink
	Scope *Scope
	// Path is the document path of the node.
	Path string
	// Role is the parent slot the node fills, or "".
	Role string
}

// Tag returns the descriptor tag.
func (ctx *BuildContext) Tag() string {
	return ctx.Descriptor.Tag
}

// Env returns the lookup tables of the scope.
func (ctx *BuildContext) Env() attr.Env {
	if ctx.Scope == nil {
		return attr.Env{}
	}
	return ctx.Scope.Env
}

// Modifiers folds the common attributes of the node.
func (ctx *BuildContext) Modifiers() attr.Modifiers {
	return attr.FoldCommon(ctx.Attributes, ctx.Env())
}

// Target returns the node's phx-target, falling back to the inherited one.
func (ctx *BuildContext) Target(m attr.Modifiers) string {
	if m.Events.Target != "" {
		return m.Events.Target
	}
	if ctx.Scope != nil {
		return ctx.Scope.Target
	}
	return ""
}

// Bind returns an emitter for the named server event. Unbound names yield a
// no-op emitter.
func (ctx *BuildContext) Bind(kind event.Kind, name string, m attr.Modifiers) func(value any) {
	return event.Bind(ctx.Sink, kind, name, ctx.Target(m))
}

// Scheduler returns the scope's timer scheduler, or nil.
func (ctx *BuildContext) Scheduler() loop.Scheduler {
	if ctx.Scope == nil {
		return nil
	}
	return ctx.Scope.Scheduler
}

// Defaults returns the scope's timing defaults.
func (ctx *BuildContext) Defaults() Defaults {
	if ctx.Scope == nil {
		return DefaultDefaults
	}
	return ctx.Scope.Defaults
}

// FoldProps folds the node's attributes through rules starting at defaults.
func FoldProps[C any](ctx *BuildContext, defaults C, rules attr.Rules[C]) attr.Props[C] {
	return attr.Fold(ctx.Attributes, defaults, rules, ctx.Env())
}
