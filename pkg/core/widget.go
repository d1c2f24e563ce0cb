package core

import "github.com/go-drift/livenative/pkg/attr"

// Widget is the result of a factory. The core never looks inside a widget;
// it only uses this small capability set.
type Widget interface {
	// Kind names the widget variant, usually its tag.
	Kind() string
	// Modifiers returns the declared size, padding and event modifiers.
	Modifiers() attr.Modifiers
	// AcceptsChildren reports whether resolved children are attached.
	AcceptsChildren() bool
	// RoleTag is the role the widget declares for itself, or "".
	RoleTag() string
}

// Disposable is implemented by widgets holding timers or subscriptions.
// Dispose is called when the owning node leaves the tree.
type Disposable interface {
	Dispose()
}

// Base implements Widget for embedding in concrete widget types.
//
//	type Divider struct {
//	    core.Base
//	    Thickness int
//	}
type Base struct {
	Tag  string
	Mods attr.Modifiers
	Role string
	// Leaf marks widgets that ignore their children.
	Leaf bool
}

// NewBase returns a Base for tag with the given modifiers.
func NewBase(tag string, mods attr.Modifiers) Base {
	return Base{Tag: tag, Mods: mods}
}

func (b Base) Kind() string              { return b.Tag }
func (b Base) Modifiers() attr.Modifiers { return b.Mods }
func (b Base) AcceptsChildren() bool     { return !b.Leaf }
func (b Base) RoleTag() string           { return b.Role }

// Placeholder stands in for a subtree that failed to resolve.
type Placeholder struct {
	// Tag is the tag of the failed descriptor.
	Tag string
	// Err is the failure.
	Err error
}

func (p Placeholder) Kind() string              { return "placeholder" }
func (p Placeholder) Modifiers() attr.Modifiers { return attr.DefaultModifiers() }
func (p Placeholder) AcceptsChildren() bool     { return false }
func (p Placeholder) RoleTag() string           { return "" }
