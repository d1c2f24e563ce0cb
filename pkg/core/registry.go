package core

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Factory constructs the widget for one descriptor. Children in ctx are
// already resolved and classified.
type Factory func(ctx *BuildContext) (Widget, error)

// Role is a named child slot declared by an entry.
type Role struct {
	Name string
	// Tags and Templates list the child tags and template attributes that
	// fill this role.
	Tags      []string
	Templates []string
	// Exclusive roles hold at most one child.
	Exclusive bool
	// Factory builds children filling this role. Nil resolves the child
	// through the registry by its own tag.
	Factory Factory
}

func (r Role) matches(tag, template string, hasTemplate bool) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	if hasTemplate {
		for _, t := range r.Templates {
			if t == template {
				return true
			}
		}
	}
	return false
}

// Entry registers a factory for a tag.
type Entry struct {
	Tag     string
	Factory Factory
	// Roles are matched against children in declaration order.
	Roles []Role
	// Provide derives the scope handed to the entry's children. It runs
	// before any child is resolved.
	Provide func(parent *Scope, ctx *BuildContext) *Scope
}

// Registry maps tags to entries. It is populated before the first resolve
// and is safe for concurrent use; writers block readers only while the
// write is in progress.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// DefaultRegistry is the process-wide registry widget adapters register
// into from init.
var DefaultRegistry = NewRegistry()

// Register adds e. It fails when the tag is empty, the factory is nil or the
// tag is already registered.
func (r *Registry) Register(e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	key := strings.ToLower(e.Tag)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("core: tag %q already registered", e.Tag)
	}
	r.entries[key] = e
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// Replace adds or overwrites the entry for e.Tag.
func (r *Registry) Replace(e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	r.mu.Lock()
	r.entries[strings.ToLower(e.Tag)] = e
	r.mu.Unlock()
	return nil
}

// Unregister removes tag. It reports whether the tag was registered.
func (r *Registry) Unregister(tag string) bool {
	key := strings.ToLower(tag)
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[key]
	delete(r.entries, key)
	return ok
}

// Lookup returns the entry for tag. Tags are matched case-insensitively.
func (r *Registry) Lookup(tag string) (Entry, bool) {
	r.mu.RLock()
	e, ok := r.entries[strings.ToLower(tag)]
	r.mu.RUnlock()
	return e, ok
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	tags := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		tags = append(tags, e.Tag)
	}
	r.mu.RUnlock()
	slices.Sort(tags)
	return tags
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	return &Registry{entries: r.snapshot()}
}

// snapshot copies the entries so a resolve never observes a concurrent write.
func (r *Registry) snapshot() map[string]Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := make(map[string]Entry, len(r.entries))
	for k, e := range r.entries {
		m[k] = e
	}
	return m
}

// Register adds e to DefaultRegistry and panics on error.
func Register(e Entry) {
	DefaultRegistry.MustRegister(e)
}

func validateEntry(e Entry) error {
	if strings.TrimSpace(e.Tag) == "" {
		return fmt.Errorf("core: empty tag")
	}
	if e.Factory == nil {
		return fmt.Errorf("core: nil factory for tag %q", e.Tag)
	}
	for _, role := range e.Roles {
		if role.Name == "" {
			return fmt.Errorf("core: unnamed role on tag %q", e.Tag)
		}
	}
	return nil
}
