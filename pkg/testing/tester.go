package testing

import (
	"testing"
	"time"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/markup"
	"github.com/go-drift/livenative/pkg/node"
	"github.com/go-drift/livenative/pkg/surface"
)

// Tester mounts documents against a fake clock and records every event the
// widgets push. Nothing runs on a real timer: pending debounce and throttle
// emissions fire only when the test advances the clock.
type Tester struct {
	registry *core.Registry
	policy   core.FailurePolicy
	env      attr.Env
	defaults core.Defaults
	clock    *FakeScheduler
	events   *Recorder
	surface  *surface.Surface
}

// NewTester creates a tester over core.DefaultRegistry.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	clk := NewFakeScheduler()
	return &Tester{
		defaults: core.DefaultDefaults,
		clock:    clk,
		events:   NewRecorder(clk),
	}
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree, discarding pending emissions.
func (t *Tester) Cleanup() {
	if t.surface != nil {
		t.surface.Unmount()
	}
}

// SetRegistry replaces the registry. Must be called before Mount.
func (t *Tester) SetRegistry(reg *core.Registry) {
	t.registry = reg
}

// SetPolicy sets the failure policy. Must be called before Mount.
func (t *Tester) SetPolicy(p core.FailurePolicy) {
	t.policy = p
}

// SetEnv sets the attribute lookup tables. Must be called before Mount.
func (t *Tester) SetEnv(env attr.Env) {
	t.env = env
}

// SetDefaults sets the fallback timing windows. Must be called before Mount.
func (t *Tester) SetDefaults(d core.Defaults) {
	t.defaults = d
}

// Clock returns the fake clock driving every timer of the mounted tree.
func (t *Tester) Clock() *FakeScheduler {
	return t.clock
}

// Events returns the recorder receiving pushed events.
func (t *Tester) Events() *Recorder {
	return t.events
}

// Advance moves the fake clock forward by d, firing due emissions.
func (t *Tester) Advance(d time.Duration) {
	t.clock.Advance(d)
}

func (t *Tester) mounted() *surface.Surface {
	if t.surface == nil {
		scope := core.NewScope(t.events, t.clock)
		scope.Env = t.env
		scope.Defaults = t.defaults
		t.surface = surface.New(surface.Options{
			Registry: t.registry,
			Policy:   t.policy,
			Scope:    scope,
		})
	}
	return t.surface
}

// Mount parses src as markup and mounts it, replacing any mounted tree.
func (t *Tester) Mount(src string) error {
	doc, err := markup.ParseString(src)
	if err != nil {
		return err
	}
	return t.mounted().Mount(doc)
}

// MountDescriptor mounts desc, replacing any mounted tree.
func (t *Tester) MountDescriptor(desc node.NodeDescriptor) error {
	return t.mounted().MountDescriptor(desc)
}

// Patch replaces the subtree at path with the single element in src.
func (t *Tester) Patch(path, src string) error {
	doc, err := markup.ParseString(src)
	if err != nil {
		return err
	}
	desc, err := doc.Root()
	if err != nil {
		return err
	}
	return t.mounted().Patch(path, desc)
}

// Root returns the mounted tree, or nil.
func (t *Tester) Root() *core.Node {
	if t.surface == nil {
		return nil
	}
	return t.surface.Root()
}

// Find evaluates a finder against the mounted tree.
func (t *Tester) Find(finder Finder) FinderResult {
	root := t.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		nodes:  finder.Evaluate(root),
		finder: finder,
	}
}
