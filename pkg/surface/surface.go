// Package surface owns a mounted node tree and applies server updates to it.
//
// A Surface resolves a parsed document into a tree, replaces subtrees when
// the server patches them and tears everything down on unmount. Replaced
// and unmounted subtrees are disposed, so their pending value emissions are
// discarded instead of being delivered late.
//
// Surface is NOT thread-safe. It must only be used from the UI thread.
package surface

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/errors"
	"github.com/go-drift/livenative/pkg/markup"
	"github.com/go-drift/livenative/pkg/node"
)

// Options configures a Surface.
type Options struct {
	// Registry resolves tags; nil means core.DefaultRegistry.
	Registry *core.Registry
	// Policy decides what replaces a failed subtree.
	Policy core.FailurePolicy
	// Scope is the root scope (sink, scheduler, lookups, defaults).
	Scope *core.Scope
	// ProtocolVersion is the version documents are checked against;
	// empty means markup.ProtocolVersion.
	ProtocolVersion string
	Logger          *slog.Logger
}

// Surface holds the tree mounted for one server view.
type Surface struct {
	resolver *core.Resolver
	scope    *core.Scope
	version  string
	logger   *slog.Logger
	root     *core.Node
}

// New returns an empty surface.
func New(opts Options) *Surface {
	scope := opts.Scope
	if scope == nil {
		scope = core.NewScope(nil, nil)
	}
	version := opts.ProtocolVersion
	if version == "" {
		version = markup.ProtocolVersion
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if scope.Logger == nil {
		scope = scope.Child()
		scope.Logger = logger
	}
	return &Surface{
		resolver: &core.Resolver{Registry: opts.Registry, Policy: opts.Policy},
		scope:    scope,
		version:  version,
		logger:   logger,
	}
}

// Root returns the mounted tree, or nil.
func (s *Surface) Root() *core.Node {
	return s.root
}

// Mount checks the document's protocol version and resolves its root
// element, replacing any mounted tree. Resolution failures are returned; the
// new tree is mounted unless the root itself failed or the policy aborted.
func (s *Surface) Mount(doc *markup.Document) error {
	if err := markup.CheckVersion(s.logger, doc.Version, s.version); err != nil {
		return err
	}
	desc, err := doc.Root()
	if err != nil {
		return err
	}
	return s.MountDescriptor(desc)
}

// MountDescriptor resolves desc and mounts it, disposing any mounted tree.
// When no tree comes back the mounted one is kept.
func (s *Surface) MountDescriptor(desc node.NodeDescriptor) error {
	root, err := s.resolver.Resolve(desc, s.scope.Sink, s.scope)
	s.logResult("mount", core.RootPath, err)
	if root == nil {
		return err
	}
	if s.root != nil {
		s.root.Dispose()
	}
	s.root = root
	return err
}

// Patch replaces the subtree at path (the document path of a mounted node,
// as carried in Node.Path) with the resolution of desc. The old subtree is
// disposed. A failing replacement follows the surface's policy: a
// placeholder is inserted, the old subtree is removed, or nothing changes.
func (s *Surface) Patch(path string, desc node.NodeDescriptor) error {
	if s.root == nil {
		return errNotMounted
	}
	if path == core.RootPath {
		return s.MountDescriptor(desc)
	}
	parent, index, err := s.locate(path)
	if err != nil {
		return err
	}
	n, err := s.resolver.ResolveChild(parent, index, desc)
	s.logResult("patch", path, err)
	if n == nil {
		if s.resolver.Policy == core.PolicyOmit {
			if rmErr := parent.Remove(index); rmErr != nil {
				return errors.Join(err, rmErr)
			}
		}
		return err
	}
	if repErr := parent.Replace(index, n); repErr != nil {
		return errors.Join(err, repErr)
	}
	return err
}

// Unmount disposes the mounted tree.
func (s *Surface) Unmount() {
	if s.root != nil {
		s.root.Dispose()
		s.root = nil
	}
}

// Lookup returns the node whose document path is path, or nil when it is not
// in the tree.
func (s *Surface) Lookup(path string) *core.Node {
	if s.root == nil {
		return nil
	}
	if path == core.RootPath {
		return s.root
	}
	parent, index, err := s.locate(path)
	if err != nil {
		return nil
	}
	return parent.Children[index]
}

var errNotMounted = errors.New("surface: nothing mounted")

// locate returns the parent of the node at path and the node's index in the
// parent's children. Children are matched by their document path, so an
// omitted sibling does not shift the nodes after it.
func (s *Surface) locate(path string) (*core.Node, int, error) {
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] != core.RootPath {
		return nil, 0, fmt.Errorf("surface: invalid path %q", path)
	}
	cur := s.root
	var parent *core.Node
	index := 0
	for depth, p := range parts[1:] {
		if i, err := strconv.Atoi(p); err != nil || i < 0 {
			return nil, 0, fmt.Errorf("surface: invalid path %q", path)
		}
		want := strings.Join(parts[:depth+2], "/")
		i := slices.IndexFunc(cur.Children, func(c *core.Node) bool { return c.Path == want })
		if i < 0 {
			return nil, 0, fmt.Errorf("surface: no node at %q", path)
		}
		parent, index, cur = cur, i, cur.Children[i]
	}
	return parent, index, nil
}

func (s *Surface) logResult(op, path string, err error) {
	if err != nil {
		s.logger.Warn("surface "+op+" completed with failures", "path", path, "err", err)
		return
	}
	s.logger.Debug("surface "+op, "path", path)
}
