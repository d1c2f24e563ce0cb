package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/livenative/pkg/errors"
)

// Node is one resolved element: it owns its widget and its ordered children.
// Nodes hold no parent pointer; lookups go down the tree.
type Node struct {
	Widget   Widget
	Children []*Node

	// SourceTag is the descriptor tag the node was built from.
	SourceTag string
	// SourceTemplate is the descriptor's template attribute, valid when HasTemplate.
	SourceTemplate string
	HasTemplate    bool
	// Role is the parent slot this node fills, or "" for generic content.
	Role string
	// Path is the document path, child indexes joined by "/".
	Path string

	childScope *Scope
	disposed   bool
}

// Walk visits n and its descendants depth-first, parent before children.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node in pre-order satisfying pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node in pre-order satisfying pred.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Slot returns the first direct child filling role, or nil.
func (n *Node) Slot(role string) *Node {
	for _, c := range n.Children {
		if c.Role == role {
			return c
		}
	}
	return nil
}

// Content returns the direct children that fill no role.
func (n *Node) Content() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Role == "" {
			out = append(out, c)
		}
	}
	return out
}

// Insert attaches child at index i.
func (n *Node) Insert(i int, child *Node) error {
	if n.disposed {
		return errors.ErrDisposed
	}
	if i < 0 || i > len(n.Children) {
		return fmt.Errorf("insert index %d out of range [0,%d]", i, len(n.Children))
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
	return nil
}

// Replace swaps the child at index i for child and disposes the old subtree.
func (n *Node) Replace(i int, child *Node) error {
	if n.disposed {
		return errors.ErrDisposed
	}
	if i < 0 || i >= len(n.Children) {
		return fmt.Errorf("replace index %d out of range [0,%d)", i, len(n.Children))
	}
	old := n.Children[i]
	n.Children[i] = child
	old.Dispose()
	return nil
}

// Remove detaches and disposes the child at index i.
func (n *Node) Remove(i int) error {
	if n.disposed {
		return errors.ErrDisposed
	}
	if i < 0 || i >= len(n.Children) {
		return fmt.Errorf("remove index %d out of range [0,%d)", i, len(n.Children))
	}
	old := n.Children[i]
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	old.Dispose()
	return nil
}

// Dispose tears down the subtree, children before parents. Pending
// emissions held by disposable widgets are discarded. Dispose is idempotent.
func (n *Node) Dispose() {
	if n == nil || n.disposed {
		return
	}
	n.disposed = true
	for _, c := range n.Children {
		c.Dispose()
	}
	if d, ok := n.Widget.(Disposable); ok {
		d.Dispose()
	}
}

// ChildScope returns the scope the node's children were resolved with.
func (n *Node) ChildScope() *Scope {
	return n.childScope
}

// Disposed reports whether the node was torn down.
func (n *Node) Disposed() bool {
	return n.disposed
}

// Dump writes an indented outline of the subtree.
func (n *Node) Dump(w io.Writer) {
	n.dump(w, 0)
}

func (n *Node) dump(w io.Writer, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s", indent, n.Widget.Kind())
	if n.SourceTag != "" && n.SourceTag != n.Widget.Kind() {
		fmt.Fprintf(w, " <%s>", n.SourceTag)
	}
	if n.Role != "" {
		fmt.Fprintf(w, " role=%s", n.Role)
	}
	if p, ok := n.Widget.(Placeholder); ok {
		fmt.Fprintf(w, " error=%q", p.Err)
	}
	fmt.Fprintln(w)
	for _, c := range n.Children {
		c.dump(w, depth+1)
	}
}

// String returns the Dump outline.
func (n *Node) String() string {
	var sb strings.Builder
	n.Dump(&sb)
	return sb.String()
}
