// Package node defines the server-provided description of a UI tree.
//
// A NodeDescriptor mirrors the server's markup exactly: a tag, an ordered
// attribute list and ordered children. Descriptors are plain data. They are
// produced once per server update, walked by the resolver and discarded.
package node

import (
	"fmt"
	"strings"
)

// TemplateAttr is the attribute used to classify a child into a parent's role.
const TemplateAttr = "template"

// Attribute is one name/value pair as sent by the server.
type Attribute struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// AttributeSet is an immutable, ordered list of attributes.
//
// Names are not required to be unique. Lookups follow last-write-wins,
// matching how the attributes are folded into typed properties.
// The zero value is an empty set.
type AttributeSet struct {
	attrs []Attribute
}

// NewAttributeSet returns a set holding a copy of attrs.
func NewAttributeSet(attrs []Attribute) AttributeSet {
	if len(attrs) == 0 {
		return AttributeSet{}
	}
	return AttributeSet{attrs: append([]Attribute(nil), attrs...)}
}

// Attrs builds a set from alternating name, value arguments.
// It panics on an odd argument count.
//
//	node.Attrs("width", "fill", "phx-click", "inc")
func Attrs(pairs ...string) AttributeSet {
	if len(pairs)%2 != 0 {
		panic("node.Attrs: odd number of arguments")
	}
	if len(pairs) == 0 {
		return AttributeSet{}
	}
	attrs := make([]Attribute, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		attrs = append(attrs, Attribute{Name: pairs[i], Value: pairs[i+1]})
	}
	return AttributeSet{attrs: attrs}
}

// Len returns the number of attributes, duplicates included.
func (s AttributeSet) Len() int {
	return len(s.attrs)
}

// At returns the attribute at index i in document order.
func (s AttributeSet) At(i int) Attribute {
	return s.attrs[i]
}

// All returns a copy of the attributes in document order.
func (s AttributeSet) All() []Attribute {
	return append([]Attribute(nil), s.attrs...)
}

// Get returns the last value given for name.
func (s AttributeSet) Get(name string) (string, bool) {
	for i := len(s.attrs) - 1; i >= 0; i-- {
		if s.attrs[i].Name == name {
			return s.attrs[i].Value, true
		}
	}
	return "", false
}

// Value returns the last value given for name, or "" when absent.
func (s AttributeSet) Value(name string) string {
	v, _ := s.Get(name)
	return v
}

// Has reports whether name appears at least once.
func (s AttributeSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Template returns the template attribute, if present.
func (s AttributeSet) Template() (string, bool) {
	return s.Get(TemplateAttr)
}

// Names returns the distinct attribute names in order of first appearance.
func (s AttributeSet) Names() []string {
	seen := make(map[string]bool, len(s.attrs))
	var names []string
	for _, a := range s.attrs {
		if !seen[a.Name] {
			seen[a.Name] = true
			names = append(names, a.Name)
		}
	}
	return names
}

// With returns a new set with the attribute appended; s is unchanged.
func (s AttributeSet) With(name, value string) AttributeSet {
	attrs := make([]Attribute, len(s.attrs), len(s.attrs)+1)
	copy(attrs, s.attrs)
	return AttributeSet{attrs: append(attrs, Attribute{Name: name, Value: value})}
}

func (s AttributeSet) String() string {
	var sb strings.Builder
	for i, a := range s.attrs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%q", a.Name, a.Value)
	}
	return sb.String()
}

// NodeDescriptor is one element of the server's markup.
type NodeDescriptor struct {
	Tag        string
	Attributes AttributeSet
	Children   []NodeDescriptor
	// Text is the character data found directly inside the element,
	// whitespace-collapsed. Most tags ignore it.
	Text string
}

// New returns a descriptor with the given tag, attributes and children.
func New(tag string, attrs AttributeSet, children ...NodeDescriptor) NodeDescriptor {
	return NodeDescriptor{Tag: tag, Attributes: attrs, Children: children}
}

// Template returns the descriptor's template attribute, if present.
func (d NodeDescriptor) Template() (string, bool) {
	return d.Attributes.Template()
}

// Validate checks the structural assumptions the resolver relies on:
// a non-empty tag and non-empty attribute names, recursively.
func (d NodeDescriptor) Validate() error {
	return d.validate("0")
}

func (d NodeDescriptor) validate(path string) error {
	if d.Tag == "" {
		return fmt.Errorf("node %s: empty tag", path)
	}
	for _, a := range d.Attributes.attrs {
		if a.Name == "" {
			return fmt.Errorf("node %s <%s>: empty attribute name", path, d.Tag)
		}
	}
	for i, c := range d.Children {
		if err := c.validate(ChildPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits d and its descendants depth-first, parent before children.
// Returning false from fn skips the node's children.
func (d NodeDescriptor) Walk(fn func(path string, d NodeDescriptor) bool) {
	d.walk("0", fn)
}

func (d NodeDescriptor) walk(path string, fn func(string, NodeDescriptor) bool) {
	if !fn(path, d) {
		return
	}
	for i, c := range d.Children {
		c.walk(ChildPath(path, i), fn)
	}
}

// ChildPath returns the document path of the i-th child under parent.
func ChildPath(parent string, i int) string {
	return fmt.Sprintf("%s/%d", parent, i)
}
