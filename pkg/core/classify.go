package core

import "github.com/go-drift/livenative/pkg/node"

// Children is a live view of a node's resolved children, in document order,
// with their role assignments. It follows later Insert, Replace and Remove
// calls on the node, so widgets may keep it instead of copying slots out.
type Children struct {
	owner *Node
}

// All returns every child in document order.
func (c Children) All() []*Node {
	if c.owner == nil {
		return nil
	}
	return c.owner.Children
}

// Len returns the number of children.
func (c Children) Len() int {
	return len(c.All())
}

// Content returns the children that fill no role.
func (c Children) Content() []*Node {
	var out []*Node
	for _, n := range c.All() {
		if n.Role == "" {
			out = append(out, n)
		}
	}
	return out
}

// Slot returns the first child filling role, or nil.
func (c Children) Slot(role string) *Node {
	for _, n := range c.All() {
		if n.Role == role {
			return n
		}
	}
	return nil
}

// Slots returns every child filling role.
func (c Children) Slots(role string) []*Node {
	var out []*Node
	for _, n := range c.All() {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// assignment is the classification of one child descriptor.
type assignment struct {
	role *Role
}

// classify assigns each child to the first role, in declaration order, whose
// tags or templates match it. A child matching an exclusive role that an
// earlier sibling already filled becomes generic content.
func classify(roles []Role, children []node.NodeDescriptor, onOverflow func(child int, role string)) []assignment {
	out := make([]assignment, len(children))
	if len(roles) == 0 {
		return out
	}
	filled := make(map[string]bool, len(roles))
	for i, child := range children {
		r := matchRole(roles, child, func(name string) bool { return filled[name] })
		if r == nil {
			if name := firstMatch(roles, child); name != "" && onOverflow != nil {
				onOverflow(i, name)
			}
			continue
		}
		filled[r.Name] = true
		out[i].role = r
	}
	return out
}

// matchRole returns the role child fills, or nil for generic content.
// Only the first matching role is considered.
func matchRole(roles []Role, child node.NodeDescriptor, filled func(name string) bool) *Role {
	template, hasTemplate := child.Template()
	for r := range roles {
		role := &roles[r]
		if !role.matches(child.Tag, template, hasTemplate) {
			continue
		}
		if role.Exclusive && filled(role.Name) {
			return nil
		}
		return role
	}
	return nil
}

func firstMatch(roles []Role, child node.NodeDescriptor) string {
	template, hasTemplate := child.Template()
	for _, role := range roles {
		if role.matches(child.Tag, template, hasTemplate) {
			return role.Name
		}
	}
	return ""
}
