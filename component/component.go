// Package component defines the reporting capability shared by every tree
// node, the two leaf kinds, and the dynamically dispatched composite.
package component

import (
	"strings"
	"unicode"
)

// Component is anything that can describe itself and its descendants,
// one line per leaf, depth-first in current child order.
type Component interface {
	Report() string
}

// Composite is a Component that owns an ordered list of children.
type Composite interface {
	Component
	// AddComponent appends child and returns its 0-based position.
	AddComponent(child Component) int
	// RemoveComponent detaches the child at index. It reports false and
	// leaves the composite unchanged when index is out of range.
	RemoveComponent(index int) (Component, bool)
}

// Branch gives read-only positional access to a node's children.
// Both Window and container.Container implement it.
type Branch interface {
	Component
	Len() int
	Child(i int) Component
}

// JoinReports renders children in order, one segment per child, separated
// by single newlines with trailing whitespace trimmed. Nil children and
// children with an empty report contribute nothing.
func JoinReports[T Component](children []T) string {
	var b strings.Builder
	for _, c := range children {
		if Component(c) == nil {
			continue
		}
		r := c.Report()
		if r == "" {
			continue
		}
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
