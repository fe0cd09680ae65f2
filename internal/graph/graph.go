// Package graph implements the arena strategy for component trees: every
// node lives in one slice and refers to its children by integer ID.
package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotFound = errors.New("node not found")
	ErrNotGroup = errors.New("node is not a group")
	ErrAttached = errors.New("node already has a parent")
	ErrCycle    = errors.New("node would become its own descendant")
)

// NodeID addresses a node inside one Arena. IDs of released nodes are reused.
type NodeID uint32

// Kind says which shape a Node has.
type Kind uint8

const (
	KindWidget Kind = iota + 1
	KindNumber
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindWidget:
		return "widget"
	case KindNumber:
		return "number"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is the universal primitive.
// Only the fields matching Kind are meaningful.
type Node struct {
	ID       NodeID
	Kind     Kind
	Name     string   // KindWidget
	Value    int      // KindNumber
	Children []NodeID // KindGroup, in report order
}

func (n *Node) clone() Node {
	c := *n
	c.Children = slices.Clone(n.Children)
	return c
}
