package graph

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/mosaic/component"
)

// Arena owns a forest of nodes. Unlike the pointer based composites it
// checks ownership on every Add: a node has at most one parent and can
// never be placed under itself.
//
// Arena is not safe for concurrent use; see SyncArena.
type Arena struct {
	nodes   []Node
	parents []NodeID // valid only where attached has the bit set

	attached *roaring.Bitmap // IDs that currently have a parent
	free     *roaring.Bitmap // released slots, reused lowest first
}

func NewArena() *Arena {
	return &Arena{
		attached: roaring.New(),
		free:     roaring.New(),
	}
}

// NewWidget allocates a detached widget leaf.
func (a *Arena) NewWidget(name string) NodeID {
	return a.alloc(Node{Kind: KindWidget, Name: name})
}

// NewNumber allocates a detached number leaf.
func (a *Arena) NewNumber(value int) NodeID {
	return a.alloc(Node{Kind: KindNumber, Value: value})
}

// NewGroup allocates a detached, empty group.
func (a *Arena) NewGroup() NodeID {
	return a.alloc(Node{Kind: KindGroup})
}

func (a *Arena) alloc(n Node) NodeID {
	if !a.free.IsEmpty() {
		slot := a.free.Minimum()
		a.free.Remove(slot)
		n.ID = NodeID(slot)
		a.nodes[slot] = n
		a.parents[slot] = 0
		return n.ID
	}
	n.ID = NodeID(len(a.nodes))
	a.nodes = append(a.nodes, n)
	a.parents = append(a.parents, 0)
	return n.ID
}

func (a *Arena) live(id NodeID) bool {
	return int(id) < len(a.nodes) && !a.free.Contains(uint32(id))
}

// Add appends child to the group parent and returns its 0-based position.
func (a *Arena) Add(parent, child NodeID) (int, error) {
	if !a.live(parent) {
		return 0, fmt.Errorf("parent %d: %w", parent, ErrNotFound)
	}
	if !a.live(child) {
		return 0, fmt.Errorf("child %d: %w", child, ErrNotFound)
	}
	p := &a.nodes[parent]
	if p.Kind != KindGroup {
		return 0, fmt.Errorf("parent %d (%s): %w", parent, p.Kind, ErrNotGroup)
	}
	if a.attached.Contains(uint32(child)) {
		return 0, fmt.Errorf("child %d: %w", child, ErrAttached)
	}
	// Walk up from parent; meeting child means child is an ancestor.
	for cur := parent; ; cur = a.parents[cur] {
		if cur == child {
			return 0, fmt.Errorf("add %d under %d: %w", child, parent, ErrCycle)
		}
		if !a.attached.Contains(uint32(cur)) {
			break
		}
	}

	p.Children = append(p.Children, child)
	a.parents[child] = parent
	a.attached.Add(uint32(child))
	return len(p.Children) - 1, nil
}

// Remove detaches the child at index from parent, shifting later children
// down by one. The detached subtree stays allocated until Release, so it
// can be re-added elsewhere. It reports false when parent is unknown, is
// not a group, or index is out of range.
func (a *Arena) Remove(parent NodeID, index int) (NodeID, bool) {
	if !a.live(parent) {
		return 0, false
	}
	p := &a.nodes[parent]
	if p.Kind != KindGroup || index < 0 || index >= len(p.Children) {
		return 0, false
	}
	child := p.Children[index]
	p.Children = slices.Delete(p.Children, index, index+1)
	a.attached.Remove(uint32(child))
	return child, true
}

// Release frees a detached node and all of its descendants.
func (a *Arena) Release(id NodeID) error {
	if !a.live(id) {
		return fmt.Errorf("release %d: %w", id, ErrNotFound)
	}
	if a.attached.Contains(uint32(id)) {
		return fmt.Errorf("release %d: %w", id, ErrAttached)
	}
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, a.nodes[cur].Children...)
		a.attached.Remove(uint32(cur))
		a.nodes[cur] = Node{}
		a.free.Add(uint32(cur))
	}
	return nil
}

// Node returns a copy of the node stored at id.
func (a *Arena) Node(id NodeID) (Node, error) {
	if !a.live(id) {
		return Node{}, fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	return a.nodes[id].clone(), nil
}

// Parent returns the group owning id, if any.
func (a *Arena) Parent(id NodeID) (NodeID, bool) {
	if !a.live(id) || !a.attached.Contains(uint32(id)) {
		return 0, false
	}
	return a.parents[id], true
}

// Len returns the number of allocated nodes.
func (a *Arena) Len() int {
	return len(a.nodes) - int(a.free.GetCardinality())
}

// Report renders the subtree rooted at id.
func (a *Arena) Report(id NodeID) (string, error) {
	c, err := a.Component(id)
	if err != nil {
		return "", err
	}
	return c.Report(), nil
}

// Component returns a read-only view of the subtree rooted at id. Leaves
// come back as component.Widget or component.Number; groups implement
// component.Branch. The view reads the arena lazily and reflects later
// mutations.
func (a *Arena) Component(id NodeID) (component.Component, error) {
	if !a.live(id) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	return a.view(id), nil
}

func (a *Arena) view(id NodeID) component.Component {
	n := &a.nodes[id]
	switch n.Kind {
	case KindWidget:
		return component.NewWidget(n.Name)
	case KindNumber:
		return component.NewNumber(n.Value)
	case KindGroup:
		return groupView{arena: a, id: id}
	}
	panic(fmt.Sprintf("graph: node %d has kind %s", id, n.Kind))
}

type groupView struct {
	arena *Arena
	id    NodeID
}

func (g groupView) children() []NodeID {
	if !g.arena.live(g.id) {
		return nil
	}
	return g.arena.nodes[g.id].Children
}

func (g groupView) Report() string {
	ids := g.children()
	views := make([]component.Component, len(ids))
	for i, id := range ids {
		views[i] = g.arena.view(id)
	}
	return component.JoinReports(views)
}

func (g groupView) Len() int { return len(g.children()) }

func (g groupView) Child(i int) component.Component {
	ids := g.children()
	if i < 0 || i >= len(ids) {
		return nil
	}
	return g.arena.view(ids[i])
}

func (g groupView) Label() string { return "group" }

var _ component.Branch = groupView{}
