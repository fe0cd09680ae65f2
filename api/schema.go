package api

// Document is the root of a tree description.
// Its nodes become the children of one top-level composite.
type Document struct {
	// Version of the description format.
	Version string `json:"version" yaml:"version"`
	// Nodes are the top-level children, in report order.
	Nodes []Node `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// Node kinds understood by the builders.
const (
	KindWidget    = "widget"
	KindNumber    = "number"
	KindWindow    = "window"
	KindContainer = "container"
)

// Node describes one tree node.
// Leaves use Name or Value; groups use Children.
type Node struct {
	// Kind is one of widget, number, window or container.
	Kind string `json:"kind" yaml:"kind"`
	// Name labels a widget.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Value is a number's integer value.
	Value int `json:"value,omitempty" yaml:"value,omitempty"`
	// Children of a window or container.
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsGroup reports whether the node is a composite kind.
func (n Node) IsGroup() bool {
	return n.Kind == KindWindow || n.Kind == KindContainer
}
