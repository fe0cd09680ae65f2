package component

import "slices"

// Window is the dynamically dispatched composite. It exclusively owns its
// children, which may be any mix of Components including other Windows.
// The zero value is an empty window.
//
// Window does no locking; callers sharing one across goroutines must
// serialize access themselves.
type Window struct {
	children []Component
}

func NewWindow() *Window {
	return &Window{}
}

// AddComponent implements Composite.
func (w *Window) AddComponent(child Component) int {
	w.children = append(w.children, child)
	return len(w.children) - 1
}

// RemoveComponent implements Composite. Later children shift down by one.
func (w *Window) RemoveComponent(index int) (Component, bool) {
	if index < 0 || index >= len(w.children) {
		return nil, false
	}
	child := w.children[index]
	w.children = slices.Delete(w.children, index, index+1)
	return child, true
}

// Report implements Component.
func (w *Window) Report() string {
	if w == nil {
		return ""
	}
	return JoinReports(w.children)
}

// Len returns the number of direct children.
func (w *Window) Len() int {
	if w == nil {
		return 0
	}
	return len(w.children)
}

// Child returns the child at i, or nil when i is out of range.
func (w *Window) Child(i int) Component {
	if i < 0 || i >= w.Len() {
		return nil
	}
	return w.children[i]
}

// Label names the node kind for tree views.
func (w *Window) Label() string { return "window" }

var (
	_ Composite = (*Window)(nil)
	_ Branch    = (*Window)(nil)
)
