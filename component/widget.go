package component

import "strconv"

// Widget is a leaf carrying a name.
type Widget struct {
	name string
}

// NewWidget returns a Widget labelled name.
func NewWidget(name string) Widget {
	return Widget{name: name}
}

// Name returns the widget's label.
func (w Widget) Name() string { return w.name }

// Report implements Component.
func (w Widget) Report() string {
	return "Widget '" + w.name + "'."
}

// Number is a leaf carrying a signed integer.
type Number struct {
	value int
}

func NewNumber(value int) Number {
	return Number{value: value}
}

func (n Number) Value() int { return n.value }

// Report implements Component.
func (n Number) Report() string {
	return "Number " + strconv.Itoa(n.value) + "."
}

var (
	_ Component = Widget{}
	_ Component = Number{}
)
