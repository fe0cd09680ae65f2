package container

import (
	"fmt"

	"github.com/agentic-research/mosaic/component"
)

// Kind tags the active case of a Poly.
type Kind uint8

const (
	KindWidget Kind = iota + 1
	KindNumber
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindWidget:
		return "widget"
	case KindNumber:
		return "number"
	case KindContainer:
		return "container"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Poly is exactly one of PolyWidget, PolyNumber or PolyContainer.
//
// The unexported marker method closes the set to this package. Every case
// reports through its own Report method, so introducing a case without
// teaching it to report does not compile.
type Poly interface {
	component.Component
	Kind() Kind
	poly()
}

// PolyWidget is the Widget case.
type PolyWidget struct {
	component.Widget
}

func (PolyWidget) Kind() Kind { return KindWidget }
func (PolyWidget) poly()      {}

// PolyNumber is the Number case.
type PolyNumber struct {
	component.Number
}

func (PolyNumber) Kind() Kind { return KindNumber }
func (PolyNumber) poly()      {}

// PolyContainer is the recursive case: a container of Poly values.
// It shares the wrapped container, so Add and Remove through Container()
// are visible to the enclosing tree.
type PolyContainer struct {
	c *Container[Poly]
}

func (PolyContainer) Kind() Kind { return KindContainer }
func (PolyContainer) poly()      {}

// Container returns the wrapped container, never nil. A zero PolyContainer
// wraps nothing: it returns a fresh detached container on every call, so
// additions through it are not kept. Build the case with OfContainer.
func (p PolyContainer) Container() *Container[Poly] {
	if p.c == nil {
		return &Container[Poly]{}
	}
	return p.c
}

// Report implements component.Component.
func (p PolyContainer) Report() string {
	if p.c == nil {
		return ""
	}
	return p.c.Report()
}

// Len implements component.Branch.
func (p PolyContainer) Len() int {
	if p.c == nil {
		return 0
	}
	return p.c.Len()
}

// Child implements component.Branch.
func (p PolyContainer) Child(i int) component.Component {
	if p.c == nil {
		return nil
	}
	return p.c.Child(i)
}

func (p PolyContainer) Label() string { return "container" }

// OfWidget wraps w as a Poly.
func OfWidget(w component.Widget) Poly { return PolyWidget{Widget: w} }

// OfNumber wraps n as a Poly.
func OfNumber(n component.Number) Poly { return PolyNumber{Number: n} }

// OfContainer wraps c as a Poly, taking ownership of it. A nil c becomes a
// fresh empty container.
func OfContainer(c *Container[Poly]) Poly {
	if c == nil {
		c = New[Poly]()
	}
	return PolyContainer{c: c}
}

// Match calls the handler for p's case and returns its result. Adding a
// case to Poly adds a parameter here, so every caller has to handle it.
// Passing a nil Poly is a programming error and panics.
func Match[R any](
	p Poly,
	onWidget func(component.Widget) R,
	onNumber func(component.Number) R,
	onContainer func(*Container[Poly]) R,
) R {
	switch v := p.(type) {
	case PolyWidget:
		return onWidget(v.Widget)
	case PolyNumber:
		return onNumber(v.Number)
	case PolyContainer:
		return onContainer(v.Container())
	}
	panic(fmt.Sprintf("container: Match on %T", p))
}

var (
	_ Poly             = PolyWidget{}
	_ Poly             = PolyNumber{}
	_ Poly             = PolyContainer{}
	_ component.Branch = PolyContainer{}
)
