// Package container provides a statically typed composite whose children all
// share one concrete type, plus Poly, a closed variant that lets a single
// Container hold leaves and nested containers together.
package container

import (
	"iter"
	"slices"

	"github.com/agentic-research/mosaic/component"
)

// Container is an ordered sequence of T. The zero value is empty and ready
// to use. Add takes ownership of its argument; a Container placed inside
// another must not be mutated through the original variable afterwards.
type Container[T component.Component] struct {
	content []T
}

// New returns an empty container.
func New[T component.Component]() *Container[T] {
	return &Container[T]{}
}

// Add appends content and returns its 0-based position.
func (c *Container[T]) Add(content T) int {
	c.content = append(c.content, content)
	return len(c.content) - 1
}

// Remove detaches the element at index, shifting later elements down by
// one. It returns the zero T and false when index is out of range.
//
// The remaining elements are copied into a new slice: copies handed out by
// At and All share the old backing array and must keep seeing it intact.
func (c *Container[T]) Remove(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.content) {
		return zero, false
	}
	removed := c.content[index]
	c.content = slices.Concat(c.content[:index:index], c.content[index+1:])
	return removed, true
}

// Report implements component.Component. It has a value receiver so a
// Container can itself be the element type of another Container.
func (c Container[T]) Report() string {
	return component.JoinReports(c.content)
}

func (c Container[T]) Len() int { return len(c.content) }

// At returns the element at i.
func (c Container[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(c.content) {
		var zero T
		return zero, false
	}
	return c.content[i], true
}

// Child implements component.Branch.
func (c Container[T]) Child(i int) component.Component {
	v, ok := c.At(i)
	if !ok {
		return nil
	}
	return v
}

// All iterates elements in order with their positions.
func (c Container[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range c.content {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (c Container[T]) Label() string { return "container" }

var _ component.Branch = Container[component.Widget]{}
