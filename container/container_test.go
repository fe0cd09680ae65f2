package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mosaic/component"
)

// ---------------------------------------------------------------------------
// Container[T]
// ---------------------------------------------------------------------------

func TestContainer_WidgetsAddAndRemove(t *testing.T) {
	var widgets Container[component.Widget]
	assert.Equal(t, 0, widgets.Add(component.NewWidget("Zero")))
	assert.Equal(t, 1, widgets.Add(component.NewWidget("One")))
	assert.Equal(t, "Widget 'Zero'.\nWidget 'One'.", widgets.Report())

	_, ok := widgets.Remove(42)
	assert.False(t, ok)
	assert.Equal(t, "Widget 'Zero'.\nWidget 'One'.", widgets.Report())

	removed, ok := widgets.Remove(0)
	require.True(t, ok)
	assert.Equal(t, "Zero", removed.Name())
	assert.Equal(t, "Widget 'One'.", widgets.Report())
}

func TestContainer_NestedContainers(t *testing.T) {
	var widgets Container[component.Widget]
	widgets.Add(component.NewWidget("Zero"))
	widgets.Add(component.NewWidget("One"))
	_, ok := widgets.Remove(0)
	require.True(t, ok)

	var window Container[Container[component.Widget]]
	assert.Equal(t, 0, window.Add(widgets))
	assert.Equal(t, 1, window.Add(Container[component.Widget]{}))
	assert.Equal(t, "Widget 'One'.", window.Report())
}

func TestContainer_EmptyInTheMiddleAddsNoBlankLine(t *testing.T) {
	var a, b Container[component.Number]
	a.Add(component.NewNumber(1))
	b.Add(component.NewNumber(2))

	outer := New[Container[component.Number]]()
	outer.Add(a)
	outer.Add(Container[component.Number]{})
	outer.Add(b)
	assert.Equal(t, "Number 1.\nNumber 2.", outer.Report())
}

func TestContainer_ZeroValueIsEmpty(t *testing.T) {
	var c Container[component.Number]
	assert.Equal(t, "", c.Report())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Remove(0)
	assert.False(t, ok)
}

func TestContainer_RemoveZeroValueOnMiss(t *testing.T) {
	c := New[component.Number]()
	c.Add(component.NewNumber(7))
	n, ok := c.Remove(1)
	assert.False(t, ok)
	assert.Equal(t, component.Number{}, n)
	_, ok = c.Remove(-1)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestContainer_AtChildAndAll(t *testing.T) {
	c := New[component.Widget]()
	c.Add(component.NewWidget("a"))
	c.Add(component.NewWidget("b"))

	w, ok := c.At(1)
	require.True(t, ok)
	assert.Equal(t, "b", w.Name())
	_, ok = c.At(2)
	assert.False(t, ok)
	assert.Nil(t, c.Child(5))
	assert.Equal(t, "Widget 'a'.", c.Child(0).Report())

	var names []string
	for i, w := range c.All() {
		assert.Equal(t, len(names), i)
		names = append(names, w.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)

	for range c.All() {
		break
	}
}

func TestContainer_IndicesTrackInsertionPosition(t *testing.T) {
	c := New[component.Number]()
	for i := range 5 {
		assert.Equal(t, i, c.Add(component.NewNumber(i)))
	}
	_, ok := c.Remove(2)
	require.True(t, ok)
	assert.Equal(t, 4, c.Add(component.NewNumber(9)))
	assert.Equal(t, "Number 0.\nNumber 1.\nNumber 3.\nNumber 4.\nNumber 9.", c.Report())
}

func TestContainer_RemoveOnCopyLeavesParentIntact(t *testing.T) {
	inner := New[component.Widget]()
	inner.Add(component.NewWidget("A"))
	inner.Add(component.NewWidget("B"))
	outer := New[Container[component.Widget]]()
	outer.Add(*inner)

	got, ok := outer.At(0)
	require.True(t, ok)
	_, ok = got.Remove(0)
	require.True(t, ok)
	assert.Equal(t, "Widget 'B'.", got.Report())
	assert.Equal(t, "Widget 'A'.\nWidget 'B'.", outer.Report())

	for _, c := range outer.All() {
		_, ok := c.Remove(1)
		require.True(t, ok)
		assert.Equal(t, "Widget 'A'.", c.Report())
	}
	assert.Equal(t, "Widget 'A'.\nWidget 'B'.", outer.Report())
}
