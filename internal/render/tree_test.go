package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mosaic/component"
	"github.com/agentic-research/mosaic/container"
	"github.com/agentic-research/mosaic/internal/graph"
)

func sampleWindow() *component.Window {
	inner := component.NewWindow()
	inner.AddComponent(component.NewNumber(1))
	root := component.NewWindow()
	root.AddComponent(component.NewWidget("a"))
	root.AddComponent(inner)
	root.AddComponent(component.NewWindow())
	root.AddComponent(component.NewNumber(2))
	return root
}

func TestTree_Window(t *testing.T) {
	out := Tree(sampleWindow(), Options{})
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "window", lines[0])

	for _, want := range []string{"Widget 'a'.", "Number 1.", "Number 2."} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Widget 'a'."), strings.Index(out, "Number 1."))
	assert.Less(t, strings.Index(out, "Number 1."), strings.Index(out, "Number 2."))
	assert.Equal(t, 3, strings.Count(out, "window"), "empty nested windows stay visible")
}

func TestTree_NestedIsIndented(t *testing.T) {
	out := Tree(sampleWindow(), Options{})
	var top, nested string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "Widget 'a'."):
			top = line
		case strings.Contains(line, "Number 1."):
			nested = line
		}
	}
	require.NotEmpty(t, top)
	require.NotEmpty(t, nested)
	assert.Greater(t, strings.Index(nested, "Number"), strings.Index(top, "Widget"))
}

func TestTree_RoundedEnumerator(t *testing.T) {
	out := Tree(sampleWindow(), Options{Enumerator: EnumeratorRounded})
	assert.Contains(t, out, "╰──")
	assert.NotContains(t, out, "└──")
}

func TestTree_Leaf(t *testing.T) {
	assert.Equal(t, "Number 7.", Tree(component.NewNumber(7), Options{}))
	assert.Equal(t, "", Tree(nil, Options{}))
}

func TestTree_PolyAndArenaLabels(t *testing.T) {
	c := container.New[container.Poly]()
	c.Add(container.OfWidget(component.NewWidget("p")))
	out := Tree(*c, Options{})
	assert.True(t, strings.HasPrefix(out, "container"))
	assert.Contains(t, out, "Widget 'p'.")

	a := graph.NewArena()
	root := a.NewGroup()
	_, err := a.Add(root, a.NewNumber(9))
	require.NoError(t, err)
	view, err := a.Component(root)
	require.NoError(t, err)
	out = Tree(view, Options{Color: true})
	assert.Contains(t, out, "group")
	assert.Contains(t, out, "Number 9.")
}
