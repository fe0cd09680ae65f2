package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mosaic/api"
	"github.com/agentic-research/mosaic/component"
)

const nestedYAML = `
version: v1
nodes:
  - kind: container
    children:
      - {kind: widget, name: "0.0"}
      - {kind: number, value: 1}
  - {kind: widget, name: Main}
  - {kind: number, value: 42}
  - kind: window
    children:
      - {kind: number, value: 2}
      - kind: container
        children:
          - {kind: widget, name: View}
          - {kind: widget, name: Bar}
          - {kind: number, value: 3}
`

const nestedReport = "Widget '0.0'.\nNumber 1.\nWidget 'Main'.\nNumber 42.\nNumber 2.\nWidget 'View'.\nWidget 'Bar'.\nNumber 3."

func decodeNested(t *testing.T) *api.Document {
	t.Helper()
	doc, err := NewYAMLDecoder().Decode([]byte(nestedYAML))
	require.NoError(t, err)
	return doc
}

func build(t *testing.T, doc *api.Document, s Strategy) component.Component {
	t.Helper()
	switch s {
	case StrategyWindow:
		w, err := BuildWindow(doc)
		require.NoError(t, err)
		return w
	case StrategyPoly:
		c, err := BuildPoly(doc)
		require.NoError(t, err)
		return *c
	default:
		a, root, err := BuildArena(doc)
		require.NoError(t, err)
		view, err := a.Component(root)
		require.NoError(t, err)
		return view
	}
}

// ---------------------------------------------------------------------------
// YAML
// ---------------------------------------------------------------------------

func TestYAMLDecoder_Document(t *testing.T) {
	doc := decodeNested(t)
	assert.Equal(t, "v1", doc.Version)
	require.Len(t, doc.Nodes, 4)
	assert.True(t, doc.Nodes[3].IsGroup())
	assert.Len(t, doc.Nodes[3].Children[1].Children, 3)
}

func TestYAMLDecoder_EmptyInput(t *testing.T) {
	doc, err := NewYAMLDecoder().Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Nodes)
}

func TestYAMLDecoder_RejectsUnknownField(t *testing.T) {
	_, err := NewYAMLDecoder().Decode([]byte("nodes:\n  - kind: widget\n    nam: x\n"))
	assert.Error(t, err)
}

func TestYAMLDecoder_LeafChildren(t *testing.T) {
	_, err := NewYAMLDecoder().Decode([]byte("nodes:\n  - kind: widget\n    children:\n      - kind: number\n"))
	assert.ErrorIs(t, err, ErrLeafChildren)
}

// ---------------------------------------------------------------------------
// Builders
// ---------------------------------------------------------------------------

func TestBuild_AllStrategiesAgree(t *testing.T) {
	doc := decodeNested(t)
	for _, s := range []Strategy{StrategyWindow, StrategyPoly, StrategyArena} {
		t.Run(string(s), func(t *testing.T) {
			root := build(t, doc, s)
			assert.Equal(t, nestedReport, root.Report())

			b, ok := root.(component.Branch)
			require.True(t, ok, "root of every strategy is a Branch")
			assert.Equal(t, 4, b.Len())
		})
	}
}

func TestBuildWindow_RemoveAfterBuild(t *testing.T) {
	doc, err := NewJSONDecoder("").Decode([]byte(windowJSON))
	require.NoError(t, err)
	w, err := BuildWindow(doc)
	require.NoError(t, err)

	assert.Equal(t, "Widget 'Widget 1'.\nWidget 'Widget 2'.\nNumber 3.", w.Report())
	_, ok := w.RemoveComponent(1)
	require.True(t, ok)
	assert.Equal(t, "Widget 'Widget 1'.\nNumber 3.", w.Report())
}

func TestBuildPoly_EmptyDocument(t *testing.T) {
	c, err := BuildPoly(&api.Document{})
	require.NoError(t, err)
	assert.Equal(t, "", c.Report())
}

func TestBuildArena_Shape(t *testing.T) {
	a, root, err := BuildArena(decodeNested(t))
	require.NoError(t, err)
	assert.Equal(t, 12, a.Len())

	n, err := a.Node(root)
	require.NoError(t, err)
	assert.Len(t, n.Children, 4)
}

func TestBuild_RejectsInvalid(t *testing.T) {
	doc := &api.Document{Nodes: []api.Node{{Kind: "slider"}}}
	_, err := BuildWindow(doc)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = BuildPoly(doc)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, _, err = BuildArena(doc)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = BuildPoly(nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

// ---------------------------------------------------------------------------
// Formats, strategies, kinds
// ---------------------------------------------------------------------------

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"tree.json":     FormatJSON,
		"a/b/tree.yaml": FormatYAML,
		"tree.YML":      FormatYAML,
		"tree.hcl":      FormatHCL,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFromPath("tree")
	assert.Error(t, err)
	_, err = FormatFromPath("tree.toml")
	assert.Error(t, err)
}

func TestDecode_SelectorRequiresJSON(t *testing.T) {
	_, err := Decode([]byte(nestedYAML), Options{Format: FormatYAML, Selector: "$.nodes"})
	assert.Error(t, err)

	doc, err := Decode([]byte(polyHCL), Options{Format: FormatHCL})
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 3)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" Arena ")
	require.NoError(t, err)
	assert.Equal(t, StrategyArena, s)
	_, err = ParseStrategy("dynamic")
	assert.Error(t, err)
}

func TestSuggestKind(t *testing.T) {
	assert.Equal(t, "window", suggestKind("Windows"))
	assert.Equal(t, "container", suggestKind("contaner"))
	assert.Equal(t, "", suggestKind("spreadsheet"))
}
