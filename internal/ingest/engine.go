package ingest

import (
	"fmt"
	"strings"

	"github.com/agentic-research/mosaic/api"
	"github.com/agentic-research/mosaic/component"
	"github.com/agentic-research/mosaic/container"
	"github.com/agentic-research/mosaic/internal/graph"
)

// Strategy selects how a Document is materialized.
type Strategy string

const (
	// StrategyWindow builds component.Window composites with dynamic dispatch.
	StrategyWindow Strategy = "window"
	// StrategyPoly builds a container.Container of container.Poly values.
	StrategyPoly Strategy = "poly"
	// StrategyArena builds nodes inside a graph.Arena.
	StrategyArena Strategy = "arena"
)

// ParseStrategy accepts a strategy name, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategyWindow, StrategyPoly, StrategyArena:
		return st, nil
	default:
		return "", fmt.Errorf("unsupported strategy %q (want window, poly or arena)", s)
	}
}

// BuildWindow materializes doc as nested Windows. Both group kinds map to
// Window.
func BuildWindow(doc *api.Document) (*component.Window, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	root := component.NewWindow()
	for _, n := range doc.Nodes {
		root.AddComponent(windowNode(n))
	}
	return root, nil
}

func windowNode(n api.Node) component.Component {
	switch n.Kind {
	case api.KindWidget:
		return component.NewWidget(n.Name)
	case api.KindNumber:
		return component.NewNumber(n.Value)
	}
	w := component.NewWindow()
	for _, c := range n.Children {
		w.AddComponent(windowNode(c))
	}
	return w
}

// BuildPoly materializes doc as a Container of Poly, nesting containers for
// both group kinds.
func BuildPoly(doc *api.Document) (*container.Container[container.Poly], error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return polyChildren(doc.Nodes), nil
}

func polyChildren(nodes []api.Node) *container.Container[container.Poly] {
	c := container.New[container.Poly]()
	for _, n := range nodes {
		switch n.Kind {
		case api.KindWidget:
			c.Add(container.OfWidget(component.NewWidget(n.Name)))
		case api.KindNumber:
			c.Add(container.OfNumber(component.NewNumber(n.Value)))
		default:
			c.Add(container.OfContainer(polyChildren(n.Children)))
		}
	}
	return c
}

// BuildArena materializes doc inside a fresh Arena and returns the root group.
func BuildArena(doc *api.Document) (*graph.Arena, graph.NodeID, error) {
	if err := Validate(doc); err != nil {
		return nil, 0, err
	}
	a := graph.NewArena()
	root := a.NewGroup()
	if err := arenaChildren(a, root, doc.Nodes); err != nil {
		return nil, 0, err
	}
	return a, root, nil
}

func arenaChildren(a *graph.Arena, parent graph.NodeID, nodes []api.Node) error {
	for _, n := range nodes {
		var id graph.NodeID
		switch n.Kind {
		case api.KindWidget:
			id = a.NewWidget(n.Name)
		case api.KindNumber:
			id = a.NewNumber(n.Value)
		default:
			id = a.NewGroup()
			if err := arenaChildren(a, id, n.Children); err != nil {
				return err
			}
		}
		if _, err := a.Add(parent, id); err != nil {
			return fmt.Errorf("arena add: %w", err)
		}
	}
	return nil
}
