// Package render draws component trees for terminals.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/agentic-research/mosaic/component"
)

// Enumerators accepted by Options.Enumerator.
const (
	EnumeratorDefault = "default"
	EnumeratorRounded = "rounded"
)

// Options controls tree rendering.
type Options struct {
	Enumerator string // default or rounded
	Color      bool   // style branch labels
}

var branchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Tree renders c as an indented tree. Leaves show their one-line report;
// branches show their label (or "group") and their children beneath.
// Children with an empty report are still drawn so empty composites stay
// visible.
func Tree(c component.Component, opts Options) string {
	if c == nil {
		return ""
	}
	t := build(c, opts)
	return t.String()
}

func build(c component.Component, opts Options) *tree.Tree {
	t := tree.Root(label(c, opts))
	switch opts.Enumerator {
	case EnumeratorRounded:
		t.Enumerator(tree.RoundedEnumerator)
	default:
		t.Enumerator(tree.DefaultEnumerator)
	}

	b, ok := c.(component.Branch)
	if !ok {
		return t
	}
	for i := range b.Len() {
		child := b.Child(i)
		if child == nil {
			continue
		}
		if _, isBranch := child.(component.Branch); isBranch {
			t.Child(build(child, opts))
		} else {
			t.Child(child.Report())
		}
	}
	return t
}

type labeled interface {
	Label() string
}

func label(c component.Component, opts Options) string {
	if _, ok := c.(component.Branch); !ok {
		return c.Report()
	}
	s := "group"
	if l, ok := c.(labeled); ok {
		s = l.Label()
	}
	if opts.Color {
		return branchStyle.Render(s)
	}
	return s
}
