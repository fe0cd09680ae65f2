package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/mosaic/api"
	"github.com/agentic-research/mosaic/component"
	"github.com/agentic-research/mosaic/container"
	"github.com/agentic-research/mosaic/internal/config"
	"github.com/agentic-research/mosaic/internal/ingest"
)

// sourceFS is where descriptions are read from. Tests swap in memfs.
var sourceFS billy.Filesystem = osfs.New("/")

// loadDocument reads and decodes the description at path.
func loadDocument(fs billy.Filesystem, path string, c config.Config) (*api.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := util.ReadFile(fs, abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var format ingest.Format
	if c.Format != "" {
		format, err = ingest.ParseFormat(c.Format)
	} else {
		format, err = ingest.FormatFromPath(path)
	}
	if err != nil {
		return nil, err
	}

	doc, err := ingest.Decode(data, ingest.Options{
		Format:   format,
		Selector: c.Select,
		Filename: filepath.Base(path),
	})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// buildTree materializes doc with the configured strategy, then removes
// the requested top-level children. A removal that misses is logged and
// skipped, matching the composite contract where it is not an error.
func buildTree(doc *api.Document, strategy string, removals []int) (component.Component, error) {
	s, err := ingest.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}

	switch s {
	case ingest.StrategyWindow:
		return buildWindow(doc, removals)
	case ingest.StrategyPoly:
		c, err := buildPoly(doc, removals)
		if err != nil {
			return nil, err
		}
		return *c, nil
	default:
		a, root, err := ingest.BuildArena(doc)
		if err != nil {
			return nil, err
		}
		for _, i := range removals {
			id, ok := a.Remove(root, i)
			if !ok {
				n, _ := a.Node(root)
				logMissedRemoval(i, len(n.Children))
				continue
			}
			if err := a.Release(id); err != nil {
				return nil, fmt.Errorf("release removed node: %w", err)
			}
		}
		return a.Component(root)
	}
}

func buildWindow(doc *api.Document, removals []int) (*component.Window, error) {
	w, err := ingest.BuildWindow(doc)
	if err != nil {
		return nil, err
	}
	for _, i := range removals {
		if _, ok := w.RemoveComponent(i); !ok {
			logMissedRemoval(i, w.Len())
		}
	}
	return w, nil
}

func buildPoly(doc *api.Document, removals []int) (*container.Container[container.Poly], error) {
	c, err := ingest.BuildPoly(doc)
	if err != nil {
		return nil, err
	}
	for _, i := range removals {
		if _, ok := c.Remove(i); !ok {
			logMissedRemoval(i, c.Len())
		}
	}
	return c, nil
}

func logMissedRemoval(index, length int) {
	log.Printf("remove: index %d out of range (%d children), nothing removed", index, length)
}
