package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/agentic-research/mosaic/api"
)

var (
	ErrUnknownKind  = errors.New("unknown node kind")
	ErrLeafChildren = errors.New("leaf node cannot have children")
	ErrMalformed    = errors.New("malformed node")
)

var knownKinds = []string{api.KindWidget, api.KindNumber, api.KindWindow, api.KindContainer}

// maxSuggestDistance bounds how far a typo may be from a known kind before
// we stop guessing.
const maxSuggestDistance = 3

// suggestKind returns the known kind closest to kind, or "" if none is close.
func suggestKind(kind string) string {
	lower := strings.ToLower(kind)
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range knownKinds {
		if d := levenshtein.ComputeDistance(lower, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func unknownKindError(kind string) error {
	if s := suggestKind(kind); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKind, kind, s)
	}
	return fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// Validate checks kinds and leaf shape for every node in doc.
func Validate(doc *api.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document: %w", ErrMalformed)
	}
	return validateNodes(doc.Nodes, "nodes")
}

func validateNodes(nodes []api.Node, path string) error {
	for i, n := range nodes {
		p := path + "[" + strconv.Itoa(i) + "]"
		switch n.Kind {
		case api.KindWidget, api.KindNumber:
			if len(n.Children) > 0 {
				return fmt.Errorf("%s: %s: %w", p, n.Kind, ErrLeafChildren)
			}
		case api.KindWindow, api.KindContainer:
			if err := validateNodes(n.Children, p+".children"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: %w", p, unknownKindError(n.Kind))
		}
	}
	return nil
}
