package ingest

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/mosaic/api"
)

// JSONDecoder implements Decoder for JSON descriptions.
//
// With an empty Selector the whole input is the match. Otherwise the
// JSONPath selector picks the parts of the input to build from. Each match
// may be a Document object, a single node object, or an array of nodes;
// any other shape is logged and skipped.
type JSONDecoder struct {
	Selector string
}

func NewJSONDecoder(selector string) *JSONDecoder {
	return &JSONDecoder{Selector: selector}
}

// Decode implements Decoder.
func (d *JSONDecoder) Decode(data []byte) (*api.Document, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	matches := []any{root}
	if d.Selector != "" {
		x, err := jp.ParseString(d.Selector)
		if err != nil {
			return nil, fmt.Errorf("invalid jsonpath '%s': %w", d.Selector, err)
		}
		matches = x.Get(root)
	}

	doc := &api.Document{}
	for i, m := range matches {
		if err := mergeMatch(doc, m, "match["+strconv.Itoa(i)+"]"); err != nil {
			return nil, err
		}
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func mergeMatch(doc *api.Document, m any, path string) error {
	switch v := m.(type) {
	case map[string]any:
		if _, isNode := v["kind"]; isNode {
			n, err := nodeFromValue(v, path)
			if err != nil {
				return err
			}
			doc.Nodes = append(doc.Nodes, n)
			return nil
		}
		if s, ok := v["version"].(string); ok && doc.Version == "" {
			doc.Version = s
		}
		nodes, err := nodesFromValue(v["nodes"], path+".nodes")
		if err != nil {
			return err
		}
		doc.Nodes = append(doc.Nodes, nodes...)
	case []any:
		nodes, err := nodesFromValue(v, path)
		if err != nil {
			return err
		}
		doc.Nodes = append(doc.Nodes, nodes...)
	default:
		log.Printf("JSONDecoder: skip %s: %T is not a document, node or node list", path, m)
	}
	return nil
}

func nodesFromValue(v any, path string) ([]api.Node, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: want array, got %T: %w", path, v, ErrMalformed)
	}
	nodes := make([]api.Node, 0, len(list))
	for i, item := range list {
		n, err := nodeFromValue(item, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func nodeFromValue(v any, path string) (api.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return api.Node{}, fmt.Errorf("%s: want object, got %T: %w", path, v, ErrMalformed)
	}
	var n api.Node
	for key, field := range m {
		switch key {
		case "kind":
			s, ok := field.(string)
			if !ok {
				return api.Node{}, fmt.Errorf("%s.kind: want string, got %T: %w", path, field, ErrMalformed)
			}
			n.Kind = s
		case "name":
			s, ok := field.(string)
			if !ok {
				return api.Node{}, fmt.Errorf("%s.name: want string, got %T: %w", path, field, ErrMalformed)
			}
			n.Name = s
		case "value":
			i, err := intFromValue(field)
			if err != nil {
				return api.Node{}, fmt.Errorf("%s.value: %w", path, err)
			}
			n.Value = i
		case "children":
			children, err := nodesFromValue(field, path+".children")
			if err != nil {
				return api.Node{}, err
			}
			n.Children = children
		default:
			return api.Node{}, fmt.Errorf("%s: unexpected field %q: %w", path, key, ErrMalformed)
		}
	}
	return n, nil
}

// intFromValue accepts the integer shapes ojg produces.
func intFromValue(v any) (int, error) {
	switch x := v.(type) {
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, fmt.Errorf("%d overflows int: %w", x, ErrMalformed)
		}
		return int(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%v is not an integer: %w", x, ErrMalformed)
		}
		if x < math.MinInt || x > math.MaxInt {
			return 0, fmt.Errorf("%v overflows int: %w", x, ErrMalformed)
		}
		return int(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return intFromValue(i)
		}
		if strings.ContainsAny(string(x), ".eE") {
			return 0, fmt.Errorf("%s is not an integer: %w", x, ErrMalformed)
		}
		return 0, fmt.Errorf("%s overflows int: %w", x, ErrMalformed)
	default:
		return 0, fmt.Errorf("want integer, got %T: %w", v, ErrMalformed)
	}
}
