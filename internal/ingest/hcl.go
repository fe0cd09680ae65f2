package ingest

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/agentic-research/mosaic/api"
)

// HCLDecoder implements Decoder for HCL descriptions:
//
//	version = "v1"
//	window {
//	  widget "Widget 1" {}
//	  number { value = 3 }
//	}
//
// Blocks keep their source order, which becomes report order.
type HCLDecoder struct {
	// Filename is used in diagnostics only.
	Filename string
}

func NewHCLDecoder(filename string) *HCLDecoder {
	return &HCLDecoder{Filename: filename}
}

// Decode implements Decoder.
func (d *HCLDecoder) Decode(data []byte) (*api.Document, error) {
	name := d.Filename
	if name == "" {
		name = "<input>"
	}
	file, diags := hclsyntax.ParseConfig(data, name, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl: %w", diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parse hcl: unexpected body %T: %w", file.Body, ErrMalformed)
	}

	doc := &api.Document{}
	for key, attr := range body.Attributes {
		if key != "version" {
			return nil, fmt.Errorf("%s: unexpected attribute %q: %w", attr.SrcRange, key, ErrMalformed)
		}
		v, err := attrValue(attr)
		if err != nil {
			return nil, err
		}
		if err := gocty.FromCtyValue(v, &doc.Version); err != nil {
			return nil, fmt.Errorf("%s: version: %w", attr.SrcRange, err)
		}
	}

	nodes, err := blocksToNodes(body.Blocks, "nodes")
	if err != nil {
		return nil, err
	}
	doc.Nodes = nodes
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func blocksToNodes(blocks hclsyntax.Blocks, path string) ([]api.Node, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	nodes := make([]api.Node, 0, len(blocks))
	for i, b := range blocks {
		n, err := blockToNode(b, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func blockToNode(b *hclsyntax.Block, path string) (api.Node, error) {
	n := api.Node{Kind: b.Type}
	at := b.TypeRange.String()

	switch b.Type {
	case api.KindWidget:
		if len(b.Labels) != 1 {
			return n, fmt.Errorf("%s: %s: widget takes exactly one label (its name): %w", at, path, ErrMalformed)
		}
		n.Name = b.Labels[0]
		if err := onlyAttributes(b, path); err != nil {
			return n, err
		}
	case api.KindNumber:
		if len(b.Labels) != 0 {
			return n, fmt.Errorf("%s: %s: number takes no labels: %w", at, path, ErrMalformed)
		}
		if err := onlyAttributes(b, path, "value"); err != nil {
			return n, err
		}
		attr, ok := b.Body.Attributes["value"]
		if !ok {
			return n, fmt.Errorf("%s: %s: number needs a value attribute: %w", at, path, ErrMalformed)
		}
		v, err := attrValue(attr)
		if err != nil {
			return n, err
		}
		if err := gocty.FromCtyValue(v, &n.Value); err != nil {
			return n, fmt.Errorf("%s: %s.value: %w", attr.SrcRange, path, err)
		}
	case api.KindWindow, api.KindContainer:
		if len(b.Labels) != 0 {
			return n, fmt.Errorf("%s: %s: %s takes no labels: %w", at, path, b.Type, ErrMalformed)
		}
		if err := onlyAttributes(b, path); err != nil {
			return n, err
		}
		children, err := blocksToNodes(b.Body.Blocks, path+".children")
		if err != nil {
			return n, err
		}
		n.Children = children
	default:
		return n, fmt.Errorf("%s: %s: %w", at, path, unknownKindError(b.Type))
	}

	if !n.IsGroup() && len(b.Body.Blocks) > 0 {
		return n, fmt.Errorf("%s: %s: %s: %w", at, path, b.Type, ErrLeafChildren)
	}
	return n, nil
}

// onlyAttributes rejects any attribute on b not listed in allowed.
func onlyAttributes(b *hclsyntax.Block, path string, allowed ...string) error {
	for key, attr := range b.Body.Attributes {
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s: %s: unexpected attribute %q: %w", attr.SrcRange, path, key, ErrMalformed)
		}
	}
	return nil
}

func attrValue(attr *hclsyntax.Attribute) (cty.Value, error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("%s: %w", attr.SrcRange, diags)
	}
	return v, nil
}
