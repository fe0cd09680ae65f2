package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentic-research/mosaic/api"
)

// Format names a description syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// ParseFormat accepts a format name, case-insensitively. "yml" is an alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Options selects and configures a Decoder.
type Options struct {
	Format   Format
	Selector string // JSONPath, JSON only
	Filename string // used in HCL diagnostics
}

// DecoderFor returns the Decoder for opts.Format.
func DecoderFor(opts Options) (Decoder, error) {
	if opts.Selector != "" && opts.Format != FormatJSON {
		return nil, fmt.Errorf("selector %q requires json input, got %s", opts.Selector, opts.Format)
	}
	switch opts.Format {
	case FormatJSON:
		return NewJSONDecoder(opts.Selector), nil
	case FormatYAML:
		return NewYAMLDecoder(), nil
	case FormatHCL:
		return NewHCLDecoder(opts.Filename), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", opts.Format)
	}
}

// Decode parses data with the decoder selected by opts.
func Decode(data []byte, opts Options) (*api.Document, error) {
	dec, err := DecoderFor(opts)
	if err != nil {
		return nil, err
	}
	return dec.Decode(data)
}
