package ingest

import "github.com/agentic-research/mosaic/api"

// Decoder turns one serialized tree description into a Document.
// Implementations validate what they return: every node has a known kind
// and leaves have no children.
type Decoder interface {
	Decode(data []byte) (*api.Document, error)
}
