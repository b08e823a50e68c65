package rdfmap

import (
	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
)

// DecodeResult is delivered by DecodeAsync.
type DecodeResult struct {
	Ontology *owl.Ontology
	Err      error
}

// EncodeResult is delivered by EncodeAsync.
type EncodeResult struct {
	Graph *graph.Graph
	Err   error
}

// DecodeAsync runs Decode on its own goroutine. The returned channel
// receives exactly one result and is then closed.
func DecodeAsync(g *graph.Graph, opts ...DecodeOption) <-chan DecodeResult {
	out := make(chan DecodeResult, 1)
	go func() {
		defer close(out)
		o, err := Decode(g, opts...)
		out <- DecodeResult{Ontology: o, Err: err}
	}()
	return out
}

// EncodeAsync runs Encode on its own goroutine. The returned channel
// receives exactly one result and is then closed.
func EncodeAsync(o *owl.Ontology, opts ...EncodeOption) <-chan EncodeResult {
	out := make(chan EncodeResult, 1)
	go func() {
		defer close(out)
		g, err := Encode(o, opts...)
		out <- EncodeResult{Graph: g, Err: err}
	}()
	return out
}
