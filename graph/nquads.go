package graph

import (
	"errors"
	"fmt"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

// ReadNQuads parses an N-Triples or N-Quads document into a new graph.
// Graph labels are dropped; every statement lands in the default graph.
func ReadNQuads(r io.Reader) (*Graph, error) {
	g := New()
	if err := g.ReadFrom(r); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFrom appends every statement of an N-Quads document to g. Literals are
// read raw so typed literals keep their lexical form and datatype IRI.
func (g *Graph) ReadFrom(r io.Reader) error {
	qr := nquads.NewReader(r, true)
	for line := 1; ; line++ {
		q, err := qr.ReadQuad()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read statement %d: %w", line, err)
		}
		g.AddQuad(q)
	}
}

// WriteNQuads serializes g as N-Triples in insertion order.
func WriteNQuads(w io.Writer, g *Graph) error {
	qw := nquads.NewWriter(w)
	for _, t := range g.triples {
		q := quad.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object}
		if err := qw.WriteQuad(q); err != nil {
			return fmt.Errorf("write %s: %w", t, err)
		}
	}
	return qw.Close()
}
