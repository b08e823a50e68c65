package rdfmap

import (
	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

var (
	rdfType  = quad.IRI(owlrdf.RDFType)
	rdfList  = quad.IRI(owlrdf.RDFList)
	rdfFirst = quad.IRI(owlrdf.RDFFirst)
	rdfRest  = quad.IRI(owlrdf.RDFRest)
	rdfNil   = quad.IRI(owlrdf.RDFNil)
)

// DecodeList walks an RDF collection from head and returns its members in
// order. A cycle, a missing rdf:first or a missing rdf:rest ends the walk and
// the members collected so far are returned.
func DecodeList(g *graph.Graph, head quad.Value) []quad.Value {
	var (
		items   []quad.Value
		visited = make(map[quad.Value]bool)
	)
	for cur := head; cur != nil && cur != rdfNil; {
		if visited[cur] {
			return items
		}
		visited[cur] = true

		first, ok := g.Object(cur, rdfFirst)
		if !ok {
			return items
		}
		items = append(items, first)

		next, ok := g.Object(cur, rdfRest)
		if !ok {
			return items
		}
		cur = next
	}
	return items
}

// EncodeList writes items as a fresh rdf:List chain and returns its head.
// An empty list is rdf:nil.
func EncodeList(g *graph.Graph, alloc *BlankAllocator, items []quad.Value) quad.Value {
	if len(items) == 0 {
		return rdfNil
	}
	cells := make([]quad.Value, len(items))
	for i := range items {
		cells[i] = alloc.Fresh()
	}
	for i, item := range items {
		var rest quad.Value = rdfNil
		if i+1 < len(cells) {
			rest = cells[i+1]
		}
		g.Add(cells[i], rdfType, rdfList)
		g.Add(cells[i], rdfFirst, item)
		g.Add(cells[i], rdfRest, rest)
	}
	return cells[0]
}

// decodeList decodes every member with decode. A member that fails to decode
// fails the whole list.
func decodeList[T any](g *graph.Graph, head quad.Value, decode func(quad.Value) (T, bool)) ([]T, bool) {
	var out []T
	for _, item := range DecodeList(g, head) {
		v, ok := decode(item)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// encodeList encodes every member with encode and chains the results. A
// member that encodes to nil fails the whole list.
func encodeList[T any](g *graph.Graph, alloc *BlankAllocator, items []T, encode func(T) quad.Value) quad.Value {
	terms := make([]quad.Value, 0, len(items))
	for _, item := range items {
		term := encode(item)
		if term == nil {
			return nil
		}
		terms = append(terms, term)
	}
	return EncodeList(g, alloc, terms)
}
