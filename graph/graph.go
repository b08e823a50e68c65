// Package graph provides the in-memory RDF statement graph the OWL mapping
// reads from and writes to.
//
// A Graph is an insertion-ordered multiset of triples over cayley quad values.
// Every triple is indexed by subject, predicate and object so that pattern
// queries with at least one bound position never scan the whole graph.
package graph

import (
	"fmt"
	"sort"

	"github.com/cayleygraph/quad"
)

// Triple is a single (subject, predicate, object) statement.
type Triple struct {
	Subject   quad.Value
	Predicate quad.Value
	Object    quad.Value
}

// String renders the triple in N-Triples form without the trailing dot.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s", t.Subject, t.Predicate, t.Object)
}

// Graph is an ordered multiset of triples. It is not safe for concurrent
// mutation; concurrent reads of a graph nobody writes to are fine.
type Graph struct {
	triples     []Triple
	bySubject   map[quad.Value][]int
	byPredicate map[quad.Value][]int
	byObject    map[quad.Value][]int
	prefixes    map[string]string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		bySubject:   make(map[quad.Value][]int),
		byPredicate: make(map[quad.Value][]int),
		byObject:    make(map[quad.Value][]int),
		prefixes:    make(map[string]string),
	}
}

// Add appends a triple. Duplicates are kept. Nil positions are ignored.
func (g *Graph) Add(s, p, o quad.Value) {
	if s == nil || p == nil || o == nil {
		return
	}
	s, p, o = Normalize(s), Normalize(p), Normalize(o)
	idx := len(g.triples)
	g.triples = append(g.triples, Triple{Subject: s, Predicate: p, Object: o})
	g.bySubject[s] = append(g.bySubject[s], idx)
	g.byPredicate[p] = append(g.byPredicate[p], idx)
	g.byObject[o] = append(g.byObject[o], idx)
}

// AddQuad appends the triple part of q. The graph label is dropped.
func (g *Graph) AddQuad(q quad.Quad) {
	g.Add(q.Subject, q.Predicate, q.Object)
}

// Len returns the number of triples, duplicates included.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns all triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Match returns the triples matching the pattern in insertion order. A nil
// position is a wildcard.
func (g *Graph) Match(s, p, o quad.Value) []Triple {
	if s != nil {
		s = Normalize(s)
	}
	if p != nil {
		p = Normalize(p)
	}
	if o != nil {
		o = Normalize(o)
	}

	candidates, bound := g.smallestIndex(s, p, o)
	if !bound {
		return g.Triples()
	}

	var out []Triple
	for _, idx := range candidates {
		t := g.triples[idx]
		if s != nil && t.Subject != s {
			continue
		}
		if p != nil && t.Predicate != p {
			continue
		}
		if o != nil && t.Object != o {
			continue
		}
		out = append(out, t)
	}
	return out
}

// smallestIndex picks the shortest posting list among the bound positions.
func (g *Graph) smallestIndex(s, p, o quad.Value) ([]int, bool) {
	var (
		best  []int
		found bool
	)
	consider := func(index map[quad.Value][]int, key quad.Value) {
		if key == nil {
			return
		}
		list := index[key]
		if !found || len(list) < len(best) {
			best = list
			found = true
		}
	}
	consider(g.bySubject, s)
	consider(g.byPredicate, p)
	consider(g.byObject, o)
	return best, found
}

// Objects returns the objects of all triples with subject s and predicate p.
func (g *Graph) Objects(s, p quad.Value) []quad.Value {
	matches := g.Match(s, p, nil)
	out := make([]quad.Value, 0, len(matches))
	for _, t := range matches {
		out = append(out, t.Object)
	}
	return out
}

// Object returns the first object of (s, p, *) in insertion order.
func (g *Graph) Object(s, p quad.Value) (quad.Value, bool) {
	matches := g.Match(s, p, nil)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0].Object, true
}

// Subjects returns the subjects of all triples with predicate p and object o.
func (g *Graph) Subjects(p, o quad.Value) []quad.Value {
	matches := g.Match(nil, p, o)
	out := make([]quad.Value, 0, len(matches))
	for _, t := range matches {
		out = append(out, t.Subject)
	}
	return out
}

// Has reports whether at least one triple matches the pattern.
func (g *Graph) Has(s, p, o quad.Value) bool {
	return len(g.Match(s, p, o)) > 0
}

// IsReferenced reports whether v occurs in object position anywhere.
func (g *Graph) IsReferenced(v quad.Value) bool {
	if v == nil {
		return false
	}
	return len(g.byObject[Normalize(v)]) > 0
}

// SubjectsInOrder returns every distinct subject in order of first occurrence.
func (g *Graph) SubjectsInOrder() []quad.Value {
	seen := make(map[quad.Value]bool, len(g.bySubject))
	out := make([]quad.Value, 0, len(g.bySubject))
	for _, t := range g.triples {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// SetPrefix binds a namespace prefix. An empty namespace removes the binding.
func (g *Graph) SetPrefix(prefix, namespace string) {
	if namespace == "" {
		delete(g.prefixes, prefix)
		return
	}
	g.prefixes[prefix] = namespace
}

// Prefixes returns a copy of the prefix bindings.
func (g *Graph) Prefixes() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for k, v := range g.prefixes {
		out[k] = v
	}
	return out
}

// PrefixNames returns the bound prefixes sorted by name.
func (g *Graph) PrefixNames() []string {
	names := make([]string, 0, len(g.prefixes))
	for k := range g.prefixes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
