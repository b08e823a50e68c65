package rdfmap

import (
	"testing"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ex = "http://example.org/onto#"

func exIRI(local string) quad.IRI {
	return quad.IRI(ex + local)
}

func TestListRoundTripKeepsOrder(t *testing.T) {
	g := graph.New()
	alloc := NewBlankAllocator()
	items := []quad.Value{exIRI("c"), exIRI("a"), exIRI("b"), exIRI("a")}

	head := EncodeList(g, alloc, items)
	require.NotNil(t, head)

	assert.Equal(t, items, DecodeList(g, head))
	assert.Len(t, g.Match(nil, rdfType, rdfList), 4)
}

func TestEncodeEmptyList(t *testing.T) {
	g := graph.New()
	head := EncodeList(g, NewBlankAllocator(), nil)

	assert.Equal(t, quad.Value(rdfNil), head)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, DecodeList(g, head))
}

func TestDecodeListMalformed(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *graph.Graph) quad.Value
		want  []quad.Value
	}{
		{
			name: "cycle stops at revisit",
			build: func(g *graph.Graph) quad.Value {
				g.Add(quad.BNode("l1"), rdfFirst, exIRI("a"))
				g.Add(quad.BNode("l1"), rdfRest, quad.BNode("l2"))
				g.Add(quad.BNode("l2"), rdfFirst, exIRI("b"))
				g.Add(quad.BNode("l2"), rdfRest, quad.BNode("l1"))
				return quad.BNode("l1")
			},
			want: []quad.Value{exIRI("a"), exIRI("b")},
		},
		{
			name: "missing rest keeps prefix",
			build: func(g *graph.Graph) quad.Value {
				g.Add(quad.BNode("l1"), rdfFirst, exIRI("a"))
				return quad.BNode("l1")
			},
			want: []quad.Value{exIRI("a")},
		},
		{
			name: "missing first keeps prefix",
			build: func(g *graph.Graph) quad.Value {
				g.Add(quad.BNode("l1"), rdfFirst, exIRI("a"))
				g.Add(quad.BNode("l1"), rdfRest, quad.BNode("l2"))
				g.Add(quad.BNode("l2"), rdfRest, rdfNil)
				return quad.BNode("l1")
			},
			want: []quad.Value{exIRI("a")},
		},
		{
			name: "nil head is empty",
			build: func(g *graph.Graph) quad.Value {
				return rdfNil
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New()
			head := tt.build(g)
			assert.Equal(t, tt.want, DecodeList(g, head))
		})
	}
}

func TestTypedListFailsOnBadMember(t *testing.T) {
	g := graph.New()
	head := EncodeList(g, NewBlankAllocator(), []quad.Value{exIRI("a"), quad.String("not an iri")})

	_, ok := decodeList(g, head, func(v quad.Value) (string, bool) {
		return graph.IRIOf(v)
	})
	assert.False(t, ok)

	assert.Nil(t, encodeList(g, NewBlankAllocator(), []string{"a", ""}, func(s string) quad.Value {
		if s == "" {
			return nil
		}
		return exIRI(s)
	}))
}

func TestBlankAllocator(t *testing.T) {
	alloc := NewBlankAllocator()

	x := owl.AnonymousIndividualFor("genid2")
	y := owl.AnonymousIndividualFor("y")

	assert.Equal(t, quad.BNode("genid1"), alloc.Fresh())
	assert.Equal(t, quad.BNode("genid2"), alloc.For(x))
	assert.Equal(t, quad.BNode("genid2"), alloc.For(x), "same individual maps to the same node")
	assert.Equal(t, quad.BNode("y"), alloc.For(y))
	assert.Equal(t, quad.BNode("genid3"), alloc.Fresh(), "labels taken by individuals are skipped")

	// An individual whose label is already taken gets a fresh node.
	z := owl.AnonymousIndividual{ID: "genid1"}
	assert.Equal(t, quad.BNode("genid4"), alloc.For(z))
}
