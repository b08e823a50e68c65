package rdfmap

import (
	"strconv"
	"strings"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

// iri returns the quad IRI for a vocabulary constant.
func iri(s string) quad.IRI {
	return quad.IRI(s)
}

// iriString returns the IRI text of v, or "" when v is not an IRI.
func iriString(v quad.Value) string {
	s, _ := graph.IRIOf(v)
	return s
}

// literalOf converts an RDF literal term into the model literal.
func literalOf(v quad.Value) (owl.Literal, bool) {
	switch x := v.(type) {
	case quad.String:
		return owl.Literal{Value: string(x)}, true
	case quad.TypedString:
		return owl.Literal{Value: string(x.Value), Datatype: owl.IRI(x.Type)}, true
	case quad.LangString:
		return owl.Literal{Value: string(x.Value), Lang: x.Lang}, true
	}
	return owl.Literal{}, false
}

// literalTerm converts a model literal into an RDF literal term.
func literalTerm(l owl.Literal) quad.Value {
	switch {
	case l.Lang != "":
		return quad.LangString{Value: quad.String(l.Value), Lang: l.Lang}
	case l.Datatype != "":
		return quad.TypedString{Value: quad.String(l.Value), Type: quad.IRI(l.Datatype)}
	}
	return quad.String(l.Value)
}

// intOf parses a cardinality literal.
func intOf(v quad.Value) (int, bool) {
	l, ok := literalOf(v)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(l.Value))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func nonNegativeInteger(n int) quad.Value {
	return quad.TypedString{Value: quad.String(strconv.Itoa(n)), Type: quad.IRI(owlrdf.XSDNonNegativeInteger)}
}

var trueLiteral = quad.TypedString{Value: "true", Type: quad.IRI(owlrdf.XSDBoolean)}
