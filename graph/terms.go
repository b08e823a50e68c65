package graph

import (
	"github.com/cayleygraph/quad"
)

// Normalize reduces a quad value to one of the five term kinds the graph
// stores: IRI, BNode, String, TypedString or LangString. Native values such
// as quad.Int or quad.Bool produced by the N-Quads reader become typed strings.
func Normalize(v quad.Value) quad.Value {
	switch x := v.(type) {
	case nil:
		return nil
	case quad.IRI, quad.BNode, quad.String, quad.TypedString, quad.LangString:
		return x
	case quad.TypedStringer:
		return x.TypedString()
	default:
		return quad.String(quad.StringOf(v))
	}
}

// IRIOf returns the IRI string of v when v is an IRI.
func IRIOf(v quad.Value) (string, bool) {
	if iri, ok := v.(quad.IRI); ok {
		return string(iri), true
	}
	return "", false
}

// IsBlank reports whether v is a blank node.
func IsBlank(v quad.Value) bool {
	_, ok := v.(quad.BNode)
	return ok
}

// BlankLabel returns the label of a blank node, or "" for any other term.
func BlankLabel(v quad.Value) string {
	if b, ok := v.(quad.BNode); ok {
		return string(b)
	}
	return ""
}

// IsLiteral reports whether v is a plain, typed or language-tagged literal.
func IsLiteral(v quad.Value) bool {
	switch v.(type) {
	case quad.String, quad.TypedString, quad.LangString:
		return true
	}
	return false
}

// IsResource reports whether v is an IRI or a blank node.
func IsResource(v quad.Value) bool {
	switch v.(type) {
	case quad.IRI, quad.BNode:
		return true
	}
	return false
}
