package rdfmap

import "errors"

// Fatal decode and encode errors. Nothing else stops a decode: triples that
// match no known shape are skipped.
var (
	// ErrNilGraph is returned when Decode is called without a graph.
	ErrNilGraph = errors.New("rdfmap: nil graph")

	// ErrNilOntology is returned when Encode is called without an ontology.
	ErrNilOntology = errors.New("rdfmap: nil ontology")

	// ErrMissingOntology is returned when the ontology subject lacks its
	// rdf:type owl:Ontology triple.
	ErrMissingOntology = errors.New("rdfmap: no owl:Ontology typing triple")
)
