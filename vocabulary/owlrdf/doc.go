// Package owlrdf provides the RDF, RDFS, OWL 2, XSD and SWRL vocabulary used by
// the OWL 2 RDF-based mapping.
//
// Term IRIs are plain string constants so they can be used as map keys, in
// switch statements and converted to quad.IRI at the graph boundary. The
// package also registers the structural OWL predicates with the semstreams
// predicate registry so exported triples can be translated to dotted
// predicate names.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/semowl/vocabulary/owlrdf"
package owlrdf
