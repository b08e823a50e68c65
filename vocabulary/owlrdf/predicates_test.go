package owlrdf

import (
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
)

func TestPredicatesRegistered(t *testing.T) {
	predicates := []string{
		PredicateType,
		PredicateSubClassOf,
		PredicateEquivalent,
		PredicateDisjointWith,
		PredicateSubPropertyOf,
		PredicateInverseOf,
		PredicateSameAs,
		PredicateOnProperty,
		PredicateUnionOf,
		PredicateListFirst,
		PredicateAnnotatedSource,
		PredicateLabel,
		PredicateImports,
		PredicateRuleBody,
	}

	for _, pred := range predicates {
		t.Run(pred, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(pred)
			if meta == nil || meta.Description == "" {
				t.Fatalf("predicate %s not registered or missing description", pred)
			}
			if meta.StandardIRI == "" {
				t.Errorf("predicate %s has no standard IRI", pred)
			}
		})
	}
}

func TestPredicateForIRI(t *testing.T) {
	name, ok := PredicateForIRI(RDFSSubClassOf)
	if !ok || name != PredicateSubClassOf {
		t.Errorf("PredicateForIRI(subClassOf) = %q, %v", name, ok)
	}

	if _, ok := PredicateForIRI("http://example.org/unregistered"); ok {
		t.Error("unregistered IRI should not resolve")
	}
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		iri  string
		want bool
	}{
		{OWLClass, true},
		{RDFType, true},
		{XSDInteger, true},
		{SWRLVariable, true},
		{OWLThing, false},
		{OWLNothing, false},
		{"http://example.org/Person", false},
	}

	for _, tt := range tests {
		t.Run(LocalName(tt.iri), func(t *testing.T) {
			if got := IsReserved(tt.iri); got != tt.want {
				t.Errorf("IsReserved(%s) = %v, want %v", tt.iri, got, tt.want)
			}
		})
	}
}

func TestLocalName(t *testing.T) {
	tests := map[string]string{
		"http://example.org/onto#Person": "Person",
		"http://example.org/onto/Person": "Person",
		"urn:swrl:x":                     "x",
		"noseparator":                    "noseparator",
		"http://example.org/trailing/":   "http://example.org/trailing/",
	}
	for in, want := range tests {
		if got := LocalName(in); got != want {
			t.Errorf("LocalName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsDatatypeIRI(t *testing.T) {
	if !IsDatatypeIRI(XSDInteger) || !IsDatatypeIRI(RDFSLiteral) {
		t.Error("xsd:integer and rdfs:Literal are datatypes")
	}
	if IsDatatypeIRI(OWLClass) {
		t.Error("owl:Class is not a datatype")
	}
}
