package owlrdf

import (
	"sync"

	"github.com/c360studio/semstreams/vocabulary"
)

// Dotted predicate names for the OWL mapping vocabulary. They mirror the IRIs
// above using the semstreams three-level notation: owl.<category>.<property>.
const (
	PredicateType          = "owl.rdf.type"
	PredicateSubClassOf    = "owl.class.sub_class_of"
	PredicateEquivalent    = "owl.class.equivalent_class"
	PredicateDisjointWith  = "owl.class.disjoint_with"
	PredicateDisjointUnion = "owl.class.disjoint_union_of"
	PredicateHasKey        = "owl.class.has_key"

	PredicateSubPropertyOf        = "owl.property.sub_property_of"
	PredicateEquivalentProperty   = "owl.property.equivalent_property"
	PredicatePropertyDisjointWith = "owl.property.property_disjoint_with"
	PredicateDomain               = "owl.property.domain"
	PredicateRange                = "owl.property.range"
	PredicateInverseOf            = "owl.property.inverse_of"
	PredicatePropertyChain        = "owl.property.property_chain_axiom"

	PredicateSameAs        = "owl.individual.same_as"
	PredicateDifferentFrom = "owl.individual.different_from"

	PredicateOnProperty     = "owl.restriction.on_property"
	PredicateSomeValuesFrom = "owl.restriction.some_values_from"
	PredicateAllValuesFrom  = "owl.restriction.all_values_from"
	PredicateHasValue       = "owl.restriction.has_value"
	PredicateCardinality    = "owl.restriction.cardinality"

	PredicateUnionOf        = "owl.boolean.union_of"
	PredicateIntersectionOf = "owl.boolean.intersection_of"
	PredicateComplementOf   = "owl.boolean.complement_of"
	PredicateOneOf          = "owl.enumeration.one_of"

	PredicateListFirst = "owl.list.first"
	PredicateListRest  = "owl.list.rest"

	PredicateAnnotatedSource   = "owl.reification.annotated_source"
	PredicateAnnotatedProperty = "owl.reification.annotated_property"
	PredicateAnnotatedTarget   = "owl.reification.annotated_target"

	PredicateLabel   = "owl.annotation.label"
	PredicateComment = "owl.annotation.comment"

	PredicateImports    = "owl.ontology.imports"
	PredicateVersionIRI = "owl.ontology.version_iri"

	PredicateRuleBody = "owl.rule.body"
	PredicateRuleHead = "owl.rule.head"
)

var (
	iriIndexMu sync.RWMutex
	iriIndex   = make(map[string]string)
)

func register(name, iri, desc, dataType string) {
	vocabulary.Register(name,
		vocabulary.WithDescription(desc),
		vocabulary.WithDataType(dataType),
		vocabulary.WithIRI(iri))

	iriIndexMu.Lock()
	iriIndex[iri] = name
	iriIndexMu.Unlock()
}

// PredicateForIRI returns the registered dotted predicate name for iri.
func PredicateForIRI(iri string) (string, bool) {
	iriIndexMu.RLock()
	defer iriIndexMu.RUnlock()
	name, ok := iriIndex[iri]
	return name, ok
}

func init() {
	register(PredicateType, RDFType, "Instance-of relation; declarations and class assertions", "entity_id")

	// Class axioms
	register(PredicateSubClassOf, RDFSSubClassOf, "Subsumption between class expressions", "entity_id")
	register(PredicateEquivalent, OWLEquivalentClass, "Equivalence between class expressions", "entity_id")
	register(PredicateDisjointWith, OWLDisjointWith, "Pairwise class disjointness", "entity_id")
	register(PredicateDisjointUnion, OWLDisjointUnionOf, "Class as disjoint union of a class list", "entity_id")
	register(PredicateHasKey, OWLHasKey, "Key properties of a class", "entity_id")

	// Property axioms
	register(PredicateSubPropertyOf, RDFSSubPropertyOf, "Subsumption between properties", "entity_id")
	register(PredicateEquivalentProperty, OWLEquivalentProperty, "Equivalence between properties", "entity_id")
	register(PredicatePropertyDisjointWith, OWLPropertyDisjointWith, "Pairwise property disjointness", "entity_id")
	register(PredicateDomain, RDFSDomain, "Property domain", "entity_id")
	register(PredicateRange, RDFSRange, "Property range", "entity_id")
	register(PredicateInverseOf, OWLInverseOf, "Inverse object properties or inverse expression", "entity_id")
	register(PredicatePropertyChain, OWLPropertyChainAxiom, "Property chain inclusion", "entity_id")

	// Individuals
	register(PredicateSameAs, OWLSameAs, "Individual equality", "entity_id")
	register(PredicateDifferentFrom, OWLDifferentFrom, "Individual inequality", "entity_id")

	// Expressions
	register(PredicateOnProperty, OWLOnProperty, "Restricted property of a restriction", "entity_id")
	register(PredicateSomeValuesFrom, OWLSomeValuesFrom, "Existential restriction filler", "entity_id")
	register(PredicateAllValuesFrom, OWLAllValuesFrom, "Universal restriction filler", "entity_id")
	register(PredicateHasValue, OWLHasValue, "Value restriction filler", "any")
	register(PredicateCardinality, OWLCardinality, "Exact unqualified cardinality", "int")
	register(PredicateUnionOf, OWLUnionOf, "Union operand list", "entity_id")
	register(PredicateIntersectionOf, OWLIntersectionOf, "Intersection operand list", "entity_id")
	register(PredicateComplementOf, OWLComplementOf, "Complement operand", "entity_id")
	register(PredicateOneOf, OWLOneOf, "Enumeration member list", "entity_id")

	// Collections
	register(PredicateListFirst, RDFFirst, "Head element of an RDF list cell", "any")
	register(PredicateListRest, RDFRest, "Tail of an RDF list cell", "entity_id")

	// Reification
	register(PredicateAnnotatedSource, OWLAnnotatedSource, "Subject of a reified axiom triple", "entity_id")
	register(PredicateAnnotatedProperty, OWLAnnotatedProperty, "Predicate of a reified axiom triple", "entity_id")
	register(PredicateAnnotatedTarget, OWLAnnotatedTarget, "Object of a reified axiom triple", "any")

	// Annotations
	register(PredicateLabel, RDFSLabel, "Human-readable label", "string")
	register(PredicateComment, RDFSComment, "Human-readable comment", "string")

	// Ontology header
	register(PredicateImports, OWLImports, "Imported ontology", "entity_id")
	register(PredicateVersionIRI, OWLVersionIRI, "Version IRI of the ontology", "entity_id")

	// Rules
	register(PredicateRuleBody, SWRLBody, "Antecedent atom list of a SWRL rule", "entity_id")
	register(PredicateRuleHead, SWRLHead, "Consequent atom list of a SWRL rule", "entity_id")
}
