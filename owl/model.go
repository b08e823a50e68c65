// Package owl defines the typed OWL 2 axiom model.
//
// Expressions are closed sum types: each family is an interface with an
// unexported marker method and one struct per shape, so a type switch over a
// family is exhaustive. Axioms are pointer types embedding AxiomBase, which
// carries the provenance flags and the ordered annotation list.
//
// Values compare structurally; two models are equal when reflect.DeepEqual
// says so, regardless of how they were built.
package owl

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IRI is an absolute IRI.
type IRI string

func (IRI) isAnnotationValue()   {}
func (IRI) isAnnotationSubject() {}

// Literal is an RDF literal. A plain literal has neither Datatype nor Lang.
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

func (Literal) isAnnotationValue() {}
func (Literal) isValue()           {}

// PlainLiteral returns a literal without datatype or language tag.
func PlainLiteral(value string) Literal {
	return Literal{Value: value}
}

// TypedLiteral returns a literal of the given datatype.
func TypedLiteral(value string, datatype IRI) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// LangLiteral returns a language-tagged literal.
func LangLiteral(value, lang string) Literal {
	return Literal{Value: value, Lang: lang}
}

// IntLiteral returns an xsd:integer literal.
func IntLiteral(n int) Literal {
	return Literal{Value: strconv.Itoa(n), Datatype: xsdInteger}
}

const xsdInteger IRI = "http://www.w3.org/2001/XMLSchema#integer"

// Value is the filler of a HasValue restriction: an individual or a literal.
type Value interface {
	isValue()
}

// AnnotationValue is an IRI, a literal or an anonymous individual.
type AnnotationValue interface {
	isAnnotationValue()
}

// AnnotationSubject is an IRI or an anonymous individual.
type AnnotationSubject interface {
	isAnnotationSubject()
}

// Annotation is a (property, value) pair attached to an axiom, a rule, an
// ontology or another annotation. Annotation links one further annotation
// on this annotation, if any.
type Annotation struct {
	Property   AnnotationProperty
	Value      AnnotationValue
	Annotation *Annotation
}

// Individual is a named or anonymous individual.
type Individual interface {
	Value
	isIndividual()
}

// NamedIndividual is an individual identified by an IRI.
type NamedIndividual struct {
	IRI IRI
}

func (NamedIndividual) isIndividual() {}
func (NamedIndividual) isValue()      {}

// AnonymousIndividual is an individual local to one document. ID always
// starts with "_:" so it cannot be confused with an IRI.
type AnonymousIndividual struct {
	ID string
}

func (AnonymousIndividual) isIndividual()        {}
func (AnonymousIndividual) isValue()             {}
func (AnonymousIndividual) isAnnotationValue()   {}
func (AnonymousIndividual) isAnnotationSubject() {}

// AnonymousPrefix prefixes every anonymous individual id.
const AnonymousPrefix = "_:"

// NewAnonymousIndividual mints an anonymous individual with a fresh id.
func NewAnonymousIndividual() AnonymousIndividual {
	return AnonymousIndividual{ID: AnonymousPrefix + "a" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// AnonymousIndividualFor returns the anonymous individual for a blank label.
func AnonymousIndividualFor(label string) AnonymousIndividual {
	return AnonymousIndividual{ID: AnonymousPrefix + label}
}

// Label returns the id without its prefix.
func (a AnonymousIndividual) Label() string {
	return strings.TrimPrefix(a.ID, AnonymousPrefix)
}

// EntityType names one of the six kinds of OWL 2 entity.
type EntityType string

// Entity types.
const (
	EntityClass              EntityType = "Class"
	EntityDatatype           EntityType = "Datatype"
	EntityObjectProperty     EntityType = "ObjectProperty"
	EntityDataProperty       EntityType = "DataProperty"
	EntityAnnotationProperty EntityType = "AnnotationProperty"
	EntityNamedIndividual    EntityType = "NamedIndividual"
)

// Entity is anything a Declaration can declare.
type Entity interface {
	EntityIRI() IRI
	EntityType() EntityType
}

func (c Class) EntityIRI() IRI                      { return c.IRI }
func (c Class) EntityType() EntityType              { return EntityClass }
func (d Datatype) EntityIRI() IRI                   { return d.IRI }
func (d Datatype) EntityType() EntityType           { return EntityDatatype }
func (p ObjectProperty) EntityIRI() IRI             { return p.IRI }
func (p ObjectProperty) EntityType() EntityType     { return EntityObjectProperty }
func (p DataProperty) EntityIRI() IRI               { return p.IRI }
func (p DataProperty) EntityType() EntityType       { return EntityDataProperty }
func (p AnnotationProperty) EntityIRI() IRI         { return p.IRI }
func (p AnnotationProperty) EntityType() EntityType { return EntityAnnotationProperty }
func (i NamedIndividual) EntityIRI() IRI            { return i.IRI }
func (i NamedIndividual) EntityType() EntityType    { return EntityNamedIndividual }

// NewEntity builds the entity of the given type for iri.
func NewEntity(t EntityType, iri IRI) (Entity, bool) {
	switch t {
	case EntityClass:
		return Class{IRI: iri}, true
	case EntityDatatype:
		return Datatype{IRI: iri}, true
	case EntityObjectProperty:
		return ObjectProperty{IRI: iri}, true
	case EntityDataProperty:
		return DataProperty{IRI: iri}, true
	case EntityAnnotationProperty:
		return AnnotationProperty{IRI: iri}, true
	case EntityNamedIndividual:
		return NamedIndividual{IRI: iri}, true
	}
	return nil, false
}
