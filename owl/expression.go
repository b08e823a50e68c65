package owl

// ClassExpression is a named class, a restriction, a boolean combination or
// an enumeration of individuals.
type ClassExpression interface {
	Filler
	isClassExpression()
}

// DataRange is a datatype or a restricted datatype.
type DataRange interface {
	Filler
	isDataRange()
}

// Filler is what a restriction restricts its property to: a class
// expression for object properties, a data range for data properties.
type Filler interface {
	isFiller()
}

// Class is a named class.
type Class struct {
	IRI IRI
}

// SomeValuesFrom is the existential restriction.
type SomeValuesFrom struct {
	Property PropertyExpression
	Filler   Filler
}

// AllValuesFrom is the universal restriction.
type AllValuesFrom struct {
	Property PropertyExpression
	Filler   Filler
}

// HasValue restricts the property to one individual or literal.
type HasValue struct {
	Property PropertyExpression
	Value    Value
}

// HasSelf is the local reflexivity restriction.
type HasSelf struct {
	Property PropertyExpression
}

// Cardinality is the exact unqualified cardinality restriction.
type Cardinality struct {
	Property PropertyExpression
	N        int
}

// MinCardinality is the minimum unqualified cardinality restriction.
type MinCardinality struct {
	Property PropertyExpression
	N        int
}

// MaxCardinality is the maximum unqualified cardinality restriction.
type MaxCardinality struct {
	Property PropertyExpression
	N        int
}

// MinMaxCardinality is a restriction node carrying both a minimum and a
// maximum unqualified cardinality.
type MinMaxCardinality struct {
	Property PropertyExpression
	Min      int
	Max      int
}

// CardinalityKind selects exact, minimum or maximum qualified cardinality.
type CardinalityKind string

// Qualified cardinality kinds.
const (
	Exactly CardinalityKind = "exact"
	AtLeast CardinalityKind = "min"
	AtMost  CardinalityKind = "max"
)

// QualifiedCardinality is a cardinality restriction with an owl:onClass or
// owl:onDataRange filler.
type QualifiedCardinality struct {
	Kind     CardinalityKind
	Property PropertyExpression
	N        int
	Filler   Filler
}

// UnionOf is the disjunction of its operands.
type UnionOf struct {
	Operands []ClassExpression
}

// IntersectionOf is the conjunction of its operands.
type IntersectionOf struct {
	Operands []ClassExpression
}

// ComplementOf is the negation of its operand.
type ComplementOf struct {
	Operand ClassExpression
}

// OneOf enumerates the members of a class.
type OneOf struct {
	Individuals []Individual
}

func (Class) isFiller()                {}
func (SomeValuesFrom) isFiller()       {}
func (AllValuesFrom) isFiller()        {}
func (HasValue) isFiller()             {}
func (HasSelf) isFiller()              {}
func (Cardinality) isFiller()          {}
func (MinCardinality) isFiller()       {}
func (MaxCardinality) isFiller()       {}
func (MinMaxCardinality) isFiller()    {}
func (QualifiedCardinality) isFiller() {}
func (UnionOf) isFiller()              {}
func (IntersectionOf) isFiller()       {}
func (ComplementOf) isFiller()         {}
func (OneOf) isFiller()                {}

func (Class) isClassExpression()                {}
func (SomeValuesFrom) isClassExpression()       {}
func (AllValuesFrom) isClassExpression()        {}
func (HasValue) isClassExpression()             {}
func (HasSelf) isClassExpression()              {}
func (Cardinality) isClassExpression()          {}
func (MinCardinality) isClassExpression()       {}
func (MaxCardinality) isClassExpression()       {}
func (MinMaxCardinality) isClassExpression()    {}
func (QualifiedCardinality) isClassExpression() {}
func (UnionOf) isClassExpression()              {}
func (IntersectionOf) isClassExpression()       {}
func (ComplementOf) isClassExpression()         {}
func (OneOf) isClassExpression()                {}

// Datatype is a named datatype.
type Datatype struct {
	IRI IRI
}

// FacetRestriction constrains a datatype facet such as xsd:minInclusive.
type FacetRestriction struct {
	Facet IRI
	Value Literal
}

// DatatypeRestriction is a base datatype narrowed by an ordered facet list.
type DatatypeRestriction struct {
	Base   Datatype
	Facets []FacetRestriction
}

func (Datatype) isFiller()               {}
func (Datatype) isDataRange()            {}
func (DatatypeRestriction) isFiller()    {}
func (DatatypeRestriction) isDataRange() {}

// PropertyExpression is an object, data or annotation property expression.
type PropertyExpression interface {
	isPropertyExpression()
}

// ObjectPropertyExpression is a named object property or an inverse of one.
type ObjectPropertyExpression interface {
	PropertyExpression
	isObjectPropertyExpression()
}

// ObjectProperty is a named object property.
type ObjectProperty struct {
	IRI IRI
}

// ObjectInverseOf is the inverse of an object property expression. Inverses
// nest: the inverse of an inverse stays two levels deep.
type ObjectInverseOf struct {
	Property ObjectPropertyExpression
}

// ObjectPropertyChain is an ordered composition of object properties. It is
// only valid as the sub property of SubObjectPropertyOf.
type ObjectPropertyChain struct {
	Properties []ObjectPropertyExpression
}

// DataProperty is a named data property.
type DataProperty struct {
	IRI IRI
}

// AnnotationProperty is a named annotation property.
type AnnotationProperty struct {
	IRI IRI
}

func (ObjectProperty) isPropertyExpression()        {}
func (ObjectProperty) isObjectPropertyExpression()  {}
func (ObjectInverseOf) isPropertyExpression()       {}
func (ObjectInverseOf) isObjectPropertyExpression() {}
func (ObjectPropertyChain) isPropertyExpression()   {}
func (DataProperty) isPropertyExpression()          {}
func (AnnotationProperty) isPropertyExpression()    {}

// Inverse wraps p in ObjectInverseOf.
func Inverse(p ObjectPropertyExpression) ObjectInverseOf {
	return ObjectInverseOf{Property: p}
}

// NamedProperty returns the IRI at the root of p, unwrapping inverses.
func NamedProperty(p PropertyExpression) (IRI, bool) {
	switch x := p.(type) {
	case ObjectProperty:
		return x.IRI, true
	case ObjectInverseOf:
		return NamedProperty(x.Property)
	case DataProperty:
		return x.IRI, true
	case AnnotationProperty:
		return x.IRI, true
	}
	return "", false
}
