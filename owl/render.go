package owl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/semowl/vocabulary/owlrdf"
)

// Render formats an expression in OWL functional-syntax style, with IRIs
// shortened to their local names. It accepts class, property and individual
// expressions, data ranges and literals.
func Render(v any) string {
	switch x := v.(type) {
	case Class:
		return localName(x.IRI)
	case SomeValuesFrom:
		return renderRestriction("SomeValuesFrom", x.Property, x.Filler)
	case AllValuesFrom:
		return renderRestriction("AllValuesFrom", x.Property, x.Filler)
	case HasValue:
		family := prefixFor(x.Property, nil)
		if _, ok := x.Value.(Literal); ok {
			family = "Data"
		}
		return family + "HasValue(" + Render(x.Property) + " " + Render(x.Value) + ")"
	case HasSelf:
		return "ObjectHasSelf(" + Render(x.Property) + ")"
	case Cardinality:
		return prefixFor(x.Property, nil) + "ExactCardinality(" + strconv.Itoa(x.N) + " " + Render(x.Property) + ")"
	case MinCardinality:
		return prefixFor(x.Property, nil) + "MinCardinality(" + strconv.Itoa(x.N) + " " + Render(x.Property) + ")"
	case MaxCardinality:
		return prefixFor(x.Property, nil) + "MaxCardinality(" + strconv.Itoa(x.N) + " " + Render(x.Property) + ")"
	case MinMaxCardinality:
		p := prefixFor(x.Property, nil)
		return fmt.Sprintf("ObjectIntersectionOf(%sMinCardinality(%d %s) %sMaxCardinality(%d %s))",
			p, x.Min, Render(x.Property), p, x.Max, Render(x.Property))
	case QualifiedCardinality:
		name := map[CardinalityKind]string{Exactly: "ExactCardinality", AtLeast: "MinCardinality", AtMost: "MaxCardinality"}[x.Kind]
		return prefixFor(x.Property, x.Filler) + name + "(" + strconv.Itoa(x.N) + " " + Render(x.Property) + " " + Render(x.Filler) + ")"
	case UnionOf:
		return "ObjectUnionOf(" + renderClasses(x.Operands) + ")"
	case IntersectionOf:
		return "ObjectIntersectionOf(" + renderClasses(x.Operands) + ")"
	case ComplementOf:
		return "ObjectComplementOf(" + Render(x.Operand) + ")"
	case OneOf:
		parts := make([]string, 0, len(x.Individuals))
		for _, i := range x.Individuals {
			parts = append(parts, renderIndividual(i))
		}
		return "ObjectOneOf(" + strings.Join(parts, " ") + ")"
	case ObjectProperty:
		return localName(x.IRI)
	case ObjectInverseOf:
		return "ObjectInverseOf(" + Render(x.Property) + ")"
	case ObjectPropertyChain:
		parts := make([]string, 0, len(x.Properties))
		for _, p := range x.Properties {
			parts = append(parts, Render(p))
		}
		return "ObjectPropertyChain(" + strings.Join(parts, " ") + ")"
	case DataProperty:
		return localName(x.IRI)
	case AnnotationProperty:
		return localName(x.IRI)
	case Datatype:
		return localName(x.IRI)
	case DatatypeRestriction:
		parts := []string{Render(x.Base)}
		for _, f := range x.Facets {
			parts = append(parts, localName(f.Facet)+" "+renderLiteral(f.Value))
		}
		return "DatatypeRestriction(" + strings.Join(parts, " ") + ")"
	case NamedIndividual, AnonymousIndividual:
		return renderIndividual(x.(Individual))
	case Literal:
		return renderLiteral(x)
	case IRI:
		return localName(x)
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%v", v)
}

func renderRestriction(name string, p PropertyExpression, filler Filler) string {
	return prefixFor(p, filler) + name + "(" + Render(p) + " " + Render(filler) + ")"
}

// prefixFor picks the Object or Data constructor family from the property,
// falling back to the filler shape.
func prefixFor(p PropertyExpression, filler Filler) string {
	if _, ok := p.(DataProperty); ok {
		return "Data"
	}
	if _, ok := filler.(DataRange); ok {
		return "Data"
	}
	return "Object"
}

func renderClasses(classes []ClassExpression) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		parts = append(parts, Render(c))
	}
	return strings.Join(parts, " ")
}

func renderIndividual(i Individual) string {
	switch x := i.(type) {
	case NamedIndividual:
		return localName(x.IRI)
	case AnonymousIndividual:
		return x.ID
	}
	return "?"
}

func renderLiteral(l Literal) string {
	s := strconv.Quote(l.Value)
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.Datatype != "":
		return s + "^^" + localName(l.Datatype)
	}
	return s
}

func localName(iri IRI) string {
	return owlrdf.LocalName(string(iri))
}
