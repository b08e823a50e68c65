package rdfmap

import (
	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

// restrictionKinds lists restriction predicates in the order they are tried
// when a malformed node carries more than one.
var restrictionKinds = []string{
	owlrdf.OWLSomeValuesFrom,
	owlrdf.OWLAllValuesFrom,
	owlrdf.OWLHasValue,
	owlrdf.OWLHasSelf,
	owlrdf.OWLQualifiedCardinality,
	owlrdf.OWLMinQualifiedCardinality,
	owlrdf.OWLMaxQualifiedCardinality,
	owlrdf.OWLCardinality,
	owlrdf.OWLMinCardinality,
	owlrdf.OWLMaxCardinality,
}

// guard tracks the blank nodes on the current decode path.
type guard map[quad.Value]bool

func (g guard) enter(v quad.Value) bool {
	if !graph.IsBlank(v) {
		return true
	}
	if g[v] {
		return false
	}
	g[v] = true
	return true
}

func (g guard) leave(v quad.Value) {
	delete(g, v)
}

// classExpression decodes the class expression rooted at v. Blank nodes are
// tried as a restriction, then a boolean combination, then an enumeration.
func (d *decoder) classExpression(v quad.Value, seen guard) (owl.ClassExpression, bool) {
	if s, ok := graph.IRIOf(v); ok {
		return owl.Class{IRI: owl.IRI(s)}, true
	}
	if !graph.IsBlank(v) || !seen.enter(v) {
		return nil, false
	}
	defer seen.leave(v)

	if d.g.Has(v, iri(owlrdf.OWLOnProperty), nil) {
		return d.restriction(v, seen)
	}
	if head, ok := d.g.Object(v, iri(owlrdf.OWLUnionOf)); ok {
		operands, ok := decodeList(d.g, head, func(x quad.Value) (owl.ClassExpression, bool) {
			return d.classExpression(x, seen)
		})
		return owl.UnionOf{Operands: operands}, ok
	}
	if head, ok := d.g.Object(v, iri(owlrdf.OWLIntersectionOf)); ok {
		operands, ok := decodeList(d.g, head, func(x quad.Value) (owl.ClassExpression, bool) {
			return d.classExpression(x, seen)
		})
		return owl.IntersectionOf{Operands: operands}, ok
	}
	if operand, ok := d.g.Object(v, iri(owlrdf.OWLComplementOf)); ok {
		c, ok := d.classExpression(operand, seen)
		return owl.ComplementOf{Operand: c}, ok
	}
	if head, ok := d.g.Object(v, iri(owlrdf.OWLOneOf)); ok {
		members, ok := decodeList(d.g, head, d.individual)
		return owl.OneOf{Individuals: members}, ok
	}
	return nil, false
}

func (d *decoder) restriction(v quad.Value, seen guard) (owl.ClassExpression, bool) {
	onProperty, _ := d.g.Object(v, iri(owlrdf.OWLOnProperty))
	prop, ok := d.restrictedProperty(v, onProperty, seen)
	if !ok {
		return nil, false
	}

	for _, kind := range restrictionKinds {
		o, ok := d.g.Object(v, iri(kind))
		if !ok {
			continue
		}
		switch kind {
		case owlrdf.OWLSomeValuesFrom:
			filler, ok := d.filler(prop, o, seen)
			return owl.SomeValuesFrom{Property: prop, Filler: filler}, ok
		case owlrdf.OWLAllValuesFrom:
			filler, ok := d.filler(prop, o, seen)
			return owl.AllValuesFrom{Property: prop, Filler: filler}, ok
		case owlrdf.OWLHasValue:
			value, ok := d.value(o)
			return owl.HasValue{Property: prop, Value: value}, ok
		case owlrdf.OWLHasSelf:
			return owl.HasSelf{Property: prop}, true
		case owlrdf.OWLQualifiedCardinality, owlrdf.OWLMinQualifiedCardinality, owlrdf.OWLMaxQualifiedCardinality:
			return d.qualifiedCardinality(v, kind, prop, o, seen)
		case owlrdf.OWLCardinality:
			n, ok := intOf(o)
			return owl.Cardinality{Property: prop, N: n}, ok
		case owlrdf.OWLMinCardinality:
			n, ok := intOf(o)
			if !ok {
				return nil, false
			}
			if maxTerm, hasMax := d.g.Object(v, iri(owlrdf.OWLMaxCardinality)); hasMax {
				m, ok := intOf(maxTerm)
				return owl.MinMaxCardinality{Property: prop, Min: n, Max: m}, ok
			}
			return owl.MinCardinality{Property: prop, N: n}, true
		case owlrdf.OWLMaxCardinality:
			n, ok := intOf(o)
			return owl.MaxCardinality{Property: prop, N: n}, ok
		}
	}
	return nil, false
}

func (d *decoder) qualifiedCardinality(v quad.Value, kind string, prop owl.PropertyExpression, count quad.Value, seen guard) (owl.ClassExpression, bool) {
	n, ok := intOf(count)
	if !ok {
		return nil, false
	}
	qc := owl.QualifiedCardinality{Property: prop, N: n}
	switch kind {
	case owlrdf.OWLQualifiedCardinality:
		qc.Kind = owl.Exactly
	case owlrdf.OWLMinQualifiedCardinality:
		qc.Kind = owl.AtLeast
	default:
		qc.Kind = owl.AtMost
	}

	if c, has := d.g.Object(v, iri(owlrdf.OWLOnClass)); has {
		qc.Filler, ok = d.classExpression(c, seen)
		return qc, ok
	}
	if r, has := d.g.Object(v, iri(owlrdf.OWLOnDataRange)); has {
		qc.Filler, ok = d.dataRange(r)
		return qc, ok
	}
	return nil, false
}

// restrictedProperty decodes the owl:onProperty target of restriction v.
// Declared data properties decode as DataProperty. An undeclared property is
// a data property when the restriction constrains it to data: a data range
// filler, a literal value or owl:onDataRange. Everything else is an object
// property expression.
func (d *decoder) restrictedProperty(v, onProperty quad.Value, seen guard) (owl.PropertyExpression, bool) {
	if s, ok := graph.IRIOf(onProperty); ok {
		switch d.kindOf(s) {
		case kindData:
			return owl.DataProperty{IRI: owl.IRI(s)}, true
		case kindUnknown:
			if d.restrictsToData(v) {
				return owl.DataProperty{IRI: owl.IRI(s)}, true
			}
		}
	}
	return d.objectProperty(onProperty, seen)
}

// restrictsToData inspects the restriction kind that decoding will pick.
func (d *decoder) restrictsToData(v quad.Value) bool {
	for _, kind := range restrictionKinds {
		o, ok := d.g.Object(v, iri(kind))
		if !ok {
			continue
		}
		switch kind {
		case owlrdf.OWLSomeValuesFrom, owlrdf.OWLAllValuesFrom:
			return d.looksLikeDataRange(o)
		case owlrdf.OWLHasValue:
			return graph.IsLiteral(o)
		case owlrdf.OWLQualifiedCardinality, owlrdf.OWLMinQualifiedCardinality, owlrdf.OWLMaxQualifiedCardinality:
			return !d.g.Has(v, iri(owlrdf.OWLOnClass), nil) && d.g.Has(v, iri(owlrdf.OWLOnDataRange), nil)
		}
		return false
	}
	return false
}

// filler decodes a restriction filler: a data range for data properties, a
// class expression otherwise.
func (d *decoder) filler(prop owl.PropertyExpression, v quad.Value, seen guard) (owl.Filler, bool) {
	if _, isData := prop.(owl.DataProperty); isData {
		return d.dataRange(v)
	}
	return d.classExpression(v, seen)
}

func (d *decoder) looksLikeDataRange(v quad.Value) bool {
	if graph.IsBlank(v) {
		return d.g.Has(v, iri(owlrdf.OWLOnDatatype), nil)
	}
	return d.isDatatype(v)
}

// objectProperty decodes a named object property or a chain of
// owl:inverseOf blank nodes.
func (d *decoder) objectProperty(v quad.Value, seen guard) (owl.ObjectPropertyExpression, bool) {
	if s, ok := graph.IRIOf(v); ok {
		return owl.ObjectProperty{IRI: owl.IRI(s)}, true
	}
	if !graph.IsBlank(v) || !seen.enter(v) {
		return nil, false
	}
	defer seen.leave(v)

	inner, ok := d.g.Object(v, iri(owlrdf.OWLInverseOf))
	if !ok {
		return nil, false
	}
	p, ok := d.objectProperty(inner, seen)
	if !ok {
		return nil, false
	}
	return owl.ObjectInverseOf{Property: p}, true
}

// dataRange decodes a named datatype or an owl:onDatatype restriction.
func (d *decoder) dataRange(v quad.Value) (owl.DataRange, bool) {
	if s, ok := graph.IRIOf(v); ok {
		return owl.Datatype{IRI: owl.IRI(s)}, true
	}
	base, ok := d.g.Object(v, iri(owlrdf.OWLOnDatatype))
	if !ok || iriString(base) == "" {
		return nil, false
	}
	dr := owl.DatatypeRestriction{Base: owl.Datatype{IRI: owl.IRI(iriString(base))}}
	if head, ok := d.g.Object(v, iri(owlrdf.OWLWithRestrictions)); ok {
		facets, ok := decodeList(d.g, head, d.facet)
		if !ok {
			return nil, false
		}
		dr.Facets = facets
	}
	return dr, true
}

func (d *decoder) facet(v quad.Value) (owl.FacetRestriction, bool) {
	for _, t := range d.g.Match(v, nil, nil) {
		if l, ok := literalOf(t.Object); ok && iriString(t.Predicate) != "" {
			return owl.FacetRestriction{Facet: owl.IRI(iriString(t.Predicate)), Value: l}, true
		}
	}
	return owl.FacetRestriction{}, false
}

// individual decodes a named or anonymous individual. Blank labels map to
// the same anonymous individual every time.
func (d *decoder) individual(v quad.Value) (owl.Individual, bool) {
	switch x := v.(type) {
	case quad.IRI:
		return owl.NamedIndividual{IRI: owl.IRI(x)}, true
	case quad.BNode:
		return owl.AnonymousIndividualFor(string(x)), true
	}
	return nil, false
}

// assertedIndividual is individual restricted to terms that can be the
// subject or object of an assertion: scaffolding blank nodes are rejected.
func (d *decoder) assertedIndividual(v quad.Value) (owl.Individual, bool) {
	if d.isStructural(v) {
		return nil, false
	}
	return d.individual(v)
}

// value decodes a HasValue filler.
func (d *decoder) value(v quad.Value) (owl.Value, bool) {
	if l, ok := literalOf(v); ok {
		return l, true
	}
	return d.individual(v)
}

func annotationValueOf(v quad.Value) (owl.AnnotationValue, bool) {
	switch x := v.(type) {
	case quad.IRI:
		return owl.IRI(x), true
	case quad.BNode:
		return owl.AnonymousIndividualFor(string(x)), true
	}
	if l, ok := literalOf(v); ok {
		return l, true
	}
	return nil, false
}

// classExpression encodes c and returns its term, or nil when c cannot be
// written.
func (e *encoder) classExpression(c owl.ClassExpression) quad.Value {
	switch x := c.(type) {
	case owl.Class:
		return quad.IRI(x.IRI)
	case owl.SomeValuesFrom:
		return e.restriction(x.Property, owlrdf.OWLSomeValuesFrom, e.filler(x.Filler))
	case owl.AllValuesFrom:
		return e.restriction(x.Property, owlrdf.OWLAllValuesFrom, e.filler(x.Filler))
	case owl.HasValue:
		return e.restriction(x.Property, owlrdf.OWLHasValue, e.value(x.Value))
	case owl.HasSelf:
		return e.restriction(x.Property, owlrdf.OWLHasSelf, trueLiteral)
	case owl.Cardinality:
		return e.restriction(x.Property, owlrdf.OWLCardinality, nonNegativeInteger(x.N))
	case owl.MinCardinality:
		return e.restriction(x.Property, owlrdf.OWLMinCardinality, nonNegativeInteger(x.N))
	case owl.MaxCardinality:
		return e.restriction(x.Property, owlrdf.OWLMaxCardinality, nonNegativeInteger(x.N))
	case owl.MinMaxCardinality:
		node := e.restriction(x.Property, owlrdf.OWLMinCardinality, nonNegativeInteger(x.Min))
		if node != nil {
			e.g.Add(node, iri(owlrdf.OWLMaxCardinality), nonNegativeInteger(x.Max))
		}
		return node
	case owl.QualifiedCardinality:
		return e.qualifiedCardinality(x)
	case owl.UnionOf:
		return e.booleanClass(owlrdf.OWLUnionOf, encodeList(e.g, e.alloc, x.Operands, e.classExpression))
	case owl.IntersectionOf:
		return e.booleanClass(owlrdf.OWLIntersectionOf, encodeList(e.g, e.alloc, x.Operands, e.classExpression))
	case owl.ComplementOf:
		return e.booleanClass(owlrdf.OWLComplementOf, e.classExpression(x.Operand))
	case owl.OneOf:
		return e.booleanClass(owlrdf.OWLOneOf, encodeList(e.g, e.alloc, x.Individuals, e.individual))
	}
	return nil
}

func (e *encoder) restriction(p owl.PropertyExpression, kind string, filler quad.Value) quad.Value {
	prop := e.property(p)
	if prop == nil || filler == nil {
		return nil
	}
	node := e.alloc.Fresh()
	e.g.Add(node, rdfType, iri(owlrdf.OWLRestriction))
	e.g.Add(node, iri(owlrdf.OWLOnProperty), prop)
	e.g.Add(node, iri(kind), filler)
	return node
}

func (e *encoder) qualifiedCardinality(qc owl.QualifiedCardinality) quad.Value {
	kind := owlrdf.OWLQualifiedCardinality
	switch qc.Kind {
	case owl.AtLeast:
		kind = owlrdf.OWLMinQualifiedCardinality
	case owl.AtMost:
		kind = owlrdf.OWLMaxQualifiedCardinality
	}

	fillerPredicate := owlrdf.OWLOnClass
	if _, isData := qc.Filler.(owl.DataRange); isData {
		fillerPredicate = owlrdf.OWLOnDataRange
	}
	filler := e.filler(qc.Filler)
	if filler == nil {
		return nil
	}
	node := e.restriction(qc.Property, kind, nonNegativeInteger(qc.N))
	if node != nil {
		e.g.Add(node, iri(fillerPredicate), filler)
	}
	return node
}

func (e *encoder) booleanClass(predicate string, operand quad.Value) quad.Value {
	if operand == nil {
		return nil
	}
	node := e.alloc.Fresh()
	e.g.Add(node, rdfType, iri(owlrdf.OWLClass))
	e.g.Add(node, iri(predicate), operand)
	return node
}

func (e *encoder) filler(f owl.Filler) quad.Value {
	switch x := f.(type) {
	case owl.ClassExpression:
		return e.classExpression(x)
	case owl.DataRange:
		return e.dataRange(x)
	}
	return nil
}

// property encodes a property expression. Chains are not property terms and
// encode to nil.
func (e *encoder) property(p owl.PropertyExpression) quad.Value {
	switch x := p.(type) {
	case owl.ObjectProperty:
		return quad.IRI(x.IRI)
	case owl.DataProperty:
		return quad.IRI(x.IRI)
	case owl.AnnotationProperty:
		return quad.IRI(x.IRI)
	case owl.ObjectInverseOf:
		inner := e.property(x.Property)
		if inner == nil {
			return nil
		}
		node := e.alloc.Fresh()
		e.g.Add(node, iri(owlrdf.OWLInverseOf), inner)
		return node
	}
	return nil
}

func (e *encoder) objectProperty(p owl.ObjectPropertyExpression) quad.Value {
	return e.property(p)
}

func (e *encoder) dataRange(r owl.DataRange) quad.Value {
	switch x := r.(type) {
	case owl.Datatype:
		return quad.IRI(x.IRI)
	case owl.DatatypeRestriction:
		facets := encodeList(e.g, e.alloc, x.Facets, func(f owl.FacetRestriction) quad.Value {
			node := e.alloc.Fresh()
			e.g.Add(node, quad.IRI(f.Facet), literalTerm(f.Value))
			return node
		})
		node := e.alloc.Fresh()
		e.g.Add(node, rdfType, iri(owlrdf.RDFSDatatype))
		e.g.Add(node, iri(owlrdf.OWLOnDatatype), quad.IRI(x.Base.IRI))
		e.g.Add(node, iri(owlrdf.OWLWithRestrictions), facets)
		return node
	}
	return nil
}

func (e *encoder) individual(i owl.Individual) quad.Value {
	switch x := i.(type) {
	case owl.NamedIndividual:
		return quad.IRI(x.IRI)
	case owl.AnonymousIndividual:
		return e.alloc.For(x)
	}
	return nil
}

func (e *encoder) value(v owl.Value) quad.Value {
	if l, ok := v.(owl.Literal); ok {
		return literalTerm(l)
	}
	if i, ok := v.(owl.Individual); ok {
		return e.individual(i)
	}
	return nil
}

func (e *encoder) annotationValue(v owl.AnnotationValue) quad.Value {
	switch x := v.(type) {
	case owl.IRI:
		return quad.IRI(x)
	case owl.Literal:
		return literalTerm(x)
	case owl.AnonymousIndividual:
		return e.alloc.For(x)
	}
	return nil
}
