package rdfmap

import (
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

var entityTypeIRIs = map[owl.EntityType]string{
	owl.EntityClass:              owlrdf.OWLClass,
	owl.EntityDatatype:           owlrdf.RDFSDatatype,
	owl.EntityObjectProperty:     owlrdf.OWLObjectProperty,
	owl.EntityDataProperty:       owlrdf.OWLDatatypeProperty,
	owl.EntityAnnotationProperty: owlrdf.OWLAnnotationProperty,
	owl.EntityNamedIndividual:    owlrdf.OWLNamedIndividual,
}

var characteristicIRIs = map[owl.Characteristic]string{
	owl.Functional:        owlrdf.OWLFunctionalProperty,
	owl.InverseFunctional: owlrdf.OWLInverseFunctionalProperty,
	owl.Symmetric:         owlrdf.OWLSymmetricProperty,
	owl.Asymmetric:        owlrdf.OWLAsymmetricProperty,
	owl.Reflexive:         owlrdf.OWLReflexiveProperty,
	owl.Irreflexive:       owlrdf.OWLIrreflexiveProperty,
	owl.Transitive:        owlrdf.OWLTransitiveProperty,
}

// encodeAxiom writes one axiom and reports whether it could be encoded.
func (e *encoder) encodeAxiom(ax owl.Axiom) bool {
	anns := ax.Base().Annotations

	switch x := ax.(type) {
	case *owl.Declaration:
		if x.Entity == nil {
			return false
		}
		return e.triple(quad.IRI(x.Entity.EntityIRI()), owlrdf.RDFType, quad.IRI(entityTypeIRIs[x.Entity.EntityType()]), anns)

	case *owl.SubClassOf:
		return e.triple(e.classExpression(x.Sub), owlrdf.RDFSSubClassOf, e.classExpression(x.Super), anns)
	case *owl.EquivalentClasses:
		return pairwise(e, x.Classes, e.classExpression, owlrdf.OWLEquivalentClass, anns)
	case *owl.DisjointClasses:
		if len(x.Classes) > 2 {
			return e.node(owlrdf.OWLAllDisjointClasses, owlrdf.OWLMembers, encodeList(e.g, e.alloc, x.Classes, e.classExpression), anns)
		}
		return pairwise(e, x.Classes, e.classExpression, owlrdf.OWLDisjointWith, anns)
	case *owl.DisjointUnion:
		return e.triple(quad.IRI(x.Class.IRI), owlrdf.OWLDisjointUnionOf, encodeList(e.g, e.alloc, x.Classes, e.classExpression), anns)

	case *owl.SubObjectPropertyOf:
		if chain, ok := x.Sub.(owl.ObjectPropertyChain); ok {
			return e.triple(e.objectProperty(x.Super), owlrdf.OWLPropertyChainAxiom, encodeList(e.g, e.alloc, chain.Properties, e.objectProperty), anns)
		}
		return e.triple(e.property(x.Sub), owlrdf.RDFSSubPropertyOf, e.objectProperty(x.Super), anns)
	case *owl.EquivalentObjectProperties:
		return pairwise(e, x.Properties, e.objectProperty, owlrdf.OWLEquivalentProperty, anns)
	case *owl.DisjointObjectProperties:
		if len(x.Properties) > 2 {
			return e.node(owlrdf.OWLAllDisjointProperties, owlrdf.OWLMembers, encodeList(e.g, e.alloc, x.Properties, e.objectProperty), anns)
		}
		return pairwise(e, x.Properties, e.objectProperty, owlrdf.OWLPropertyDisjointWith, anns)
	case *owl.ObjectPropertyDomain:
		return e.triple(e.objectProperty(x.Property), owlrdf.RDFSDomain, e.classExpression(x.Domain), anns)
	case *owl.ObjectPropertyRange:
		return e.triple(e.objectProperty(x.Property), owlrdf.RDFSRange, e.classExpression(x.Range), anns)
	case *owl.InverseObjectProperties:
		first, second := x.First, x.Second
		// A blank subject would read back as an inverse expression.
		if _, named := first.(owl.ObjectProperty); !named {
			if _, named := second.(owl.ObjectProperty); !named {
				return false
			}
			first, second = second, first
		}
		return e.triple(e.objectProperty(first), owlrdf.OWLInverseOf, e.objectProperty(second), anns)
	case *owl.ObjectPropertyCharacteristic:
		c, ok := characteristicIRIs[x.Characteristic]
		if !ok {
			return false
		}
		return e.triple(e.objectProperty(x.Property), owlrdf.RDFType, quad.IRI(c), anns)

	case *owl.SubDataPropertyOf:
		return e.triple(quad.IRI(x.Sub.IRI), owlrdf.RDFSSubPropertyOf, quad.IRI(x.Super.IRI), anns)
	case *owl.EquivalentDataProperties:
		return pairwise(e, x.Properties, dataPropertyTerm, owlrdf.OWLEquivalentProperty, anns)
	case *owl.DisjointDataProperties:
		if len(x.Properties) > 2 {
			return e.node(owlrdf.OWLAllDisjointProperties, owlrdf.OWLMembers, encodeList(e.g, e.alloc, x.Properties, dataPropertyTerm), anns)
		}
		return pairwise(e, x.Properties, dataPropertyTerm, owlrdf.OWLPropertyDisjointWith, anns)
	case *owl.DataPropertyDomain:
		return e.triple(quad.IRI(x.Property.IRI), owlrdf.RDFSDomain, e.classExpression(x.Domain), anns)
	case *owl.DataPropertyRange:
		return e.triple(quad.IRI(x.Property.IRI), owlrdf.RDFSRange, e.dataRange(x.Range), anns)
	case *owl.FunctionalDataProperty:
		return e.triple(quad.IRI(x.Property.IRI), owlrdf.RDFType, quad.IRI(owlrdf.OWLFunctionalProperty), anns)

	case *owl.ClassAssertion:
		return e.triple(e.individual(x.Individual), owlrdf.RDFType, e.classExpression(x.Class), anns)
	case *owl.ObjectPropertyAssertion:
		return e.objectPropertyAssertion(x, anns)
	case *owl.DataPropertyAssertion:
		return e.triple(e.individual(x.Source), string(x.Property.IRI), literalTerm(x.Target), anns)
	case *owl.NegativeObjectPropertyAssertion:
		return e.negativeAssertion(e.individual(x.Source), e.objectProperty(x.Property), owlrdf.OWLTargetIndividual, e.individual(x.Target), anns)
	case *owl.NegativeDataPropertyAssertion:
		return e.negativeAssertion(e.individual(x.Source), quad.IRI(x.Property.IRI), owlrdf.OWLTargetValue, literalTerm(x.Target), anns)
	case *owl.SameIndividual:
		return pairwise(e, x.Individuals, e.individual, owlrdf.OWLSameAs, anns)
	case *owl.DifferentIndividuals:
		if len(x.Individuals) > 2 {
			return e.node(owlrdf.OWLAllDifferent, owlrdf.OWLDistinctMembers, encodeList(e.g, e.alloc, x.Individuals, e.individual), anns)
		}
		return pairwise(e, x.Individuals, e.individual, owlrdf.OWLDifferentFrom, anns)

	case *owl.AnnotationAssertion:
		var subject quad.Value
		switch s := x.Subject.(type) {
		case owl.IRI:
			subject = quad.IRI(s)
		case owl.AnonymousIndividual:
			subject = e.alloc.For(s)
		}
		return e.triple(subject, string(x.Property.IRI), e.annotationValue(x.Value), anns)
	case *owl.SubAnnotationPropertyOf:
		return e.triple(quad.IRI(x.Sub.IRI), owlrdf.RDFSSubPropertyOf, quad.IRI(x.Super.IRI), anns)
	case *owl.AnnotationPropertyDomain:
		return e.triple(quad.IRI(x.Property.IRI), owlrdf.RDFSDomain, quad.IRI(x.Domain), anns)
	case *owl.AnnotationPropertyRange:
		return e.triple(quad.IRI(x.Property.IRI), owlrdf.RDFSRange, quad.IRI(x.Range), anns)

	case *owl.HasKey:
		keys := make([]quad.Value, 0, len(x.ObjectProperties)+len(x.DataProperties))
		for _, p := range x.ObjectProperties {
			keys = append(keys, e.objectProperty(p))
		}
		for _, p := range x.DataProperties {
			keys = append(keys, quad.IRI(p.IRI))
		}
		for _, k := range keys {
			if k == nil {
				return false
			}
		}
		return e.triple(e.classExpression(x.Class), owlrdf.OWLHasKey, EncodeList(e.g, e.alloc, keys), anns)
	case *owl.DatatypeDefinition:
		return e.triple(quad.IRI(x.Datatype.IRI), owlrdf.OWLEquivalentClass, e.dataRange(x.Range), anns)
	}
	return false
}

// pairwise writes one predicate triple per consecutive pair of members. Two
// members give the single canonical triple.
func pairwise[T any](e *encoder, members []T, encode func(T) quad.Value, predicate string, anns []owl.Annotation) bool {
	if len(members) < 2 {
		return false
	}
	terms := make([]quad.Value, len(members))
	for i, m := range members {
		if terms[i] = encode(m); terms[i] == nil {
			return false
		}
	}
	for i := 0; i+1 < len(terms); i++ {
		e.triple(terms[i], predicate, terms[i+1], anns)
	}
	return true
}

func dataPropertyTerm(p owl.DataProperty) quad.Value {
	return quad.IRI(p.IRI)
}

// objectPropertyAssertion writes the assertion triple. An inverse property
// swaps source and target so the triple uses the named property.
func (e *encoder) objectPropertyAssertion(x *owl.ObjectPropertyAssertion, anns []owl.Annotation) bool {
	source, target := x.Source, x.Target
	p := x.Property
	for {
		inv, ok := p.(owl.ObjectInverseOf)
		if !ok {
			break
		}
		p = inv.Property
		source, target = target, source
	}
	named, ok := p.(owl.ObjectProperty)
	if !ok {
		return false
	}
	return e.triple(e.individual(source), string(named.IRI), e.individual(target), anns)
}

func (e *encoder) negativeAssertion(source, property quad.Value, targetPredicate string, target quad.Value, anns []owl.Annotation) bool {
	if source == nil || property == nil || target == nil {
		return false
	}
	n := e.alloc.Fresh()
	e.g.Add(n, rdfType, iri(owlrdf.OWLNegativePropertyAssertion))
	e.g.Add(n, iri(owlrdf.OWLSourceIndividual), source)
	e.g.Add(n, iri(owlrdf.OWLAssertionProperty), property)
	e.g.Add(n, iri(targetPredicate), target)
	for _, a := range anns {
		e.annotate(n, a)
	}
	return true
}
