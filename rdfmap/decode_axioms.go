package rdfmap

import (
	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

var entityTypes = map[string]owl.EntityType{
	owlrdf.OWLClass:              owl.EntityClass,
	owlrdf.RDFSDatatype:          owl.EntityDatatype,
	owlrdf.OWLObjectProperty:     owl.EntityObjectProperty,
	owlrdf.OWLDatatypeProperty:   owl.EntityDataProperty,
	owlrdf.OWLAnnotationProperty: owl.EntityAnnotationProperty,
	owlrdf.OWLNamedIndividual:    owl.EntityNamedIndividual,
}

var characteristicTypes = map[string]owl.Characteristic{
	owlrdf.OWLFunctionalProperty:        owl.Functional,
	owlrdf.OWLInverseFunctionalProperty: owl.InverseFunctional,
	owlrdf.OWLSymmetricProperty:         owl.Symmetric,
	owlrdf.OWLAsymmetricProperty:        owl.Asymmetric,
	owlrdf.OWLReflexiveProperty:         owl.Reflexive,
	owlrdf.OWLIrreflexiveProperty:       owl.Irreflexive,
	owlrdf.OWLTransitiveProperty:        owl.Transitive,
}

func (d *decoder) decodeDeclarations() {
	for _, t := range d.g.Match(nil, rdfType, nil) {
		subject, ok := graph.IRIOf(t.Subject)
		if !ok {
			continue
		}
		et, ok := entityTypes[iriString(t.Object)]
		if !ok {
			continue
		}
		if d.declared[subject] == nil {
			d.declared[subject] = make(map[owl.EntityType]bool)
		}
		if !d.declared[subject][et] {
			d.declaredOrder[et] = append(d.declaredOrder[et], subject)
		}
		d.declared[subject][et] = true

		entity, _ := owl.NewEntity(et, owl.IRI(subject))
		d.add(&owl.Declaration{Entity: entity}, t.Subject, t.Predicate, t.Object)
	}
}

func (d *decoder) decodeClassAxioms() {
	for _, t := range d.g.Match(nil, iri(owlrdf.RDFSSubClassOf), nil) {
		sub, okSub := d.classExpression(t.Subject, guard{})
		super, okSuper := d.classExpression(t.Object, guard{})
		if !okSub || !okSuper {
			d.skip("Skipping unrecognised subClassOf", t)
			continue
		}
		d.add(&owl.SubClassOf{Sub: sub, Super: super}, t.Subject, t.Predicate, t.Object)
	}

	for _, t := range d.g.Match(nil, iri(owlrdf.OWLEquivalentClass), nil) {
		if d.isDatatype(t.Subject) {
			continue
		}
		classes, ok := d.classPair(t)
		if !ok {
			d.skip("Skipping unrecognised equivalentClass", t)
			continue
		}
		d.add(&owl.EquivalentClasses{Classes: classes}, t.Subject, t.Predicate, t.Object)
	}

	for _, t := range d.g.Match(nil, iri(owlrdf.OWLDisjointWith), nil) {
		classes, ok := d.classPair(t)
		if !ok {
			d.skip("Skipping unrecognised disjointWith", t)
			continue
		}
		d.add(&owl.DisjointClasses{Classes: classes}, t.Subject, t.Predicate, t.Object)
	}

	for _, node := range d.g.Subjects(rdfType, iri(owlrdf.OWLAllDisjointClasses)) {
		head, ok := d.g.Object(node, iri(owlrdf.OWLMembers))
		if !ok {
			continue
		}
		classes, ok := decodeList(d.g, head, d.topClassExpression)
		if !ok {
			continue
		}
		d.addNode(&owl.DisjointClasses{Classes: classes}, node)
	}

	for _, t := range d.g.Match(nil, iri(owlrdf.OWLDisjointUnionOf), nil) {
		class, ok := graph.IRIOf(t.Subject)
		if !ok {
			continue
		}
		classes, ok := decodeList(d.g, t.Object, d.topClassExpression)
		if !ok {
			d.skip("Skipping unrecognised disjointUnionOf", t)
			continue
		}
		d.add(&owl.DisjointUnion{Class: owl.Class{IRI: owl.IRI(class)}, Classes: classes}, t.Subject, t.Predicate, t.Object)
	}
}

func (d *decoder) topClassExpression(v quad.Value) (owl.ClassExpression, bool) {
	return d.classExpression(v, guard{})
}

func (d *decoder) classPair(t graph.Triple) ([]owl.ClassExpression, bool) {
	a, okA := d.classExpression(t.Subject, guard{})
	b, okB := d.classExpression(t.Object, guard{})
	if !okA || !okB {
		return nil, false
	}
	return []owl.ClassExpression{a, b}, true
}

// pairKind decides the kind of a property relation from the declarations of
// either side.
func (d *decoder) pairKind(a, b quad.Value) propertyKind {
	for _, v := range []quad.Value{a, b} {
		if s := iriString(v); s != "" {
			if k := d.kindOf(s); k != kindUnknown {
				return k
			}
		}
	}
	return kindObject
}

func (d *decoder) decodePropertyAxioms() {
	for _, t := range d.g.Match(nil, iri(owlrdf.RDFSSubPropertyOf), nil) {
		sub, super := iriString(t.Subject), iriString(t.Object)
		switch d.pairKind(t.Subject, t.Object) {
		case kindData:
			if sub == "" || super == "" {
				continue
			}
			d.add(&owl.SubDataPropertyOf{Sub: owl.DataProperty{IRI: owl.IRI(sub)}, Super: owl.DataProperty{IRI: owl.IRI(super)}}, t.Subject, t.Predicate, t.Object)
		case kindAnnotation:
			if sub == "" || super == "" {
				continue
			}
			d.add(&owl.SubAnnotationPropertyOf{Sub: owl.AnnotationProperty{IRI: owl.IRI(sub)}, Super: owl.AnnotationProperty{IRI: owl.IRI(super)}}, t.Subject, t.Predicate, t.Object)
		default:
			subP, okSub := d.objectProperty(t.Subject, guard{})
			superP, okSuper := d.objectProperty(t.Object, guard{})
			if !okSub || !okSuper {
				d.skip("Skipping unrecognised subPropertyOf", t)
				continue
			}
			d.add(&owl.SubObjectPropertyOf{Sub: subP, Super: superP}, t.Subject, t.Predicate, t.Object)
		}
	}

	for _, t := range d.g.Match(nil, iri(owlrdf.OWLPropertyChainAxiom), nil) {
		super, ok := d.objectProperty(t.Subject, guard{})
		if !ok {
			continue
		}
		chain, ok := decodeList(d.g, t.Object, d.topObjectProperty)
		if !ok || len(chain) == 0 {
			d.skip("Skipping unrecognised propertyChainAxiom", t)
			continue
		}
		d.add(&owl.SubObjectPropertyOf{Sub: owl.ObjectPropertyChain{Properties: chain}, Super: super}, t.Subject, t.Predicate, t.Object)
	}

	d.decodePropertyPairs(owlrdf.OWLEquivalentProperty,
		func(ps []owl.ObjectPropertyExpression) owl.Axiom { return &owl.EquivalentObjectProperties{Properties: ps} },
		func(ps []owl.DataProperty) owl.Axiom { return &owl.EquivalentDataProperties{Properties: ps} })
	d.decodePropertyPairs(owlrdf.OWLPropertyDisjointWith,
		func(ps []owl.ObjectPropertyExpression) owl.Axiom { return &owl.DisjointObjectProperties{Properties: ps} },
		func(ps []owl.DataProperty) owl.Axiom { return &owl.DisjointDataProperties{Properties: ps} })

	for _, node := range d.g.Subjects(rdfType, iri(owlrdf.OWLAllDisjointProperties)) {
		head, ok := d.g.Object(node, iri(owlrdf.OWLMembers))
		if !ok {
			continue
		}
		members := DecodeList(d.g, head)
		if len(members) == 0 {
			continue
		}
		if d.pairKind(members[0], nil) == kindData {
			props, ok := decodeList(d.g, head, dataPropertyOf)
			if ok {
				d.addNode(&owl.DisjointDataProperties{Properties: props}, node)
			}
			continue
		}
		props, ok := decodeList(d.g, head, d.topObjectProperty)
		if ok {
			d.addNode(&owl.DisjointObjectProperties{Properties: props}, node)
		}
	}

	d.decodeDomainsAndRanges()

	for _, t := range d.g.Match(nil, iri(owlrdf.OWLInverseOf), nil) {
		// A blank subject is an ObjectInverseOf expression, not an axiom.
		if graph.IsBlank(t.Subject) {
			continue
		}
		first, okFirst := d.objectProperty(t.Subject, guard{})
		second, okSecond := d.objectProperty(t.Object, guard{})
		if !okFirst || !okSecond {
			d.skip("Skipping unrecognised inverseOf", t)
			continue
		}
		d.add(&owl.InverseObjectProperties{First: first, Second: second}, t.Subject, t.Predicate, t.Object)
	}
}

func (d *decoder) topObjectProperty(v quad.Value) (owl.ObjectPropertyExpression, bool) {
	return d.objectProperty(v, guard{})
}

func dataPropertyOf(v quad.Value) (owl.DataProperty, bool) {
	s, ok := graph.IRIOf(v)
	return owl.DataProperty{IRI: owl.IRI(s)}, ok
}

func (d *decoder) decodePropertyPairs(predicate string, objectAxiom func([]owl.ObjectPropertyExpression) owl.Axiom, dataAxiom func([]owl.DataProperty) owl.Axiom) {
	for _, t := range d.g.Match(nil, iri(predicate), nil) {
		if d.pairKind(t.Subject, t.Object) == kindData {
			a, okA := dataPropertyOf(t.Subject)
			b, okB := dataPropertyOf(t.Object)
			if okA && okB {
				d.add(dataAxiom([]owl.DataProperty{a, b}), t.Subject, t.Predicate, t.Object)
			}
			continue
		}
		a, okA := d.objectProperty(t.Subject, guard{})
		b, okB := d.objectProperty(t.Object, guard{})
		if !okA || !okB {
			d.skip("Skipping unrecognised property pair", t)
			continue
		}
		d.add(objectAxiom([]owl.ObjectPropertyExpression{a, b}), t.Subject, t.Predicate, t.Object)
	}
}

func (d *decoder) decodeDomainsAndRanges() {
	for _, t := range d.g.Match(nil, iri(owlrdf.RDFSDomain), nil) {
		switch d.pairKind(t.Subject, nil) {
		case kindData:
			p, _ := dataPropertyOf(t.Subject)
			domain, ok := d.classExpression(t.Object, guard{})
			if ok {
				d.add(&owl.DataPropertyDomain{Property: p, Domain: domain}, t.Subject, t.Predicate, t.Object)
			}
		case kindAnnotation:
			if domain := iriString(t.Object); domain != "" {
				p := owl.AnnotationProperty{IRI: owl.IRI(iriString(t.Subject))}
				d.add(&owl.AnnotationPropertyDomain{Property: p, Domain: owl.IRI(domain)}, t.Subject, t.Predicate, t.Object)
			}
		default:
			p, okP := d.objectProperty(t.Subject, guard{})
			domain, ok := d.classExpression(t.Object, guard{})
			if !okP || !ok {
				d.skip("Skipping unrecognised domain", t)
				continue
			}
			d.add(&owl.ObjectPropertyDomain{Property: p, Domain: domain}, t.Subject, t.Predicate, t.Object)
		}
	}

	for _, t := range d.g.Match(nil, iri(owlrdf.RDFSRange), nil) {
		switch d.pairKind(t.Subject, nil) {
		case kindData:
			p, _ := dataPropertyOf(t.Subject)
			r, ok := d.dataRange(t.Object)
			if ok {
				d.add(&owl.DataPropertyRange{Property: p, Range: r}, t.Subject, t.Predicate, t.Object)
			}
		case kindAnnotation:
			if r := iriString(t.Object); r != "" {
				p := owl.AnnotationProperty{IRI: owl.IRI(iriString(t.Subject))}
				d.add(&owl.AnnotationPropertyRange{Property: p, Range: owl.IRI(r)}, t.Subject, t.Predicate, t.Object)
			}
		default:
			p, okP := d.objectProperty(t.Subject, guard{})
			r, ok := d.classExpression(t.Object, guard{})
			if !okP || !ok {
				d.skip("Skipping unrecognised range", t)
				continue
			}
			d.add(&owl.ObjectPropertyRange{Property: p, Range: r}, t.Subject, t.Predicate, t.Object)
		}
	}
}

func (d *decoder) decodeCharacteristics() {
	for _, t := range d.g.Match(nil, rdfType, nil) {
		c, ok := characteristicTypes[iriString(t.Object)]
		if !ok {
			continue
		}
		if c == owl.Functional && d.pairKind(t.Subject, nil) == kindData {
			p, _ := dataPropertyOf(t.Subject)
			d.add(&owl.FunctionalDataProperty{Property: p}, t.Subject, t.Predicate, t.Object)
			continue
		}
		p, ok := d.objectProperty(t.Subject, guard{})
		if !ok {
			continue
		}
		d.add(&owl.ObjectPropertyCharacteristic{Characteristic: c, Property: p}, t.Subject, t.Predicate, t.Object)
	}
}

func (d *decoder) decodeAssertions() {
	d.decodeClassAssertions()
	d.decodePropertyAssertions()
	d.decodeNegativeAssertions()

	for _, t := range d.g.Match(nil, iri(owlrdf.OWLSameAs), nil) {
		if individuals, ok := d.individualPair(t); ok {
			d.add(&owl.SameIndividual{Individuals: individuals}, t.Subject, t.Predicate, t.Object)
		}
	}
	for _, t := range d.g.Match(nil, iri(owlrdf.OWLDifferentFrom), nil) {
		if individuals, ok := d.individualPair(t); ok {
			d.add(&owl.DifferentIndividuals{Individuals: individuals}, t.Subject, t.Predicate, t.Object)
		}
	}

	for _, node := range d.g.Subjects(rdfType, iri(owlrdf.OWLAllDifferent)) {
		head, ok := d.g.Object(node, iri(owlrdf.OWLDistinctMembers))
		if !ok {
			head, ok = d.g.Object(node, iri(owlrdf.OWLMembers))
		}
		if !ok {
			continue
		}
		individuals, ok := decodeList(d.g, head, d.individual)
		if !ok {
			continue
		}
		d.addNode(&owl.DifferentIndividuals{Individuals: individuals}, node)
	}
}

func (d *decoder) individualPair(t graph.Triple) ([]owl.Individual, bool) {
	a, okA := d.assertedIndividual(t.Subject)
	b, okB := d.assertedIndividual(t.Object)
	if !okA || !okB {
		return nil, false
	}
	return []owl.Individual{a, b}, true
}

func (d *decoder) decodeClassAssertions() {
	for _, t := range d.g.Match(nil, rdfType, nil) {
		if o := iriString(t.Object); o != "" && owlrdf.IsReserved(o) {
			continue
		}
		ind, ok := d.assertedIndividual(t.Subject)
		if !ok {
			continue
		}
		class, ok := d.classExpression(t.Object, guard{})
		if !ok {
			d.skip("Skipping unrecognised class assertion", t)
			continue
		}
		d.add(&owl.ClassAssertion{Class: class, Individual: ind}, t.Subject, t.Predicate, t.Object)
	}
}

// decodePropertyAssertions reads plain triples whose predicate is a declared
// object or data property. Undeclared predicates are foreign vocabulary and
// are left alone.
func (d *decoder) decodePropertyAssertions() {
	for _, p := range d.declaredOrder[owl.EntityObjectProperty] {
		if d.kindOf(p) != kindObject {
			continue
		}
		for _, t := range d.g.Match(nil, quad.IRI(p), nil) {
			source, okS := d.assertedIndividual(t.Subject)
			target, okT := d.assertedIndividual(t.Object)
			if !okS || !okT {
				continue
			}
			d.add(&owl.ObjectPropertyAssertion{Property: owl.ObjectProperty{IRI: owl.IRI(p)}, Source: source, Target: target}, t.Subject, t.Predicate, t.Object)
		}
	}
	for _, p := range d.declaredOrder[owl.EntityDataProperty] {
		for _, t := range d.g.Match(nil, quad.IRI(p), nil) {
			source, okS := d.assertedIndividual(t.Subject)
			target, okT := literalOf(t.Object)
			if !okS || !okT {
				continue
			}
			d.add(&owl.DataPropertyAssertion{Property: owl.DataProperty{IRI: owl.IRI(p)}, Source: source, Target: target}, t.Subject, t.Predicate, t.Object)
		}
	}
}

func (d *decoder) decodeNegativeAssertions() {
	for _, node := range d.g.Subjects(rdfType, iri(owlrdf.OWLNegativePropertyAssertion)) {
		sourceTerm, okS := d.g.Object(node, iri(owlrdf.OWLSourceIndividual))
		propTerm, okP := d.g.Object(node, iri(owlrdf.OWLAssertionProperty))
		if !okS || !okP {
			continue
		}
		source, ok := d.individual(sourceTerm)
		if !ok {
			continue
		}

		if value, ok := d.g.Object(node, iri(owlrdf.OWLTargetValue)); ok {
			p, okP := dataPropertyOf(propTerm)
			target, okT := literalOf(value)
			if okP && okT {
				d.addNode(&owl.NegativeDataPropertyAssertion{Property: p, Source: source, Target: target}, node)
			}
			continue
		}

		targetTerm, ok := d.g.Object(node, iri(owlrdf.OWLTargetIndividual))
		if !ok {
			continue
		}
		p, okP := d.objectProperty(propTerm, guard{})
		target, okT := d.individual(targetTerm)
		if okP && okT {
			d.addNode(&owl.NegativeObjectPropertyAssertion{Property: p, Source: source, Target: target}, node)
		}
	}
}

func (d *decoder) decodeHasKeys() {
	for _, t := range d.g.Match(nil, iri(owlrdf.OWLHasKey), nil) {
		class, ok := d.classExpression(t.Subject, guard{})
		if !ok {
			continue
		}
		key := &owl.HasKey{Class: class}
		valid := true
		for _, member := range DecodeList(d.g, t.Object) {
			if d.pairKind(member, nil) == kindData {
				p, _ := dataPropertyOf(member)
				key.DataProperties = append(key.DataProperties, p)
				continue
			}
			p, ok := d.objectProperty(member, guard{})
			if !ok {
				valid = false
				break
			}
			key.ObjectProperties = append(key.ObjectProperties, p)
		}
		if !valid {
			d.skip("Skipping unrecognised hasKey", t)
			continue
		}
		d.add(key, t.Subject, t.Predicate, t.Object)
	}
}

// decodeDatatypeDefinitions reads owl:equivalentClass triples whose subject
// is a declared datatype.
func (d *decoder) decodeDatatypeDefinitions() {
	for _, t := range d.g.Match(nil, iri(owlrdf.OWLEquivalentClass), nil) {
		dt := iriString(t.Subject)
		if dt == "" || !d.declared[dt][owl.EntityDatatype] {
			continue
		}
		r, ok := d.dataRange(t.Object)
		if !ok {
			d.skip("Skipping unrecognised datatype definition", t)
			continue
		}
		d.add(&owl.DatatypeDefinition{Datatype: owl.Datatype{IRI: owl.IRI(dt)}, Range: r}, t.Subject, t.Predicate, t.Object)
	}
}

// decodeAnnotationAssertions reads triples whose predicate is an annotation
// property, skipping the ontology header and nodes already read as n-ary
// axioms or rules.
func (d *decoder) decodeAnnotationAssertions() {
	properties := append([]string{}, d.declaredOrder[owl.EntityAnnotationProperty]...)
	for _, p := range builtinAnnotationProperties {
		if !d.declared[p][owl.EntityAnnotationProperty] {
			properties = append(properties, p)
		}
	}

	for _, p := range properties {
		if d.kindOf(p) != kindAnnotation {
			continue
		}
		for _, t := range d.g.Match(nil, quad.IRI(p), nil) {
			if d.consumed[t.Subject] || d.isStructural(t.Subject) {
				continue
			}
			var subject owl.AnnotationSubject
			switch x := t.Subject.(type) {
			case quad.IRI:
				subject = owl.IRI(x)
			case quad.BNode:
				subject = owl.AnonymousIndividualFor(string(x))
			default:
				continue
			}
			value, ok := annotationValueOf(t.Object)
			if !ok {
				continue
			}
			d.add(&owl.AnnotationAssertion{Property: owl.AnnotationProperty{IRI: owl.IRI(p)}, Subject: subject, Value: value}, t.Subject, t.Predicate, t.Object)
		}
	}
}

var builtinAnnotationProperties = []string{
	owlrdf.RDFSLabel,
	owlrdf.RDFSComment,
	owlrdf.RDFSSeeAlso,
	owlrdf.RDFSIsDefinedBy,
	owlrdf.OWLVersionInfo,
	owlrdf.OWLDeprecated,
	owlrdf.OWLPriorVersion,
	owlrdf.OWLBackwardCompatibleWith,
	owlrdf.OWLIncompatibleWith,
}
