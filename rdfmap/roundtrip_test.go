package rdfmap

import (
	"bytes"
	"testing"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func class(local string) owl.Class                   { return owl.Class{IRI: owl.IRI(ex + local)} }
func objectProperty(local string) owl.ObjectProperty { return owl.ObjectProperty{IRI: owl.IRI(ex + local)} }
func dataProperty(local string) owl.DataProperty     { return owl.DataProperty{IRI: owl.IRI(ex + local)} }
func individual(local string) owl.NamedIndividual    { return owl.NamedIndividual{IRI: owl.IRI(ex + local)} }

// sampleOntology covers every axiom family once. Every property is
// declared so that its kind survives the round trip.
func sampleOntology() *owl.Ontology {
	o := owl.NewOntology(ontologyIRI)
	o.VersionIRI = ontologyIRI + "/1.0"
	o.Prefixes["ex"] = ex
	o.Imports = []owl.IRI{"http://example.org/base"}
	o.Annotations = []owl.Annotation{{
		Property: owl.AnnotationProperty{IRI: owlrdf.RDFSComment},
		Value:    owl.PlainLiteral("sample"),
	}}

	note := owl.AnnotationProperty{IRI: ex + "note"}
	comment := owl.AnnotationProperty{IRI: owlrdf.RDFSComment}
	label := owl.AnnotationProperty{IRI: owlrdf.RDFSLabel}
	knows, hasParent, hasChild := objectProperty("knows"), objectProperty("hasParent"), objectProperty("hasChild")
	age, name := dataProperty("age"), dataProperty("name")
	person, adult := class("Person"), class("Adult")
	alice, bob := individual("alice"), individual("bob")
	adulthood := owl.DatatypeRestriction{
		Base:   owl.Datatype{IRI: owlrdf.XSDInteger},
		Facets: []owl.FacetRestriction{{Facet: owlrdf.XSDMinInclusive, Value: owl.IntLiteral(18)}},
	}

	for _, c := range []string{"Person", "Adult", "Animal", "Plant"} {
		o.Add(&owl.Declaration{Entity: class(c)})
	}
	for _, p := range []string{"knows", "hasParent", "hasChild", "hasGrandparent", "acquaintedWith", "likes"} {
		o.Add(&owl.Declaration{Entity: objectProperty(p)})
	}
	for _, p := range []string{"age", "name", "nick", "fullName"} {
		o.Add(&owl.Declaration{Entity: dataProperty(p)})
	}
	o.Add(
		&owl.Declaration{Entity: note},
		&owl.Declaration{Entity: owl.Datatype{IRI: ex + "Adulthood"}},
		&owl.Declaration{Entity: alice},
	)

	subClass := &owl.SubClassOf{Sub: adult, Super: person}
	subClass.Annotate(owl.Annotation{
		Property:   comment,
		Value:      owl.PlainLiteral("adults are people"),
		Annotation: &owl.Annotation{Property: label, Value: owl.LangLiteral("nested", "en")},
	})
	o.Add(subClass)

	for _, super := range []owl.ClassExpression{
		owl.SomeValuesFrom{Property: knows, Filler: person},
		owl.AllValuesFrom{Property: hasChild, Filler: person},
		owl.SomeValuesFrom{Property: age, Filler: adulthood},
		owl.HasValue{Property: knows, Value: bob},
		owl.HasValue{Property: age, Value: owl.IntLiteral(30)},
		owl.HasSelf{Property: knows},
		owl.Cardinality{Property: hasParent, N: 2},
		owl.MinCardinality{Property: hasChild, N: 1},
		owl.MaxCardinality{Property: name, N: 1},
		owl.MinMaxCardinality{Property: knows, Min: 1, Max: 100},
		owl.QualifiedCardinality{Kind: owl.Exactly, Property: hasParent, N: 2, Filler: person},
		owl.QualifiedCardinality{Kind: owl.AtLeast, Property: age, N: 1, Filler: owl.Datatype{IRI: owlrdf.XSDInteger}},
		owl.AllValuesFrom{Property: owl.ObjectInverseOf{Property: hasChild}, Filler: person},
		owl.UnionOf{Operands: []owl.ClassExpression{adult, owl.ComplementOf{Operand: class("Plant")}}},
		owl.IntersectionOf{Operands: []owl.ClassExpression{person, owl.OneOf{Individuals: []owl.Individual{alice, bob}}}},
	} {
		o.Add(&owl.SubClassOf{Sub: person, Super: super})
	}

	disjointAll := &owl.DisjointClasses{Classes: []owl.ClassExpression{person, class("Animal"), class("Plant")}}
	disjointAll.Annotate(owl.Annotation{Property: note, Value: owl.PlainLiteral("three way")})
	o.Add(
		&owl.EquivalentClasses{Classes: []owl.ClassExpression{person, class("Human")}},
		&owl.DisjointClasses{Classes: []owl.ClassExpression{class("Animal"), class("Plant")}},
		disjointAll,
		&owl.DisjointUnion{Class: class("Animal"), Classes: []owl.ClassExpression{class("Mammal"), class("Bird")}},

		&owl.SubObjectPropertyOf{Sub: hasChild, Super: knows},
		&owl.SubObjectPropertyOf{
			Sub:   owl.ObjectPropertyChain{Properties: []owl.ObjectPropertyExpression{hasParent, hasParent}},
			Super: objectProperty("hasGrandparent"),
		},
		&owl.EquivalentObjectProperties{Properties: []owl.ObjectPropertyExpression{knows, objectProperty("acquaintedWith")}},
		&owl.DisjointObjectProperties{Properties: []owl.ObjectPropertyExpression{hasParent, hasChild}},
		&owl.DisjointObjectProperties{Properties: []owl.ObjectPropertyExpression{hasParent, hasChild, objectProperty("likes")}},
		&owl.ObjectPropertyDomain{Property: knows, Domain: person},
		&owl.ObjectPropertyRange{Property: knows, Range: person},
		&owl.InverseObjectProperties{First: hasParent, Second: hasChild},
		&owl.ObjectPropertyCharacteristic{Characteristic: owl.Transitive, Property: objectProperty("hasGrandparent")},
		&owl.ObjectPropertyCharacteristic{Characteristic: owl.Functional, Property: hasParent},

		&owl.SubDataPropertyOf{Sub: dataProperty("nick"), Super: name},
		&owl.EquivalentDataProperties{Properties: []owl.DataProperty{name, dataProperty("fullName")}},
		&owl.DisjointDataProperties{Properties: []owl.DataProperty{age, name}},
		&owl.DataPropertyDomain{Property: age, Domain: person},
		&owl.DataPropertyRange{Property: age, Range: owl.Datatype{IRI: owlrdf.XSDInteger}},
		&owl.FunctionalDataProperty{Property: age},

		&owl.ClassAssertion{Class: person, Individual: alice},
		&owl.ClassAssertion{Class: person, Individual: owl.AnonymousIndividualFor("someone")},
		&owl.ObjectPropertyAssertion{Property: knows, Source: alice, Target: bob},
		&owl.DataPropertyAssertion{Property: age, Source: alice, Target: owl.IntLiteral(30)},
		&owl.NegativeObjectPropertyAssertion{Property: knows, Source: bob, Target: alice},
		&owl.NegativeDataPropertyAssertion{Property: age, Source: bob, Target: owl.IntLiteral(5)},
		&owl.SameIndividual{Individuals: []owl.Individual{alice, individual("alicia")}},
		&owl.DifferentIndividuals{Individuals: []owl.Individual{alice, bob}},
		&owl.DifferentIndividuals{Individuals: []owl.Individual{alice, bob, individual("carol")}},

		&owl.AnnotationAssertion{Property: note, Subject: owl.IRI(ex + "Person"), Value: owl.PlainLiteral("a human")},
		&owl.AnnotationAssertion{Property: label, Subject: owl.IRI(ex + "alice"), Value: owl.LangLiteral("Alice", "en")},
		&owl.SubAnnotationPropertyOf{Sub: note, Super: comment},
		&owl.AnnotationPropertyDomain{Property: note, Domain: ex + "Person"},
		&owl.AnnotationPropertyRange{Property: note, Range: owlrdf.XSDString},

		&owl.HasKey{Class: person, ObjectProperties: []owl.ObjectPropertyExpression{knows}, DataProperties: []owl.DataProperty{name}},
		&owl.DatatypeDefinition{Datatype: owl.Datatype{IRI: ex + "Adulthood"}, Range: adulthood},
	)
	return o
}

func TestRoundTripAllFamilies(t *testing.T) {
	o := sampleOntology()

	g, err := Encode(o)
	require.NoError(t, err)

	decoded, err := Decode(g)
	require.NoError(t, err)

	assert.Equal(t, o.IRI, decoded.IRI)
	assert.Equal(t, o.VersionIRI, decoded.VersionIRI)
	assert.Equal(t, o.Imports, decoded.Imports)
	assert.Equal(t, o.Prefixes, decoded.Prefixes)
	assert.Equal(t, o.Annotations, decoded.Annotations)
	assert.Equal(t, o.CountByCategory(), decoded.CountByCategory())
	assert.Equal(t, o.CountByKind(), decoded.CountByKind())
	assert.ElementsMatch(t, o.Axioms, decoded.Axioms)
}

func TestRoundTripThroughNQuads(t *testing.T) {
	o := sampleOntology()

	g, err := Encode(o)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.WriteNQuads(&buf, g))
	reread, err := graph.ReadNQuads(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), reread.Len())

	decoded, err := Decode(reread)
	require.NoError(t, err)
	assert.Equal(t, o.CountByKind(), decoded.CountByKind())
}

func TestEncodeCanonicalForms(t *testing.T) {
	g, err := Encode(sampleOntology())
	require.NoError(t, err)

	assert.Len(t, g.Subjects(rdfType, iri(owlrdf.OWLAllDisjointClasses)), 1)
	assert.Len(t, g.Subjects(rdfType, iri(owlrdf.OWLAllDisjointProperties)), 1)
	assert.Len(t, g.Subjects(rdfType, iri(owlrdf.OWLAllDifferent)), 1)
	assert.Len(t, g.Match(nil, iri(owlrdf.OWLDisjointWith), nil), 1)
	assert.Len(t, g.Match(nil, iri(owlrdf.OWLDifferentFrom), nil), 1)
	assert.Len(t, g.Subjects(rdfType, iri(owlrdf.OWLAxiom)), 1)
	assert.Len(t, g.Subjects(rdfType, iri(owlrdf.OWLAnnotation)), 1)
	assert.Len(t, g.Subjects(rdfType, iri(owlrdf.OWLNegativePropertyAssertion)), 2)
}

func TestEncodeFiltersImportedAndInferred(t *testing.T) {
	o := owl.NewOntology(ontologyIRI)
	asserted := &owl.SubClassOf{Sub: class("A"), Super: class("B")}
	imported := &owl.SubClassOf{Sub: class("C"), Super: class("D")}
	imported.IsImport = true
	inferred := &owl.SubClassOf{Sub: class("A"), Super: class("D")}
	inferred.IsInference = true
	o.Add(asserted, imported, inferred)
	o.AddRule(&owl.Rule{
		Antecedent: owl.Antecedent{Atoms: []owl.Atom{owl.ClassAtom{Class: class("A"), Argument: owl.Variable{IRI: ex + "x"}}}},
		Consequent: owl.Consequent{Atoms: []owl.Atom{owl.ClassAtom{Class: class("D"), Argument: owl.Variable{IRI: ex + "x"}}}},
		IsImport:   true,
	})

	tests := []struct {
		name      string
		opts      []EncodeOption
		wantAxiom int
		wantRules int
	}{
		{name: "asserted only", wantAxiom: 1},
		{name: "with imports", opts: []EncodeOption{WithImported(true)}, wantAxiom: 2, wantRules: 1},
		{name: "with inferences", opts: []EncodeOption{WithInferred(true)}, wantAxiom: 2},
		{name: "everything", opts: []EncodeOption{WithImported(true), WithInferred(true)}, wantAxiom: 3, wantRules: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Encode(o, tt.opts...)
			require.NoError(t, err)

			decoded, err := Decode(g)
			require.NoError(t, err)
			assert.Len(t, decoded.AxiomsOfKind(owl.KindSubClassOf), tt.wantAxiom)
			assert.Len(t, decoded.Rules, tt.wantRules)
		})
	}
}

func TestEncodeErrorsAndAnonymousOntology(t *testing.T) {
	g, err := Encode(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrNilOntology)

	g, err = Encode(owl.NewOntology(""))
	require.NoError(t, err)
	subjects := g.Subjects(rdfType, iri(owlrdf.OWLOntology))
	require.Len(t, subjects, 1)
	assert.True(t, graph.IsBlank(subjects[0]))
}

func TestEncodeSkipsUnencodableAxioms(t *testing.T) {
	o := owl.NewOntology(ontologyIRI)
	o.Add(
		&owl.InverseObjectProperties{
			First:  owl.ObjectInverseOf{Property: objectProperty("p")},
			Second: owl.ObjectInverseOf{Property: objectProperty("q")},
		},
		&owl.EquivalentClasses{Classes: []owl.ClassExpression{class("A")}},
		&owl.SubClassOf{Sub: class("A"), Super: class("B")},
	)

	g, err := Encode(o)
	require.NoError(t, err)

	decoded, err := Decode(g)
	require.NoError(t, err)
	require.Len(t, decoded.Axioms, 1)
	assert.Equal(t, owl.KindSubClassOf, decoded.Axioms[0].Kind())
}

func TestInverseFirstIsSwappedToNamedSubject(t *testing.T) {
	o := owl.NewOntology(ontologyIRI)
	o.Add(&owl.InverseObjectProperties{
		First:  owl.ObjectInverseOf{Property: objectProperty("p")},
		Second: objectProperty("q"),
	})

	g, err := Encode(o)
	require.NoError(t, err)

	decoded, err := Decode(g)
	require.NoError(t, err)
	inverses := decoded.AxiomsOfKind(owl.KindInverseObjectProperties)
	require.Len(t, inverses, 1)
	assert.Equal(t, &owl.InverseObjectProperties{
		First:  objectProperty("q"),
		Second: owl.ObjectInverseOf{Property: objectProperty("p")},
	}, inverses[0])
}

func TestAsync(t *testing.T) {
	encoded := <-EncodeAsync(sampleOntology())
	require.NoError(t, encoded.Err)

	result, ok := <-DecodeAsync(encoded.Graph)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.NotEmpty(t, result.Ontology.Axioms)

	failed := <-DecodeAsync(nil)
	assert.ErrorIs(t, failed.Err, ErrNilGraph)
	assert.Nil(t, failed.Ontology)
}

func TestRoundTripUndeclaredDataProperty(t *testing.T) {
	age := dataProperty("age")
	integer := owl.Datatype{IRI: owlrdf.XSDInteger}
	supers := []owl.ClassExpression{
		owl.SomeValuesFrom{Property: age, Filler: integer},
		owl.AllValuesFrom{Property: age, Filler: owl.DatatypeRestriction{
			Base:   integer,
			Facets: []owl.FacetRestriction{{Facet: owlrdf.XSDMinInclusive, Value: owl.IntLiteral(18)}},
		}},
		owl.HasValue{Property: age, Value: owl.IntLiteral(3)},
		owl.QualifiedCardinality{Kind: owl.Exactly, Property: age, N: 1, Filler: integer},
	}

	o := owl.NewOntology(ontologyIRI)
	for _, super := range supers {
		o.Add(&owl.SubClassOf{Sub: class("Person"), Super: super})
	}

	g, err := Encode(o)
	require.NoError(t, err)
	decoded, err := Decode(g)
	require.NoError(t, err)

	subs := decoded.AxiomsOfKind(owl.KindSubClassOf)
	require.Len(t, subs, len(supers))
	for i, want := range supers {
		assert.Equal(t, want, subs[i].(*owl.SubClassOf).Super)
	}
}

// OWL 2 has no collection form for equivalence or sameness, so more than two
// members come back as one axiom per consecutive pair.
func TestRoundTripEquivalenceSplitsIntoPairs(t *testing.T) {
	o := owl.NewOntology(ontologyIRI)
	for _, p := range []string{"d1", "d2", "d3"} {
		o.Add(&owl.Declaration{Entity: dataProperty(p)})
	}
	o.Add(
		&owl.EquivalentClasses{Classes: []owl.ClassExpression{class("A"), class("B"), class("C")}},
		&owl.EquivalentObjectProperties{Properties: []owl.ObjectPropertyExpression{
			objectProperty("p1"), objectProperty("p2"), objectProperty("p3"),
		}},
		&owl.EquivalentDataProperties{Properties: []owl.DataProperty{
			dataProperty("d1"), dataProperty("d2"), dataProperty("d3"),
		}},
		&owl.SameIndividual{Individuals: []owl.Individual{
			individual("a"), individual("b"), individual("c"),
		}},
	)

	g, err := Encode(o)
	require.NoError(t, err)
	decoded, err := Decode(g)
	require.NoError(t, err)

	assert.Equal(t, []owl.Axiom{
		&owl.EquivalentClasses{Classes: []owl.ClassExpression{class("A"), class("B")}},
		&owl.EquivalentClasses{Classes: []owl.ClassExpression{class("B"), class("C")}},
	}, decoded.AxiomsOfKind(owl.KindEquivalentClasses))
	assert.Equal(t, []owl.Axiom{
		&owl.EquivalentObjectProperties{Properties: []owl.ObjectPropertyExpression{objectProperty("p1"), objectProperty("p2")}},
		&owl.EquivalentObjectProperties{Properties: []owl.ObjectPropertyExpression{objectProperty("p2"), objectProperty("p3")}},
	}, decoded.AxiomsOfKind(owl.KindEquivalentObjectProperties))
	assert.Equal(t, []owl.Axiom{
		&owl.EquivalentDataProperties{Properties: []owl.DataProperty{dataProperty("d1"), dataProperty("d2")}},
		&owl.EquivalentDataProperties{Properties: []owl.DataProperty{dataProperty("d2"), dataProperty("d3")}},
	}, decoded.AxiomsOfKind(owl.KindEquivalentDataProperties))
	assert.Equal(t, []owl.Axiom{
		&owl.SameIndividual{Individuals: []owl.Individual{individual("a"), individual("b")}},
		&owl.SameIndividual{Individuals: []owl.Individual{individual("b"), individual("c")}},
	}, decoded.AxiomsOfKind(owl.KindSameIndividual))
}
