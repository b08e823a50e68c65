package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/c360studio/semstreams/message"
)

const ex = "http://example.org/onto#"

func sampleOntology() *owl.Ontology {
	o := owl.NewOntology("http://example.org/onto")
	o.Prefixes["ex"] = ex

	person := owl.Class{IRI: ex + "Person"}
	agent := owl.Class{IRI: ex + "Agent"}
	o.Add(
		&owl.Declaration{Entity: person},
		&owl.Declaration{Entity: agent},
		&owl.SubClassOf{Sub: person, Super: agent},
		&owl.AnnotationAssertion{
			Property: owl.AnnotationProperty{IRI: owlrdf.RDFSLabel},
			Subject:  owl.IRI(ex + "Person"),
			Value:    owl.LangLiteral("Person \"human\"", "en"),
		},
		&owl.SubClassOf{Sub: agent, Super: owl.Class{IRI: ex + "Thing"}, AxiomBase: owl.AxiomBase{IsImport: true}},
		&owl.SubClassOf{Sub: person, Super: owl.Class{IRI: ex + "Mortal"}, AxiomBase: owl.AxiomBase{IsInference: true}},
	)
	return o
}

func TestExportTurtle(t *testing.T) {
	exporter := export.NewExporter(export.ProfileAsserted)

	output, err := exporter.Export(sampleOntology(), export.FormatTurtle)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	for _, want := range []string{
		"@prefix ex: <http://example.org/onto#> .",
		"@prefix owl: <http://www.w3.org/2002/07/owl#> .",
		"<http://example.org/onto>\n    a owl:Ontology .",
		"ex:Person\n    a owl:Class ;\n    rdfs:subClassOf ex:Agent ;",
		`rdfs:label "Person \"human\""@en .`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Turtle output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "ex:Thing") || strings.Contains(output, "ex:Mortal") {
		t.Error("asserted profile should exclude imported and inferred axioms")
	}
}

func TestExportNTriples(t *testing.T) {
	exporter := export.NewExporter(export.ProfileAsserted)

	output, err := exporter.Export(sampleOntology(), export.FormatNTriples)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	g, err := graph.ReadNQuads(strings.NewReader(output))
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	// Ontology header, two declarations, one subclass, one label.
	if g.Len() != 5 {
		t.Errorf("expected 5 triples, got %d:\n%s", g.Len(), output)
	}
}

func TestExportProfiles(t *testing.T) {
	tests := []struct {
		profile    export.Profile
		wantThing  bool
		wantMortal bool
	}{
		{export.ProfileAsserted, false, false},
		{export.ProfileImports, true, false},
		{export.ProfileFull, true, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.profile), func(t *testing.T) {
			output, err := export.NewExporter(tc.profile).Export(sampleOntology(), export.FormatNTriples)
			if err != nil {
				t.Fatalf("Export failed: %v", err)
			}
			if got := strings.Contains(output, ex+"Thing"); got != tc.wantThing {
				t.Errorf("imported axiom present = %v, want %v", got, tc.wantThing)
			}
			if got := strings.Contains(output, ex+"Mortal"); got != tc.wantMortal {
				t.Errorf("inferred axiom present = %v, want %v", got, tc.wantMortal)
			}
		})
	}
}

func TestExportJSONLD(t *testing.T) {
	exporter := export.NewExporter(export.ProfileAsserted)

	output, err := exporter.Export(sampleOntology(), export.FormatJSONLD)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var nodes []map[string]any
	if err := json.Unmarshal([]byte(output), &nodes); err != nil {
		t.Fatalf("JSON-LD output is not a node array: %v", err)
	}

	var person map[string]any
	for _, n := range nodes {
		if n["@id"] == ex+"Person" {
			person = n
		}
	}
	if person == nil {
		t.Fatalf("no node for Person in %s", output)
	}

	types, _ := person["@type"].([]any)
	if len(types) != 1 || types[0] != owlrdf.OWLClass {
		t.Errorf("@type = %v, want [%s]", person["@type"], owlrdf.OWLClass)
	}

	labels, _ := person[owlrdf.RDFSLabel].([]any)
	if len(labels) != 1 {
		t.Fatalf("expected one label, got %v", person[owlrdf.RDFSLabel])
	}
	label := labels[0].(map[string]any)
	if label["@value"] != "Person \"human\"" || label["@language"] != "en" {
		t.Errorf("unexpected label value %v", label)
	}

	supers, _ := person[owlrdf.RDFSSubClassOf].([]any)
	if len(supers) != 1 || supers[0].(map[string]any)["@id"] != ex+"Agent" {
		t.Errorf("unexpected subClassOf %v", person[owlrdf.RDFSSubClassOf])
	}
}

func TestExportSemstreams(t *testing.T) {
	exporter := export.NewExporter(export.ProfileAsserted, export.WithSource("test"))

	output, err := exporter.Export(sampleOntology(), export.FormatSemstreams)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var triples []message.Triple
	if err := json.Unmarshal([]byte(output), &triples); err != nil {
		t.Fatalf("output is not a triple array: %v", err)
	}
	if len(triples) != 5 {
		t.Fatalf("expected 5 triples, got %d", len(triples))
	}

	var sawSubClass, sawLabel bool
	for _, tr := range triples {
		if tr.Source != "test" {
			t.Errorf("Source = %q, want test", tr.Source)
		}
		switch tr.Predicate {
		case owlrdf.PredicateSubClassOf:
			sawSubClass = true
			if tr.Object != ex+"Agent" {
				t.Errorf("subClassOf object = %v", tr.Object)
			}
		case owlrdf.PredicateLabel:
			sawLabel = true
			if tr.Datatype != "rdf:langString" {
				t.Errorf("label Datatype = %q", tr.Datatype)
			}
		}
	}
	if !sawSubClass || !sawLabel {
		t.Errorf("expected dotted predicates for subClassOf and label, got %+v", triples)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := export.NewExporter(export.ProfileAsserted)
	if _, err := exporter.Export(sampleOntology(), "rdfxml"); err == nil {
		t.Error("expected error for unsupported format")
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, graph.New(), "rdfxml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriteTurtleBlankNodesAndPrefixes(t *testing.T) {
	g := graph.New()
	if err := g.ReadFrom(strings.NewReader(
		"<http://example.org/a> <http://example.org/p> _:b0 .\n" +
			"<http://example.org/a> <http://example.org/p> <http://example.org/with/slash/x.y> .\n" +
			"_:b0 <http://example.org/q> \"1\"^^<http://www.w3.org/2001/XMLSchema#integer> .\n")); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, g, export.FormatTurtle); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"<http://example.org/a>\n    <http://example.org/p> _:b0, <http://example.org/with/slash/x.y> .",
		`_:b0` + "\n" + `    <http://example.org/q> "1"^^xsd:integer .`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Turtle output missing %q:\n%s", want, output)
		}
	}
}
