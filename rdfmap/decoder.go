// Package rdfmap translates between RDF graphs and the typed OWL 2 model,
// following the OWL 2 RDF-based mapping.
//
// Decode recognises axioms in one pass per axiom family and attaches
// annotations found through owl:Axiom reification. Encode is its inverse and
// always writes the canonical vocabulary. Both are pure functions of their
// input; all working state lives in the call.
package rdfmap

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

// DecodeOption configures a Decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	ontologyIRI string
	logger      *slog.Logger
}

// WithOntologyIRI names the ontology subject. Without it the first subject
// typed owl:Ontology is used.
func WithOntologyIRI(iri string) DecodeOption {
	return func(c *decodeConfig) { c.ontologyIRI = iri }
}

// WithDecodeLogger sets the logger skipped shapes are reported to.
func WithDecodeLogger(logger *slog.Logger) DecodeOption {
	return func(c *decodeConfig) { c.logger = logger }
}

// propertyKind is how a property IRI is used, as far as declarations tell.
type propertyKind int

const (
	kindUnknown propertyKind = iota
	kindObject
	kindData
	kindAnnotation
)

// decoder holds the state of one Decode call.
type decoder struct {
	g      *graph.Graph
	logger *slog.Logger
	ont    *owl.Ontology

	subject quad.Value

	// declared maps an IRI to the entity types it is declared with.
	declared map[string]map[owl.EntityType]bool
	// declaredOrder lists declared IRIs per type in document order.
	declaredOrder map[owl.EntityType][]string

	reifier    *reifier
	structural map[quad.Value]bool
	// consumed marks node subjects whose annotations belong to an n-ary
	// axiom or a rule rather than to annotation assertions.
	consumed map[quad.Value]bool
}

// Decode builds an ontology from g. The only fatal conditions are a nil
// graph and a missing owl:Ontology typing triple; every other unrecognised
// triple is skipped.
func Decode(g *graph.Graph, opts ...DecodeOption) (*owl.Ontology, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := decodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	d := &decoder{
		g:             g,
		logger:        cfg.logger,
		declared:      make(map[string]map[owl.EntityType]bool),
		declaredOrder: make(map[owl.EntityType][]string),
		reifier:       newReifier(g),
		structural:    make(map[quad.Value]bool),
		consumed:      make(map[quad.Value]bool),
	}

	if err := d.decodeHeader(cfg.ontologyIRI); err != nil {
		return nil, err
	}

	d.decodeDeclarations()
	d.decodeOntologyAnnotations()
	d.decodeClassAxioms()
	d.decodePropertyAxioms()
	d.decodeCharacteristics()
	d.decodeAssertions()
	d.decodeHasKeys()
	d.decodeDatatypeDefinitions()
	d.decodeRules()
	d.decodeAnnotationAssertions()

	d.logger.Debug("Decoded ontology",
		slog.String("iri", string(d.ont.IRI)),
		slog.Int("axioms", len(d.ont.Axioms)),
		slog.Int("rules", len(d.ont.Rules)))

	return d.ont, nil
}

func (d *decoder) decodeHeader(ontologyIRI string) error {
	ontologyType := iri(owlrdf.OWLOntology)
	if ontologyIRI != "" {
		subject := quad.IRI(ontologyIRI)
		if !d.g.Has(subject, rdfType, ontologyType) {
			return fmt.Errorf("%w: %s", ErrMissingOntology, ontologyIRI)
		}
		d.subject = subject
	} else {
		subjects := d.g.Subjects(rdfType, ontologyType)
		if len(subjects) == 0 {
			return ErrMissingOntology
		}
		d.subject = subjects[0]
	}

	d.ont = owl.NewOntology(owl.IRI(iriString(d.subject)))
	for prefix, ns := range d.g.Prefixes() {
		d.ont.Prefixes[prefix] = ns
	}
	if v, ok := d.g.Object(d.subject, iri(owlrdf.OWLVersionIRI)); ok {
		d.ont.VersionIRI = owl.IRI(iriString(v))
	}
	for _, imp := range d.g.Objects(d.subject, iri(owlrdf.OWLImports)) {
		if s := iriString(imp); s != "" {
			d.ont.Imports = append(d.ont.Imports, owl.IRI(s))
		}
	}
	d.consumed[d.subject] = true
	return nil
}

func (d *decoder) decodeOntologyAnnotations() {
	for _, t := range d.g.Match(d.subject, nil, nil) {
		p := iriString(t.Predicate)
		if !d.isAnnotationProperty(p) {
			continue
		}
		value, ok := annotationValueOf(t.Object)
		if !ok {
			continue
		}
		d.ont.Annotations = append(d.ont.Annotations, owl.Annotation{
			Property:   owl.AnnotationProperty{IRI: owl.IRI(p)},
			Value:      value,
			Annotation: d.nestedAnnotation(d.subject, t.Predicate, t.Object, nil),
		})
	}
}

// add appends an axiom and attaches the annotations reifying (s, p, o).
func (d *decoder) add(ax owl.Axiom, s, p, o quad.Value) {
	ax.Base().Annotate(d.annotationsFor(s, p, o)...)
	d.ont.Add(ax)
}

// addNode appends an axiom encoded as a node and attaches the annotations
// written directly on that node.
func (d *decoder) addNode(ax owl.Axiom, node quad.Value) {
	d.consumed[node] = true
	ax.Base().Annotate(d.nodeAnnotations(node, map[quad.Value]bool{node: true})...)
	d.ont.Add(ax)
}

func (d *decoder) skip(msg string, t graph.Triple) {
	d.logger.Debug(msg,
		slog.String("subject", quad.StringOf(t.Subject)),
		slog.String("predicate", quad.StringOf(t.Predicate)),
		slog.String("object", quad.StringOf(t.Object)))
}

// kindOf reports how a property IRI is declared. Built-in annotation
// properties count as declared annotation properties.
func (d *decoder) kindOf(p string) propertyKind {
	types := d.declared[p]
	switch {
	case types[owl.EntityDataProperty]:
		return kindData
	case types[owl.EntityAnnotationProperty], owlrdf.IsBuiltinAnnotationProperty(p):
		return kindAnnotation
	case types[owl.EntityObjectProperty]:
		return kindObject
	}
	return kindUnknown
}

// isAnnotationProperty reports whether p may carry an annotation assertion.
func (d *decoder) isAnnotationProperty(p string) bool {
	return p != "" && d.kindOf(p) == kindAnnotation
}

// isDatatype reports whether v names a datatype by declaration or because it
// belongs to the OWL 2 datatype map.
func (d *decoder) isDatatype(v quad.Value) bool {
	s := iriString(v)
	return s != "" && (d.declared[s][owl.EntityDatatype] || owlrdf.IsDatatypeIRI(s))
}

// isStructural reports whether a blank node is mapping scaffolding (an
// expression, list cell, reification or n-ary axiom node) rather than an
// anonymous individual.
func (d *decoder) isStructural(v quad.Value) bool {
	if !graph.IsBlank(v) {
		return false
	}
	if s, ok := d.structural[v]; ok {
		return s
	}
	structural := false
	for _, t := range d.g.Match(v, nil, nil) {
		p := iriString(t.Predicate)
		switch {
		case p == owlrdf.RDFType:
			if o := iriString(t.Object); o != "" && owlrdf.IsReserved(o) {
				structural = true
			}
		case p == owlrdf.OWLSameAs, p == owlrdf.OWLDifferentFrom, owlrdf.IsBuiltinAnnotationProperty(p):
		case owlrdf.IsReserved(p):
			structural = true
		}
		if structural {
			break
		}
	}
	d.structural[v] = structural
	return structural
}
