package rdfmap

import (
	"log/slog"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

// EncodeOption configures an Encode call.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	imported bool
	inferred bool
	logger   *slog.Logger
}

// WithImported includes axioms and rules flagged IsImport.
func WithImported(include bool) EncodeOption {
	return func(c *encodeConfig) { c.imported = include }
}

// WithInferred includes axioms and rules flagged IsInference.
func WithInferred(include bool) EncodeOption {
	return func(c *encodeConfig) { c.inferred = include }
}

// WithEncodeLogger sets the logger unencodable axioms are reported to.
func WithEncodeLogger(logger *slog.Logger) EncodeOption {
	return func(c *encodeConfig) { c.logger = logger }
}

// encoder holds the state of one Encode call.
type encoder struct {
	g      *graph.Graph
	alloc  *BlankAllocator
	logger *slog.Logger
	cfg    encodeConfig

	// variables records SWRL variables already typed swrl:Variable.
	variables map[owl.IRI]bool
}

// Encode writes o as a new graph. Imported and inferred axioms are left out
// unless WithImported or WithInferred ask for them.
func Encode(o *owl.Ontology, opts ...EncodeOption) (*graph.Graph, error) {
	if o == nil {
		return nil, ErrNilOntology
	}
	cfg := encodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	e := &encoder{
		g:         graph.New(),
		alloc:     NewBlankAllocator(),
		logger:    cfg.logger,
		cfg:       cfg,
		variables: make(map[owl.IRI]bool),
	}

	e.encodeHeader(o)

	skipped := 0
	for _, ax := range o.Axioms {
		if !e.included(ax.Base().IsImport, ax.Base().IsInference) {
			continue
		}
		if !e.encodeAxiom(ax) {
			skipped++
			e.logger.Debug("Skipping unencodable axiom", slog.String("kind", string(ax.Kind())))
		}
	}
	for _, r := range o.Rules {
		if !e.included(r.IsImport, r.IsInference) {
			continue
		}
		if !e.encodeRule(r) {
			skipped++
			e.logger.Debug("Skipping unencodable rule", slog.String("rule", r.String()))
		}
	}

	e.logger.Debug("Encoded ontology",
		slog.String("iri", string(o.IRI)),
		slog.Int("triples", e.g.Len()),
		slog.Int("skipped", skipped))

	return e.g, nil
}

func (e *encoder) included(isImport, isInference bool) bool {
	if isImport && !e.cfg.imported {
		return false
	}
	if isInference && !e.cfg.inferred {
		return false
	}
	return true
}

func (e *encoder) encodeHeader(o *owl.Ontology) {
	for prefix, ns := range o.Prefixes {
		e.g.SetPrefix(prefix, ns)
	}

	var subject quad.Value
	if o.IRI != "" {
		subject = quad.IRI(o.IRI)
	} else {
		subject = e.alloc.Fresh()
	}
	e.g.Add(subject, rdfType, iri(owlrdf.OWLOntology))
	if o.VersionIRI != "" {
		e.g.Add(subject, iri(owlrdf.OWLVersionIRI), quad.IRI(o.VersionIRI))
	}
	for _, imp := range o.Imports {
		e.g.Add(subject, iri(owlrdf.OWLImports), quad.IRI(imp))
	}
	for _, a := range o.Annotations {
		e.annotate(subject, a)
	}
}

// triple adds (s, p, o) and reifies its annotations. It reports false when
// any position could not be encoded.
func (e *encoder) triple(s quad.Value, p string, o quad.Value, annotations []owl.Annotation) bool {
	if s == nil || o == nil {
		return false
	}
	pred := quad.IRI(p)
	e.g.Add(s, pred, o)
	e.reify(s, pred, o, annotations)
	return true
}

// node writes an n-ary axiom node of the given type. Its annotations sit
// directly on the node.
func (e *encoder) node(nodeType string, members string, list quad.Value, annotations []owl.Annotation) bool {
	if list == nil {
		return false
	}
	n := e.alloc.Fresh()
	e.g.Add(n, rdfType, quad.IRI(nodeType))
	e.g.Add(n, quad.IRI(members), list)
	for _, a := range annotations {
		e.annotate(n, a)
	}
	return true
}
