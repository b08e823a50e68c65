// Package export serializes encoded ontologies as Turtle, N-Triples, JSON-LD
// or semstreams triples.
package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdfmap"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/c360studio/semstreams/message"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces flat expanded JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"

	// FormatSemstreams produces a JSON array of semstreams triples.
	FormatSemstreams Format = "semstreams"
)

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithSource sets the Source recorded on semstreams triples.
func WithSource(source string) Option {
	return func(e *Exporter) {
		e.source = source
	}
}

// Exporter encodes ontologies under a profile and serializes the result.
type Exporter struct {
	profile ProfileConfig
	source  string
	logger  *slog.Logger
}

// NewExporter creates an exporter for the given profile. Unknown profiles
// fall back to the asserted profile.
func NewExporter(profile Profile, opts ...Option) *Exporter {
	e := &Exporter{
		profile: GetProfileConfig(profile),
		source:  defaultSource,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Export encodes o and returns it serialized in format.
func (e *Exporter) Export(o *owl.Ontology, format Format) (string, error) {
	var buf bytes.Buffer
	if err := e.ExportTo(&buf, o, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportTo encodes o and writes it to w in format.
func (e *Exporter) ExportTo(w io.Writer, o *owl.Ontology, format Format) error {
	if _, ok := GetFormatInfo(format); !ok {
		return fmt.Errorf("unsupported format: %s", format)
	}

	g, err := e.encode(o)
	if err != nil {
		return err
	}

	e.logger.Debug("Exporting ontology",
		slog.String("iri", string(o.IRI)),
		slog.String("profile", string(e.profile.Name)),
		slog.String("format", string(format)),
		slog.Int("triples", g.Len()))

	if format == FormatSemstreams {
		return writeSemstreams(w, g, e.source)
	}
	return Write(w, g, format)
}

// Triples encodes o under the exporter's profile and returns the result as
// semstreams triples.
func (e *Exporter) Triples(o *owl.Ontology) ([]message.Triple, error) {
	g, err := e.encode(o)
	if err != nil {
		return nil, err
	}
	return SemstreamsTriples(g, e.source), nil
}

func (e *Exporter) encode(o *owl.Ontology) (*graph.Graph, error) {
	opts := append(e.profile.EncodeOptions(), rdfmap.WithEncodeLogger(e.logger))
	g, err := rdfmap.Encode(o, opts...)
	if err != nil {
		return nil, fmt.Errorf("encode ontology: %w", err)
	}
	return g, nil
}

// Write serializes g to w in format.
func Write(w io.Writer, g *graph.Graph, format Format) error {
	switch format {
	case FormatTurtle:
		return writeTurtle(w, g)
	case FormatNTriples:
		return graph.WriteNQuads(w, g)
	case FormatJSONLD:
		return writeJSONLD(w, g)
	case FormatSemstreams:
		return writeSemstreams(w, g, defaultSource)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// defaultPrefixes returns the namespace prefixes every Turtle document binds.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":   owlrdf.RDF,
		"rdfs":  owlrdf.RDFS,
		"owl":   owlrdf.OWL,
		"xsd":   owlrdf.XSD,
		"swrl":  owlrdf.SWRL,
		"swrlb": owlrdf.SWRLB,
	}
}
