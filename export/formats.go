package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/c360studio/semstreams/message"
	"github.com/cayleygraph/quad"
)

// defaultSource is the Source recorded on semstreams triples.
const defaultSource = "semowl.export"

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - flat expanded document",
	},
	FormatSemstreams: {
		Name:        FormatSemstreams,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "Semstreams triples with dotted predicates",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatForExtension returns the format registered for a file extension.
func FormatForExtension(ext string) (Format, bool) {
	for name, info := range FormatRegistry {
		if strings.EqualFold(info.Extension, ext) {
			return name, true
		}
	}
	return "", false
}

// turtleWriter renders terms with the longest matching prefix.
type turtleWriter struct {
	prefixes map[string]string
	names    []string
}

func newTurtleWriter(g *graph.Graph) *turtleWriter {
	prefixes := defaultPrefixes()
	for prefix, ns := range g.Prefixes() {
		prefixes[prefix] = ns
	}
	names := make([]string, 0, len(prefixes))
	for k := range prefixes {
		names = append(names, k)
	}
	sort.Strings(names)
	return &turtleWriter{prefixes: prefixes, names: names}
}

// writeTurtle writes one block per subject in first-appearance order.
// Objects sharing a predicate are joined with commas.
func writeTurtle(w io.Writer, g *graph.Graph) error {
	tw := newTurtleWriter(g)
	var buf bytes.Buffer

	for _, prefix := range tw.names {
		fmt.Fprintf(&buf, "@prefix %s: <%s> .\n", prefix, tw.prefixes[prefix])
	}

	for _, subject := range g.SubjectsInOrder() {
		buf.WriteString("\n")
		buf.WriteString(tw.term(subject))

		var predicates []quad.Value
		objects := map[quad.Value][]quad.Value{}
		for _, t := range g.Match(subject, nil, nil) {
			if _, ok := objects[t.Predicate]; !ok {
				predicates = append(predicates, t.Predicate)
			}
			objects[t.Predicate] = append(objects[t.Predicate], t.Object)
		}

		for i, p := range predicates {
			if i > 0 {
				buf.WriteString(" ;")
			}
			buf.WriteString("\n    ")
			buf.WriteString(tw.predicate(p))
			for j, o := range objects[p] {
				if j > 0 {
					buf.WriteString(",")
				}
				buf.WriteString(" ")
				buf.WriteString(tw.term(o))
			}
		}
		buf.WriteString(" .\n")
	}

	_, err := buf.WriteTo(w)
	return err
}

func (tw *turtleWriter) predicate(p quad.Value) string {
	if p == quad.IRI(owlrdf.RDFType) {
		return "a"
	}
	return tw.term(p)
}

func (tw *turtleWriter) term(v quad.Value) string {
	switch x := v.(type) {
	case quad.IRI:
		return tw.iri(string(x))
	case quad.BNode:
		return "_:" + string(x)
	case quad.String:
		return quoted(string(x))
	case quad.LangString:
		return quoted(string(x.Value)) + "@" + x.Lang
	case quad.TypedString:
		return quoted(string(x.Value)) + "^^" + tw.iri(string(x.Type))
	default:
		return quoted(quad.StringOf(v))
	}
}

// iri returns a prefixed name when a bound namespace leaves a simple local
// name, otherwise the bracketed IRI.
func (tw *turtleWriter) iri(s string) string {
	best, bestLen := "", 0
	for _, prefix := range tw.names {
		ns := tw.prefixes[prefix]
		if len(ns) > bestLen && strings.HasPrefix(s, ns) && isLocalName(s[len(ns):]) {
			best, bestLen = prefix, len(ns)
		}
	}
	if bestLen > 0 {
		return best + ":" + s[bestLen:]
	}
	return "<" + s + ">"
}

// isLocalName accepts a conservative subset of Turtle local names.
func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

func quoted(s string) string {
	return "\"" + escapeString(s) + "\""
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// writeJSONLD writes a flat expanded JSON-LD document: one node object per
// subject, rdf:type resources under @type, every other value in an array.
func writeJSONLD(w io.Writer, g *graph.Graph) error {
	nodes := make([]map[string]any, 0)
	for _, subject := range g.SubjectsInOrder() {
		node := map[string]any{"@id": nodeID(subject)}
		var types []string
		for _, t := range g.Match(subject, nil, nil) {
			p, _ := graph.IRIOf(t.Predicate)
			if p == owlrdf.RDFType && graph.IsResource(t.Object) {
				types = append(types, nodeID(t.Object))
				continue
			}
			values, _ := node[p].([]any)
			node[p] = append(values, jsonLDValue(t.Object))
		}
		if len(types) > 0 {
			node["@type"] = types
		}
		nodes = append(nodes, node)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nodes)
}

func nodeID(v quad.Value) string {
	if b, ok := v.(quad.BNode); ok {
		return "_:" + string(b)
	}
	s, _ := graph.IRIOf(v)
	return s
}

func jsonLDValue(v quad.Value) map[string]any {
	switch x := v.(type) {
	case quad.IRI, quad.BNode:
		return map[string]any{"@id": nodeID(x)}
	case quad.LangString:
		return map[string]any{"@value": string(x.Value), "@language": x.Lang}
	case quad.TypedString:
		if string(x.Type) == owlrdf.XSDString {
			return map[string]any{"@value": string(x.Value)}
		}
		return map[string]any{"@value": string(x.Value), "@type": string(x.Type)}
	case quad.String:
		return map[string]any{"@value": string(x)}
	default:
		return map[string]any{"@value": quad.StringOf(v)}
	}
}

// writeSemstreams writes g as a JSON array of semstreams triples. Predicates
// registered in the owlrdf vocabulary use their dotted names; all others keep
// their IRI. Literal objects carry their lexical form with a Datatype hint.
func writeSemstreams(w io.Writer, g *graph.Graph, source string) error {
	triples := SemstreamsTriples(g, source)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(triples)
}

// SemstreamsTriples converts every triple of g to a semstreams triple.
func SemstreamsTriples(g *graph.Graph, source string) []message.Triple {
	out := make([]message.Triple, 0, g.Len())
	for _, t := range g.Triples() {
		p, _ := graph.IRIOf(t.Predicate)
		if name, ok := owlrdf.PredicateForIRI(p); ok {
			p = name
		}

		mt := message.Triple{
			Subject:    nodeID(t.Subject),
			Predicate:  p,
			Source:     source,
			Confidence: 1.0,
		}
		switch o := t.Object.(type) {
		case quad.IRI, quad.BNode:
			mt.Object = nodeID(o)
		case quad.String:
			mt.Object = string(o)
		case quad.LangString:
			mt.Object = string(o.Value)
			mt.Datatype = "rdf:langString"
		case quad.TypedString:
			mt.Object = string(o.Value)
			mt.Datatype = compactDatatype(string(o.Type))
		default:
			mt.Object = quad.StringOf(o)
		}
		out = append(out, mt)
	}
	return out
}

// compactDatatype abbreviates XSD and RDF datatype IRIs.
func compactDatatype(iri string) string {
	switch {
	case strings.HasPrefix(iri, owlrdf.XSD):
		return "xsd:" + strings.TrimPrefix(iri, owlrdf.XSD)
	case strings.HasPrefix(iri, owlrdf.RDF):
		return "rdf:" + strings.TrimPrefix(iri, owlrdf.RDF)
	}
	return iri
}
