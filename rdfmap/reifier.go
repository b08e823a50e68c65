package rdfmap

import (
	"log/slog"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

// signature identifies the triple an owl:Axiom or owl:Annotation node reifies.
type signature struct {
	s, p, o quad.Value
}

// reifier indexes reification nodes by the triple they annotate. It is built
// once per decode so that annotation lookup never scans the graph.
type reifier struct {
	index map[signature][]quad.Value
}

func newReifier(g *graph.Graph) *reifier {
	r := &reifier{index: make(map[signature][]quad.Value)}
	seen := make(map[quad.Value]bool)
	for _, t := range g.Match(nil, iri(owlrdf.OWLAnnotatedSource), nil) {
		node := t.Subject
		if seen[node] {
			continue
		}
		p, okP := g.Object(node, iri(owlrdf.OWLAnnotatedProperty))
		o, okO := g.Object(node, iri(owlrdf.OWLAnnotatedTarget))
		if !okP || !okO {
			continue
		}
		seen[node] = true
		sig := signature{s: t.Object, p: p, o: o}
		r.index[sig] = append(r.index[sig], node)
	}
	return r
}

// nodes returns the reification nodes of (s, p, o) in document order.
func (r *reifier) nodes(s, p, o quad.Value) []quad.Value {
	return r.index[signature{s: s, p: p, o: o}]
}

// annotationsFor returns the annotations reifying (s, p, o), one per
// annotation triple of each matching node, in document order.
func (d *decoder) annotationsFor(s, p, o quad.Value) []owl.Annotation {
	return d.reifiedAnnotations(s, p, o, make(map[quad.Value]bool))
}

func (d *decoder) reifiedAnnotations(s, p, o quad.Value, visiting map[quad.Value]bool) []owl.Annotation {
	var out []owl.Annotation
	for _, node := range d.reifier.nodes(s, p, o) {
		if visiting[node] {
			continue
		}
		visiting[node] = true
		out = append(out, d.nodeAnnotations(node, visiting)...)
		delete(visiting, node)
	}
	return out
}

// nodeAnnotations reads the annotation triples written directly on node.
// Each annotation carries the first annotation reifying its own triple.
func (d *decoder) nodeAnnotations(node quad.Value, visiting map[quad.Value]bool) []owl.Annotation {
	var out []owl.Annotation
	for _, t := range d.g.Match(node, nil, nil) {
		p := iriString(t.Predicate)
		if p == "" || (owlrdf.IsReserved(p) && !owlrdf.IsBuiltinAnnotationProperty(p)) {
			continue
		}
		value, ok := annotationValueOf(t.Object)
		if !ok {
			continue
		}
		out = append(out, owl.Annotation{
			Property:   owl.AnnotationProperty{IRI: owl.IRI(p)},
			Value:      value,
			Annotation: d.nestedAnnotation(node, t.Predicate, t.Object, visiting),
		})
	}
	return out
}

// nestedAnnotation returns the first annotation reifying (s, p, o), or nil.
func (d *decoder) nestedAnnotation(s, p, o quad.Value, visiting map[quad.Value]bool) *owl.Annotation {
	if visiting == nil {
		visiting = make(map[quad.Value]bool)
	}
	nested := d.reifiedAnnotations(s, p, o, visiting)
	if len(nested) == 0 {
		return nil
	}
	return &nested[0]
}

// reify writes the annotations of the axiom whose main triple is (s, p, o)
// as an owl:Axiom node.
func (e *encoder) reify(s, p, o quad.Value, annotations []owl.Annotation) {
	if len(annotations) == 0 {
		return
	}
	e.reifyAs(iri(owlrdf.OWLAxiom), s, p, o, annotations)
}

func (e *encoder) reifyAs(nodeType quad.IRI, s, p, o quad.Value, annotations []owl.Annotation) {
	node := e.alloc.Fresh()
	e.g.Add(node, rdfType, nodeType)
	e.g.Add(node, iri(owlrdf.OWLAnnotatedSource), s)
	e.g.Add(node, iri(owlrdf.OWLAnnotatedProperty), p)
	e.g.Add(node, iri(owlrdf.OWLAnnotatedTarget), o)
	for _, a := range annotations {
		e.annotate(node, a)
	}
}

// annotate writes one annotation directly on subject, and its nested
// annotation as an owl:Annotation node reifying that triple.
func (e *encoder) annotate(subject quad.Value, a owl.Annotation) {
	value := e.annotationValue(a.Value)
	if value == nil {
		e.logger.Debug("Skipping annotation without value", slog.String("property", string(a.Property.IRI)))
		return
	}
	p := quad.IRI(a.Property.IRI)
	e.g.Add(subject, p, value)
	if a.Annotation != nil {
		e.reifyAs(iri(owlrdf.OWLAnnotation), subject, p, value, []owl.Annotation{*a.Annotation})
	}
}
