package owl

// Ontology is a decoded OWL 2 document: its header, prefix bindings, axioms
// and SWRL rules.
type Ontology struct {
	IRI         IRI
	VersionIRI  IRI
	Prefixes    map[string]string
	Imports     []IRI
	Annotations []Annotation
	Axioms      []Axiom
	Rules       []*Rule
}

// NewOntology returns an empty ontology named iri.
func NewOntology(iri IRI) *Ontology {
	return &Ontology{IRI: iri, Prefixes: make(map[string]string)}
}

// Add appends axioms in order.
func (o *Ontology) Add(axioms ...Axiom) {
	o.Axioms = append(o.Axioms, axioms...)
}

// AddRule appends a rule.
func (o *Ontology) AddRule(r *Rule) {
	o.Rules = append(o.Rules, r)
}

// CountByCategory counts axioms per category. Categories without axioms are
// absent from the map.
func (o *Ontology) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, a := range o.Axioms {
		counts[a.Category()]++
	}
	return counts
}

// CountByKind counts axioms per kind.
func (o *Ontology) CountByKind() map[AxiomKind]int {
	counts := make(map[AxiomKind]int)
	for _, a := range o.Axioms {
		counts[a.Kind()]++
	}
	return counts
}

// AxiomsOfKind returns the axioms of one kind in model order.
func (o *Ontology) AxiomsOfKind(kind AxiomKind) []Axiom {
	var out []Axiom
	for _, a := range o.Axioms {
		if a.Kind() == kind {
			out = append(out, a)
		}
	}
	return out
}

// Asserted returns the axioms that are neither imported nor inferred.
func (o *Ontology) Asserted() []Axiom {
	var out []Axiom
	for _, a := range o.Axioms {
		if b := a.Base(); !b.IsImport && !b.IsInference {
			out = append(out, a)
		}
	}
	return out
}

// Declares reports whether o declares iri as an entity of type t.
func (o *Ontology) Declares(t EntityType, iri IRI) bool {
	for _, a := range o.Axioms {
		if d, ok := a.(*Declaration); ok && d.Entity.EntityType() == t && d.Entity.EntityIRI() == iri {
			return true
		}
	}
	return false
}
