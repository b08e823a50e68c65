package rdfmap

import (
	"log/slog"

	"github.com/c360studio/semowl/graph"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owlrdf"
	"github.com/cayleygraph/quad"
)

// decodeRules reads every swrl:Imp node. A rule with an atom that cannot be
// decoded is skipped as a whole.
func (d *decoder) decodeRules() {
	for _, imp := range d.g.Subjects(rdfType, iri(owlrdf.SWRLImp)) {
		rule, ok := d.rule(imp)
		if !ok {
			d.logger.Debug("Skipping unrecognised SWRL rule", slog.String("node", quad.StringOf(imp)))
			continue
		}
		d.consumed[imp] = true
		rule.Annotations = d.nodeAnnotations(imp, map[quad.Value]bool{imp: true})
		d.ont.AddRule(rule)
	}
}

func (d *decoder) rule(imp quad.Value) (*owl.Rule, bool) {
	r := &owl.Rule{}
	if body, ok := d.g.Object(imp, iri(owlrdf.SWRLBody)); ok {
		for _, node := range DecodeList(d.g, body) {
			if builtIn, ok := d.builtInAtom(node); ok {
				r.Antecedent.BuiltIns = append(r.Antecedent.BuiltIns, builtIn)
				continue
			}
			atom, ok := d.atom(node)
			if !ok {
				return nil, false
			}
			r.Antecedent.Atoms = append(r.Antecedent.Atoms, atom)
		}
	}
	if head, ok := d.g.Object(imp, iri(owlrdf.SWRLHead)); ok {
		for _, node := range DecodeList(d.g, head) {
			if d.g.Has(node, rdfType, iri(owlrdf.SWRLBuiltinAtom)) {
				d.logger.Debug("Dropping built-in atom from rule head", slog.String("node", quad.StringOf(node)))
				continue
			}
			atom, ok := d.atom(node)
			if !ok {
				return nil, false
			}
			r.Consequent.Atoms = append(r.Consequent.Atoms, atom)
		}
	}
	return r, true
}

func (d *decoder) builtInAtom(node quad.Value) (owl.BuiltInAtom, bool) {
	if !d.g.Has(node, rdfType, iri(owlrdf.SWRLBuiltinAtom)) {
		return owl.BuiltInAtom{}, false
	}
	builtIn, ok := d.g.Object(node, iri(owlrdf.SWRLBuiltin))
	if !ok || iriString(builtIn) == "" {
		return owl.BuiltInAtom{}, false
	}
	atom := owl.BuiltInAtom{BuiltIn: owl.IRI(iriString(builtIn))}
	if head, ok := d.g.Object(node, iri(owlrdf.SWRLArguments)); ok {
		args, ok := decodeList(d.g, head, d.argument)
		if !ok {
			return owl.BuiltInAtom{}, false
		}
		atom.Arguments = args
	}
	return atom, true
}

func (d *decoder) atom(node quad.Value) (owl.Atom, bool) {
	first, hasFirst := d.g.Object(node, iri(owlrdf.SWRLArgument1))
	if !hasFirst {
		return nil, false
	}
	arg1, ok := d.argument(first)
	if !ok {
		return nil, false
	}
	second := func() (owl.Argument, bool) {
		v, ok := d.g.Object(node, iri(owlrdf.SWRLArgument2))
		if !ok {
			return nil, false
		}
		return d.argument(v)
	}

	for _, typ := range d.g.Objects(node, rdfType) {
		switch iriString(typ) {
		case owlrdf.SWRLClassAtom:
			c, ok := d.g.Object(node, iri(owlrdf.SWRLClassPredicate))
			if !ok {
				return nil, false
			}
			class, ok := d.classExpression(c, guard{})
			return owl.ClassAtom{Class: class, Argument: arg1}, ok
		case owlrdf.SWRLDataRangeAtom:
			r, ok := d.g.Object(node, iri(owlrdf.SWRLDataRange))
			if !ok {
				return nil, false
			}
			dr, ok := d.dataRange(r)
			return owl.DataRangeAtom{Range: dr, Argument: arg1}, ok
		case owlrdf.SWRLIndividualPropertyAtom, owlrdf.SWRLObjectPropertyAtom:
			p, okP := d.g.Object(node, iri(owlrdf.SWRLPropertyPredicate))
			prop, okProp := d.objectProperty(p, guard{})
			arg2, ok2 := second()
			return owl.ObjectPropertyAtom{Property: prop, First: arg1, Second: arg2}, okP && okProp && ok2
		case owlrdf.SWRLDatavaluedPropertyAtom, owlrdf.SWRLDataPropertyAtom:
			p, okP := d.g.Object(node, iri(owlrdf.SWRLPropertyPredicate))
			prop, okProp := dataPropertyOf(p)
			arg2, ok2 := second()
			return owl.DataPropertyAtom{Property: prop, First: arg1, Second: arg2}, okP && okProp && ok2
		case owlrdf.SWRLSameIndividualAtom:
			arg2, ok := second()
			return owl.SameIndividualAtom{First: arg1, Second: arg2}, ok
		case owlrdf.SWRLDifferentIndividualsAtom:
			arg2, ok := second()
			return owl.DifferentIndividualsAtom{First: arg1, Second: arg2}, ok
		}
	}
	return nil, false
}

// argument decodes a rule argument: a swrl:Variable, a literal, or an
// individual.
func (d *decoder) argument(v quad.Value) (owl.Argument, bool) {
	if l, ok := literalOf(v); ok {
		return owl.LiteralArgument{Literal: l}, true
	}
	if s, ok := graph.IRIOf(v); ok && d.g.Has(v, rdfType, iri(owlrdf.SWRLVariable)) {
		return owl.Variable{IRI: owl.IRI(s)}, true
	}
	ind, ok := d.individual(v)
	if !ok {
		return nil, false
	}
	return owl.IndividualArgument{Individual: ind}, true
}

// encodeRule writes r as a swrl:Imp node. Built-ins follow the body atoms.
func (e *encoder) encodeRule(r *owl.Rule) bool {
	body := make([]quad.Value, 0, len(r.Antecedent.Atoms)+len(r.Antecedent.BuiltIns))
	for _, a := range r.Antecedent.Atoms {
		node := e.atom(a)
		if node == nil {
			return false
		}
		body = append(body, node)
	}
	for _, b := range r.Antecedent.BuiltIns {
		node := e.builtInAtom(b)
		if node == nil {
			return false
		}
		body = append(body, node)
	}
	head := make([]quad.Value, 0, len(r.Consequent.Atoms))
	for _, a := range r.Consequent.Atoms {
		node := e.atom(a)
		if node == nil {
			return false
		}
		head = append(head, node)
	}

	imp := e.alloc.Fresh()
	e.g.Add(imp, rdfType, iri(owlrdf.SWRLImp))
	e.g.Add(imp, iri(owlrdf.SWRLBody), e.atomList(body))
	e.g.Add(imp, iri(owlrdf.SWRLHead), e.atomList(head))
	for _, a := range r.Annotations {
		e.annotate(imp, a)
	}
	return true
}

// atomList chains atom nodes into a swrl:AtomList.
func (e *encoder) atomList(atoms []quad.Value) quad.Value {
	head := EncodeList(e.g, e.alloc, atoms)
	for cell := head; cell != rdfNil; {
		e.g.Add(cell, rdfType, iri(owlrdf.SWRLAtomList))
		next, ok := e.g.Object(cell, rdfRest)
		if !ok {
			break
		}
		cell = next
	}
	return head
}

func (e *encoder) atom(a owl.Atom) quad.Value {
	var (
		atomType string
		props    [][2]quad.Value
		args     []owl.Argument
	)
	switch x := a.(type) {
	case owl.ClassAtom:
		atomType = owlrdf.SWRLClassAtom
		props = [][2]quad.Value{{iri(owlrdf.SWRLClassPredicate), e.classExpression(x.Class)}}
		args = []owl.Argument{x.Argument}
	case owl.DataRangeAtom:
		atomType = owlrdf.SWRLDataRangeAtom
		props = [][2]quad.Value{{iri(owlrdf.SWRLDataRange), e.dataRange(x.Range)}}
		args = []owl.Argument{x.Argument}
	case owl.ObjectPropertyAtom:
		atomType = owlrdf.SWRLObjectPropertyAtom
		props = [][2]quad.Value{{iri(owlrdf.SWRLPropertyPredicate), e.objectProperty(x.Property)}}
		args = []owl.Argument{x.First, x.Second}
	case owl.DataPropertyAtom:
		atomType = owlrdf.SWRLDataPropertyAtom
		props = [][2]quad.Value{{iri(owlrdf.SWRLPropertyPredicate), quad.IRI(x.Property.IRI)}}
		args = []owl.Argument{x.First, x.Second}
	case owl.SameIndividualAtom:
		atomType = owlrdf.SWRLSameIndividualAtom
		args = []owl.Argument{x.First, x.Second}
	case owl.DifferentIndividualsAtom:
		atomType = owlrdf.SWRLDifferentIndividualsAtom
		args = []owl.Argument{x.First, x.Second}
	default:
		return nil
	}

	argPredicates := []string{owlrdf.SWRLArgument1, owlrdf.SWRLArgument2}
	for i, arg := range args {
		term := e.argument(arg)
		if term == nil {
			return nil
		}
		props = append(props, [2]quad.Value{iri(argPredicates[i]), term})
	}
	for _, pv := range props {
		if pv[1] == nil {
			return nil
		}
	}

	node := e.alloc.Fresh()
	e.g.Add(node, rdfType, quad.IRI(atomType))
	for _, pv := range props {
		e.g.Add(node, pv[0], pv[1])
	}
	return node
}

func (e *encoder) builtInAtom(b owl.BuiltInAtom) quad.Value {
	args := encodeList(e.g, e.alloc, b.Arguments, e.argument)
	if args == nil || b.BuiltIn == "" {
		return nil
	}
	node := e.alloc.Fresh()
	e.g.Add(node, rdfType, iri(owlrdf.SWRLBuiltinAtom))
	e.g.Add(node, iri(owlrdf.SWRLBuiltin), quad.IRI(b.BuiltIn))
	e.g.Add(node, iri(owlrdf.SWRLArguments), args)
	return node
}

// argument encodes a rule argument. Each variable is typed swrl:Variable
// once per graph.
func (e *encoder) argument(a owl.Argument) quad.Value {
	switch x := a.(type) {
	case owl.Variable:
		v := quad.IRI(x.IRI)
		if !e.variables[x.IRI] {
			e.variables[x.IRI] = true
			e.g.Add(v, rdfType, iri(owlrdf.SWRLVariable))
		}
		return v
	case owl.IndividualArgument:
		return e.individual(x.Individual)
	case owl.LiteralArgument:
		return literalTerm(x.Literal)
	}
	return nil
}
