package owl

import "strings"

// Rule is a SWRL implication. Built-in atoms only occur in the antecedent.
type Rule struct {
	Antecedent  Antecedent
	Consequent  Consequent
	Annotations []Annotation
	IsImport    bool
	IsInference bool
}

// Antecedent is the body of a rule.
type Antecedent struct {
	Atoms    []Atom
	BuiltIns []BuiltInAtom
}

// Consequent is the head of a rule.
type Consequent struct {
	Atoms []Atom
}

// Atom is a non built-in rule atom.
type Atom interface {
	isAtom()
}

// Argument is a rule variable, an individual or a literal.
type Argument interface {
	isArgument()
}

// Variable is a rule variable identified by an IRI.
type Variable struct {
	IRI IRI
}

// IndividualArgument is an individual used as a rule argument.
type IndividualArgument struct {
	Individual Individual
}

// LiteralArgument is a literal used as a rule argument.
type LiteralArgument struct {
	Literal Literal
}

func (Variable) isArgument()           {}
func (IndividualArgument) isArgument() {}
func (LiteralArgument) isArgument()    {}

// ClassAtom holds when Argument is an instance of Class.
type ClassAtom struct {
	Class    ClassExpression
	Argument Argument
}

// DataRangeAtom holds when Argument is a value of Range.
type DataRangeAtom struct {
	Range    DataRange
	Argument Argument
}

// ObjectPropertyAtom holds when First is linked to Second by Property.
type ObjectPropertyAtom struct {
	Property ObjectPropertyExpression
	First    Argument
	Second   Argument
}

// DataPropertyAtom holds when First has value Second for Property.
type DataPropertyAtom struct {
	Property DataProperty
	First    Argument
	Second   Argument
}

// SameIndividualAtom holds when both arguments are owl:sameAs.
type SameIndividualAtom struct {
	First  Argument
	Second Argument
}

// DifferentIndividualsAtom holds when both arguments are owl:differentFrom.
type DifferentIndividualsAtom struct {
	First  Argument
	Second Argument
}

func (ClassAtom) isAtom()                {}
func (DataRangeAtom) isAtom()            {}
func (ObjectPropertyAtom) isAtom()       {}
func (DataPropertyAtom) isAtom()         {}
func (SameIndividualAtom) isAtom()       {}
func (DifferentIndividualsAtom) isAtom() {}

// BuiltInAtom applies a built-in predicate such as swrlb:greaterThan to an
// ordered argument list.
type BuiltInAtom struct {
	BuiltIn   IRI
	Arguments []Argument
}

// String renders the rule as "body -> head", for example
// "Person(?p) ^ hasAge(?p, ?a) ^ greaterThan(?a, \"17\") -> Adult(?p)".
func (r *Rule) String() string {
	body := make([]string, 0, len(r.Antecedent.Atoms)+len(r.Antecedent.BuiltIns))
	for _, a := range r.Antecedent.Atoms {
		body = append(body, RenderAtom(a))
	}
	for _, b := range r.Antecedent.BuiltIns {
		body = append(body, renderBuiltIn(b))
	}

	head := make([]string, 0, len(r.Consequent.Atoms))
	for _, a := range r.Consequent.Atoms {
		head = append(head, RenderAtom(a))
	}

	return strings.Join(body, " ^ ") + " -> " + strings.Join(head, " ^ ")
}

// RenderAtom renders one atom as predicate(arguments).
func RenderAtom(a Atom) string {
	switch x := a.(type) {
	case ClassAtom:
		return renderPredicate(x.Class) + "(" + RenderArgument(x.Argument) + ")"
	case DataRangeAtom:
		return Render(x.Range) + "(" + RenderArgument(x.Argument) + ")"
	case ObjectPropertyAtom:
		return Render(x.Property) + "(" + RenderArgument(x.First) + ", " + RenderArgument(x.Second) + ")"
	case DataPropertyAtom:
		return Render(x.Property) + "(" + RenderArgument(x.First) + ", " + RenderArgument(x.Second) + ")"
	case SameIndividualAtom:
		return "sameAs(" + RenderArgument(x.First) + ", " + RenderArgument(x.Second) + ")"
	case DifferentIndividualsAtom:
		return "differentFrom(" + RenderArgument(x.First) + ", " + RenderArgument(x.Second) + ")"
	}
	return "?"
}

func renderPredicate(c ClassExpression) string {
	if named, ok := c.(Class); ok {
		return localName(named.IRI)
	}
	return Render(c)
}

func renderBuiltIn(b BuiltInAtom) string {
	args := make([]string, 0, len(b.Arguments))
	for _, a := range b.Arguments {
		args = append(args, RenderArgument(a))
	}
	return localName(b.BuiltIn) + "(" + strings.Join(args, ", ") + ")"
}

// RenderArgument renders variables as ?name, individuals by local name and
// literals quoted.
func RenderArgument(a Argument) string {
	switch x := a.(type) {
	case Variable:
		return "?" + localName(x.IRI)
	case IndividualArgument:
		return renderIndividual(x.Individual)
	case LiteralArgument:
		return renderLiteral(x.Literal)
	}
	return "?"
}
