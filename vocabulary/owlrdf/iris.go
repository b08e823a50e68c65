package owlrdf

import "strings"

// Namespaces of the vocabularies used by the mapping.
const (
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
	OWL  = "http://www.w3.org/2002/07/owl#"
	XSD  = "http://www.w3.org/2001/XMLSchema#"
	SWRL = "http://www.w3.org/2003/11/swrl#"

	// SWRLB is the namespace of the standard SWRL built-ins.
	SWRLB = "http://www.w3.org/2003/11/swrlb#"
)

// RDF terms.
const (
	RDFType         = RDF + "type"
	RDFList         = RDF + "List"
	RDFFirst        = RDF + "first"
	RDFRest         = RDF + "rest"
	RDFNil          = RDF + "nil"
	RDFPlainLiteral = RDF + "PlainLiteral"
	RDFLangString   = RDF + "langString"
	RDFXMLLiteral   = RDF + "XMLLiteral"
)

// RDFS terms.
const (
	RDFSClass         = RDFS + "Class"
	RDFSDatatype      = RDFS + "Datatype"
	RDFSLiteral       = RDFS + "Literal"
	RDFSSubClassOf    = RDFS + "subClassOf"
	RDFSSubPropertyOf = RDFS + "subPropertyOf"
	RDFSDomain        = RDFS + "domain"
	RDFSRange         = RDFS + "range"
	RDFSLabel         = RDFS + "label"
	RDFSComment       = RDFS + "comment"
	RDFSSeeAlso       = RDFS + "seeAlso"
	RDFSIsDefinedBy   = RDFS + "isDefinedBy"
)

// OWL entity and structural classes.
const (
	OWLOntology                  = OWL + "Ontology"
	OWLClass                     = OWL + "Class"
	OWLThing                     = OWL + "Thing"
	OWLNothing                   = OWL + "Nothing"
	OWLObjectProperty            = OWL + "ObjectProperty"
	OWLDatatypeProperty          = OWL + "DatatypeProperty"
	OWLAnnotationProperty        = OWL + "AnnotationProperty"
	OWLNamedIndividual           = OWL + "NamedIndividual"
	OWLRestriction               = OWL + "Restriction"
	OWLAxiom                     = OWL + "Axiom"
	OWLAnnotation                = OWL + "Annotation"
	OWLAllDisjointClasses        = OWL + "AllDisjointClasses"
	OWLAllDisjointProperties     = OWL + "AllDisjointProperties"
	OWLAllDifferent              = OWL + "AllDifferent"
	OWLNegativePropertyAssertion = OWL + "NegativePropertyAssertion"
	OWLFunctionalProperty        = OWL + "FunctionalProperty"
	OWLInverseFunctionalProperty = OWL + "InverseFunctionalProperty"
	OWLSymmetricProperty         = OWL + "SymmetricProperty"
	OWLAsymmetricProperty        = OWL + "AsymmetricProperty"
	OWLReflexiveProperty         = OWL + "ReflexiveProperty"
	OWLIrreflexiveProperty       = OWL + "IrreflexiveProperty"
	OWLTransitiveProperty        = OWL + "TransitiveProperty"
	OWLDeprecatedClass           = OWL + "DeprecatedClass"
	OWLDeprecatedProperty        = OWL + "DeprecatedProperty"
	OWLOntologyProperty          = OWL + "OntologyProperty"
	OWLTopObjectProperty         = OWL + "topObjectProperty"
	OWLBottomObjectProperty      = OWL + "bottomObjectProperty"
	OWLTopDataProperty           = OWL + "topDataProperty"
	OWLBottomDataProperty        = OWL + "bottomDataProperty"
	OWLRealPlus                  = OWL + "realPlus"
	OWLReal                      = OWL + "real"
	OWLRational                  = OWL + "rational"
)

// OWL predicates.
const (
	OWLVersionIRI             = OWL + "versionIRI"
	OWLImports                = OWL + "imports"
	OWLVersionInfo            = OWL + "versionInfo"
	OWLDeprecated             = OWL + "deprecated"
	OWLPriorVersion           = OWL + "priorVersion"
	OWLBackwardCompatibleWith = OWL + "backwardCompatibleWith"
	OWLIncompatibleWith       = OWL + "incompatibleWith"

	OWLEquivalentClass      = OWL + "equivalentClass"
	OWLDisjointWith         = OWL + "disjointWith"
	OWLDisjointUnionOf      = OWL + "disjointUnionOf"
	OWLMembers              = OWL + "members"
	OWLDistinctMembers      = OWL + "distinctMembers"
	OWLEquivalentProperty   = OWL + "equivalentProperty"
	OWLPropertyDisjointWith = OWL + "propertyDisjointWith"
	OWLInverseOf            = OWL + "inverseOf"
	OWLPropertyChainAxiom   = OWL + "propertyChainAxiom"
	OWLHasKey               = OWL + "hasKey"
	OWLSameAs               = OWL + "sameAs"
	OWLDifferentFrom        = OWL + "differentFrom"

	OWLOnProperty              = OWL + "onProperty"
	OWLSomeValuesFrom          = OWL + "someValuesFrom"
	OWLAllValuesFrom           = OWL + "allValuesFrom"
	OWLHasValue                = OWL + "hasValue"
	OWLHasSelf                 = OWL + "hasSelf"
	OWLCardinality             = OWL + "cardinality"
	OWLMinCardinality          = OWL + "minCardinality"
	OWLMaxCardinality          = OWL + "maxCardinality"
	OWLQualifiedCardinality    = OWL + "qualifiedCardinality"
	OWLMinQualifiedCardinality = OWL + "minQualifiedCardinality"
	OWLMaxQualifiedCardinality = OWL + "maxQualifiedCardinality"
	OWLOnClass                 = OWL + "onClass"
	OWLOnDataRange             = OWL + "onDataRange"
	OWLUnionOf                 = OWL + "unionOf"
	OWLIntersectionOf          = OWL + "intersectionOf"
	OWLComplementOf            = OWL + "complementOf"
	OWLOneOf                   = OWL + "oneOf"
	OWLOnDatatype              = OWL + "onDatatype"
	OWLWithRestrictions        = OWL + "withRestrictions"

	OWLAnnotatedSource   = OWL + "annotatedSource"
	OWLAnnotatedProperty = OWL + "annotatedProperty"
	OWLAnnotatedTarget   = OWL + "annotatedTarget"

	OWLSourceIndividual  = OWL + "sourceIndividual"
	OWLAssertionProperty = OWL + "assertionProperty"
	OWLTargetIndividual  = OWL + "targetIndividual"
	OWLTargetValue       = OWL + "targetValue"
)

// XSD datatypes used by the mapping itself.
const (
	XSDString             = XSD + "string"
	XSDBoolean            = XSD + "boolean"
	XSDInteger            = XSD + "integer"
	XSDNonNegativeInteger = XSD + "nonNegativeInteger"
	XSDDecimal            = XSD + "decimal"
	XSDDouble             = XSD + "double"
	XSDDateTime           = XSD + "dateTime"

	XSDMinInclusive = XSD + "minInclusive"
	XSDMaxInclusive = XSD + "maxInclusive"
	XSDMinExclusive = XSD + "minExclusive"
	XSDMaxExclusive = XSD + "maxExclusive"
	XSDLength       = XSD + "length"
	XSDMinLength    = XSD + "minLength"
	XSDMaxLength    = XSD + "maxLength"
	XSDPattern      = XSD + "pattern"
)

// SWRL terms.
const (
	SWRLImp                      = SWRL + "Imp"
	SWRLVariable                 = SWRL + "Variable"
	SWRLAtomList                 = SWRL + "AtomList"
	SWRLBody                     = SWRL + "body"
	SWRLHead                     = SWRL + "head"
	SWRLClassAtom                = SWRL + "ClassAtom"
	SWRLDataRangeAtom            = SWRL + "DataRangeAtom"
	SWRLIndividualPropertyAtom   = SWRL + "IndividualPropertyAtom"
	SWRLObjectPropertyAtom       = SWRL + "ObjectPropertyAtom"
	SWRLDatavaluedPropertyAtom   = SWRL + "DatavaluedPropertyAtom"
	SWRLDataPropertyAtom         = SWRL + "DataPropertyAtom"
	SWRLSameIndividualAtom       = SWRL + "SameIndividualAtom"
	SWRLDifferentIndividualsAtom = SWRL + "DifferentIndividualsAtom"
	SWRLBuiltinAtom              = SWRL + "BuiltinAtom"
	SWRLClassPredicate           = SWRL + "classPredicate"
	SWRLPropertyPredicate        = SWRL + "propertyPredicate"
	SWRLDataRange                = SWRL + "dataRange"
	SWRLBuiltin                  = SWRL + "builtin"
	SWRLArguments                = SWRL + "arguments"
	SWRLArgument1                = SWRL + "argument1"
	SWRLArgument2                = SWRL + "argument2"
)

// EntityTypes are the six rdf:type objects that declare an OWL 2 entity.
var EntityTypes = []string{
	OWLClass,
	RDFSDatatype,
	OWLObjectProperty,
	OWLDatatypeProperty,
	OWLAnnotationProperty,
	OWLNamedIndividual,
}

// CharacteristicTypes are the rdf:type objects of property characteristic axioms.
var CharacteristicTypes = []string{
	OWLFunctionalProperty,
	OWLInverseFunctionalProperty,
	OWLSymmetricProperty,
	OWLAsymmetricProperty,
	OWLReflexiveProperty,
	OWLIrreflexiveProperty,
	OWLTransitiveProperty,
}

var builtinAnnotationProperties = map[string]bool{
	RDFSLabel:                 true,
	RDFSComment:               true,
	RDFSSeeAlso:               true,
	RDFSIsDefinedBy:           true,
	OWLVersionInfo:            true,
	OWLDeprecated:             true,
	OWLPriorVersion:           true,
	OWLBackwardCompatibleWith: true,
	OWLIncompatibleWith:       true,
}

// IsBuiltinAnnotationProperty reports whether iri is one of the annotation
// properties OWL 2 predefines.
func IsBuiltinAnnotationProperty(iri string) bool {
	return builtinAnnotationProperties[iri]
}

// IsReserved reports whether iri belongs to the RDF, RDFS, OWL, XSD or SWRL
// vocabularies. owl:Thing and owl:Nothing are ordinary classes and are not
// reserved.
func IsReserved(iri string) bool {
	if iri == OWLThing || iri == OWLNothing {
		return false
	}
	for _, ns := range []string{RDF, RDFS, OWL, XSD, SWRL} {
		if strings.HasPrefix(iri, ns) {
			return true
		}
	}
	return false
}

// IsDatatypeIRI reports whether iri names a datatype of the OWL 2 datatype map.
func IsDatatypeIRI(iri string) bool {
	switch iri {
	case RDFSLiteral, RDFPlainLiteral, RDFLangString, RDFXMLLiteral, OWLReal, OWLRational:
		return true
	}
	return strings.HasPrefix(iri, XSD)
}

// LocalName returns the part of iri after the last '#', '/' or ':'.
func LocalName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/:"); i >= 0 && i < len(iri)-1 {
		return iri[i+1:]
	}
	return iri
}
