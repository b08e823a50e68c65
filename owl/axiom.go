package owl

// Category groups axiom kinds the way reports and counts present them.
type Category string

// Axiom categories.
const (
	CategoryDeclaration        Category = "declaration"
	CategoryClass              Category = "class"
	CategoryObjectProperty     Category = "object_property"
	CategoryDataProperty       Category = "data_property"
	CategoryAssertion          Category = "assertion"
	CategoryAnnotation         Category = "annotation"
	CategoryHasKey             Category = "has_key"
	CategoryDatatypeDefinition Category = "datatype_definition"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryDeclaration,
	CategoryClass,
	CategoryObjectProperty,
	CategoryDataProperty,
	CategoryAssertion,
	CategoryAnnotation,
	CategoryHasKey,
	CategoryDatatypeDefinition,
}

// AxiomKind names the functional-syntax constructor of an axiom.
type AxiomKind string

// Axiom kinds.
const (
	KindDeclaration                     AxiomKind = "Declaration"
	KindSubClassOf                      AxiomKind = "SubClassOf"
	KindEquivalentClasses               AxiomKind = "EquivalentClasses"
	KindDisjointClasses                 AxiomKind = "DisjointClasses"
	KindDisjointUnion                   AxiomKind = "DisjointUnion"
	KindSubObjectPropertyOf             AxiomKind = "SubObjectPropertyOf"
	KindEquivalentObjectProperties      AxiomKind = "EquivalentObjectProperties"
	KindDisjointObjectProperties        AxiomKind = "DisjointObjectProperties"
	KindObjectPropertyDomain            AxiomKind = "ObjectPropertyDomain"
	KindObjectPropertyRange             AxiomKind = "ObjectPropertyRange"
	KindInverseObjectProperties         AxiomKind = "InverseObjectProperties"
	KindFunctionalObjectProperty        AxiomKind = "FunctionalObjectProperty"
	KindInverseFunctionalObjectProperty AxiomKind = "InverseFunctionalObjectProperty"
	KindSymmetricObjectProperty         AxiomKind = "SymmetricObjectProperty"
	KindAsymmetricObjectProperty        AxiomKind = "AsymmetricObjectProperty"
	KindReflexiveObjectProperty         AxiomKind = "ReflexiveObjectProperty"
	KindIrreflexiveObjectProperty       AxiomKind = "IrreflexiveObjectProperty"
	KindTransitiveObjectProperty        AxiomKind = "TransitiveObjectProperty"
	KindSubDataPropertyOf               AxiomKind = "SubDataPropertyOf"
	KindEquivalentDataProperties        AxiomKind = "EquivalentDataProperties"
	KindDisjointDataProperties          AxiomKind = "DisjointDataProperties"
	KindDataPropertyDomain              AxiomKind = "DataPropertyDomain"
	KindDataPropertyRange               AxiomKind = "DataPropertyRange"
	KindFunctionalDataProperty          AxiomKind = "FunctionalDataProperty"
	KindClassAssertion                  AxiomKind = "ClassAssertion"
	KindObjectPropertyAssertion         AxiomKind = "ObjectPropertyAssertion"
	KindDataPropertyAssertion           AxiomKind = "DataPropertyAssertion"
	KindNegativeObjectPropertyAssertion AxiomKind = "NegativeObjectPropertyAssertion"
	KindNegativeDataPropertyAssertion   AxiomKind = "NegativeDataPropertyAssertion"
	KindSameIndividual                  AxiomKind = "SameIndividual"
	KindDifferentIndividuals            AxiomKind = "DifferentIndividuals"
	KindAnnotationAssertion             AxiomKind = "AnnotationAssertion"
	KindSubAnnotationPropertyOf         AxiomKind = "SubAnnotationPropertyOf"
	KindAnnotationPropertyDomain        AxiomKind = "AnnotationPropertyDomain"
	KindAnnotationPropertyRange         AxiomKind = "AnnotationPropertyRange"
	KindHasKey                          AxiomKind = "HasKey"
	KindDatatypeDefinition              AxiomKind = "DatatypeDefinition"
)

// Axiom is one logical OWL 2 statement.
type Axiom interface {
	Kind() AxiomKind
	Category() Category
	Base() *AxiomBase
}

// AxiomBase carries what every axiom has: provenance flags and an ordered
// list of annotations. Both flags only filter output on encode.
type AxiomBase struct {
	Annotations []Annotation
	IsImport    bool
	IsInference bool
}

// Base returns b so embedding types satisfy Axiom.
func (b *AxiomBase) Base() *AxiomBase { return b }

// Annotate appends annotations to the axiom.
func (b *AxiomBase) Annotate(annotations ...Annotation) {
	b.Annotations = append(b.Annotations, annotations...)
}

// Declaration declares an entity.
type Declaration struct {
	AxiomBase
	Entity Entity
}

// SubClassOf states that every Sub is a Super.
type SubClassOf struct {
	AxiomBase
	Sub   ClassExpression
	Super ClassExpression
}

// EquivalentClasses states that all Classes have the same extension.
type EquivalentClasses struct {
	AxiomBase
	Classes []ClassExpression
}

// DisjointClasses states that Classes are pairwise disjoint.
type DisjointClasses struct {
	AxiomBase
	Classes []ClassExpression
}

// DisjointUnion states that Class is the disjoint union of Classes.
type DisjointUnion struct {
	AxiomBase
	Class   Class
	Classes []ClassExpression
}

// SubObjectPropertyOf relates a sub property, or a property chain, to a
// super property.
type SubObjectPropertyOf struct {
	AxiomBase
	Sub   PropertyExpression
	Super ObjectPropertyExpression
}

// EquivalentObjectProperties states that Properties are equivalent.
type EquivalentObjectProperties struct {
	AxiomBase
	Properties []ObjectPropertyExpression
}

// DisjointObjectProperties states that Properties are pairwise disjoint.
type DisjointObjectProperties struct {
	AxiomBase
	Properties []ObjectPropertyExpression
}

// ObjectPropertyDomain states the domain of an object property.
type ObjectPropertyDomain struct {
	AxiomBase
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

// ObjectPropertyRange states the range of an object property.
type ObjectPropertyRange struct {
	AxiomBase
	Property ObjectPropertyExpression
	Range    ClassExpression
}

// InverseObjectProperties states that First and Second are inverses.
type InverseObjectProperties struct {
	AxiomBase
	First  ObjectPropertyExpression
	Second ObjectPropertyExpression
}

// Characteristic is an object property characteristic.
type Characteristic string

// Object property characteristics.
const (
	Functional        Characteristic = "functional"
	InverseFunctional Characteristic = "inverse_functional"
	Symmetric         Characteristic = "symmetric"
	Asymmetric        Characteristic = "asymmetric"
	Reflexive         Characteristic = "reflexive"
	Irreflexive       Characteristic = "irreflexive"
	Transitive        Characteristic = "transitive"
)

// ObjectPropertyCharacteristic assigns a characteristic to an object property.
type ObjectPropertyCharacteristic struct {
	AxiomBase
	Characteristic Characteristic
	Property       ObjectPropertyExpression
}

// SubDataPropertyOf relates two data properties.
type SubDataPropertyOf struct {
	AxiomBase
	Sub   DataProperty
	Super DataProperty
}

// EquivalentDataProperties states that Properties are equivalent.
type EquivalentDataProperties struct {
	AxiomBase
	Properties []DataProperty
}

// DisjointDataProperties states that Properties are pairwise disjoint.
type DisjointDataProperties struct {
	AxiomBase
	Properties []DataProperty
}

// DataPropertyDomain states the domain of a data property.
type DataPropertyDomain struct {
	AxiomBase
	Property DataProperty
	Domain   ClassExpression
}

// DataPropertyRange states the range of a data property.
type DataPropertyRange struct {
	AxiomBase
	Property DataProperty
	Range    DataRange
}

// FunctionalDataProperty states that a data property is functional.
type FunctionalDataProperty struct {
	AxiomBase
	Property DataProperty
}

// ClassAssertion states that Individual is an instance of Class.
type ClassAssertion struct {
	AxiomBase
	Class      ClassExpression
	Individual Individual
}

// ObjectPropertyAssertion links two individuals.
type ObjectPropertyAssertion struct {
	AxiomBase
	Property ObjectPropertyExpression
	Source   Individual
	Target   Individual
}

// DataPropertyAssertion links an individual to a literal.
type DataPropertyAssertion struct {
	AxiomBase
	Property DataProperty
	Source   Individual
	Target   Literal
}

// NegativeObjectPropertyAssertion states that two individuals are not linked.
type NegativeObjectPropertyAssertion struct {
	AxiomBase
	Property ObjectPropertyExpression
	Source   Individual
	Target   Individual
}

// NegativeDataPropertyAssertion states that an individual does not have a
// literal value.
type NegativeDataPropertyAssertion struct {
	AxiomBase
	Property DataProperty
	Source   Individual
	Target   Literal
}

// SameIndividual states that Individuals denote the same thing.
type SameIndividual struct {
	AxiomBase
	Individuals []Individual
}

// DifferentIndividuals states that Individuals are pairwise different.
type DifferentIndividuals struct {
	AxiomBase
	Individuals []Individual
}

// AnnotationAssertion annotates an IRI or anonymous individual.
type AnnotationAssertion struct {
	AxiomBase
	Property AnnotationProperty
	Subject  AnnotationSubject
	Value    AnnotationValue
}

// SubAnnotationPropertyOf relates two annotation properties.
type SubAnnotationPropertyOf struct {
	AxiomBase
	Sub   AnnotationProperty
	Super AnnotationProperty
}

// AnnotationPropertyDomain states the domain of an annotation property.
type AnnotationPropertyDomain struct {
	AxiomBase
	Property AnnotationProperty
	Domain   IRI
}

// AnnotationPropertyRange states the range of an annotation property.
type AnnotationPropertyRange struct {
	AxiomBase
	Property AnnotationProperty
	Range    IRI
}

// HasKey states that instances of Class are identified by the key properties.
type HasKey struct {
	AxiomBase
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataProperty
}

// DatatypeDefinition defines a datatype as a data range.
type DatatypeDefinition struct {
	AxiomBase
	Datatype Datatype
	Range    DataRange
}

func (*Declaration) Kind() AxiomKind                     { return KindDeclaration }
func (*SubClassOf) Kind() AxiomKind                      { return KindSubClassOf }
func (*EquivalentClasses) Kind() AxiomKind               { return KindEquivalentClasses }
func (*DisjointClasses) Kind() AxiomKind                 { return KindDisjointClasses }
func (*DisjointUnion) Kind() AxiomKind                   { return KindDisjointUnion }
func (*SubObjectPropertyOf) Kind() AxiomKind             { return KindSubObjectPropertyOf }
func (*EquivalentObjectProperties) Kind() AxiomKind      { return KindEquivalentObjectProperties }
func (*DisjointObjectProperties) Kind() AxiomKind        { return KindDisjointObjectProperties }
func (*ObjectPropertyDomain) Kind() AxiomKind            { return KindObjectPropertyDomain }
func (*ObjectPropertyRange) Kind() AxiomKind             { return KindObjectPropertyRange }
func (*InverseObjectProperties) Kind() AxiomKind         { return KindInverseObjectProperties }
func (*SubDataPropertyOf) Kind() AxiomKind               { return KindSubDataPropertyOf }
func (*EquivalentDataProperties) Kind() AxiomKind        { return KindEquivalentDataProperties }
func (*DisjointDataProperties) Kind() AxiomKind          { return KindDisjointDataProperties }
func (*DataPropertyDomain) Kind() AxiomKind              { return KindDataPropertyDomain }
func (*DataPropertyRange) Kind() AxiomKind               { return KindDataPropertyRange }
func (*FunctionalDataProperty) Kind() AxiomKind          { return KindFunctionalDataProperty }
func (*ClassAssertion) Kind() AxiomKind                  { return KindClassAssertion }
func (*ObjectPropertyAssertion) Kind() AxiomKind         { return KindObjectPropertyAssertion }
func (*DataPropertyAssertion) Kind() AxiomKind           { return KindDataPropertyAssertion }
func (*NegativeObjectPropertyAssertion) Kind() AxiomKind { return KindNegativeObjectPropertyAssertion }
func (*NegativeDataPropertyAssertion) Kind() AxiomKind   { return KindNegativeDataPropertyAssertion }
func (*SameIndividual) Kind() AxiomKind                  { return KindSameIndividual }
func (*DifferentIndividuals) Kind() AxiomKind            { return KindDifferentIndividuals }
func (*AnnotationAssertion) Kind() AxiomKind             { return KindAnnotationAssertion }
func (*SubAnnotationPropertyOf) Kind() AxiomKind         { return KindSubAnnotationPropertyOf }
func (*AnnotationPropertyDomain) Kind() AxiomKind        { return KindAnnotationPropertyDomain }
func (*AnnotationPropertyRange) Kind() AxiomKind         { return KindAnnotationPropertyRange }
func (*HasKey) Kind() AxiomKind                          { return KindHasKey }
func (*DatatypeDefinition) Kind() AxiomKind              { return KindDatatypeDefinition }

var characteristicKinds = map[Characteristic]AxiomKind{
	Functional:        KindFunctionalObjectProperty,
	InverseFunctional: KindInverseFunctionalObjectProperty,
	Symmetric:         KindSymmetricObjectProperty,
	Asymmetric:        KindAsymmetricObjectProperty,
	Reflexive:         KindReflexiveObjectProperty,
	Irreflexive:       KindIrreflexiveObjectProperty,
	Transitive:        KindTransitiveObjectProperty,
}

// Kind reports the characteristic-specific constructor name.
func (a *ObjectPropertyCharacteristic) Kind() AxiomKind {
	return characteristicKinds[a.Characteristic]
}

func (*Declaration) Category() Category                     { return CategoryDeclaration }
func (*SubClassOf) Category() Category                      { return CategoryClass }
func (*EquivalentClasses) Category() Category               { return CategoryClass }
func (*DisjointClasses) Category() Category                 { return CategoryClass }
func (*DisjointUnion) Category() Category                   { return CategoryClass }
func (*SubObjectPropertyOf) Category() Category             { return CategoryObjectProperty }
func (*EquivalentObjectProperties) Category() Category      { return CategoryObjectProperty }
func (*DisjointObjectProperties) Category() Category        { return CategoryObjectProperty }
func (*ObjectPropertyDomain) Category() Category            { return CategoryObjectProperty }
func (*ObjectPropertyRange) Category() Category             { return CategoryObjectProperty }
func (*InverseObjectProperties) Category() Category         { return CategoryObjectProperty }
func (*ObjectPropertyCharacteristic) Category() Category    { return CategoryObjectProperty }
func (*SubDataPropertyOf) Category() Category               { return CategoryDataProperty }
func (*EquivalentDataProperties) Category() Category        { return CategoryDataProperty }
func (*DisjointDataProperties) Category() Category          { return CategoryDataProperty }
func (*DataPropertyDomain) Category() Category              { return CategoryDataProperty }
func (*DataPropertyRange) Category() Category               { return CategoryDataProperty }
func (*FunctionalDataProperty) Category() Category          { return CategoryDataProperty }
func (*ClassAssertion) Category() Category                  { return CategoryAssertion }
func (*ObjectPropertyAssertion) Category() Category         { return CategoryAssertion }
func (*DataPropertyAssertion) Category() Category           { return CategoryAssertion }
func (*NegativeObjectPropertyAssertion) Category() Category { return CategoryAssertion }
func (*NegativeDataPropertyAssertion) Category() Category   { return CategoryAssertion }
func (*SameIndividual) Category() Category                  { return CategoryAssertion }
func (*DifferentIndividuals) Category() Category            { return CategoryAssertion }
func (*AnnotationAssertion) Category() Category             { return CategoryAnnotation }
func (*SubAnnotationPropertyOf) Category() Category         { return CategoryAnnotation }
func (*AnnotationPropertyDomain) Category() Category        { return CategoryAnnotation }
func (*AnnotationPropertyRange) Category() Category         { return CategoryAnnotation }
func (*HasKey) Category() Category                          { return CategoryHasKey }
func (*DatatypeDefinition) Category() Category              { return CategoryDatatypeDefinition }
