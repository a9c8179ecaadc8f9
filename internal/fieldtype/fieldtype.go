// Package fieldtype declares the field-shape tags that the record-merge
// engine dispatches on. The surrounding feature supplies a Type per field
// from its field metadata; the engine never inspects values to guess shape.
package fieldtype

// Type tags a record field with its declared shape.
type Type string

const (
	UUID        Type = "UUID"
	Text        Type = "TEXT"
	Number      Type = "NUMBER"
	Numeric     Type = "NUMERIC"
	Boolean     Type = "BOOLEAN"
	DateTime    Type = "DATE_TIME"
	Date        Type = "DATE"
	Rating      Type = "RATING"
	Select      Type = "SELECT"
	MultiSelect Type = "MULTI_SELECT"
	RawJSON     Type = "RAW_JSON"
	RichText    Type = "RICH_TEXT"
	Currency    Type = "CURRENCY"
	FullName    Type = "FULL_NAME"
	Address     Type = "ADDRESS"
	Array       Type = "ARRAY"
	Emails      Type = "EMAILS"
	Phones      Type = "PHONES"
	Links       Type = "LINKS"
	Relation    Type = "RELATION"
	Position    Type = "POSITION"
	Actor       Type = "ACTOR"
	TSVector    Type = "TS_VECTOR"
)

// Shape classifies how a field's values combine during a merge.
type Shape string

const (
	// ShapeScalar fields keep the priority record's value wholesale.
	ShapeScalar Shape = "scalar"

	// ShapeArray fields union-merge their sequences.
	ShapeArray Shape = "array"

	// ShapeComposite fields carry a primary slot plus a secondary
	// collection sharing one identity attribute.
	ShapeComposite Shape = "composite"
)

// CompositeFamilies are the field types that merge as primary+secondary
// composites. Every family runs the same algorithm, parameterized by its
// unit shape and empty defaults.
var CompositeFamilies = []Type{Emails, Phones, Links}

// Shape returns the merge shape for the type. EMAILS, PHONES and LINKS are
// the only composite families and ARRAY the only array shape; every other
// tag, including multi-attribute types like CURRENCY and FULL_NAME, merges
// as a single value.
func (t Type) Shape() Shape {
	switch t {
	case Array:
		return ShapeArray
	case Emails, Phones, Links:
		return ShapeComposite
	default:
		return ShapeScalar
	}
}

// Mergeable reports whether a field of this type participates in record
// merging at all. Relation-like and system-maintained fields are carried
// over from the priority record by the surrounding feature, not merged.
func (t Type) Mergeable() bool {
	switch t {
	case Relation, Position, Actor, TSVector:
		return false
	}
	return true
}
