// Package schema implements generic wire-to-record mapping and
// deterministic Kotlin-literal rendering, driven by declarative per-type
// field schemas. One code path serves every record family so the field
// lists stay the single source of truth.
package schema

import "encoding/json"

// Kind identifies how a field is mapped and rendered.
type Kind int

// Field kinds.
const (
	KindNumber Kind = iota
	KindString
	KindRecord
	KindList
)

// Field declares one schema entry.
type Field struct {
	// Name is the in-memory field name, also used in emitted literals.
	Name string
	// WireName overrides the JSON key this field is read from.
	// Empty means the wire key equals Name.
	WireName string
	// Kind selects mapping and rendering behavior.
	Kind Kind
	// Elem is the nested schema for KindRecord and KindList fields.
	Elem *Schema
	// Suffix is appended after the rendered value, e.g. ".asReciterId".
	Suffix string
}

// Wire returns the JSON key this field is read from.
func (f *Field) Wire() string {
	if f.WireName != "" {
		return f.WireName
	}

	return f.Name
}

// Schema declares the fields of one record type, in emission order.
type Schema struct {
	// TypeName is the constructor name in emitted literals.
	TypeName string
	// Inline renders the whole record on one line instead of one field
	// per line.
	Inline bool
	Fields []Field
}

// Value holds one mapped field value.
type Value struct {
	kind Kind
	num  json.Number
	str  string
	rec  *Record
	list []*Record
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Number returns the numeric wire text for KindNumber values.
func (v Value) Number() json.Number {
	return v.num
}

// Str returns the text for KindString values.
func (v Value) Str() string {
	return v.str
}

// Record returns the nested record for KindRecord values.
func (v Value) Record() *Record {
	return v.rec
}

// Records returns the nested records for KindList values, in source order.
func (v Value) Records() []*Record {
	return v.list
}

// FieldValue pairs a schema field with its mapped value.
type FieldValue struct {
	Field Field
	Value Value
}

// Record is an immutable mapped record: the subset of schema fields that
// were present on the wire, in schema order.
type Record struct {
	schema *Schema
	fields []FieldValue
}

// Schema returns the schema this record was mapped with.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Fields returns the mapped fields in schema order.
func (r *Record) Fields() []FieldValue {
	return r.fields
}

// Lookup returns the value of the named field, if present.
func (r *Record) Lookup(name string) (Value, bool) {
	for _, fv := range r.fields {
		if fv.Field.Name == name {
			return fv.Value, true
		}
	}

	return Value{}, false
}
