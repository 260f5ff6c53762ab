package schema

import "strings"

// Serializer renders records as Kotlin constructor-call literals.
// Serialization is a pure read-only projection: the same record always
// produces byte-identical text.
type Serializer struct {
	indent string
}

// NewSerializer creates a serializer with the given indent unit size.
func NewSerializer(indentSize int) *Serializer {
	return &Serializer{indent: strings.Repeat(" ", indentSize)}
}

// kotlinEscaper escapes values for double-quoted Kotlin string literals.
// An unescaped quote or dollar sign would corrupt the generated source.
var kotlinEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"$", `\$`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeString escapes a value for embedding in a double-quoted Kotlin
// string literal.
func EscapeString(value string) string {
	return kotlinEscaper.Replace(value)
}

// pad returns the indentation for a nesting level. Each level steps in by
// two indent units, matching the generated file's historical layout.
func (s *Serializer) pad(level int) string {
	return strings.Repeat(s.indent, 2*level)
}

// Serialize renders one record at the given nesting level. Inline schemas
// render on a single line; block schemas render one field per line with
// the closing parenthesis back at the record's own level.
func (s *Serializer) Serialize(r *Record, level int) string {
	if r.schema.Inline {
		return s.serializeInline(r, level)
	}

	return s.serializeBlock(r, level)
}

// SerializeList renders records as a named top-level listOf constant.
// Elements keep source order; blankLine separates them with an empty line
// for readability of large nested records.
func (s *Serializer) SerializeList(name string, records []*Record, blankLine bool) string {
	if len(records) == 0 {
		return "val " + name + " = listOf()\n"
	}

	sep := ",\n"
	if blankLine {
		sep = ",\n\n"
	}

	elems := make([]string, 0, len(records))
	for _, r := range records {
		elems = append(elems, s.Serialize(r, 1))
	}

	return "val " + name + " = listOf(\n" + strings.Join(elems, sep) + "\n)\n"
}

func (s *Serializer) serializeInline(r *Record, level int) string {
	parts := make([]string, 0, len(r.fields))
	for _, fv := range r.fields {
		parts = append(parts, fv.Field.Name+" = "+s.renderValue(fv, level))
	}

	return s.pad(level) + r.schema.TypeName + "(" + strings.Join(parts, ", ") + ")"
}

func (s *Serializer) serializeBlock(r *Record, level int) string {
	var b strings.Builder

	b.WriteString(s.pad(level))
	b.WriteString(r.schema.TypeName)
	b.WriteString("(\n")

	for i, fv := range r.fields {
		b.WriteString(s.pad(level + 1))
		b.WriteString(fv.Field.Name)
		b.WriteString(" = ")
		b.WriteString(s.renderValue(fv, level+1))

		if i < len(r.fields)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}

	b.WriteString(s.pad(level))
	b.WriteString(")")

	return b.String()
}

// renderValue renders a field value as the continuation of its field line,
// so nested constructs carry no leading indentation on their first line.
func (s *Serializer) renderValue(fv FieldValue, level int) string {
	switch fv.Value.kind {
	case KindNumber:
		return fv.Value.num.String() + fv.Field.Suffix

	case KindString:
		return `"` + EscapeString(fv.Value.str) + `"` + fv.Field.Suffix

	case KindRecord:
		nested := s.Serialize(fv.Value.rec, level)

		return strings.TrimPrefix(nested, s.pad(level)) + fv.Field.Suffix

	case KindList:
		if len(fv.Value.list) == 0 {
			return "listOf()" + fv.Field.Suffix
		}

		elems := make([]string, 0, len(fv.Value.list))
		for _, rec := range fv.Value.list {
			elems = append(elems, s.Serialize(rec, level+1))
		}

		return "listOf(\n" + strings.Join(elems, ",\n") + "\n" + s.pad(level) + ")" + fv.Field.Suffix
	}

	return ""
}
