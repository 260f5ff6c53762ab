package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Mapping errors. A mismatch means the API contract changed; the mapper
// fails loudly rather than coerce, since the emitted literals become
// committed source in the consuming app.
var (
	ErrNotAnObject  = errors.New("wire value is not an object")
	ErrTypeMismatch = errors.New("wire value does not match schema kind")
)

// Map converts a decoded wire object into a typed record.
//
// The wire object must come from a json.Decoder with UseNumber enabled so
// numeric wire text survives byte-identical into the output. Schema fields
// absent from the wire object are omitted from the record; wire keys not
// declared in the schema are ignored.
func Map(wire map[string]any, s *Schema) (*Record, error) {
	rec := &Record{schema: s}

	for _, field := range s.Fields {
		raw, ok := wire[field.Wire()]
		if !ok {
			// Tolerated: partial API response
			continue
		}

		value, err := mapValue(raw, field, s)
		if err != nil {
			return nil, err
		}

		rec.fields = append(rec.fields, FieldValue{Field: field, Value: value})
	}

	return rec, nil
}

// MapList maps each wire object into a record, preserving source order.
func MapList(wire []map[string]any, s *Schema) ([]*Record, error) {
	records := make([]*Record, 0, len(wire))

	for i, obj := range wire {
		rec, err := Map(obj, s)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", s.TypeName, i, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

func mapValue(raw any, field Field, s *Schema) (Value, error) {
	switch field.Kind {
	case KindNumber:
		num, ok := raw.(json.Number)
		if !ok {
			return Value{}, mismatchError(s, field, raw)
		}

		return Value{kind: KindNumber, num: num}, nil

	case KindString:
		str, ok := raw.(string)
		if !ok {
			return Value{}, mismatchError(s, field, raw)
		}

		return Value{kind: KindString, str: str}, nil

	case KindRecord:
		obj, ok := raw.(map[string]any)
		if !ok {
			return Value{}, mismatchError(s, field, raw)
		}

		sub, err := Map(obj, field.Elem)
		if err != nil {
			return Value{}, fmt.Errorf("%s.%s: %w", s.TypeName, field.Name, err)
		}

		return Value{kind: KindRecord, rec: sub}, nil

	case KindList:
		items, ok := raw.([]any)
		if !ok {
			return Value{}, mismatchError(s, field, raw)
		}

		list := make([]*Record, 0, len(items))

		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return Value{}, fmt.Errorf("%w: %s.%s[%d] is %T, expected object",
					ErrNotAnObject, s.TypeName, field.Name, i, item)
			}

			sub, err := Map(obj, field.Elem)
			if err != nil {
				return Value{}, fmt.Errorf("%s.%s[%d]: %w", s.TypeName, field.Name, i, err)
			}

			list = append(list, sub)
		}

		return Value{kind: KindList, list: list}, nil
	}

	return Value{}, fmt.Errorf("%w: %s.%s has unknown kind %d", ErrTypeMismatch, s.TypeName, field.Name, field.Kind)
}

func mismatchError(s *Schema, field Field, raw any) error {
	return fmt.Errorf("%w: %s.%s is %T", ErrTypeMismatch, s.TypeName, field.Name, raw)
}
