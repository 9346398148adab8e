// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"maps"

	"google.golang.org/protobuf/types/known/structpb"
)

// Document is a consuming decoder over an unordered field bag.
//
// Each Take call removes the field it reads. Once the known fields are taken,
// Residual hands back everything that is left as a separate document.
type Document struct {
	fields map[string]*structpb.Value
}

// NewDocument wraps s. The field map is copied, s itself is not modified.
func NewDocument(s *structpb.Struct) *Document {
	fields := make(map[string]*structpb.Value, len(s.GetFields()))
	maps.Copy(fields, s.GetFields())

	return &Document{fields: fields}
}

func (d *Document) Has(field string) bool {
	_, ok := d.fields[field]

	return ok
}

func (d *Document) Len() int {
	return len(d.fields)
}

// Residual returns the fields not taken yet and leaves the document empty.
func (d *Document) Residual() *structpb.Struct {
	rest := &structpb.Struct{Fields: d.fields}
	d.fields = map[string]*structpb.Value{}

	return rest
}

func (d *Document) pop(field string) (*structpb.Value, bool) {
	v, ok := d.fields[field]
	if ok {
		delete(d.fields, field)
	}

	return v, ok
}

// Take removes field from d and decodes it.
func Take[T any](d *Document, field string, dec Decoder[T]) (T, error) {
	v, ok := d.pop(field)
	if !ok {
		var zero T

		return zero, &ConversionError{Err: ErrMissingField, Field: field}
	}

	out, err := dec(v)
	if err != nil {
		return out, withField(err, field)
	}

	return out, nil
}

// TakeOptional is Take where an absent or null field is not an error.
func TakeOptional[T any](d *Document, field string, dec Decoder[T]) (T, bool, error) {
	var zero T

	v, ok := d.pop(field)
	if !ok || KindOf(v) == KindNull {
		return zero, false, nil
	}

	out, err := dec(v)
	if err != nil {
		return zero, false, withField(err, field)
	}

	return out, true, nil
}

// TakeEnum removes field and decodes it as an enum discriminant.
func TakeEnum[E ~int32](d *Document, field string, valid func(E) bool) (E, error) {
	return Take(d, field, Enum(valid))
}
