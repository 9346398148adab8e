// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package wire converts between dynamically kinded protobuf documents and Go values.
package wire

import (
	"cmp"
	"math"
	"slices"

	"google.golang.org/protobuf/types/known/structpb"
)

// Kind is the tag of a wire value.
type Kind int

const (
	// KindEmpty is a value slot that carries no payload at all.
	KindEmpty Kind = iota
	KindNull
	KindNumber
	KindString
	KindBool
	KindStruct
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNull:
		return "Null"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindStruct:
		return "Struct"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// KindOf returns the tag of v.
func KindOf(v *structpb.Value) Kind {
	if v == nil {
		return KindEmpty
	}

	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return KindNull
	case *structpb.Value_NumberValue:
		return KindNumber
	case *structpb.Value_StringValue:
		return KindString
	case *structpb.Value_BoolValue:
		return KindBool
	case *structpb.Value_StructValue:
		return KindStruct
	case *structpb.Value_ListValue:
		return KindList
	default:
		return KindEmpty
	}
}

// Decoder projects a wire value onto T.
type Decoder[T any] func(v *structpb.Value) (T, error)

func expect(v *structpb.Value, want Kind) error {
	got := KindOf(v)
	if got == KindEmpty {
		return &ConversionError{Err: ErrEmptyKind, Expected: want}
	}

	if got != want {
		return &ConversionError{Err: ErrWrongKind, Expected: want, Received: got}
	}

	return nil
}

func String(v *structpb.Value) (string, error) {
	if err := expect(v, KindString); err != nil {
		return "", err
	}

	return v.GetStringValue(), nil
}

func Number(v *structpb.Value) (float64, error) {
	if err := expect(v, KindNumber); err != nil {
		return 0, err
	}

	return v.GetNumberValue(), nil
}

func Bool(v *structpb.Value) (bool, error) {
	if err := expect(v, KindBool); err != nil {
		return false, err
	}

	return v.GetBoolValue(), nil
}

func Struct(v *structpb.Value) (*structpb.Struct, error) {
	if err := expect(v, KindStruct); err != nil {
		return nil, err
	}

	return v.GetStructValue(), nil
}

func List(v *structpb.Value) ([]*structpb.Value, error) {
	if err := expect(v, KindList); err != nil {
		return nil, err
	}

	return v.GetListValue().GetValues(), nil
}

// StringOf decodes a string into a named string type such as an identifier.
func StringOf[S ~string](v *structpb.Value) (S, error) {
	s, err := String(v)

	return S(s), err
}

// ListOf decodes a wire list element-wise, stopping at the first element error.
func ListOf[T any](dec Decoder[T]) Decoder[[]T] {
	return func(v *structpb.Value) ([]T, error) {
		values, err := List(v)
		if err != nil {
			return nil, err
		}

		out := make([]T, 0, len(values))
		for _, item := range values {
			decoded, err := dec(item)
			if err != nil {
				return nil, err
			}

			out = append(out, decoded)
		}

		return out, nil
	}
}

// SetOf decodes a wire list into a sorted slice without duplicates.
func SetOf[T cmp.Ordered](dec Decoder[T]) Decoder[[]T] {
	list := ListOf(dec)

	return func(v *structpb.Value) ([]T, error) {
		out, err := list(v)
		if err != nil {
			return nil, err
		}

		slices.Sort(out)

		return slices.Compact(out), nil
	}
}

// Enum decodes a number as an integer enum discriminant. The float is
// truncated toward zero and must be accepted by valid.
func Enum[E ~int32](valid func(E) bool) Decoder[E] {
	return func(v *structpb.Value) (E, error) {
		f, err := Number(v)
		if err != nil {
			return 0, err
		}

		n := math.Trunc(f)
		if n < math.MinInt32 || n > math.MaxInt32 || !valid(E(int32(n))) {
			return 0, &ConversionError{Err: ErrInvalidEnumValue, Value: int64(n)}
		}

		return E(int32(n)), nil
	}
}

// Encoding helpers. All of them are total.

func NewString[S ~string](s S) *structpb.Value {
	return structpb.NewStringValue(string(s))
}

func NewNumber[N ~float64 | ~int32 | ~int64 | ~int](n N) *structpb.Value {
	return structpb.NewNumberValue(float64(n))
}

func NewBool(b bool) *structpb.Value {
	return structpb.NewBoolValue(b)
}

func NewNull() *structpb.Value {
	return structpb.NewNullValue()
}

func NewList(values ...*structpb.Value) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

func NewStruct(fields map[string]*structpb.Value) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

// NewStringList encodes a slice of string-like values as a wire list.
func NewStringList[S ~string](items []S) *structpb.Value {
	values := make([]*structpb.Value, 0, len(items))
	for _, item := range items {
		values = append(values, NewString(item))
	}

	return NewList(values...)
}
