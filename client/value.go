// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agntcy/anytype/api/wire"
	"google.golang.org/protobuf/types/known/structpb"
)

// RelationValue is a value stored under a relation. It is one of TextValue,
// NumberValue, DateValue, CheckboxValue, URLValue, EmailValue, PhoneValue or
// ObjectValue.
type RelationValue interface {
	// InferredFormat is the narrowest format able to hold the value.
	InferredFormat() RelationFormat

	encode() *structpb.Value
}

type (
	TextValue     string
	NumberValue   float64
	CheckboxValue bool
	URLValue      string
	EmailValue    string
	PhoneValue    string
)

// DateValue is a point in time stored with second precision.
type DateValue time.Time

// ObjectValue references other objects.
type ObjectValue []*Object

func (TextValue) InferredFormat() RelationFormat     { return Format(FormatText) }
func (NumberValue) InferredFormat() RelationFormat   { return Format(FormatNumber) }
func (DateValue) InferredFormat() RelationFormat     { return Format(FormatDate) }
func (CheckboxValue) InferredFormat() RelationFormat { return Format(FormatCheckbox) }
func (URLValue) InferredFormat() RelationFormat      { return Format(FormatURL) }
func (EmailValue) InferredFormat() RelationFormat    { return Format(FormatEmail) }
func (PhoneValue) InferredFormat() RelationFormat    { return Format(FormatPhone) }

// InferredFormat of an object list allows exactly the current types of the
// referenced objects.
func (v ObjectValue) InferredFormat() RelationFormat {
	types := make([]ObjectTypeID, 0, len(v))
	for _, o := range v {
		types = append(types, o.TypeID())
	}

	return ObjectFormat(types...)
}

func (v TextValue) encode() *structpb.Value     { return wire.NewString(v) }
func (v NumberValue) encode() *structpb.Value   { return wire.NewNumber(v) }
func (v CheckboxValue) encode() *structpb.Value { return wire.NewBool(bool(v)) }
func (v URLValue) encode() *structpb.Value      { return wire.NewString(v) }
func (v EmailValue) encode() *structpb.Value    { return wire.NewString(v) }
func (v PhoneValue) encode() *structpb.Value    { return wire.NewString(v) }

func (v DateValue) encode() *structpb.Value {
	return wire.NewNumber(time.Time(v).Unix())
}

func (v ObjectValue) encode() *structpb.Value {
	ids := make([]ObjectID, 0, len(v))
	for _, o := range v {
		ids = append(ids, o.ID())
	}

	return wire.NewStringList(ids)
}

func (v DateValue) Time() time.Time { return time.Time(v) }

func (v DateValue) String() string { return time.Time(v).UTC().Format(time.RFC3339) }

// NewDateValue truncates t to the second, the precision dates are stored with.
func NewDateValue(t time.Time) DateValue {
	return DateValue(time.Unix(t.Unix(), 0).UTC())
}

// Validate checks that value fits the format of relation and returns the
// key and wire value to write. Every write goes through here: the backend
// accepts anything.
func Validate(relation *Relation, value RelationValue) (RelationKey, *structpb.Value, error) {
	if relation == nil {
		return "", nil, errors.New("cannot write to a nil relation")
	}

	if value == nil {
		return "", nil, errors.New("cannot write a nil relation value")
	}

	received := value.InferredFormat()
	if !relation.Format.IsSuperset(received) {
		return "", nil, &IncompatibleValueError{
			Relation: relation.Name,
			Expected: relation.Format,
			Received: received,
		}
	}

	return relation.Key, value.encode(), nil
}

// decodeValue reads a stored value according to the relation's format.
// Object references are looked up in space.
func decodeValue(ctx context.Context, space *Space, format RelationFormat, v *structpb.Value) (RelationValue, error) {
	switch format.Kind {
	case FormatText:
		s, err := wire.String(v)

		return TextValue(s), err
	case FormatNumber:
		n, err := wire.Number(v)

		return NumberValue(n), err
	case FormatDate:
		n, err := wire.Number(v)
		if err != nil {
			return nil, err
		}

		return DateValue(time.Unix(int64(n), 0).UTC()), nil
	case FormatCheckbox:
		b, err := wire.Bool(v)

		return CheckboxValue(b), err
	case FormatURL:
		s, err := wire.String(v)

		return URLValue(s), err
	case FormatEmail:
		s, err := wire.String(v)

		return EmailValue(s), err
	case FormatPhone:
		s, err := wire.String(v)

		return PhoneValue(s), err
	case FormatObject:
		ids, err := decodeObjectIDs(v)
		if err != nil {
			return nil, err
		}

		objects, err := space.objectsByID(ctx, ids)
		if err != nil {
			return nil, err
		}

		return ObjectValue(objects), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, format)
	}
}

// decodeObjectIDs accepts a list of ids or a single id.
func decodeObjectIDs(v *structpb.Value) ([]ObjectID, error) {
	if wire.KindOf(v) == wire.KindString {
		id, err := wire.StringOf[ObjectID](v)

		return []ObjectID{id}, err
	}

	return wire.ListOf(wire.StringOf[ObjectID])(v)
}
