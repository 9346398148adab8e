// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type color int32

const (
	red color = iota
	green
	blue
)

func validColor(c color) bool { return c >= red && c <= blue }

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindEmpty, KindOf(nil))
	assert.Equal(t, KindEmpty, KindOf(&structpb.Value{}))
	assert.Equal(t, KindNull, KindOf(NewNull()))
	assert.Equal(t, KindNumber, KindOf(NewNumber(1.5)))
	assert.Equal(t, KindString, KindOf(NewString("a")))
	assert.Equal(t, KindBool, KindOf(NewBool(true)))
	assert.Equal(t, KindStruct, KindOf(NewStruct(nil)))
	assert.Equal(t, KindList, KindOf(NewList()))
}

func TestDecodeScalars(t *testing.T) {
	s, err := String(NewString("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	n, err := Number(NewNumber(2.5))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, n, 0)

	b, err := Bool(NewBool(true))
	require.NoError(t, err)
	assert.True(t, b)

	_, err = String(NewNumber(1))
	require.ErrorIs(t, err, ErrWrongKind)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, KindString, convErr.Expected)
	assert.Equal(t, KindNumber, convErr.Received)
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = Number(&structpb.Value{})
	assert.ErrorIs(t, err, ErrEmptyKind)
}

func TestListAndSet(t *testing.T) {
	list := NewList(NewString("b"), NewString("a"), NewString("b"))

	items, err := ListOf(String)(list)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b"}, items)

	set, err := SetOf(String)(list)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, set)

	_, err = ListOf(String)(NewList(NewString("a"), NewBool(false)))
	assert.ErrorIs(t, err, ErrWrongKind)

	_, err = ListOf(String)(NewString("a"))
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestEnum(t *testing.T) {
	c, err := Enum(validColor)(NewNumber(2.9))
	require.NoError(t, err)
	assert.Equal(t, blue, c)

	_, err = Enum(validColor)(NewNumber(7))
	require.ErrorIs(t, err, ErrInvalidEnumValue)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, int64(7), convErr.Value)

	_, err = Enum(validColor)(NewBool(true))
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestDocument(t *testing.T) {
	source := &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":     NewString("obj-1"),
		"layout": NewNumber(1),
		"extra":  NewString("kept"),
		"empty":  NewNull(),
	}}

	doc := NewDocument(source)

	id, err := Take(doc, "id", String)
	require.NoError(t, err)
	assert.Equal(t, "obj-1", id)
	assert.False(t, doc.Has("id"))

	// taking twice fails, the field is consumed
	_, err = Take(doc, "id", String)
	require.ErrorIs(t, err, ErrMissingField)
	assert.ErrorContains(t, err, `field "id"`)

	layout, err := TakeEnum(doc, "layout", validColor)
	require.NoError(t, err)
	assert.Equal(t, green, layout)

	_, ok, err := TakeOptional(doc, "missing", String)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = TakeOptional(doc, "empty", String)
	require.NoError(t, err)
	assert.False(t, ok)

	rest := doc.Residual()
	assert.Len(t, rest.GetFields(), 1)
	assert.Equal(t, "kept", rest.GetFields()["extra"].GetStringValue())
	assert.Equal(t, 0, doc.Len())

	// the source document is not modified
	assert.Len(t, source.GetFields(), 4)
}

func TestTakeWrongKindNamesField(t *testing.T) {
	doc := NewDocument(&structpb.Struct{Fields: map[string]*structpb.Value{
		"name": NewNumber(3),
	}})

	_, err := Take(doc, "name", String)
	require.ErrorIs(t, err, ErrWrongKind)
	assert.EqualError(t, err, `field "name": expected kind String, received Number`)
}
