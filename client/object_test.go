// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"testing"
	"time"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type objectFixture struct {
	space    *Space
	calls    *callCounter
	person   *ObjectType
	note     *ObjectType
	summary  *Relation
	due      *Relation
	author   *Relation
	pinned   *Relation
	homepage *Relation
}

func newObjectFixture(t *testing.T) *objectFixture {
	t.Helper()

	ctx := t.Context()
	space, calls := newTestSpace(t, false)

	obtainRelation := func(name string, format RelationFormat) *Relation {
		r, err := space.ObtainRelation(ctx, RelationSpec{Name: name, Format: format})
		require.NoError(t, err)

		return r
	}

	obtainType := func(name string, relations ...*Relation) *ObjectType {
		specs := make([]RelationSpec, 0, len(relations))
		for _, r := range relations {
			specs = append(specs, r.Spec())
		}

		ot, err := space.ObtainObjectType(ctx, ObjectTypeSpec{Name: name, RecommendedRelations: specs})
		require.NoError(t, err)

		return ot
	}

	f := &objectFixture{space: space, calls: calls}
	f.summary = obtainRelation("Summary", Format(FormatText))
	f.due = obtainRelation("Due date", Format(FormatDate))
	f.pinned = obtainRelation("Pinned", Format(FormatCheckbox))
	f.homepage = obtainRelation("Homepage", Format(FormatURL))
	f.person = obtainType("Person", f.homepage)
	f.author = obtainRelation("Author", ObjectFormat(f.person.ID))
	f.note = obtainType("Note", f.summary, f.due, f.author, f.pinned)

	return f
}

func TestObtainObject(t *testing.T) {
	ctx := t.Context()
	f := newObjectFixture(t)

	first, err := f.space.ObtainObject(ctx, ObjectSpec{Name: "Meeting notes", Type: f.note})
	require.NoError(t, err)
	assert.Equal(t, "Meeting notes", first.Name())
	assert.Equal(t, f.note.ID, first.TypeID())

	second, err := f.space.ObtainObject(ctx, ObjectSpec{Name: "Meeting notes", Type: f.note})
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, 1, f.calls.count("ObjectCreate"))

	t.Run("same name, other type", func(t *testing.T) {
		other, err := f.space.GetObject(ctx, ObjectSpec{Name: "Meeting notes", Type: f.person})
		require.NoError(t, err)
		assert.Nil(t, other)
	})

	t.Run("ambiguous", func(t *testing.T) {
		for range 2 {
			_, err := f.space.CreateObject(ctx, ObjectDescription{Type: f.person, Name: "Alex"})
			require.NoError(t, err)
		}

		_, err := f.space.GetObject(ctx, ObjectSpec{Name: "Alex", Type: f.person})

		var ambiguous *AmbiguousEntityError
		require.ErrorAs(t, err, &ambiguous)
		assert.Equal(t, EntityObject, ambiguous.Kind)
	})

	t.Run("hidden objects are invisible", func(t *testing.T) {
		_, err := f.space.call(ctx, commands.ObjectCreate, map[string]*structpb.Value{
			commands.FieldSpaceID:             wire.NewString(f.space.ID()),
			commands.FieldObjectTypeUniqueKey: wire.NewString(f.note.UniqueKey),
			commands.FieldDetails: wire.NewStruct(map[string]*structpb.Value{
				commands.KeyName:     wire.NewString("Archived"),
				commands.KeyIsHidden: wire.NewBool(true),
			}),
		})
		require.NoError(t, err)

		hidden, err := f.space.GetObject(ctx, ObjectSpec{Name: "Archived", Type: f.note})
		require.NoError(t, err)
		assert.Nil(t, hidden)
	})

	t.Run("missing type", func(t *testing.T) {
		before := f.calls.count("ObjectCreate")

		_, err := f.space.GetObject(ctx, ObjectSpec{Name: "Meeting notes"})
		require.ErrorIs(t, err, ErrMissingObjectType)

		_, err = f.space.ObtainObject(ctx, ObjectSpec{Name: "Meeting notes"})
		require.ErrorIs(t, err, ErrMissingObjectType)
		assert.Equal(t, before, f.calls.count("ObjectCreate"))
	})

	t.Run("type", func(t *testing.T) {
		objectType, err := first.Type(ctx)
		require.NoError(t, err)
		require.NotNil(t, objectType)
		assert.Equal(t, f.note.ID, objectType.ID)
		assert.ElementsMatch(t, f.note.RecommendedRelations, objectType.RecommendedRelations)
	})
}

func TestObjectValues(t *testing.T) {
	ctx := t.Context()
	f := newObjectFixture(t)

	note, err := f.space.ObtainObject(ctx, ObjectSpec{Name: "Release", Type: f.note})
	require.NoError(t, err)

	t.Run("unset value", func(t *testing.T) {
		value, err := note.Get(ctx, f.summary)
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("text", func(t *testing.T) {
		previous, err := note.Set(ctx, f.summary, TextValue("hello"))
		require.NoError(t, err)
		assert.Nil(t, previous)

		value, err := note.Get(ctx, f.summary)
		require.NoError(t, err)
		assert.Equal(t, TextValue("hello"), value)

		previous, err = note.Set(ctx, f.summary, TextValue("world"))
		require.NoError(t, err)
		assert.Equal(t, TextValue("hello"), previous)

		reloaded := reloadObject(ctx, t, f, note)
		value, err = reloaded.Get(ctx, f.summary)
		require.NoError(t, err)
		assert.Equal(t, TextValue("world"), value)
	})

	t.Run("date keeps seconds", func(t *testing.T) {
		due := time.Date(2024, 6, 7, 12, 47, 15, 500_000_000, time.UTC)

		_, err := note.Set(ctx, f.due, NewDateValue(due))
		require.NoError(t, err)

		value, err := reloadObject(ctx, t, f, note).Get(ctx, f.due)
		require.NoError(t, err)
		require.IsType(t, DateValue{}, value)
		assert.True(t, due.Truncate(time.Second).Equal(value.(DateValue).Time())) //nolint:forcetypeassert
	})

	t.Run("checkbox", func(t *testing.T) {
		_, err := note.Set(ctx, f.pinned, CheckboxValue(true))
		require.NoError(t, err)

		value, err := note.Get(ctx, f.pinned)
		require.NoError(t, err)
		assert.Equal(t, CheckboxValue(true), value)
	})

	t.Run("incompatible value", func(t *testing.T) {
		before := f.calls.count("ObjectSetDetails")

		_, err := note.Set(ctx, f.summary, NumberValue(3))

		var incompatible *IncompatibleValueError
		require.ErrorAs(t, err, &incompatible)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Equal(t, before, f.calls.count("ObjectSetDetails"))
	})

	t.Run("overwrites a value stored with another format", func(t *testing.T) {
		_, err := f.space.call(ctx, commands.ObjectSetDetails, map[string]*structpb.Value{
			commands.FieldContextID: wire.NewString(note.ID()),
			commands.FieldDetails: wire.NewList(wire.NewStruct(map[string]*structpb.Value{
				commands.FieldKey:   wire.NewString(f.summary.Key),
				commands.FieldValue: wire.NewNumber(42),
			})),
		})
		require.NoError(t, err)

		stale := reloadObject(ctx, t, f, note)
		_, err = stale.Get(ctx, f.summary)
		require.Error(t, err)

		previous, err := stale.Set(ctx, f.summary, TextValue("fixed"))
		require.NoError(t, err)
		assert.Nil(t, previous)

		value, err := reloadObject(ctx, t, f, note).Get(ctx, f.summary)
		require.NoError(t, err)
		assert.Equal(t, TextValue("fixed"), value)
	})

	t.Run("object references", func(t *testing.T) {
		alex, err := f.space.CreateObject(ctx, ObjectDescription{
			Type:   f.person,
			Name:   "Alex",
			Values: []RelationAssignment{{Relation: f.homepage, Value: URLValue("https://example.com/alex")}},
		})
		require.NoError(t, err)

		_, err = note.Set(ctx, f.author, ObjectValue{alex})
		require.NoError(t, err)

		value, err := reloadObject(ctx, t, f, note).Get(ctx, f.author)
		require.NoError(t, err)

		authors, ok := value.(ObjectValue)
		require.True(t, ok)
		require.Len(t, authors, 1)
		assert.Equal(t, alex.ID(), authors[0].ID())

		homepage, err := authors[0].Get(ctx, f.homepage)
		require.NoError(t, err)
		assert.Equal(t, URLValue("https://example.com/alex"), homepage)
	})

	t.Run("object reference of the wrong type", func(t *testing.T) {
		other, err := f.space.ObtainObject(ctx, ObjectSpec{Name: "Draft", Type: f.note})
		require.NoError(t, err)

		_, err = note.Set(ctx, f.author, ObjectValue{other})

		var incompatible *IncompatibleValueError
		require.ErrorAs(t, err, &incompatible)
	})
}

func TestCreateObject(t *testing.T) {
	ctx := t.Context()
	f := newObjectFixture(t)

	t.Run("validates values", func(t *testing.T) {
		_, err := f.space.CreateObject(ctx, ObjectDescription{
			Type:   f.note,
			Name:   "Invalid",
			Values: []RelationAssignment{{Relation: f.due, Value: TextValue("tomorrow")}},
		})
		require.Error(t, err)
		assert.Equal(t, 0, f.calls.count("ObjectCreate"))
	})

	t.Run("requires a type", func(t *testing.T) {
		_, err := f.space.CreateObject(ctx, ObjectDescription{Name: "Untyped"})
		require.ErrorIs(t, err, ErrMissingObjectType)
		assert.Equal(t, 0, f.calls.count("ObjectCreate"))
	})

	t.Run("stores values", func(t *testing.T) {
		created, err := f.space.CreateObject(ctx, ObjectDescription{
			Type: f.note,
			Name: "Complete",
			Values: []RelationAssignment{
				{Relation: f.summary, Value: TextValue("all set")},
				{Relation: f.pinned, Value: CheckboxValue(false)},
			},
		})
		require.NoError(t, err)

		found, err := f.space.GetObject(ctx, ObjectSpec{Name: "Complete", Type: f.note})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID(), found.ID())

		summary, err := found.Get(ctx, f.summary)
		require.NoError(t, err)
		assert.Equal(t, TextValue("all set"), summary)

		assert.Contains(t, found.Details().GetFields(), string(f.pinned.Key))
	})
}

func TestDecodeObject(t *testing.T) {
	record := func(spaceID *structpb.Value) *structpb.Struct {
		return &structpb.Struct{Fields: map[string]*structpb.Value{
			commands.KeyID:      wire.NewString("obj-1"),
			commands.KeyName:    wire.NewString("Release"),
			commands.KeyType:    wire.NewString("type-1"),
			commands.KeyLayout:  wire.NewNumber(commands.LayoutBasic),
			commands.KeySpaceID: spaceID,
			"summary":           wire.NewString("ready"),
		}}
	}

	t.Run("scope metadata is not a relation value", func(t *testing.T) {
		object, hidden, err := (&Space{}).decodeObject(record(wire.NewString("space-1")))
		require.NoError(t, err)
		assert.False(t, hidden)
		assert.Equal(t, ObjectID("obj-1"), object.ID())
		assert.NotContains(t, object.Details().GetFields(), commands.KeySpaceID)
		assert.Contains(t, object.Details().GetFields(), "summary")
	})

	t.Run("malformed space id", func(t *testing.T) {
		_, _, err := (&Space{}).decodeObject(record(wire.NewNumber(7)))
		require.Error(t, err)
	})
}

func reloadObject(ctx context.Context, t *testing.T, f *objectFixture, o *Object) *Object {
	t.Helper()

	reloaded, err := f.space.GetObject(ctx, ObjectSpec{Name: o.Name(), Type: f.note})
	require.NoError(t, err)
	require.NotNil(t, reloaded)

	return reloaded
}
