// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var bookmarkRelations = []RelationSpec{
	{Name: "Tag", Format: Format(FormatMultiSelect)},
	{Name: "Description", Format: Format(FormatText)},
	{Name: "Source", Format: Format(FormatURL)},
}

func TestGetObjectType(t *testing.T) {
	ctx := t.Context()

	t.Run("bundled type", func(t *testing.T) {
		space, _ := newTestSpace(t, true)

		bookmark, err := space.GetObjectType(ctx, ObjectTypeSpec{Name: "Bookmark", RecommendedRelations: bookmarkRelations})
		require.NoError(t, err)
		require.NotNil(t, bookmark)
		assert.Equal(t, "ot-bookmark", bookmark.UniqueKey)
		assert.Len(t, bookmark.RecommendedRelations, 3)
	})

	t.Run("relation order does not matter", func(t *testing.T) {
		space, _ := newTestSpace(t, true)

		reversed := []RelationSpec{bookmarkRelations[2], bookmarkRelations[0], bookmarkRelations[1]}

		bookmark, err := space.GetObjectType(ctx, ObjectTypeSpec{Name: "bookmark", RecommendedRelations: reversed})
		require.NoError(t, err)
		require.NotNil(t, bookmark)
	})

	t.Run("recommended relations mismatch", func(t *testing.T) {
		space, _ := newTestSpace(t, true)

		_, err := space.GetObjectType(ctx, ObjectTypeSpec{Name: "Bookmark", RecommendedRelations: bookmarkRelations[:2]})

		var mismatch *RecommendedRelationsMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Len(t, mismatch.Expected, 3)
		assert.Len(t, mismatch.Received, 2)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("hidden types are invisible", func(t *testing.T) {
		space, _ := newTestSpace(t, true)

		template, err := space.GetObjectType(ctx, ObjectTypeSpec{Name: "Template"})
		require.NoError(t, err)
		assert.Nil(t, template)
	})

	t.Run("created type keeps its relation set", func(t *testing.T) {
		space, _ := newTestSpace(t, false)

		created, err := space.ObtainObjectType(ctx, ObjectTypeSpec{Name: "Bookmark", RecommendedRelations: bookmarkRelations})
		require.NoError(t, err)

		_, err = space.GetObjectType(ctx, ObjectTypeSpec{Name: "Bookmark", RecommendedRelations: bookmarkRelations[:2]})

		var mismatch *RecommendedRelationsMismatchError
		require.ErrorAs(t, err, &mismatch)

		found, err := space.GetObjectType(ctx, ObjectTypeSpec{Name: "Bookmark", RecommendedRelations: bookmarkRelations})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("missing type", func(t *testing.T) {
		space, _ := newTestSpace(t, false)

		missing, err := space.GetObjectType(ctx, ObjectTypeSpec{Name: "Bookmark", RecommendedRelations: bookmarkRelations})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestObtainObjectType(t *testing.T) {
	ctx := t.Context()

	t.Run("creates the type and its relations once", func(t *testing.T) {
		space, calls := newTestSpace(t, false)
		spec := ObjectTypeSpec{
			Name: "Task",
			RecommendedRelations: []RelationSpec{
				{Name: "Due date", Format: Format(FormatDate)},
				{Name: "Done", Format: Format(FormatCheckbox)},
				{Name: "Done", Format: Format(FormatCheckbox)},
			},
		}

		first, err := space.ObtainObjectType(ctx, spec)
		require.NoError(t, err)
		require.Len(t, first.RecommendedRelations, 2)

		second, err := space.ObtainObjectType(ctx, spec)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.ElementsMatch(t, first.RecommendedRelations, second.RecommendedRelations)

		assert.Equal(t, 1, calls.count("ObjectCreateObjectType"))
		assert.Equal(t, 2, calls.count("ObjectCreateRelation"))
	})

	t.Run("reuses existing relations", func(t *testing.T) {
		space, calls := newTestSpace(t, true)

		article, err := space.ObtainObjectType(ctx, ObjectTypeSpec{
			Name:                 "Article",
			RecommendedRelations: append([]RelationSpec{{Name: "Author", Format: ObjectFormat()}}, bookmarkRelations...),
		})
		require.NoError(t, err)
		require.Len(t, article.RecommendedRelations, 4)
		assert.Equal(t, 1, calls.count("ObjectCreateRelation"))
	})

	t.Run("conflicting relation fails", func(t *testing.T) {
		space, calls := newTestSpace(t, true)

		_, err := space.ObtainObjectType(ctx, ObjectTypeSpec{
			Name:                 "Meeting",
			RecommendedRelations: []RelationSpec{{Name: "Due date", Format: Format(FormatText)}},
		})

		var mismatch *FormatMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 0, calls.count("ObjectCreateObjectType"))
	})
}

func TestCreateObjectType(t *testing.T) {
	t.Run("same relation name with two formats", func(t *testing.T) {
		space, calls := newTestSpace(t, false)

		_, err := space.CreateObjectType(t.Context(), ObjectTypeSpec{
			Name: "Event",
			RecommendedRelations: []RelationSpec{
				{Name: "When", Format: Format(FormatDate)},
				{Name: "Where", Format: Format(FormatText)},
				{Name: "when", Format: Format(FormatText)},
			},
		})

		var conflict *ConflictingRelationSpecsError
		require.ErrorAs(t, err, &conflict)
		assert.True(t, sameName("When", conflict.Name))
		assert.ElementsMatch(t, []RelationFormat{Format(FormatDate), Format(FormatText)}, []RelationFormat{conflict.First, conflict.Second})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Equal(t, 0, calls.count("ObjectCreateRelation"))
		assert.Equal(t, 0, calls.count("ObjectCreateObjectType"))
	})
}

func TestSameSpecs(t *testing.T) {
	a := []RelationSpec{{Name: "Tag", Format: Format(FormatMultiSelect)}, {Name: "Source", Format: Format(FormatURL)}}
	b := []RelationSpec{{Name: "source", Format: Format(FormatURL)}, {Name: "TAG", Format: Format(FormatMultiSelect)}}

	assert.True(t, sameSpecs(a, b))
	assert.True(t, sameSpecs(nil, []RelationSpec{}))
	assert.False(t, sameSpecs(a, a[:1]))
	assert.False(t, sameSpecs(a, []RelationSpec{{Name: "Tag", Format: Format(FormatText)}, a[1]}))
	assert.Len(t, uniqueSpecs(append(a, b...)), 2)
}
