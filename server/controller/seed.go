// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"
	"fmt"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/server/store"
	"github.com/agntcy/anytype/server/types"
	"google.golang.org/protobuf/types/known/structpb"
)

type bundledRelation struct {
	key    string
	name   string
	format commands.RelationFormat
	hidden bool
}

type bundledType struct {
	key       string
	name      string
	relations []string
	layout    commands.Layout
	hidden    bool
}

// Relations and object types every new space starts with.
var (
	bundledRelations = []bundledRelation{
		{key: "tag", name: "Tag", format: commands.FormatTag},
		{key: "description", name: "Description", format: commands.FormatLongText},
		{key: "source", name: "Source", format: commands.FormatURL},
		{key: "dueDate", name: "Due date", format: commands.FormatDate},
		{key: "status", name: "Status", format: commands.FormatStatus},
		{key: "layout", name: "Layout", format: commands.FormatNumber, hidden: true},
		{key: "lastModifiedDate", name: "Last modified date", format: commands.FormatDate, hidden: true},
	}

	bundledTypes = []bundledType{
		{key: "page", name: "Page", relations: []string{"tag"}, layout: commands.LayoutBasic},
		{key: "bookmark", name: "Bookmark", relations: []string{"tag", "description", "source"}, layout: commands.LayoutBookmark},
		{key: "template", name: "Template", layout: commands.LayoutBasic, hidden: true},
	}
)

// seedSpace writes the bundled relations and object types into a new space.
func seedSpace(ctx context.Context, st types.StoreAPI, spaceID string) error {
	relationIDs := make(map[string]string, len(bundledRelations))

	for _, rel := range bundledRelations {
		id, err := store.DeriveID([]byte(spaceID + "/rel-" + rel.key))
		if err != nil {
			return err
		}

		err = st.Put(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
			commands.KeyID:             wire.NewString(id),
			commands.KeySpaceID:        wire.NewString(spaceID),
			commands.KeyName:           wire.NewString(rel.name),
			commands.KeyLayout:         wire.NewNumber(commands.LayoutRelation),
			commands.KeyRelationKey:    wire.NewString(rel.key),
			commands.KeyRelationFormat: wire.NewNumber(rel.format),
			commands.KeyUniqueKey:      wire.NewString(relationKeyPrefix + rel.key),
			commands.KeyIsHidden:       wire.NewBool(rel.hidden),
		}})
		if err != nil {
			return fmt.Errorf("failed to seed relation %s: %w", rel.name, err)
		}

		relationIDs[rel.key] = id
	}

	for _, typ := range bundledTypes {
		id, err := store.DeriveID([]byte(spaceID + "/ot-" + typ.key))
		if err != nil {
			return err
		}

		relations := make([]*structpb.Value, 0, len(typ.relations))
		for _, key := range typ.relations {
			relations = append(relations, wire.NewString(relationIDs[key]))
		}

		err = st.Put(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
			commands.KeyID:                   wire.NewString(id),
			commands.KeySpaceID:              wire.NewString(spaceID),
			commands.KeyName:                 wire.NewString(typ.name),
			commands.KeyLayout:               wire.NewNumber(commands.LayoutObjectType),
			commands.KeyUniqueKey:            wire.NewString(objectTypeKeyPrefix + typ.key),
			commands.KeyRecommendedRelations: wire.NewList(relations...),
			commands.KeyRecommendedLayout:    wire.NewNumber(typ.layout),
			commands.KeyIsHidden:             wire.NewBool(typ.hidden),
		}})
		if err != nil {
			return fmt.Errorf("failed to seed object type %s: %w", typ.name, err)
		}
	}

	return nil
}
