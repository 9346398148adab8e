// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"slices"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"golang.org/x/text/cases"
	"google.golang.org/protobuf/types/known/structpb"
)

// decodeFunc decodes a search record and reports whether the entity is hidden.
type decodeFunc[T any] func(*structpb.Struct) (T, bool, error)

func newFilter(key string, condition commands.Condition, value *structpb.Value) *structpb.Value {
	return wire.NewStruct(map[string]*structpb.Value{
		commands.FilterOperator:    wire.NewNumber(commands.OperatorAnd),
		commands.FilterRelationKey: wire.NewString(key),
		commands.FilterCondition:   wire.NewNumber(condition),
		commands.FilterValue:       value,
	})
}

// search runs ObjectSearch in the space, restricted to the given layouts, and
// decodes every record. Hidden entities are dropped. Records that fail to
// decode are logged and skipped.
func search[T any](ctx context.Context, s *Space, layouts []commands.Layout, decode decodeFunc[T], filters ...*structpb.Value) ([]T, error) {
	layoutValues := make([]*structpb.Value, 0, len(layouts))
	for _, l := range layouts {
		layoutValues = append(layoutValues, wire.NewNumber(l))
	}

	filters = append(filters,
		newFilter(commands.KeySpaceID, commands.ConditionIn, wire.NewList(wire.NewString(s.id))),
		newFilter(commands.KeyLayout, commands.ConditionIn, wire.NewList(layoutValues...)),
	)

	doc, err := s.call(ctx, commands.ObjectSearch, map[string]*structpb.Value{
		commands.FieldFilters: wire.NewList(filters...),
	})
	if err != nil {
		return nil, err
	}

	records, _, err := wire.TakeOptional(doc, commands.FieldRecords, wire.ListOf(wire.Struct))
	if err != nil {
		return nil, fmt.Errorf("failed to decode search records: %w", err)
	}

	out := make([]T, 0, len(records))

	for _, record := range records {
		entity, hidden, err := decode(record)
		if err != nil {
			logger.Warn("Skipping undecodable search record", "error", err)

			continue
		}

		if hidden {
			continue
		}

		out = append(out, entity)
	}

	return out, nil
}

// takeLayout reads the layout of a record. A layout outside allowed means the
// search that produced the record was built wrong, so it panics.
func takeLayout(d *wire.Document, allowed ...commands.Layout) commands.Layout {
	layout, err := wire.TakeEnum(d, commands.KeyLayout, commands.Layout.Valid)
	if err != nil {
		panic(fmt.Sprintf("record without a valid layout: %v", err))
	}

	if !slices.Contains(allowed, layout) {
		panic(fmt.Sprintf("record has layout %d, expected one of %v", layout, allowed))
	}

	return layout
}

func takeHidden(d *wire.Document) (bool, error) {
	hidden, _, err := wire.TakeOptional(d, commands.KeyIsHidden, wire.Bool)

	return hidden, err
}

// sameName compares entity names the way the backend's Like condition does.
func sameName(a, b string) bool {
	return foldName(a) == foldName(b)
}

func foldName(name string) string {
	return cases.Fold().String(name)
}
