// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package adapters

import (
	"fmt"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/server/types"
	"google.golang.org/protobuf/types/known/structpb"
)

func anyValue(v *structpb.Value) (*structpb.Value, error) {
	return v, nil
}

// NewFilter adapts a wire filter document to types.Filter.
func NewFilter(doc *structpb.Struct) (types.Filter, error) {
	d := wire.NewDocument(doc)

	operator, _, err := wire.TakeOptional(d, commands.FilterOperator, wire.Enum(commands.Operator.Valid))
	if err != nil {
		return types.Filter{}, err
	}

	if operator != commands.OperatorAnd {
		return types.Filter{}, fmt.Errorf("unsupported filter operator %d", operator)
	}

	key, err := wire.Take(d, commands.FilterRelationKey, wire.String)
	if err != nil {
		return types.Filter{}, err
	}

	condition, err := wire.TakeEnum(d, commands.FilterCondition, commands.Condition.Valid)
	if err != nil {
		return types.Filter{}, err
	}

	value, _, err := wire.TakeOptional(d, commands.FilterValue, anyValue)
	if err != nil {
		return types.Filter{}, err
	}

	return types.Filter{
		RelationKey: key,
		Condition:   condition,
		Value:       value,
	}, nil
}

// NewFilters adapts the filters list of a search request.
func NewFilters(values []*structpb.Value) ([]types.Filter, error) {
	filters := make([]types.Filter, 0, len(values))

	for i, v := range values {
		doc, err := wire.Struct(v)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}

		filter, err := NewFilter(doc)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}

		filters = append(filters, filter)
	}

	return filters, nil
}
