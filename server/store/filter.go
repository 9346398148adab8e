// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server/types"
	"github.com/ipfs/go-datastore/query"
	"golang.org/x/text/cases"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ query.Filter = (*detailsFilter)(nil)

// detailsFilter keeps entries whose details satisfy every filter.
type detailsFilter struct {
	filters []types.Filter
}

func (f *detailsFilter) Filter(e query.Entry) bool {
	details := &structpb.Struct{}
	if err := protojson.Unmarshal(e.Value, details); err != nil {
		logger.Error("failed to decode entry during search", "key", e.Key, "error", err)

		return false
	}

	for _, filter := range f.filters {
		if !Match(details, filter) {
			return false
		}
	}

	return true
}

// Match reports whether details satisfies a single filter.
//
//nolint:cyclop
func Match(details *structpb.Struct, filter types.Filter) bool {
	field := details.GetFields()[filter.RelationKey]

	switch filter.Condition {
	case commands.ConditionNone:
		return true
	case commands.ConditionEqual:
		return anyElement(field, func(v *structpb.Value) bool { return proto.Equal(v, filter.Value) })
	case commands.ConditionNotEqual:
		return !anyElement(field, func(v *structpb.Value) bool { return proto.Equal(v, filter.Value) })
	case commands.ConditionLike:
		return anyElement(field, func(v *structpb.Value) bool { return like(v, filter.Value) })
	case commands.ConditionNotLike:
		return !anyElement(field, func(v *structpb.Value) bool { return like(v, filter.Value) })
	case commands.ConditionIn:
		return anyElement(field, func(v *structpb.Value) bool { return contains(filter.Value, v) })
	case commands.ConditionNotIn:
		return !anyElement(field, func(v *structpb.Value) bool { return contains(filter.Value, v) })
	case commands.ConditionEmpty:
		return isEmpty(field)
	case commands.ConditionNotEmpty:
		return !isEmpty(field)
	case commands.ConditionGreater:
		return compareNumbers(field, filter.Value, func(a, b float64) bool { return a > b })
	case commands.ConditionLess:
		return compareNumbers(field, filter.Value, func(a, b float64) bool { return a < b })
	case commands.ConditionGreaterOrEqual:
		return compareNumbers(field, filter.Value, func(a, b float64) bool { return a >= b })
	case commands.ConditionLessOrEqual:
		return compareNumbers(field, filter.Value, func(a, b float64) bool { return a <= b })
	default:
		logger.Debug("Unsupported condition, skipping", "condition", filter.Condition)

		return false
	}
}

// anyElement applies pred to a scalar field, or to each element of a list field.
func anyElement(field *structpb.Value, pred func(*structpb.Value) bool) bool {
	if field == nil {
		return false
	}

	if list, ok := field.GetKind().(*structpb.Value_ListValue); ok {
		for _, v := range list.ListValue.GetValues() {
			if pred(v) {
				return true
			}
		}

		return false
	}

	return pred(field)
}

func like(field, pattern *structpb.Value) bool {
	s, ok := field.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return false
	}

	fold := cases.Fold()

	return strings.Contains(fold.String(s.StringValue), fold.String(pattern.GetStringValue()))
}

func contains(set, v *structpb.Value) bool {
	for _, candidate := range set.GetListValue().GetValues() {
		if proto.Equal(candidate, v) {
			return true
		}
	}

	return false
}

func isEmpty(field *structpb.Value) bool {
	switch kind := field.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return true
	case *structpb.Value_StringValue:
		return kind.StringValue == ""
	case *structpb.Value_ListValue:
		return len(kind.ListValue.GetValues()) == 0
	case *structpb.Value_StructValue:
		return len(kind.StructValue.GetFields()) == 0
	case *structpb.Value_BoolValue:
		return !kind.BoolValue
	default:
		return false
	}
}

func compareNumbers(field, value *structpb.Value, cmp func(a, b float64) bool) bool {
	a, ok := field.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return false
	}

	b, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return false
	}

	return cmp(a.NumberValue, b.NumberValue)
}
