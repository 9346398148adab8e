// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"
	"maps"
	"strings"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/server/store"
	"github.com/agntcy/anytype/server/types"
	"github.com/agntcy/anytype/server/types/adapters"
	"github.com/agntcy/anytype/utils/logging"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var objectLogger = logging.Logger("controller/object")

const (
	relationKeyPrefix   = "rel-"
	objectTypeKeyPrefix = "ot-"
)

type objectCtlr struct {
	store types.StoreAPI
}

func (c *objectCtlr) ObjectSearch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	doc := wire.NewDocument(req)

	rawFilters, _, err := wire.TakeOptional(doc, commands.FieldFilters, wire.List)
	if err != nil {
		return badInput("invalid filters: %v", err), nil
	}

	limit, _, err := wire.TakeOptional(doc, commands.FieldLimit, wire.Number)
	if err != nil {
		return badInput("invalid limit: %v", err), nil
	}

	filters, err := adapters.NewFilters(rawFilters)
	if err != nil {
		return badInput("invalid filters: %v", err), nil
	}

	objectLogger.Debug("Called object controller's ObjectSearch method", "filters", len(filters), "limit", limit)

	records, err := c.store.Search(ctx, filters)
	if err != nil {
		return failureResponse(err), nil
	}

	if limit > 0 && len(records) > int(limit) {
		records = records[:int(limit)]
	}

	values := make([]*structpb.Value, 0, len(records))
	for _, record := range records {
		values = append(values, structpb.NewStructValue(record))
	}

	return okResponse(map[string]*structpb.Value{
		commands.FieldRecords: wire.NewList(values...),
	}), nil
}

func (c *objectCtlr) ObjectCreateRelation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	objectLogger.Debug("Called object controller's ObjectCreateRelation method")

	spaceID, details, errResp := createRequest(req)
	if errResp != nil {
		return errResp, nil
	}

	if _, ok := details[commands.KeyRelationFormat]; !ok {
		return badInput("relation format is required"), nil
	}

	key := newKey()
	details[commands.KeyRelationKey] = wire.NewString(key)
	details[commands.KeyUniqueKey] = wire.NewString(relationKeyPrefix + key)
	details[commands.KeyLayout] = wire.NewNumber(commands.LayoutRelation)

	return c.create(ctx, spaceID, details)
}

func (c *objectCtlr) ObjectCreateObjectType(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	objectLogger.Debug("Called object controller's ObjectCreateObjectType method")

	spaceID, details, errResp := createRequest(req)
	if errResp != nil {
		return errResp, nil
	}

	if _, ok := details[commands.KeyRecommendedRelations]; !ok {
		details[commands.KeyRecommendedRelations] = wire.NewList()
	}

	if _, ok := details[commands.KeyRecommendedLayout]; !ok {
		details[commands.KeyRecommendedLayout] = wire.NewNumber(commands.LayoutBasic)
	}

	details[commands.KeyUniqueKey] = wire.NewString(objectTypeKeyPrefix + newKey())
	details[commands.KeyLayout] = wire.NewNumber(commands.LayoutObjectType)

	return c.create(ctx, spaceID, details)
}

// ObjectCreate creates an object of the type named by its unique key. The
// object takes the type's recommended layout.
func (c *objectCtlr) ObjectCreate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	objectLogger.Debug("Called object controller's ObjectCreate method")

	uniqueKey, err := wire.Take(wire.NewDocument(req), commands.FieldObjectTypeUniqueKey, wire.String)
	if err != nil {
		return badInput("invalid object type unique key: %v", err), nil
	}

	spaceID, details, errResp := createRequest(req)
	if errResp != nil {
		return errResp, nil
	}

	objectType, err := c.objectTypeByUniqueKey(ctx, spaceID, uniqueKey)
	if err != nil {
		return failureResponse(err), nil
	}

	layout := objectType.GetFields()[commands.KeyRecommendedLayout]
	if layout == nil {
		layout = wire.NewNumber(commands.LayoutBasic)
	}

	details[commands.KeyType] = objectType.GetFields()[commands.KeyID]
	details[commands.KeyLayout] = layout

	return c.create(ctx, spaceID, details)
}

// ObjectSetDetails writes each {key, value} pair onto the object. A null or
// missing value removes the key.
func (c *objectCtlr) ObjectSetDetails(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	doc := wire.NewDocument(req)

	id, err := wire.Take(doc, commands.FieldContextID, wire.String)
	if err != nil {
		return badInput("invalid context id: %v", err), nil
	}

	updates, err := wire.Take(doc, commands.FieldDetails, wire.ListOf(wire.Struct))
	if err != nil {
		return badInput("invalid details: %v", err), nil
	}

	objectLogger.Debug("Called object controller's ObjectSetDetails method", "id", id, "updates", len(updates))

	details, err := c.store.Get(ctx, id)
	if status.Code(err) == codes.NotFound {
		return badInput("object not found: %s", id), nil
	}

	if err != nil {
		return failureResponse(err), nil
	}

	for _, update := range updates {
		u := wire.NewDocument(update)

		key, err := wire.Take(u, commands.FieldKey, wire.String)
		if err != nil {
			return badInput("invalid detail key: %v", err), nil
		}

		if key == commands.KeyID {
			return badInput("the id detail cannot be changed"), nil
		}

		value, ok, _ := wire.TakeOptional(u, commands.FieldValue, anyValue)
		if !ok {
			delete(details.Fields, key)

			continue
		}

		details.Fields[key] = value
	}

	if err := c.store.Put(ctx, details); err != nil {
		return failureResponse(err), nil
	}

	return okResponse(nil), nil
}

func (c *objectCtlr) create(ctx context.Context, spaceID string, details map[string]*structpb.Value) (*structpb.Struct, error) {
	id, err := store.NewID()
	if err != nil {
		return failureResponse(err), nil
	}

	details[commands.KeyID] = wire.NewString(id)
	details[commands.KeySpaceID] = wire.NewString(spaceID)

	if _, ok := details[commands.KeyIsHidden]; !ok {
		details[commands.KeyIsHidden] = wire.NewBool(false)
	}

	record := &structpb.Struct{Fields: details}
	if err := c.store.Put(ctx, record); err != nil {
		return failureResponse(err), nil
	}

	objectLogger.Info("Created object", "id", id, "space", spaceID, "layout", details[commands.KeyLayout].GetNumberValue())

	return okResponse(map[string]*structpb.Value{
		commands.FieldObjectID: wire.NewString(id),
		commands.FieldDetails:  structpb.NewStructValue(record),
	}), nil
}

func (c *objectCtlr) objectTypeByUniqueKey(ctx context.Context, spaceID, uniqueKey string) (*structpb.Struct, error) {
	records, err := c.store.Search(ctx, []types.Filter{
		{RelationKey: commands.KeySpaceID, Condition: commands.ConditionEqual, Value: wire.NewString(spaceID)},
		{RelationKey: commands.KeyLayout, Condition: commands.ConditionEqual, Value: wire.NewNumber(commands.LayoutObjectType)},
		{RelationKey: commands.KeyUniqueKey, Condition: commands.ConditionEqual, Value: wire.NewString(uniqueKey)},
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "object type not found: %s", uniqueKey)
	}

	return records[0], nil
}

// createRequest reads the space id and the details of a create request.
// The returned map is a copy the caller may modify.
func createRequest(req *structpb.Struct) (string, map[string]*structpb.Value, *structpb.Struct) {
	doc := wire.NewDocument(req)

	spaceID, err := wire.Take(doc, commands.FieldSpaceID, wire.String)
	if err != nil || spaceID == "" {
		return "", nil, badInput("space id is required")
	}

	details, _, err := wire.TakeOptional(doc, commands.FieldDetails, wire.Struct)
	if err != nil {
		return "", nil, badInput("invalid details: %v", err)
	}

	fields := maps.Clone(details.GetFields())
	if fields == nil {
		fields = make(map[string]*structpb.Value)
	}

	return spaceID, fields, nil
}

func anyValue(v *structpb.Value) (*structpb.Value, error) {
	return v, nil
}

// newKey returns a relation or object type key in the backend's hex style.
func newKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
