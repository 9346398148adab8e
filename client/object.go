// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Only objects with these layouts are visible through this package.
var objectLayouts = []commands.Layout{commands.LayoutBasic, commands.LayoutBookmark}

// ObjectSpec identifies an object by name and type.
type ObjectSpec struct {
	Name string
	Type *ObjectType
}

// RelationAssignment is a value to write under a relation.
type RelationAssignment struct {
	Relation *Relation
	Value    RelationValue
}

// ObjectDescription is everything needed to create an object.
type ObjectDescription struct {
	Type   *ObjectType
	Name   string
	Values []RelationAssignment
}

// Object is a snapshot of an object. Its relation values are read lazily
// with Get; object references are resolved on every read.
type Object struct {
	space  *Space
	id     ObjectID
	name   string
	typeID ObjectTypeID

	mu      sync.RWMutex
	details *structpb.Struct
}

func (o *Object) ID() ObjectID { return o.id }

func (o *Object) Name() string { return o.name }

func (o *Object) TypeID() ObjectTypeID { return o.typeID }

// Type resolves the object's type. It returns nil if the type is hidden or
// no longer exists.
func (o *Object) Type(ctx context.Context) (*ObjectType, error) {
	return o.space.objectTypeByID(ctx, o.typeID)
}

// Get returns the value stored under relation, or nil when it is not set.
func (o *Object) Get(ctx context.Context, relation *Relation) (RelationValue, error) {
	o.mu.RLock()
	v, ok := o.details.GetFields()[string(relation.Key)]
	o.mu.RUnlock()

	if !ok || wire.KindOf(v) == wire.KindNull {
		return nil, nil
	}

	value, err := decodeValue(ctx, o.space, relation.Format, v)
	if err != nil {
		return nil, fmt.Errorf("failed to read relation %s: %w", relation.Name, err)
	}

	return value, nil
}

// Set validates and writes value under relation and returns the value it
// replaces, or nil if there was none.
func (o *Object) Set(ctx context.Context, relation *Relation, value RelationValue) (RelationValue, error) {
	key, encoded, err := Validate(relation, value)
	if err != nil {
		return nil, err
	}

	previous, err := o.Get(ctx, relation)
	if err != nil {
		// The write replaces the unreadable value.
		logger.Debug("Overwriting undecodable value", "object", o.id, "relation", relation.Name, "error", err)

		previous = nil
	}

	_, err = o.space.call(ctx, commands.ObjectSetDetails, map[string]*structpb.Value{
		commands.FieldContextID: wire.NewString(o.id),
		commands.FieldDetails: wire.NewList(wire.NewStruct(map[string]*structpb.Value{
			commands.FieldKey:   wire.NewString(key),
			commands.FieldValue: encoded,
		})),
	})
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.details.Fields[string(key)] = encoded
	o.mu.Unlock()

	return previous, nil
}

func (s *Space) decodeObject(record *structpb.Struct) (*Object, bool, error) {
	d := wire.NewDocument(record)
	takeLayout(d, objectLayouts...)

	id, err := wire.Take(d, commands.KeyID, wire.StringOf[ObjectID])
	if err != nil {
		return nil, false, err
	}

	name, _, err := wire.TakeOptional(d, commands.KeyName, wire.String)
	if err != nil {
		return nil, false, err
	}

	typeID, err := wire.Take(d, commands.KeyType, wire.StringOf[ObjectTypeID])
	if err != nil {
		return nil, false, err
	}

	hidden, err := takeHidden(d)
	if err != nil {
		return nil, false, err
	}

	// Scope metadata, not a relation value.
	if _, _, err := wire.TakeOptional(d, commands.KeySpaceID, wire.String); err != nil {
		return nil, false, err
	}

	return &Object{
		space:   s,
		id:      id,
		name:    name,
		typeID:  typeID,
		details: d.Residual(),
	}, hidden, nil
}

// GetObject returns the object with spec's name and type, or nil when there
// is none.
func (s *Space) GetObject(ctx context.Context, spec ObjectSpec) (*Object, error) {
	if spec.Type == nil {
		return nil, ErrMissingObjectType
	}

	logger.Debug("Getting object", "name", spec.Name, "type", spec.Type.ID)

	objects, err := search(ctx, s, objectLayouts, s.decodeObject,
		newFilter(commands.KeyName, commands.ConditionEqual, wire.NewString(spec.Name)),
		newFilter(commands.KeyType, commands.ConditionEqual, wire.NewString(spec.Type.ID)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search objects: %w", err)
	}

	switch len(objects) {
	case 0:
		return nil, nil //nolint:nilnil
	case 1:
		return objects[0], nil
	default:
		return nil, &AmbiguousEntityError{Kind: EntityObject, Name: spec.Name, Count: len(objects)}
	}
}

// CreateObject validates every value of desc and creates the object.
func (s *Space) CreateObject(ctx context.Context, desc ObjectDescription) (*Object, error) {
	if desc.Type == nil {
		return nil, ErrMissingObjectType
	}

	details := map[string]*structpb.Value{
		commands.KeyName: wire.NewString(desc.Name),
	}

	for _, assignment := range desc.Values {
		key, value, err := Validate(assignment.Relation, assignment.Value)
		if err != nil {
			return nil, err
		}

		details[string(key)] = value
	}

	doc, err := s.call(ctx, commands.ObjectCreate, map[string]*structpb.Value{
		commands.FieldSpaceID:             wire.NewString(s.id),
		commands.FieldObjectTypeUniqueKey: wire.NewString(desc.Type.UniqueKey),
		commands.FieldDetails:             wire.NewStruct(details),
	})
	if err != nil {
		return nil, err
	}

	record, err := wire.Take(doc, commands.FieldDetails, wire.Struct)
	if err != nil {
		return nil, fmt.Errorf("failed to read created object: %w", err)
	}

	object, _, err := s.decodeObject(record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode created object: %w", err)
	}

	logger.Info("Created object", "id", object.id, "name", object.name, "type", object.typeID)

	return object, nil
}

// ObtainObject returns the object matching spec, creating an empty one when
// absent.
func (s *Space) ObtainObject(ctx context.Context, spec ObjectSpec) (*Object, error) {
	object, err := s.GetObject(ctx, spec)
	if err != nil || object != nil {
		return object, err
	}

	return s.CreateObject(ctx, ObjectDescription{Type: spec.Type, Name: spec.Name})
}

// objectsByID looks up visible objects, in the order of ids. Ids that match
// no visible object are left out.
func (s *Space) objectsByID(ctx context.Context, ids []ObjectID) ([]*Object, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := search(ctx, s, objectLayouts, s.decodeObject,
		newFilter(commands.KeyID, commands.ConditionIn, wire.NewStringList(ids)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve referenced objects: %w", err)
	}

	byID := make(map[ObjectID]*Object, len(found))
	for _, o := range found {
		byID[o.id] = o
	}

	out := make([]*Object, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			out = append(out, o)
		}
	}

	return out, nil
}

// Details returns a copy of the object's relation values as stored.
func (o *Object) Details() *structpb.Struct {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return proto.Clone(o.details).(*structpb.Struct) //nolint:forcetypeassert
}
