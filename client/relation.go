// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"google.golang.org/protobuf/types/known/structpb"
)

var relationLayouts = []commands.Layout{commands.LayoutRelation}

// RelationSpec describes a relation to look up or create.
type RelationSpec struct {
	Name   string
	Format RelationFormat
}

func (s RelationSpec) String() string {
	return s.Name + ": " + s.Format.String()
}

// Relation is a snapshot of a relation in a space.
type Relation struct {
	ID     RelationID
	Name   string
	Key    RelationKey
	Format RelationFormat
}

func (r *Relation) Spec() RelationSpec {
	return RelationSpec{Name: r.Name, Format: r.Format}
}

func decodeRelation(record *structpb.Struct) (*Relation, bool, error) {
	d := wire.NewDocument(record)
	takeLayout(d, relationLayouts...)

	id, err := wire.Take(d, commands.KeyID, wire.StringOf[RelationID])
	if err != nil {
		return nil, false, err
	}

	name, err := wire.Take(d, commands.KeyName, wire.String)
	if err != nil {
		return nil, false, err
	}

	hidden, err := takeHidden(d)
	if err != nil {
		return nil, false, err
	}

	key, err := wire.Take(d, commands.KeyRelationKey, wire.StringOf[RelationKey])
	if err != nil {
		return nil, false, err
	}

	code, err := wire.TakeEnum(d, commands.KeyRelationFormat, commands.RelationFormat.Valid)
	if err != nil {
		return nil, false, err
	}

	types, _, err := wire.TakeOptional(d, commands.KeyRelationFormatObjectTypes, wire.SetOf(wire.StringOf[ObjectTypeID]))
	if err != nil {
		return nil, false, err
	}

	format, err := formatFromCode(code, types)
	if err != nil {
		return nil, false, err
	}

	return &Relation{
		ID:     id,
		Name:   name,
		Key:    key,
		Format: format,
	}, hidden, nil
}

// GetRelation returns the relation named spec.Name, or nil when there is
// none. An existing relation with another format is a FormatMismatchError.
func (s *Space) GetRelation(ctx context.Context, spec RelationSpec) (*Relation, error) {
	logger.Debug("Getting relation", "name", spec.Name, "format", spec.Format.String())

	relations, err := search(ctx, s, relationLayouts, decodeRelation,
		newFilter(commands.KeyName, commands.ConditionLike, wire.NewString(spec.Name)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search relations: %w", err)
	}

	var matches []*Relation

	for _, r := range relations {
		if sameName(r.Name, spec.Name) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil //nolint:nilnil
	case 1:
		found := matches[0]
		if !found.Format.Equal(spec.Format) {
			return nil, &FormatMismatchError{Name: found.Name, Expected: found.Format, Received: spec.Format}
		}

		return found, nil
	default:
		return nil, &AmbiguousEntityError{Kind: EntityRelation, Name: spec.Name, Count: len(matches)}
	}
}

// CreateRelation creates a relation without looking for an existing one.
func (s *Space) CreateRelation(ctx context.Context, spec RelationSpec) (*Relation, error) {
	details := map[string]*structpb.Value{
		commands.KeyName:           wire.NewString(spec.Name),
		commands.KeyRelationFormat: wire.NewNumber(spec.Format.code()),
	}

	if spec.Format.Kind == FormatObject {
		details[commands.KeyRelationFormatObjectTypes] = wire.NewStringList(ObjectFormat(spec.Format.ObjectTypes...).ObjectTypes)
	}

	doc, err := s.call(ctx, commands.ObjectCreateRelation, map[string]*structpb.Value{
		commands.FieldSpaceID: wire.NewString(s.id),
		commands.FieldDetails: wire.NewStruct(details),
	})
	if err != nil {
		return nil, err
	}

	record, err := wire.Take(doc, commands.FieldDetails, wire.Struct)
	if err != nil {
		return nil, fmt.Errorf("failed to read created relation: %w", err)
	}

	relation, _, err := decodeRelation(record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode created relation: %w", err)
	}

	logger.Info("Created relation", "id", relation.ID, "name", relation.Name, "format", relation.Format.String())

	return relation, nil
}

// ObtainRelation returns the relation matching spec, creating it when absent.
//
// Nothing guards the gap between lookup and creation. Two concurrent calls
// for a new name may both create it; later lookups then fail with
// AmbiguousEntityError.
func (s *Space) ObtainRelation(ctx context.Context, spec RelationSpec) (*Relation, error) {
	relation, err := s.GetRelation(ctx, spec)
	if err != nil || relation != nil {
		return relation, err
	}

	return s.CreateRelation(ctx, spec)
}

// relationsByID looks up visible relations by id.
func (s *Space) relationsByID(ctx context.Context, ids []RelationID) ([]*Relation, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return search(ctx, s, relationLayouts, decodeRelation,
		newFilter(commands.KeyID, commands.ConditionIn, wire.NewStringList(ids)),
	)
}
