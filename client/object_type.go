// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/structpb"
)

var objectTypeLayouts = []commands.Layout{commands.LayoutObjectType}

// ObjectTypeSpec describes an object type to look up or create.
type ObjectTypeSpec struct {
	Name                 string
	RecommendedRelations []RelationSpec
}

// ObjectType is a snapshot of an object type with its recommended relations
// resolved.
type ObjectType struct {
	ID                   ObjectTypeID
	Name                 string
	UniqueKey            string
	RecommendedRelations []*Relation
}

// unresolvedObjectType is an object type as stored: relations by id only.
type unresolvedObjectType struct {
	id        ObjectTypeID
	name      string
	uniqueKey string
	relations []RelationID
}

func (u *unresolvedObjectType) resolve(relations []*Relation) *ObjectType {
	return &ObjectType{
		ID:                   u.id,
		Name:                 u.name,
		UniqueKey:            u.uniqueKey,
		RecommendedRelations: relations,
	}
}

func decodeObjectType(record *structpb.Struct) (*unresolvedObjectType, bool, error) {
	d := wire.NewDocument(record)
	takeLayout(d, objectTypeLayouts...)

	id, err := wire.Take(d, commands.KeyID, wire.StringOf[ObjectTypeID])
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

	uniqueKey, err := wire.Take(d, commands.KeyUniqueKey, wire.String)
	if err != nil {
		return nil, false, err
	}

	relations, _, err := wire.TakeOptional(d, commands.KeyRecommendedRelations, wire.SetOf(wire.StringOf[RelationID]))
	if err != nil {
		return nil, false, err
	}

	return &unresolvedObjectType{
		id:        id,
		name:      name,
		uniqueKey: uniqueKey,
		relations: relations,
	}, hidden, nil
}

// GetObjectType returns the object type named spec.Name, or nil when there
// is none. The existing type must recommend exactly the requested relations,
// compared by name and format, or a RecommendedRelationsMismatchError is
// returned.
func (s *Space) GetObjectType(ctx context.Context, spec ObjectTypeSpec) (*ObjectType, error) {
	logger.Debug("Getting object type", "name", spec.Name, "relations", len(spec.RecommendedRelations))

	found, err := s.findObjectType(ctx, spec.Name)
	if err != nil || found == nil {
		return nil, err
	}

	relations, err := s.relationsByID(ctx, found.relations)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recommended relations: %w", err)
	}

	objectType := found.resolve(relations)

	existing := make([]RelationSpec, 0, len(relations))
	for _, r := range relations {
		existing = append(existing, r.Spec())
	}

	if !sameSpecs(existing, spec.RecommendedRelations) {
		return nil, &RecommendedRelationsMismatchError{
			Name:     objectType.Name,
			Expected: sortSpecs(existing),
			Received: sortSpecs(spec.RecommendedRelations),
		}
	}

	return objectType, nil
}

func (s *Space) findObjectType(ctx context.Context, name string) (*unresolvedObjectType, error) {
	types, err := search(ctx, s, objectTypeLayouts, decodeObjectType,
		newFilter(commands.KeyName, commands.ConditionLike, wire.NewString(name)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search object types: %w", err)
	}

	var matches []*unresolvedObjectType

	for _, t := range types {
		if sameName(t.name, name) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil //nolint:nilnil
	case 1:
		return matches[0], nil
	default:
		return nil, &AmbiguousEntityError{Kind: EntityObjectType, Name: name, Count: len(matches)}
	}
}

// CreateObjectType obtains every recommended relation concurrently, then
// creates the type referencing them. The first failure cancels the other
// relation lookups.
func (s *Space) CreateObjectType(ctx context.Context, spec ObjectTypeSpec) (*ObjectType, error) {
	specs := uniqueSpecs(spec.RecommendedRelations)
	if err := checkConflictingSpecs(specs); err != nil {
		return nil, err
	}

	relations := make([]*Relation, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	for i, relSpec := range specs {
		g.Go(func() error {
			relation, err := s.ObtainRelation(gctx, relSpec)
			if err != nil {
				return fmt.Errorf("failed to obtain relation %s: %w", relSpec.Name, err)
			}

			relations[i] = relation

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]RelationID, 0, len(relations))
	for _, r := range relations {
		ids = append(ids, r.ID)
	}

	doc, err := s.call(ctx, commands.ObjectCreateType, map[string]*structpb.Value{
		commands.FieldSpaceID: wire.NewString(s.id),
		commands.FieldDetails: wire.NewStruct(map[string]*structpb.Value{
			commands.KeyName:                 wire.NewString(spec.Name),
			commands.KeyRecommendedRelations: wire.NewStringList(ids),
			commands.KeyRecommendedLayout:    wire.NewNumber(commands.LayoutBasic),
		}),
	})
	if err != nil {
		return nil, err
	}

	record, err := wire.Take(doc, commands.FieldDetails, wire.Struct)
	if err != nil {
		return nil, fmt.Errorf("failed to read created object type: %w", err)
	}

	created, _, err := decodeObjectType(record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode created object type: %w", err)
	}

	logger.Info("Created object type", "id", created.id, "name", created.name, "relations", len(ids))

	return created.resolve(relations), nil
}

// ObtainObjectType returns the object type matching spec, creating it and
// any missing relations when absent. Like ObtainRelation it takes no lock
// between lookup and creation.
func (s *Space) ObtainObjectType(ctx context.Context, spec ObjectTypeSpec) (*ObjectType, error) {
	objectType, err := s.GetObjectType(ctx, spec)
	if err != nil || objectType != nil {
		return objectType, err
	}

	return s.CreateObjectType(ctx, spec)
}

// objectTypeByID resolves an object type, including its relations.
func (s *Space) objectTypeByID(ctx context.Context, id ObjectTypeID) (*ObjectType, error) {
	types, err := search(ctx, s, objectTypeLayouts, decodeObjectType,
		newFilter(commands.KeyID, commands.ConditionEqual, wire.NewString(id)),
	)
	if err != nil {
		return nil, err
	}

	if len(types) == 0 {
		return nil, nil //nolint:nilnil
	}

	relations, err := s.relationsByID(ctx, types[0].relations)
	if err != nil {
		return nil, err
	}

	return types[0].resolve(relations), nil
}

func specKey(s RelationSpec) string {
	return foldName(s.Name) + "\x00" + s.Format.String()
}

// sameSpecs compares two relation spec lists as sets.
func sameSpecs(a, b []RelationSpec) bool {
	keys := func(specs []RelationSpec) []string {
		out := make([]string, 0, len(specs))
		for _, s := range specs {
			out = append(out, specKey(s))
		}

		slices.Sort(out)

		return slices.Compact(out)
	}

	return slices.Equal(keys(a), keys(b))
}

// uniqueSpecs drops repeated specs so each relation is obtained once.
func uniqueSpecs(specs []RelationSpec) []RelationSpec {
	return slices.CompactFunc(sortSpecs(specs), func(a, b RelationSpec) bool {
		return specKey(a) == specKey(b)
	})
}

// checkConflictingSpecs rejects a name requested with two formats. specs must
// come from uniqueSpecs, which keeps specs of the same name adjacent.
func checkConflictingSpecs(specs []RelationSpec) error {
	for i := 1; i < len(specs); i++ {
		if foldName(specs[i-1].Name) == foldName(specs[i].Name) {
			return &ConflictingRelationSpecsError{
				Name:   specs[i].Name,
				First:  specs[i-1].Format,
				Second: specs[i].Format,
			}
		}
	}

	return nil
}

func sortSpecs(specs []RelationSpec) []RelationSpec {
	sorted := slices.Clone(specs)
	slices.SortFunc(sorted, func(a, b RelationSpec) int {
		return strings.Compare(specKey(a), specKey(b))
	})

	return sorted
}
