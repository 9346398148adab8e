// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

//nolint:wrapcheck
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server/types"
	"github.com/agntcy/anytype/utils/logging"
	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	objectsPrefix = "/objects"
)

var logger = logging.Logger("store")

var (
	_ types.StoreAPI        = (*Store)(nil)
	_ types.AccountStoreAPI = (*Store)(nil)
)

// Store keeps object details and accounts in a datastore.
type Store struct {
	dstore types.Datastore
}

func New(dstore types.Datastore) *Store {
	return &Store{dstore: dstore}
}

func (s *Store) Put(ctx context.Context, details *structpb.Struct) error {
	id := details.GetFields()[commands.KeyID].GetStringValue()
	if id == "" {
		return status.Error(codes.InvalidArgument, "invalid object: missing id")
	}

	data, err := protojson.Marshal(details)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to marshal object details: %v", err)
	}

	if err := s.dstore.Put(ctx, objectKey(id), data); err != nil {
		return status.Errorf(codes.Internal, "failed to put object: %v", err)
	}

	logger.Debug("Stored object details", "id", id)

	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*structpb.Struct, error) {
	data, err := s.dstore.Get(ctx, objectKey(id))
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "object not found: %s", id)
	}

	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get object: %v", err)
	}

	return decodeDetails(data)
}

func (s *Store) Search(ctx context.Context, filters []types.Filter) ([]*structpb.Struct, error) {
	logger.Debug("Searching objects", "filters", len(filters))

	res, err := s.dstore.Query(ctx, query.Query{
		Prefix:  objectsPrefix,
		Filters: []query.Filter{&detailsFilter{filters: filters}},
		Orders:  []query.Order{query.OrderByKey{}},
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to query datastore: %v", err)
	}
	defer res.Close()

	var records []*structpb.Struct

	for entry := range res.Next() {
		if entry.Error != nil {
			return nil, status.Errorf(codes.Internal, "failed to read query result: %v", entry.Error)
		}

		details, err := decodeDetails(entry.Value)
		if err != nil {
			return nil, err
		}

		records = append(records, details)
	}

	return records, nil
}

func (s *Store) PutAccount(ctx context.Context, account *types.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to marshal account: %v", err)
	}

	batch, err := s.dstore.Batch(ctx)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to create batch: %v", err)
	}

	if err := batch.Put(ctx, accountKey(account.ID), data); err != nil {
		return status.Errorf(codes.Internal, "failed to put account: %v", err)
	}

	if err := batch.Put(ctx, spaceKey(account.SpaceID), []byte(account.ID)); err != nil {
		return status.Errorf(codes.Internal, "failed to put space: %v", err)
	}

	if err := batch.Commit(ctx); err != nil {
		return status.Errorf(codes.Internal, "failed to commit account: %v", err)
	}

	logger.Debug("Stored account", "id", account.ID, "space", account.SpaceID)

	return nil
}

func (s *Store) HasSpace(ctx context.Context, spaceID string) (bool, error) {
	if spaceID == "" {
		return false, nil
	}

	has, err := s.dstore.Has(ctx, spaceKey(spaceID))
	if err != nil {
		return false, status.Errorf(codes.Internal, "failed to check space: %v", err)
	}

	return has, nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*types.Account, error) {
	data, err := s.dstore.Get(ctx, accountKey(id))
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "account not found: %s", id)
	}

	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get account: %v", err)
	}

	account := &types.Account{}
	if err := json.Unmarshal(data, account); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to unmarshal account: %v", err)
	}

	return account, nil
}

func decodeDetails(data []byte) (*structpb.Struct, error) {
	details := &structpb.Struct{}
	if err := protojson.Unmarshal(data, details); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to unmarshal object details: %v", err)
	}

	return details, nil
}

func objectKey(id string) datastore.Key {
	return datastore.KeyWithNamespaces([]string{"objects", id})
}

func accountKey(id string) datastore.Key {
	return datastore.KeyWithNamespaces([]string{"accounts", id})
}

func spaceKey(id string) datastore.Key {
	return datastore.KeyWithNamespaces([]string{"spaces", id})
}
