// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"

	"github.com/ipfs/go-datastore"
	"google.golang.org/protobuf/types/known/structpb"
)

// Datastore is the key/value storage the backend keeps all of its state in.
type Datastore interface {
	datastore.Batching
}

// StoreAPI handles storage of object detail documents.
//
// Every document is keyed by its "id" detail. The store performs no schema
// validation of any kind: whatever details are written are echoed back.
type StoreAPI interface {
	// Put creates or replaces the details of an object
	Put(context.Context, *structpb.Struct) error

	// Get returns the details of an object by id
	Get(context.Context, string) (*structpb.Struct, error)

	// Search returns the details of all objects matching every filter
	Search(context.Context, []Filter) ([]*structpb.Struct, error)
}

// AccountStoreAPI handles the accounts known to the backend and the
// spaces they own.
type AccountStoreAPI interface {
	// PutAccount stores an account and registers its space
	PutAccount(context.Context, *Account) error

	GetAccount(context.Context, string) (*Account, error)

	// HasSpace reports whether a space was registered by some account
	HasSpace(context.Context, string) (bool, error)
}
