// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package testutil runs the reference backend in-process for tests.
package testutil

import (
	"context"
	"maps"
	"net"
	"testing"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server"
	"github.com/agntcy/anytype/server/config"
	"github.com/agntcy/anytype/server/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	bufSize = 1 << 20

	// Address is the target to dial a Backend with its DialOptions.
	Address = "passthrough:///bufnet"
)

// BackendOptions provides options for starting a test backend
type BackendOptions struct {
	// Seed new spaces with the bundled relations and types.
	SeedBundled bool

	// Version reported by AppGetVersion. Defaults to config.DefaultVersion.
	Version string
}

// Backend is a reference backend served over an in-memory listener.
type Backend struct {
	Server   *server.Server
	listener *bufconn.Listener
}

// StartBackend starts a backend that is stopped when the test ends.
func StartBackend(t *testing.T, opts BackendOptions) *Backend {
	t.Helper()

	cfg := config.DefaultConfig
	cfg.SeedBundled = opts.SeedBundled

	if opts.Version != "" {
		cfg.Version = opts.Version
	}

	srv, err := server.New(&cfg)
	require.NoError(t, err, "failed to create backend")

	lis := bufconn.Listen(bufSize)

	go func() {
		if err := srv.Serve(lis); err != nil {
			t.Logf("backend stopped: %v", err)
		}
	}()

	t.Cleanup(srv.Stop)

	return &Backend{Server: srv, listener: lis}
}

// DialOptions returns the options needed to reach the backend at Address.
func (b *Backend) DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return b.listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
}

// Dial opens a raw connection to the backend, closed when the test ends.
func (b *Backend) Dial(t *testing.T) *grpc.ClientConn {
	t.Helper()

	conn, err := grpc.NewClient(Address, b.DialOptions()...)
	require.NoError(t, err, "failed to dial backend")

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// NewDetails builds an object details document for store tests.
func NewDetails(id, name string, fields map[string]any) (*structpb.Struct, error) {
	all := map[string]any{"id": id, "name": name}
	maps.Copy(all, fields)

	return structpb.NewStruct(all)
}

// TestStoreOperations performs a complete test of Put -> Get -> Search operations
func TestStoreOperations(t assert.TestingT, store types.StoreAPI, ctx context.Context) {
	details, err := NewDetails("obj-1", "Test object", map[string]any{"layout": 0})
	assert.NoError(t, err, "failed to create test details")

	// Put
	err = store.Put(ctx, details)
	assert.NoError(t, err, "put failed")

	// Get
	fetched, err := store.Get(ctx, "obj-1")
	assert.NoError(t, err, "get failed")
	assert.Equal(t, "Test object", fetched.GetFields()["name"].GetStringValue())

	// Search
	records, err := store.Search(ctx, []types.Filter{
		{RelationKey: commands.KeyName, Condition: commands.ConditionLike, Value: structpb.NewStringValue("test")},
	})
	assert.NoError(t, err, "search failed")
	assert.Len(t, records, 1)
}
