// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"path"
	"sync"
	"testing"

	"github.com/agntcy/anytype/server/testutil"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// callCounter counts unary calls per method.
type callCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *callCounter) intercept(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	c.mu.Lock()
	c.calls[path.Base(method)]++
	c.mu.Unlock()

	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *callCounter) count(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[method]
}

type testEnv struct {
	backend *testutil.Backend
	client  *Client
	calls   *callCounter
}

func newTestEnv(t *testing.T, opts testutil.BackendOptions) *testEnv {
	t.Helper()

	backend := testutil.StartBackend(t, opts)
	calls := &callCounter{calls: map[string]int{}}

	cfg := DefaultConfig
	cfg.ServerAddress = testutil.Address
	cfg.RootPath = t.TempDir()
	cfg.NetworkSync = NetworkSyncLocalOnly

	dialOpts := append(backend.DialOptions(), grpc.WithChainUnaryInterceptor(calls.intercept))

	c, err := New(t.Context(), &cfg, dialOpts...)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return &testEnv{backend: backend, client: c, calls: calls}
}

// newTestSpace creates an account and opens its default space.
func newTestSpace(t *testing.T, seed bool) (*Space, *callCounter) {
	t.Helper()

	env := newTestEnv(t, testutil.BackendOptions{SeedBundled: seed})

	_, session, err := env.client.CreateAccount(t.Context(), "Test Client")
	require.NoError(t, err)

	t.Cleanup(session.Close)

	space, err := session.DefaultSpace(t.Context())
	require.NoError(t, err)
	require.NotNil(t, space)

	return space, env.calls
}
