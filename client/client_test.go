// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"path"
	"testing"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/server/config"
	"github.com/agntcy/anytype/server/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestNew(t *testing.T) {
	t.Run("reports the backend version", func(t *testing.T) {
		env := newTestEnv(t, testutil.BackendOptions{})

		version, details := env.client.Version()
		assert.Equal(t, config.DefaultVersion, version)
		assert.Equal(t, config.DefaultDetails, details)
	})

	t.Run("rejects an unexpected version", func(t *testing.T) {
		backend := testutil.StartBackend(t, testutil.BackendOptions{Version: "v0.1.0"})

		cfg := DefaultConfig
		cfg.ServerAddress = testutil.Address
		cfg.RequiredVersion = config.DefaultVersion

		_, err := New(t.Context(), &cfg, backend.DialOptions()...)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("rejects a malformed version", func(t *testing.T) {
		backend := testutil.StartBackend(t, testutil.BackendOptions{})

		numericVersion := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
				return err
			}

			if resp, ok := reply.(*structpb.Struct); ok && path.Base(method) == commands.AppGetVersion {
				resp.Fields[commands.FieldVersion] = wire.NewNumber(1)
			}

			return nil
		}

		cfg := DefaultConfig
		cfg.ServerAddress = testutil.Address

		_, err := New(t.Context(), &cfg, append(backend.DialOptions(), grpc.WithChainUnaryInterceptor(numericVersion))...)
		require.ErrorContains(t, err, "failed to decode backend version")
	})

	t.Run("accepts the required version", func(t *testing.T) {
		backend := testutil.StartBackend(t, testutil.BackendOptions{})

		cfg := DefaultConfig
		cfg.ServerAddress = testutil.Address
		cfg.RequiredVersion = config.DefaultVersion

		c, err := New(t.Context(), &cfg, backend.DialOptions()...)
		require.NoError(t, err)
		require.NoError(t, c.Close())
	})
}

func TestAccounts(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(t, testutil.BackendOptions{})

	mnemonic, created, err := env.client.CreateAccount(ctx, "Test Client")
	require.NoError(t, err)
	t.Cleanup(created.Close)

	assert.NotEmpty(t, mnemonic)
	assert.NotEmpty(t, created.Account().ID)
	assert.NotEmpty(t, created.Account().SpaceID)
	assert.Equal(t, "Test Client", created.Account().Name)

	t.Run("authenticate with the mnemonic", func(t *testing.T) {
		cfg := DefaultConfig
		cfg.ServerAddress = testutil.Address
		cfg.RootPath = t.TempDir()

		other, err := New(ctx, &cfg, env.backend.DialOptions()...)
		require.NoError(t, err)
		t.Cleanup(func() { _ = other.Close() })

		session, err := other.Authenticate(ctx, mnemonic)
		require.NoError(t, err)
		t.Cleanup(session.Close)

		assert.Equal(t, created.Account(), session.Account())

		space, err := session.DefaultSpace(ctx)
		require.NoError(t, err)
		require.NotNil(t, space)
		assert.Equal(t, created.Account().SpaceID, space.ID())
	})

	t.Run("authenticate with an unknown mnemonic", func(t *testing.T) {
		_, err := env.client.Authenticate(ctx, "not a known wallet")
		require.Error(t, err)
	})

	t.Run("open an unknown space", func(t *testing.T) {
		space, err := created.OpenSpace(ctx, "bafyreinotaspace")
		require.NoError(t, err)
		assert.Nil(t, space)
	})

	t.Run("close twice", func(t *testing.T) {
		_, session, err := env.client.CreateAccount(ctx, "Short lived")
		require.NoError(t, err)

		session.Close()
		session.Close()
	})
}
