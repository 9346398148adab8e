// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package datastore

import (
	"path/filepath"
	"testing"

	ds "github.com/ipfs/go-datastore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ctx := t.Context()
	key := ds.NewKey("/objects/1")

	t.Run("in memory", func(t *testing.T) {
		store, err := New()
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })

		require.NoError(t, store.Put(ctx, key, []byte("value")))

		value, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), value)
	})

	t.Run("on disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "datastore")

		store, err := New(WithFsProvider(dir))
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, key, []byte("value")))
		require.NoError(t, store.Close())

		reopened, err := New(WithFsProvider(dir))
		require.NoError(t, err)
		t.Cleanup(func() { _ = reopened.Close() })

		has, err := reopened.Has(ctx, key)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("directory is prepared on the given filesystem", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		dir := t.TempDir()

		store, err := New(WithFs(fs), WithFsProvider(dir))
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })

		exists, err := afero.DirExists(fs, dir)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
