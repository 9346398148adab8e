// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package store_test

import (
	"testing"

	"github.com/agntcy/anytype/server/datastore"
	"github.com/agntcy/anytype/server/store"
	"github.com/agntcy/anytype/server/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestStore_InMemory(t *testing.T) {
	dstore, err := datastore.New()
	require.NoError(t, err)

	testutil.TestStoreOperations(t, store.New(dstore), t.Context())
}

func TestStore_Badger(t *testing.T) {
	dstore, err := datastore.New(
		datastore.WithFsProvider(t.TempDir()),
		datastore.WithFs(afero.NewOsFs()),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = dstore.Close() })

	testutil.TestStoreOperations(t, store.New(dstore), t.Context())
}
