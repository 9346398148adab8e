// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, *config)

	t.Setenv("ANYTYPE_SERVER_LISTEN_ADDRESS", "0.0.0.0:4000")
	t.Setenv("ANYTYPE_SERVER_DATASTORE_DIR", "/tmp/anytype")
	t.Setenv("ANYTYPE_SERVER_SEED_BUNDLED", "false")

	config, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:4000", config.ListenAddress)
	assert.Equal(t, "/tmp/anytype", config.DatastoreDir)
	assert.False(t, config.SeedBundled)
	assert.Equal(t, DefaultVersion, config.Version)
}
