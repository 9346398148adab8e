// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/agntcy/anytype/api/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig, *config)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ANYTYPE_CLIENT_SERVER_ADDRESS", "10.0.0.1:9000")
		t.Setenv("ANYTYPE_CLIENT_NETWORK_SYNC", "Local-Only")
		t.Setenv("ANYTYPE_CLIENT_REQUIRED_VERSION", "v0.34.0")
		t.Setenv("ANYTYPE_CLIENT_DIAL_TIMEOUT", "5s")

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1:9000", config.ServerAddress)
		assert.Equal(t, NetworkSyncLocalOnly, config.NetworkSync)
		assert.Equal(t, "v0.34.0", config.RequiredVersion)
		assert.Equal(t, 5*time.Second, config.DialTimeout)
	})

	t.Run("unknown network sync mode", func(t *testing.T) {
		t.Setenv("ANYTYPE_CLIENT_NETWORK_SYNC", "everywhere")

		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestConfig_ResolvedRootPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	path, err := (&Config{}).ResolvedRootPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "anytype"), path)

	path, err = (&Config{RootPath: "/var/lib/anytype"}).ResolvedRootPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/anytype", path)
}

func TestNetworkSync(t *testing.T) {
	tests := []struct {
		sync    NetworkSync
		disable bool
		mode    commands.NetworkMode
	}{
		{NetworkSyncDefault, false, commands.NetworkModeDefaultConfig},
		{NetworkSyncLocalOnly, false, commands.NetworkModeLocalOnly},
		{NetworkSyncNone, true, commands.NetworkModeLocalOnly},
	}

	for _, tt := range tests {
		t.Run(string(tt.sync), func(t *testing.T) {
			assert.Equal(t, tt.disable, tt.sync.disableLocalNetworkSync())
			assert.Equal(t, tt.mode, tt.sync.networkMode())
		})
	}
}
