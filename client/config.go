// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/agntcy/anytype/api/commands"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "ANYTYPE_CLIENT"

	DefaultServerAddress = "127.0.0.1:31007"
	DefaultRootPath      = "~/.config/anytype"
	DefaultNetworkSync   = NetworkSyncDefault
	DefaultPlatform      = "Linux"
	DefaultClientVersion = "0.39.0"
	DefaultDialTimeout   = 30 * time.Second
)

var DefaultConfig = Config{
	ServerAddress: DefaultServerAddress,
	RootPath:      DefaultRootPath,
	NetworkSync:   DefaultNetworkSync,
	Platform:      DefaultPlatform,
	ClientVersion: DefaultClientVersion,
	DialTimeout:   DefaultDialTimeout,
}

type Config struct {
	ServerAddress   string        `json:"server_address,omitempty"   mapstructure:"server_address"`
	RootPath        string        `json:"root_path,omitempty"        mapstructure:"root_path"`
	NetworkSync     NetworkSync   `json:"network_sync,omitempty"     mapstructure:"network_sync"`
	RequiredVersion string        `json:"required_version,omitempty" mapstructure:"required_version"`
	Platform        string        `json:"platform,omitempty"         mapstructure:"platform"`
	ClientVersion   string        `json:"client_version,omitempty"   mapstructure:"client_version"`
	DialTimeout     time.Duration `json:"dial_timeout,omitempty"     mapstructure:"dial_timeout"`
}

func LoadConfig() (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	_ = v.BindEnv("server_address")
	v.SetDefault("server_address", DefaultServerAddress)

	_ = v.BindEnv("root_path")
	v.SetDefault("root_path", DefaultRootPath)

	_ = v.BindEnv("network_sync")
	v.SetDefault("network_sync", string(DefaultNetworkSync))

	// Empty accepts any backend version.
	_ = v.BindEnv("required_version")
	v.SetDefault("required_version", "")

	_ = v.BindEnv("platform")
	v.SetDefault("platform", DefaultPlatform)

	_ = v.BindEnv("client_version")
	v.SetDefault("client_version", DefaultClientVersion)

	_ = v.BindEnv("dial_timeout")
	v.SetDefault("dial_timeout", DefaultDialTimeout)

	// Load configuration into struct
	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)

	config := &Config{}
	if err := v.Unmarshal(config, viper.DecodeHook(decodeHooks)); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return config, nil
}

// ResolvedRootPath returns RootPath with a leading ~ expanded.
func (c *Config) ResolvedRootPath() (string, error) {
	root := c.RootPath
	if root == "" {
		root = DefaultRootPath
	}

	path, err := homedir.Expand(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path: %w", err)
	}

	return path, nil
}

// NetworkSync controls whether the backend syncs with other devices.
type NetworkSync string

const (
	// NetworkSyncDefault syncs through the default network.
	NetworkSyncDefault NetworkSync = "sync"
	// NetworkSyncLocalOnly syncs with devices on the local network only.
	NetworkSyncLocalOnly NetworkSync = "local-only"
	// NetworkSyncNone disables syncing.
	NetworkSyncNone NetworkSync = "no-sync"
)

func (n *NetworkSync) UnmarshalText(text []byte) error {
	switch s := NetworkSync(strings.ToLower(strings.TrimSpace(string(text)))); s {
	case "":
		*n = DefaultNetworkSync
	case NetworkSyncDefault, NetworkSyncLocalOnly, NetworkSyncNone:
		*n = s
	default:
		return fmt.Errorf("unknown network sync mode %q", string(text))
	}

	return nil
}

func (n NetworkSync) disableLocalNetworkSync() bool {
	return n == NetworkSyncNone
}

func (n NetworkSync) networkMode() commands.NetworkMode {
	if n == NetworkSyncLocalOnly || n == NetworkSyncNone {
		return commands.NetworkModeLocalOnly
	}

	return commands.NetworkModeDefaultConfig
}
