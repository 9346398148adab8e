// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "ANYTYPE_SERVER"

	DefaultListenAddress = "127.0.0.1:31007"
	DefaultVersion       = "v0.34.0"
	DefaultDetails       = "reference backend"
	DefaultSeedBundled   = true
)

var DefaultConfig = Config{
	ListenAddress: DefaultListenAddress,
	Version:       DefaultVersion,
	Details:       DefaultDetails,
	SeedBundled:   DefaultSeedBundled,
}

type Config struct {
	// Address the gRPC server listens on.
	ListenAddress string `json:"listen_address,omitempty" mapstructure:"listen_address"`

	// Directory for persistent state. Empty keeps everything in memory.
	DatastoreDir string `json:"datastore_dir,omitempty" mapstructure:"datastore_dir"`

	// Version and build details reported by AppGetVersion.
	Version string `json:"version,omitempty" mapstructure:"version"`
	Details string `json:"details,omitempty" mapstructure:"details"`

	// Create the bundled relations and object types in new account spaces.
	SeedBundled bool `json:"seed_bundled,omitempty" mapstructure:"seed_bundled"`
}

func LoadConfig() (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	_ = v.BindEnv("listen_address")
	v.SetDefault("listen_address", DefaultListenAddress)

	_ = v.BindEnv("datastore_dir")
	v.SetDefault("datastore_dir", "")

	_ = v.BindEnv("version")
	v.SetDefault("version", DefaultVersion)

	_ = v.BindEnv("details")
	v.SetDefault("details", DefaultDetails)

	_ = v.BindEnv("seed_bundled")
	v.SetDefault("seed_bundled", DefaultSeedBundled)

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
