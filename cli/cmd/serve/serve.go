// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"fmt"

	"github.com/agntcy/anytype/server"
	"github.com/agntcy/anytype/server/config"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference backend",
	Long: `This command runs the reference backend until interrupted.

Usage examples:

1. In memory, on the default address:

	anytyped serve

2. Persisting state to disk:

	anytyped serve --datastore-dir /var/lib/anytype

`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err //nolint:wrapcheck
		}

		if opts.ListenAddress != "" {
			cfg.ListenAddress = opts.ListenAddress
		}

		if opts.DatastoreDir != "" {
			cfg.DatastoreDir = opts.DatastoreDir
		}

		if opts.NoSeed {
			cfg.SeedBundled = false
		}

		srv, err := server.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		return srv.ListenAndServe(cmd.Context()) //nolint:wrapcheck
	},
}
