// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"github.com/agntcy/anytype/cli/cmd/serve"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "anytyped",
	Short: "Reference backend for the object-graph client",
	Long: `Runs an in-process implementation of the object-graph backend's RPC
surface. Settings are read from ANYTYPE_SERVER_* environment variables and
can be overridden with flags.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(serve.Command)
}

func Run(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx) //nolint:wrapcheck
}
