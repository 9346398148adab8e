// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package controller implements the ClientCommands service of the reference
// backend. Like the real backend, it stores whatever details it is given and
// performs no type validation of relation values.
package controller

import (
	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server/config"
	"github.com/agntcy/anytype/server/session"
	"github.com/agntcy/anytype/server/types"
)

type Options struct {
	Config   *config.Config
	Store    types.StoreAPI
	Accounts types.AccountStoreAPI
	Sessions *session.Registry
}

type commandsCtlr struct {
	*appCtlr
	*accountCtlr
	*workspaceCtlr
	*objectCtlr
	*eventsCtlr
}

// New returns the ClientCommands implementation backed by opts.
func New(opts Options) commands.ClientCommandsServer {
	return &commandsCtlr{
		appCtlr: &appCtlr{
			version:  opts.Config.Version,
			details:  opts.Config.Details,
			sessions: opts.Sessions,
		},
		accountCtlr: &accountCtlr{
			store:       opts.Store,
			accounts:    opts.Accounts,
			sessions:    opts.Sessions,
			seedBundled: opts.Config.SeedBundled,
		},
		workspaceCtlr: &workspaceCtlr{
			accounts: opts.Accounts,
		},
		objectCtlr: &objectCtlr{
			store: opts.Store,
		},
		eventsCtlr: &eventsCtlr{
			sessions: opts.Sessions,
		},
	}
}
