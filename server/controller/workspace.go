// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/server/types"
	"github.com/agntcy/anytype/utils/logging"
	"google.golang.org/protobuf/types/known/structpb"
)

var workspaceLogger = logging.Logger("controller/workspace")

type workspaceCtlr struct {
	accounts types.AccountStoreAPI
}

// WorkspaceOpen reports an unknown space the same way the real backend
// does: an Unknown error with a fixed description.
func (c *workspaceCtlr) WorkspaceOpen(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	spaceID, err := wire.Take(wire.NewDocument(req), commands.FieldSpaceID, wire.String)
	if err != nil {
		return badInput("invalid space id: %v", err), nil
	}

	workspaceLogger.Debug("Called workspace controller's WorkspaceOpen method", "space", spaceID)

	exists, err := c.accounts.HasSpace(ctx, spaceID)
	if err != nil {
		return failureResponse(err), nil
	}

	if !exists {
		return errorResponse(commands.ErrorUnknown, commands.SpaceNotExistsDescription), nil
	}

	return okResponse(map[string]*structpb.Value{
		commands.FieldInfo: wire.NewStruct(map[string]*structpb.Value{
			commands.FieldAccountSpaceID: wire.NewString(spaceID),
		}),
	}), nil
}
