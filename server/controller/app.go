// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server/session"
	"github.com/agntcy/anytype/utils/logging"
	"google.golang.org/protobuf/types/known/structpb"
)

var appLogger = logging.Logger("controller/app")

type appCtlr struct {
	version  string
	details  string
	sessions *session.Registry
}

func (c *appCtlr) AppGetVersion(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	appLogger.Debug("Called app controller's AppGetVersion method")

	return okResponse(map[string]*structpb.Value{
		commands.FieldVersion: structpb.NewStringValue(c.version),
		commands.FieldDetails: structpb.NewStringValue(c.details),
	}), nil
}

// AppShutdown ends the caller's session. The process itself keeps serving.
func (c *appCtlr) AppShutdown(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	appLogger.Debug("Called app controller's AppShutdown method")

	if token, ok := session.TokenFromContext(ctx); ok {
		c.sessions.Revoke(token)
	}

	return okResponse(nil), nil
}
