// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/agntcy/anytype/server/session"
	"github.com/agntcy/anytype/utils/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var eventsLogger = logging.Logger("controller/events")

type eventsCtlr struct {
	sessions *session.Registry
}

// ListenSessionEvents streams the events queued for the request's token
// until the client goes away.
func (c *eventsCtlr) ListenSessionEvents(req *structpb.Struct, srv grpc.ServerStreamingServer[structpb.Struct]) error {
	eventsLogger.Debug("Called events controller's ListenSessionEvents method")

	token, err := wire.Take(wire.NewDocument(req), commands.FieldToken, wire.String)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid token: %v", err)
	}

	if _, ok := c.sessions.Lookup(token); !ok {
		return status.Error(codes.Unauthenticated, "unknown session token")
	}

	queue := c.sessions.Queue(token)

	for {
		select {
		case <-srv.Context().Done():
			return nil
		case event := <-queue:
			if err := srv.Send(event); err != nil {
				return status.Errorf(codes.Internal, "failed to send event: %v", err)
			}
		}
	}
}
