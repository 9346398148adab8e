// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"path"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// authInterceptor attaches a valid session token to the call context and
// rejects calls that need one but do not carry it.
func authInterceptor(sessions *session.Registry) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		method := path.Base(info.FullMethod)

		token := tokenFromMetadata(ctx)
		if _, ok := sessions.Lookup(token); ok {
			return handler(session.WithToken(ctx, token), req)
		}

		if commands.Unauthenticated[method] {
			return handler(ctx, req)
		}

		if token == "" {
			return nil, status.Errorf(codes.Unauthenticated, "%s requires a session token", method)
		}

		return nil, status.Errorf(codes.Unauthenticated, "%s called with an unknown session token", method)
	}
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(commands.TokenMetadataKey)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}
