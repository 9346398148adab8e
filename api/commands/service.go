// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ClientCommandsServer is the server API for the ClientCommands service.
type ClientCommandsServer interface {
	AppGetVersion(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AppShutdown(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WalletCreate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WalletRecover(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WalletCreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AccountCreate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AccountRecover(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AccountSelect(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MetricsSetParameters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WorkspaceOpen(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ObjectSearch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ObjectCreate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ObjectCreateRelation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ObjectCreateObjectType(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ObjectSetDetails(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListenSessionEvents(*structpb.Struct, grpc.ServerStreamingServer[structpb.Struct]) error
}

type unaryMethod func(ClientCommandsServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}

			if interceptor == nil {
				return call(srv.(ClientCommandsServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}

			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ClientCommandsServer), ctx, req.(*structpb.Struct))
			}

			return interceptor(ctx, in, info, handler)
		},
	}
}

func listenSessionEventsHandler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}

	return srv.(ClientCommandsServer).ListenSessionEvents(in, &grpc.GenericServerStream[structpb.Struct, structpb.Struct]{ServerStream: stream})
}

// ServiceDesc is the grpc.ServiceDesc for the ClientCommands service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClientCommandsServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(AppGetVersion, ClientCommandsServer.AppGetVersion),
		unaryHandler(AppShutdown, ClientCommandsServer.AppShutdown),
		unaryHandler(WalletCreate, ClientCommandsServer.WalletCreate),
		unaryHandler(WalletRecover, ClientCommandsServer.WalletRecover),
		unaryHandler(WalletCreateSession, ClientCommandsServer.WalletCreateSession),
		unaryHandler(AccountCreate, ClientCommandsServer.AccountCreate),
		unaryHandler(AccountRecover, ClientCommandsServer.AccountRecover),
		unaryHandler(AccountSelect, ClientCommandsServer.AccountSelect),
		unaryHandler(MetricsSetParameters, ClientCommandsServer.MetricsSetParameters),
		unaryHandler(WorkspaceOpen, ClientCommandsServer.WorkspaceOpen),
		unaryHandler(ObjectSearch, ClientCommandsServer.ObjectSearch),
		unaryHandler(ObjectCreate, ClientCommandsServer.ObjectCreate),
		unaryHandler(ObjectCreateRelation, ClientCommandsServer.ObjectCreateRelation),
		unaryHandler(ObjectCreateType, ClientCommandsServer.ObjectCreateObjectType),
		unaryHandler(ObjectSetDetails, ClientCommandsServer.ObjectSetDetails),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    ListenSessionEvents,
			Handler:       listenSessionEventsHandler,
			ServerStreams: true,
		},
	},
	Metadata: "commands.proto",
}

// RegisterClientCommandsServer registers srv on s.
func RegisterClientCommandsServer(s grpc.ServiceRegistrar, srv ClientCommandsServer) {
	s.RegisterService(&ServiceDesc, srv)
}
