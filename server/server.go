// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package server runs the reference backend: an in-process implementation of
// the ClientCommands service over a go-datastore.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server/config"
	"github.com/agntcy/anytype/server/controller"
	"github.com/agntcy/anytype/server/datastore"
	"github.com/agntcy/anytype/server/session"
	"github.com/agntcy/anytype/server/store"
	"github.com/agntcy/anytype/server/types"
	"github.com/agntcy/anytype/utils/logging"
	"google.golang.org/grpc"
)

var logger = logging.Logger("server")

type Server struct {
	config   *config.Config
	dstore   types.Datastore
	grpc     *grpc.Server
	sessions *session.Registry
	stopOnce sync.Once
}

func New(cfg *config.Config, opts ...grpc.ServerOption) (*Server, error) {
	var dsOpts []datastore.Option
	if cfg.DatastoreDir != "" {
		dsOpts = append(dsOpts, datastore.WithFsProvider(cfg.DatastoreDir))
	}

	dstore, err := datastore.New(dsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create datastore: %w", err)
	}

	sessions := session.NewRegistry()
	objects := store.New(dstore)

	opts = append(opts, grpc.ChainUnaryInterceptor(authInterceptor(sessions)))
	grpcServer := grpc.NewServer(opts...)

	commands.RegisterClientCommandsServer(grpcServer, controller.New(controller.Options{
		Config:   cfg,
		Store:    objects,
		Accounts: objects,
		Sessions: sessions,
	}))

	return &Server{
		config:   cfg,
		dstore:   dstore,
		grpc:     grpcServer,
		sessions: sessions,
	}, nil
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	logger.Info("Serving", "address", lis.Addr().String(), "version", s.config.Version)

	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.config.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddress, err)
	}

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return s.Serve(lis)
}

// Stop shuts the gRPC server down and closes the datastore.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		s.grpc.Stop()

		if err := s.dstore.Close(); err != nil {
			logger.Error("failed to close datastore", "error", err)
		}
	})
}
