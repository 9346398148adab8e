// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"google.golang.org/protobuf/types/known/structpb"
)

const shutdownTimeout = 5 * time.Second

// Account is the account a session is logged in to.
type Account struct {
	ID      string
	Name    string
	SpaceID string
}

func decodeAccount(doc *structpb.Struct) (Account, error) {
	d := wire.NewDocument(doc)

	id, err := wire.Take(d, commands.FieldAccountID, wire.String)
	if err != nil {
		return Account{}, err
	}

	name, _, err := wire.TakeOptional(d, commands.FieldAccountName, wire.String)
	if err != nil {
		return Account{}, err
	}

	info, ok, err := wire.TakeOptional(d, commands.FieldInfo, wire.Struct)
	if err != nil || !ok {
		return Account{ID: id, Name: name}, err
	}

	spaceID, _, err := wire.TakeOptional(wire.NewDocument(info), commands.FieldAccountSpaceID, wire.String)
	if err != nil {
		return Account{}, err
	}

	return Account{ID: id, Name: name, SpaceID: spaceID}, nil
}

// Session is an authenticated session. Its token is attached to every call.
type Session struct {
	transport transport
	account   Account
	events    *eventListener
	closeOnce sync.Once
}

func (s *Session) Account() Account {
	return s.account
}

// DefaultSpace opens the account's personal space. It returns nil when the
// account has none.
func (s *Session) DefaultSpace(ctx context.Context) (*Space, error) {
	if s.account.SpaceID == "" {
		return nil, nil //nolint:nilnil
	}

	return s.OpenSpace(ctx, s.account.SpaceID)
}

// OpenSpace opens a space by id. It returns nil when the space does not exist.
func (s *Session) OpenSpace(ctx context.Context, spaceID string) (*Space, error) {
	logger.Debug("Opening space", "space", spaceID)

	doc, err := s.transport.call(ctx, commands.WorkspaceOpen, map[string]*structpb.Value{
		commands.FieldSpaceID: wire.NewString(spaceID),
	})
	if isSpaceNotExists(err) {
		return nil, nil //nolint:nilnil
	}

	if err != nil {
		return nil, err
	}

	info, err := wire.Take(doc, commands.FieldInfo, wire.Struct)
	if err != nil {
		return nil, fmt.Errorf("backend did not respond with the space's info: %w", err)
	}

	id, err := wire.Take(wire.NewDocument(info), commands.FieldAccountSpaceID, wire.String)
	if err != nil {
		return nil, fmt.Errorf("backend did not respond with the space's id: %w", err)
	}

	return &Space{session: s, id: id}, nil
}

// Close stops the event listener and asks the backend to end the session.
// A failed shutdown is only logged.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.events.stop()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if _, err := s.transport.call(ctx, commands.AppShutdown, nil); err != nil {
			logger.Warn("Failed to shut down session", "error", err)
		}
	})
}
