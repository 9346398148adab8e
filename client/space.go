// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/agntcy/anytype/api/wire"
	"google.golang.org/protobuf/types/known/structpb"
)

// Space is an opened space. Every lookup and creation is scoped to it.
//
// A Space and the objects read from it share the session they came from and
// are safe for concurrent use.
type Space struct {
	session *Session
	id      string
}

func (s *Space) ID() string {
	return s.id
}

func (s *Space) call(ctx context.Context, method string, fields map[string]*structpb.Value) (*wire.Document, error) {
	return s.session.transport.call(ctx, method, fields)
}
