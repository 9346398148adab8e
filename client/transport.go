// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// transport issues ClientCommands calls over a shared connection. A
// transport is immutable, withToken returns a copy.
type transport struct {
	conn  grpc.ClientConnInterface
	token string
}

func (t transport) withToken(token string) transport {
	t.token = token

	return t
}

// call invokes method and returns the response document with its error
// document already checked and taken.
func (t transport) call(ctx context.Context, method string, fields map[string]*structpb.Value) (*wire.Document, error) {
	if t.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, commands.TokenMetadataKey, t.token)
	}

	logger.Debug("Calling backend", "method", method)

	req := &structpb.Struct{Fields: fields}
	if req.Fields == nil {
		req.Fields = map[string]*structpb.Value{}
	}

	resp := &structpb.Struct{}
	if err := t.conn.Invoke(ctx, commands.FullMethod(method), req, resp); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	doc := wire.NewDocument(resp)
	if err := takeBackendError(method, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func takeBackendError(method string, doc *wire.Document) error {
	errDoc, ok, err := wire.TakeOptional(doc, commands.FieldError, wire.Struct)
	if err != nil || !ok {
		return err
	}

	d := wire.NewDocument(errDoc)

	code, _, err := wire.TakeOptional(d, commands.FieldErrorCode, wire.Number)
	if err != nil {
		return err
	}

	if commands.ErrorCode(code) == commands.ErrorNull {
		return nil
	}

	description, _, err := wire.TakeOptional(d, commands.FieldErrorDescription, wire.String)
	if err != nil {
		return err
	}

	return &BackendError{
		Method:      method,
		Code:        commands.ErrorCode(code),
		Description: description,
	}
}
