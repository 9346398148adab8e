// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"time"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
	"github.com/cenkalti/backoff/v5"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const eventBufferSize = 64

var errEventsClosed = errors.New("event listener stopped before the account was announced")

// eventListener follows the session event stream and forwards AccountShow
// events. Other events are logged and dropped. The stream is reopened with
// backoff when it fails.
type eventListener struct {
	conn     grpc.ClientConnInterface
	token    string
	accounts chan *structpb.Struct
	cancel   context.CancelFunc
	done     chan struct{}
}

func startEventListener(conn grpc.ClientConnInterface, token string) *eventListener {
	ctx, cancel := context.WithCancel(context.Background())

	l := &eventListener{
		conn:     conn,
		token:    token,
		accounts: make(chan *structpb.Struct, eventBufferSize),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go l.run(ctx)

	return l
}

func (l *eventListener) run(ctx context.Context) {
	defer close(l.done)

	b := backoff.NewExponentialBackOff()

	for {
		err := l.listen(ctx, b)
		if ctx.Err() != nil {
			return
		}

		wait := b.NextBackOff()
		logger.Debug("Event stream ended, reconnecting", "error", err, "after", wait)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

func (l *eventListener) listen(ctx context.Context, b *backoff.ExponentialBackOff) error {
	desc := &commands.ServiceDesc.Streams[0]

	cs, err := l.conn.NewStream(ctx, desc, commands.FullMethod(commands.ListenSessionEvents))
	if err != nil {
		return err //nolint:wrapcheck
	}

	stream := &grpc.GenericClientStream[structpb.Struct, structpb.Struct]{ClientStream: cs}

	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		commands.FieldToken: wire.NewString(l.token),
	}}
	if err := stream.SendMsg(req); err != nil {
		return err //nolint:wrapcheck
	}

	if err := stream.CloseSend(); err != nil {
		return err //nolint:wrapcheck
	}

	for {
		event, err := stream.Recv()
		if err != nil {
			return err //nolint:wrapcheck
		}

		b.Reset()
		l.dispatch(ctx, event)
	}
}

func (l *eventListener) dispatch(ctx context.Context, event *structpb.Struct) {
	messages, _, err := wire.TakeOptional(wire.NewDocument(event), commands.EventMessages, wire.ListOf(wire.Struct))
	if err != nil {
		logger.Debug("Dropping malformed event", "error", err)

		return
	}

	for _, message := range messages {
		show, ok, err := wire.TakeOptional(wire.NewDocument(message), commands.EventAccountShow, wire.Struct)
		if err != nil || !ok {
			logger.Debug("Dropping unhandled event message", "message", message)

			continue
		}

		account, ok, err := wire.TakeOptional(wire.NewDocument(show), commands.FieldAccount, wire.Struct)
		if err != nil || !ok {
			continue
		}

		select {
		case l.accounts <- account:
		case <-ctx.Done():
			return
		}
	}
}

// waitAccount returns the account of the next AccountShow event.
func (l *eventListener) waitAccount(ctx context.Context) (*structpb.Struct, error) {
	select {
	case account := <-l.accounts:
		return account, nil
	case <-l.done:
		return nil, errEventsClosed
	case <-ctx.Done():
		return nil, ctx.Err() //nolint:wrapcheck
	}
}

// stop ends the stream and waits for the listener to exit.
func (l *eventListener) stop() {
	l.cancel()
	<-l.done
}
