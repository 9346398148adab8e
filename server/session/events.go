// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Queue returns the event queue of token, creating it when needed.
// Events published before anyone listens stay buffered.
func (r *Registry) Queue(token string) <-chan *structpb.Struct {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.queue(token)
}

// Publish appends an event to the queue of token. When the queue is full the
// event is dropped.
func (r *Registry) Publish(token string, event *structpb.Struct) {
	r.mu.Lock()
	q := r.queue(token)
	r.mu.Unlock()

	select {
	case q <- event:
	default:
		logger.Warn("Event queue full, dropping event")
	}
}

func (r *Registry) queue(token string) chan *structpb.Struct {
	q, ok := r.queues[token]
	if !ok {
		q = make(chan *structpb.Struct, EventQueueSize)
		r.queues[token] = q
	}

	return q
}
