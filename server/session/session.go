// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package session tracks the backend's process-wide wallet, the session
// tokens issued for it, and the event queues those sessions listen on.
package session

import (
	"context"
	"sync"

	"github.com/agntcy/anytype/utils/logging"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"
)

var logger = logging.Logger("session")

// EventQueueSize is the number of events buffered per token before new
// events are dropped.
const EventQueueSize = 64

type tokenKey struct{}

// WithToken returns a context carrying the caller's session token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the session token attached by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)

	return token, ok && token != ""
}

// Wallet is the wallet currently loaded by the backend.
type Wallet struct {
	Mnemonic string
	RootPath string
}

// Registry holds the wallet, the tokens and the per-token event queues.
type Registry struct {
	mu     sync.Mutex
	wallet *Wallet
	tokens map[string]string
	queues map[string]chan *structpb.Struct
}

func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]string),
		queues: make(map[string]chan *structpb.Struct),
	}
}

// SetWallet replaces the current wallet. Tokens issued for a previous
// wallet stay valid until revoked.
func (r *Registry) SetWallet(w Wallet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wallet = &w
}

func (r *Registry) Wallet() (Wallet, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.wallet == nil {
		return Wallet{}, false
	}

	return *r.wallet, true
}

// Issue creates a session token for mnemonic.
func (r *Registry) Issue(mnemonic string) string {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token] = mnemonic

	logger.Debug("Issued session token")

	return token
}

// Lookup returns the mnemonic a token was issued for.
func (r *Registry) Lookup(token string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mnemonic, ok := r.tokens[token]

	return mnemonic, ok
}

// Revoke invalidates a token and drops its event queue.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
	delete(r.queues, token)
}
