// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestRegistry(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		r := NewRegistry()

		token := r.Issue("alpha beta")
		assert.NotEmpty(t, token)

		mnemonic, ok := r.Lookup(token)
		require.True(t, ok)
		assert.Equal(t, "alpha beta", mnemonic)

		r.Revoke(token)

		_, ok = r.Lookup(token)
		assert.False(t, ok)
	})

	t.Run("wallet", func(t *testing.T) {
		r := NewRegistry()

		_, ok := r.Wallet()
		assert.False(t, ok)

		r.SetWallet(Wallet{Mnemonic: "m", RootPath: "/tmp/root"})

		w, ok := r.Wallet()
		require.True(t, ok)
		assert.Equal(t, "/tmp/root", w.RootPath)
	})

	t.Run("events published before listening are buffered", func(t *testing.T) {
		r := NewRegistry()
		token := r.Issue("m")

		event := &structpb.Struct{Fields: map[string]*structpb.Value{"n": structpb.NewNumberValue(1)}}
		r.Publish(token, event)

		select {
		case got := <-r.Queue(token):
			assert.Equal(t, 1.0, got.GetFields()["n"].GetNumberValue())
		default:
			t.Fatal("expected a buffered event")
		}
	})

	t.Run("full queue drops events", func(t *testing.T) {
		r := NewRegistry()
		token := r.Issue("m")

		for range EventQueueSize + 3 {
			r.Publish(token, &structpb.Struct{})
		}

		assert.Len(t, r.Queue(token), EventQueueSize)
	})

	t.Run("token context", func(t *testing.T) {
		_, ok := TokenFromContext(t.Context())
		assert.False(t, ok)

		token, ok := TokenFromContext(WithToken(t.Context(), "abc"))
		require.True(t, ok)
		assert.Equal(t, "abc", token)
	})
}
