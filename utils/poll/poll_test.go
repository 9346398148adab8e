// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUntil(t *testing.T) {
	t.Run("returns once condition holds", func(t *testing.T) {
		calls := 0
		err := Until(t.Context(), func(context.Context) (bool, error) {
			calls++

			return calls == 3, nil
		}, WithInterval(time.Millisecond, time.Millisecond))

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on condition error", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := Until(t.Context(), func(context.Context) (bool, error) {
			calls++

			return false, boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("times out", func(t *testing.T) {
		err := Until(t.Context(), func(context.Context) (bool, error) {
			return false, nil
		}, WithInterval(time.Millisecond, 2*time.Millisecond), WithTimeout(20*time.Millisecond))

		assert.Error(t, err)
	})
}
