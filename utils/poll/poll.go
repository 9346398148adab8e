// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package poll waits for a condition to become true on a remote system.
package poll

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	DefaultInitialInterval = 10 * time.Millisecond
	DefaultMaxInterval     = 500 * time.Millisecond
	DefaultTimeout         = time.Minute
)

var errNotYet = errors.New("condition not met yet")

// Condition reports whether the awaited state has been reached.
// A non-nil error stops polling immediately.
type Condition func(ctx context.Context) (bool, error)

type options struct {
	initial time.Duration
	max     time.Duration
	timeout time.Duration
}

type Option func(*options)

func WithInterval(initial, maxInterval time.Duration) Option {
	return func(o *options) {
		o.initial = initial
		o.max = maxInterval
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// Until calls cond with exponential backoff until it returns true,
// returns an error, the timeout elapses, or ctx is done.
func Until(ctx context.Context, cond Condition, opts ...Option) error {
	o := options{
		initial: DefaultInitialInterval,
		max:     DefaultMaxInterval,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.initial
	b.MaxInterval = o.max

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		ok, err := cond(ctx)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}

		if !ok {
			return struct{}{}, errNotYet
		}

		return struct{}{}, nil
	},
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(o.timeout),
	)
	if errors.Is(err, errNotYet) {
		return errors.New("timed out waiting for condition")
	}

	return err //nolint:wrapcheck
}
