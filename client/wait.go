// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"net"

	"github.com/agntcy/anytype/utils/poll"
)

// WaitForServer blocks until a TCP listener accepts connections on addr.
func WaitForServer(ctx context.Context, addr string, opts ...poll.Option) error {
	var dialer net.Dialer

	err := poll.Until(ctx, func(ctx context.Context) (bool, error) {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false, nil //nolint:nilerr
		}

		_ = conn.Close()

		return true, nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("server at %s is not reachable: %w", addr, err)
	}

	return nil
}
