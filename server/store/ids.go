// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	"github.com/google/uuid"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

var idPrefix = cid.Prefix{
	Version:  1,
	Codec:    cid.DagCBOR,
	MhType:   mh.SHA2_256,
	MhLength: -1,
}

// DeriveID returns the content-addressed id of data.
func DeriveID(data []byte) (string, error) {
	c, err := idPrefix.Sum(data)
	if err != nil {
		return "", fmt.Errorf("failed to derive id: %w", err)
	}

	return c.String(), nil
}

// NewID returns a fresh, unique object id.
func NewID() (string, error) {
	return DeriveID([]byte(uuid.NewString()))
}
