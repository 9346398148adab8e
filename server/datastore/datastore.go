// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package datastore

import (
	"fmt"

	"github.com/agntcy/anytype/server/types"
	"github.com/agntcy/anytype/utils/logging"
	ds "github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	badger "github.com/ipfs/go-ds-badger"
	"github.com/spf13/afero"
)

var logger = logging.Logger("datastore")

type options struct {
	fsDir string
	fs    afero.Fs
}

type Option func(*options)

// WithFsProvider persists the datastore under dir using badger.
// Without it the datastore lives in memory.
func WithFsProvider(dir string) Option {
	return func(o *options) {
		o.fsDir = dir
	}
}

// WithFs sets the filesystem used to prepare the datastore directory.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

func New(opts ...Option) (types.Datastore, error) {
	o := &options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(o)
	}

	if o.fsDir == "" {
		logger.Debug("Using in-memory datastore")

		return dssync.MutexWrap(ds.NewMapDatastore()), nil
	}

	if err := o.fs.MkdirAll(o.fsDir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create datastore dir: %w", err)
	}

	store, err := badger.NewDatastore(o.fsDir, &badger.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create badger datastore: %w", err)
	}

	logger.Info("Using badger datastore", "dir", o.fsDir)

	return store, nil
}
