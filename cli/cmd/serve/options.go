// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package serve

var opts = &options{}

type options struct {
	ListenAddress string
	DatastoreDir  string
	NoSeed        bool
}

func init() {
	flags := Command.Flags()
	flags.StringVar(&opts.ListenAddress, "listen-addr", "",
		"Address to listen on. Overrides ANYTYPE_SERVER_LISTEN_ADDRESS.")
	flags.StringVar(&opts.DatastoreDir, "datastore-dir", "",
		"Directory for persistent state. Overrides ANYTYPE_SERVER_DATASTORE_DIR. State is kept in memory if both are empty.")
	flags.BoolVar(&opts.NoSeed, "no-seed", false,
		"Do not create the bundled relations and object types in new spaces.")
}
