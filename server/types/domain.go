// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"github.com/agntcy/anytype/api/commands"
	"google.golang.org/protobuf/types/known/structpb"
)

// Filter is a single search condition against one detail key.
type Filter struct {
	RelationKey string
	Condition   commands.Condition
	Value       *structpb.Value
}

// Account is a wallet-bound account with its personal space.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SpaceID  string `json:"space_id"`
	RootPath string `json:"root_path"`
}
