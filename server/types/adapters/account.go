// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package adapters

import (
	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/server/types"
	"google.golang.org/protobuf/types/known/structpb"
)

// AccountAdapter adapts types.Account to its wire document
type AccountAdapter struct {
	account *types.Account
}

// NewAccountAdapter creates a new AccountAdapter
func NewAccountAdapter(account *types.Account) *AccountAdapter {
	return &AccountAdapter{account: account}
}

// ToValue returns the account document as a wire value
func (a *AccountAdapter) ToValue() *structpb.Value {
	return structpb.NewStructValue(a.ToStruct())
}

// ToStruct returns the account document
func (a *AccountAdapter) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		commands.FieldAccountID:   structpb.NewStringValue(a.account.ID),
		commands.FieldAccountName: structpb.NewStringValue(a.account.Name),
		commands.FieldInfo: structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			commands.FieldAccountSpaceID: structpb.NewStringValue(a.account.SpaceID),
		}}),
	}}
}
