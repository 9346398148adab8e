// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package commands

import "google.golang.org/protobuf/types/known/structpb"

// Response error document.
const (
	FieldError            = "error"
	FieldErrorCode        = "code"
	FieldErrorDescription = "description"
)

// Request and response fields.
const (
	FieldVersion                 = "version"
	FieldDetails                 = "details"
	FieldRootPath                = "rootPath"
	FieldStorePath               = "storePath"
	FieldMnemonic                = "mnemonic"
	FieldToken                   = "token"
	FieldAccount                 = "account"
	FieldAccountID               = "id"
	FieldAccountName             = "name"
	FieldInfo                    = "info"
	FieldAccountSpaceID          = "accountSpaceId"
	FieldSpaceID                 = "spaceId"
	FieldName                    = "name"
	FieldDisableLocalNetworkSync = "disableLocalNetworkSync"
	FieldNetworkMode             = "networkMode"
	FieldPlatform                = "platform"
	FieldFilters                 = "filters"
	FieldLimit                   = "limit"
	FieldRecords                 = "records"
	FieldObjectID                = "objectId"
	FieldObjectTypeUniqueKey     = "objectTypeUniqueKey"
	FieldContextID               = "contextId"
	FieldKey                     = "key"
	FieldValue                   = "value"
)

// NetworkMode selects how the backend reaches the sync network.
type NetworkMode int32

const (
	NetworkModeDefaultConfig NetworkMode = 0
	NetworkModeLocalOnly     NetworkMode = 1
	NetworkModeCustomConfig  NetworkMode = 2
)

func (m NetworkMode) Valid() bool {
	return m >= NetworkModeDefaultConfig && m <= NetworkModeCustomConfig
}

// NewErrorValue builds the error document of a response.
func NewErrorValue(code ErrorCode, description string) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		FieldErrorCode:        structpb.NewNumberValue(float64(code)),
		FieldErrorDescription: structpb.NewStringValue(description),
	}})
}
