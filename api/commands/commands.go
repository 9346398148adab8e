// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

// Package commands describes the RPC surface of the object-graph backend.
//
// Every request and response body is a google.protobuf.Struct document.
// Responses carry an optional "error" document holding a numeric "code" and a
// "description". Code 0 means success.
package commands

const ServiceName = "anytype.ClientCommands"

// Unary methods.
const (
	AppGetVersion        = "AppGetVersion"
	AppShutdown          = "AppShutdown"
	WalletCreate         = "WalletCreate"
	WalletRecover        = "WalletRecover"
	WalletCreateSession  = "WalletCreateSession"
	AccountCreate        = "AccountCreate"
	AccountRecover       = "AccountRecover"
	AccountSelect        = "AccountSelect"
	MetricsSetParameters = "MetricsSetParameters"
	WorkspaceOpen        = "WorkspaceOpen"
	ObjectSearch         = "ObjectSearch"
	ObjectCreate         = "ObjectCreate"
	ObjectCreateRelation = "ObjectCreateRelation"
	ObjectCreateType     = "ObjectCreateObjectType"
	ObjectSetDetails     = "ObjectSetDetails"
)

// Server-streaming methods.
const (
	ListenSessionEvents = "ListenSessionEvents"
)

// TokenMetadataKey is the gRPC metadata key carrying the session token.
const TokenMetadataKey = "token"

// FullMethod returns the gRPC method path for a method name.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// Unauthenticated lists the methods that can be called without a session token.
var Unauthenticated = map[string]bool{
	AppGetVersion:        true,
	WalletCreate:         true,
	WalletRecover:        true,
	WalletCreateSession:  true,
	AccountCreate:        true,
	AccountSelect:        true,
	MetricsSetParameters: true,
	ListenSessionEvents:  true,
}

// ErrorCode is the numeric code of a response error document.
// Codes above BadInput are method specific.
type ErrorCode int32

const (
	ErrorNull     ErrorCode = 0
	ErrorUnknown  ErrorCode = 1
	ErrorBadInput ErrorCode = 2
	// Method specific codes start here.
	ErrorMethodSpecific ErrorCode = 100
)

// SpaceNotExistsDescription is what WorkspaceOpen reports for an unknown space id.
const SpaceNotExistsDescription = "failed to get derived ids: failed to get space: space not exists"
