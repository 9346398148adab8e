// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"github.com/agntcy/anytype/api/commands"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// okResponse builds a successful response document.
func okResponse(fields map[string]*structpb.Value) *structpb.Struct {
	if fields == nil {
		fields = make(map[string]*structpb.Value, 1)
	}

	fields[commands.FieldError] = commands.NewErrorValue(commands.ErrorNull, "")

	return &structpb.Struct{Fields: fields}
}

func errorResponse(code commands.ErrorCode, description string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		commands.FieldError: commands.NewErrorValue(code, description),
	}}
}

// failureResponse reports err in the response error document.
// Invalid arguments become BadInput, everything else Unknown.
func failureResponse(err error) *structpb.Struct {
	st := status.Convert(err)

	code := commands.ErrorUnknown
	if st.Code() == codes.InvalidArgument {
		code = commands.ErrorBadInput
	}

	return errorResponse(code, st.Message())
}

func badInput(format string, args ...any) *structpb.Struct {
	return failureResponse(status.Errorf(codes.InvalidArgument, format, args...))
}
