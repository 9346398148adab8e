// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrEmptyKind        = errors.New("value has no kind")
	ErrWrongKind        = errors.New("wrong value kind")
	ErrInvalidEnumValue = errors.New("invalid enum value")
)

// ConversionError reports a wire value that could not be decoded.
// Err is one of the Err* sentinels above.
type ConversionError struct {
	Err      error
	Field    string
	Expected Kind
	Received Kind
	Value    int64
}

func (e *ConversionError) Error() string {
	var msg string

	switch {
	case errors.Is(e.Err, ErrWrongKind):
		msg = fmt.Sprintf("expected kind %s, received %s", e.Expected, e.Received)
	case errors.Is(e.Err, ErrInvalidEnumValue):
		msg = fmt.Sprintf("invalid enum value %d", e.Value)
	default:
		msg = e.Err.Error()
	}

	if e.Field != "" {
		return fmt.Sprintf("field %q: %s", e.Field, msg)
	}

	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// GRPCStatus reports conversion failures as internal errors: a malformed
// document means client and backend disagree on the protocol.
func (e *ConversionError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Error())
}

func withField(err error, field string) error {
	var convErr *ConversionError
	if errors.As(err, &convErr) && convErr.Field == "" {
		withName := *convErr
		withName.Field = field

		return &withName
	}

	return err
}
