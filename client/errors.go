// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agntcy/anytype/api/commands"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrUnsupportedValue is returned when reading a relation whose format has
	// no RelationValue counterpart (Select, MultiSelect and FileOrMedia).
	ErrUnsupportedValue = errors.New("relation format has no supported value type")

	// ErrUnsupportedVersion is returned by New when the backend does not
	// report the required version.
	ErrUnsupportedVersion = errors.New("unsupported backend version")

	// ErrMissingObjectType is returned when an object lookup or creation is
	// given no object type.
	ErrMissingObjectType = errors.New("object type is required")
)

// EntityKind names the kind of schema entity in errors.
type EntityKind string

const (
	EntityRelation   EntityKind = "relation"
	EntityObjectType EntityKind = "object type"
	EntityObject     EntityKind = "object"
)

// AmbiguousEntityError is returned when more than one entity matches a
// lookup by name.
type AmbiguousEntityError struct {
	Kind  EntityKind
	Name  string
	Count int
}

func (e *AmbiguousEntityError) Error() string {
	return fmt.Sprintf("More than one %s with same name %s (%d found)", e.Kind, e.Name, e.Count)
}

func (e *AmbiguousEntityError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Error())
}

// FormatMismatchError is returned when a relation exists under the requested
// name with a different format. Expected is the existing relation's format,
// Received the requested one.
type FormatMismatchError struct {
	Name     string
	Expected RelationFormat
	Received RelationFormat
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("Relation `%s` exists but has a different format %s from requested format %s", e.Name, e.Expected, e.Received)
}

func (e *FormatMismatchError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Error())
}

// RecommendedRelationsMismatchError is returned when an object type exists
// under the requested name with a different set of recommended relations.
type RecommendedRelationsMismatchError struct {
	Name     string
	Expected []RelationSpec
	Received []RelationSpec
}

func (e *RecommendedRelationsMismatchError) Error() string {
	return fmt.Sprintf("Object type `%s` exists but recommends relations [%s] instead of requested [%s]",
		e.Name, joinSpecs(e.Expected), joinSpecs(e.Received))
}

func (e *RecommendedRelationsMismatchError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Error())
}

// ConflictingRelationSpecsError is returned when an object type is requested
// with two recommended relations of the same name but different formats.
type ConflictingRelationSpecsError struct {
	Name   string
	First  RelationFormat
	Second RelationFormat
}

func (e *ConflictingRelationSpecsError) Error() string {
	return fmt.Sprintf("Relation `%s` is requested with both format %s and format %s", e.Name, e.First, e.Second)
}

func (e *ConflictingRelationSpecsError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

func joinSpecs(specs []RelationSpec) string {
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, ", ")
}

// IncompatibleValueError is returned when a value does not fit the format of
// the relation it is written to.
type IncompatibleValueError struct {
	Relation string
	Expected RelationFormat
	Received RelationFormat
}

func (e *IncompatibleValueError) Error() string {
	return fmt.Sprintf("Expected format doesn't match received format: relation `%s` expects %s, received %s",
		e.Relation, e.Expected, e.Received)
}

func (e *IncompatibleValueError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// BackendError is an error reported by the backend in a response's error
// document.
type BackendError struct {
	Method      string
	Code        commands.ErrorCode
	Description string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s failed with code %d: %s", e.Method, e.Code, e.Description)
}

func (e *BackendError) GRPCStatus() *status.Status {
	switch e.Code {
	case commands.ErrorNull:
		return status.New(codes.OK, "")
	case commands.ErrorUnknown:
		return status.New(codes.Unknown, e.Description)
	case commands.ErrorBadInput:
		return status.New(codes.InvalidArgument, e.Description)
	default:
		return status.New(codes.FailedPrecondition, e.Description)
	}
}
