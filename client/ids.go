// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

// ObjectID identifies an object in a space.
type ObjectID string

func (id ObjectID) String() string { return string(id) }

// ObjectTypeID identifies an object type. Object types are objects too.
type ObjectTypeID string

func (id ObjectTypeID) String() string { return string(id) }

func (id ObjectTypeID) ObjectID() ObjectID { return ObjectID(id) }

// RelationID identifies a relation. Relations are objects too.
type RelationID string

func (id RelationID) String() string { return string(id) }

func (id RelationID) ObjectID() ObjectID { return ObjectID(id) }

// RelationKey is the key a relation's value is stored under in an object's
// details. It differs from both the relation's name and its id.
type RelationKey string

func (k RelationKey) String() string { return string(k) }
