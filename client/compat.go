// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"

	"github.com/agntcy/anytype/api/commands"
)

// isSpaceNotExists recognizes the backend's answer to opening an unknown
// space. The backend has no dedicated code for it, only this exact
// description under the Unknown code.
// TODO: switch to a structured code once WorkspaceOpen reports one.
func isSpaceNotExists(err error) bool {
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		return false
	}

	return backendErr.Code == commands.ErrorUnknown &&
		backendErr.Description == commands.SpaceNotExistsDescription
}
