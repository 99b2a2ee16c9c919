// SPDX-License-Identifier: EPL-2.0

package project

import "errors"

var (
	ErrParse          = errors.New("project: malformed document")
	ErrInvalidProject = errors.New("project: invalid project")
	ErrUnknownAsset   = errors.New("project: unknown asset")
)
