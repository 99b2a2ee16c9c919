// SPDX-License-Identifier: EPL-2.0

package loop

import "errors"

var (
	ErrInvalidMode = errors.New("loop: invalid loop mode")
	ErrEmptySource = errors.New("loop: cannot fill a loop from an empty source")
)
