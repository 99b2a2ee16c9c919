// SPDX-License-Identifier: EPL-2.0

package stretch

import "errors"

var (
	ErrInvalidRatio = errors.New("stretch: ratio must be a finite number > 0")
)
