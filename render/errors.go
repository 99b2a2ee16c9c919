// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrSkipped marks a timeline item that was left out of the mix with a
	// warning rather than failed.
	ErrSkipped = errors.New("render: track skipped")
)

// TrackError is the failure of one timeline item.
type TrackError struct {
	Item  string
	Asset string
	Err   error
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("track %q (asset %q): %v", e.Item, e.Asset, e.Err)
}

func (e *TrackError) Unwrap() error { return e.Err }
