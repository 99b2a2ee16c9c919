// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	// ErrNotFound means the asset path does not exist. User-actionable.
	ErrNotFound = errors.New("audio file not found")

	// ErrUnsupportedFormat means no decoder or encoder is registered for the
	// file extension or export format. User-actionable.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrDecode means the file exists and has a known extension but its
	// contents could not be decoded (corruption, wrong container).
	ErrDecode = errors.New("audio decoding failed")

	// ErrIO wraps failures while writing an export.
	ErrIO = errors.New("audio write failed")
)
