// SPDX-License-Identifier: EPL-2.0

// Package codec is the file boundary of the renderer: it turns asset paths
// into buffers and buffers into exported files.
//
// Decoding picks a decoder by file extension from an audio.Registry.
// Failures fall into three kinds, testable with errors.Is:
//
//   - ErrNotFound: the path does not exist
//   - ErrUnsupportedFormat: the extension has no decoder
//   - ErrDecode: the contents could not be decoded
//
// Loader adds the conversion to a project's sample rate and channel count.
//
// Encode writes 16-bit PCM WAV or AIFF.
package codec
