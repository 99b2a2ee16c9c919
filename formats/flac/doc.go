// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio using github.com/mewkiz/flac.
//
// Frames are parsed lazily; each ReadSamples call decodes only as many frames
// as it needs to fill dst.
//
//	src, err := flac.Decoder{}.Decode(file)
//	defer src.Close()
//	buf, err := audio.ReadAll(src)
package flac
