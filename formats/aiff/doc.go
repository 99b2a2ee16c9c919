// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// # Supported Formats
//
// Uncompressed AIFF with signed PCM samples:
//   - 8, 16, 24 and 32 bits per sample
//   - any channel count
//   - any positive sample rate
//
// # Decoding
//
// The decoder returns an audio.Source:
//
//	file, err := os.Open("loop.aiff")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src)
//
// go-audio needs an io.ReadSeeker. An *os.File is used directly. Plain
// readers are buffered into memory first.
//
// # Sample Conversion
//
// AIFF stores samples big-endian, and go-audio handles the byte order. Each
// integer sample is divided by 2^(bits-1), so full scale maps to [-1.0, 1.0):
//   - 16-bit: -32768..32767
//   - 24-bit: -8388608..8388607
//
// # Encoding
//
// Encode is the export side. It clamps samples to [-1, 1] before
// quantizing:
//
//	out, err := os.Create("mix.aiff")
//	if err != nil {
//	    return err
//	}
//	defer out.Close()
//
//	err = aiff.Encode(out, buf, 48000, 16)
//
// # Registering
//
//	registry := audio.NewRegistry()
//	registry.Register("aiff", aiff.Decoder{}, "aif")
//
// # Errors
//
//   - ErrNotAiffFile: the stream has no FORM/AIFF header
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: the header cannot be read, or it describes
//     zero channels or a zero sample rate
package aiff
