// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// The Decoder accepts 8, 16, 24 and 32-bit PCM in any channel layout and
// sample rate, walking past extra chunks (LIST, fact, ...) the way go-audio
// does. IEEE float and compressed WAV variants are rejected with
// ErrOnlyPCMSupported.
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
//
// Encode writes an audio.Buffer back out, clamping samples to [-1, 1]:
//
//	out, _ := os.Create("mix.wav")
//	err := wav.Encode(out, buf, 44100, 16)
package wav
