// SPDX-License-Identifier: EPL-2.0

// Package stretch changes the duration of an audio.Buffer.
//
// A ratio above 1 speeds the audio up, below 1 slows it down; the result
// holds round(frames/ratio) frames. Two algorithms are provided:
//
//   - Linear interpolates between neighbouring frames. Pitch moves with the
//     tempo, like a tape running at a different speed.
//   - PhaseVocoder works on short-time spectra and keeps the pitch while the
//     duration changes. Transients smear somewhat; that is acceptable here.
//
// Scale picks one of them and handles the trivial cases.
package stretch
