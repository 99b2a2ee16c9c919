// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample containers and low-level conversions the
// renderer is built on.
//
// This package contains the core building blocks:
//   - Buffer: an in-memory, fixed-channel block of interleaved float32 samples
//   - Source and Decoder: the streaming contract every format decoder implements
//   - Registry: decoders keyed by file extension
//   - Resample and RemapChannels: bring decoded audio to a project's rate and
//     channel layout
//   - Sum: add equally shaped buffers into one mix
//
// # Buffers
//
// A Buffer stores frames of interleaved samples. With two channels the
// layout is L0 R0 L1 R1 ...; Frames() is len(samples)/channels.
//
//	clip := audio.FromInterleaved(2, []float32{0.5, 0.5, -0.5, -0.5})
//	clip.Frames()   // 2
//	clip.At(1, 0)   // -0.5
//	clip.Channel(1) // []float32{0.5, -0.5}
//
// Planar data converts with FromChannels.
//
// # Pure Transforms
//
// Buffer transforms never touch the receiver. Concat, Repeat, Slice,
// PrependSilence, PadTo, Gain, Scale and Clip all return a new Buffer:
//
//	b := audio.NewBuffer(2, 44100)     // one second of stereo silence
//	looped := b.Repeat(4)              // four seconds
//	placed := looped.PrependSilence(22050)
//	quiet := placed.Gain(0.5)
//
// Concatenating buffers with different channel counts is a programming error
// and panics with ErrChannelMismatch. PadTo only ever extends; a buffer
// already longer than the requested length is returned as a copy.
//
// # Sources
//
// The Source interface is the streaming side of the package:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders return a Source; ReadAll drains it into a Buffer:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src)
//
// BufferSource goes the other way and streams a Buffer as a Source.
//
// # Resampling
//
// Resample converts a buffer between sample rates with Catmull-Rom cubic
// interpolation. When downsampling, a one-pole low-pass runs first to keep
// aliasing down:
//
//	buf, err := audio.Resample(buf, 22050, 44100)
//
// The output holds round(frames * dstRate / srcRate) frames. Equal rates
// return the input.
//
// # Channel Mapping
//
// RemapChannels converts between channel counts:
//   - down to mono: channels are averaged
//   - mono up: the channel is copied to every output
//   - otherwise: shared channels are kept, extra outputs get the average
//
//	stereo, err := audio.RemapChannels(mono, 2)
//
// # Format Registry
//
// The registry maps extensions to decoders. Keys are case-insensitive and
// may carry a leading dot:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{}, "wave")
//	decoder, ok := registry.Get(".WAV")
//
// # Sample Format
//
// Audio samples are float32, nominally in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Values outside that range are allowed while mixing. Encoders clamp on the
// way out, and mixes are normalized before export when the project asks.
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is exhausted, possibly together
// with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Conversions report bad arguments with the sentinels in errors.go
// (ErrInvalidRate, ErrInvalidChannels, ErrChannelMismatch), testable with
// errors.Is.
package audio
