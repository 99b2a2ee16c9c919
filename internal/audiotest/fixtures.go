// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds audio fixtures for tests: synthetic buffers and
// hand-assembled PCM WAV files that do not depend on the encoders under test.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/utils"
)

// Generate builds a buffer whose samples come from waveform(frame, channel).
func Generate(channels, frames int, waveform func(frame, channel int) float32) *audio.Buffer {
	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, frames)
		for f := range frames {
			planes[c][f] = waveform(f, c)
		}
	}
	return audio.FromChannels(planes)
}

// Sine returns a sine tone at frequency Hz.
func Sine(sampleRate, channels, frames int, frequency, amplitude float64) *audio.Buffer {
	return Generate(channels, frames, func(f, _ int) float32 {
		t := float64(f) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// Constant returns a buffer filled with value.
func Constant(channels, frames int, value float32) *audio.Buffer {
	return Generate(channels, frames, func(int, int) float32 { return value })
}

// Ramp returns a buffer whose sample at (f, c) is a distinct small value,
// handy for checking ordering after tiling or slicing.
func Ramp(channels, frames int) *audio.Buffer {
	return Generate(channels, frames, func(f, c int) float32 {
		return float32(f%1000)/1000 + float32(c)/10000
	})
}

// WAV assembles a canonical 44-byte-header PCM WAV file. samples are
// interleaved integers already in the target bit depth (8-bit is unsigned).
func WAV(sampleRate, channels, bitDepth int, samples []int) []byte {
	buf := new(bytes.Buffer)

	bytesPerSample := bitDepth / 8
	dataSize := uint32(len(samples) * bytesPerSample)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitDepth))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		switch bitDepth {
		case 8:
			buf.WriteByte(byte(s))
		case 16:
			_ = binary.Write(buf, binary.LittleEndian, int16(s))
		case 24:
			buf.Write([]byte{byte(s), byte(s >> 8), byte(s >> 16)})
		case 32:
			_ = binary.Write(buf, binary.LittleEndian, int32(s))
		}
	}

	return buf.Bytes()
}

// WAV16 is WAV for 16-bit samples built from floats in [-1, 1].
func WAV16(sampleRate, channels int, samples []float32) []byte {
	ints := make([]int, len(samples))
	for i, v := range samples {
		ints[i] = int(utils.Float32ToInt16(v))
	}
	return WAV(sampleRate, channels, 16, ints)
}

// WriteFile stores data under dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}
