// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Buffer is an in-memory block of interleaved float32 samples with a fixed
// channel count. Transforms never touch the receiver; they return a new Buffer.
type Buffer struct {
	channels int
	samples  []float32
}

// NewBuffer returns a silent buffer of the given shape.
func NewBuffer(channels, frames int) *Buffer {
	if channels <= 0 {
		panic(fmt.Sprintf("audio: invalid channel count %d", channels))
	}
	if frames < 0 {
		frames = 0
	}

	return &Buffer{
		channels: channels,
		samples:  make([]float32, frames*channels),
	}
}

// FromInterleaved wraps samples (copied) as a buffer.
// len(samples) must be a multiple of channels.
func FromInterleaved(channels int, samples []float32) *Buffer {
	if channels <= 0 {
		panic(fmt.Sprintf("audio: invalid channel count %d", channels))
	}
	if len(samples)%channels != 0 {
		panic(fmt.Errorf("%w: %d samples for %d channels", ErrInvalidDstSize, len(samples), channels))
	}

	b := &Buffer{
		channels: channels,
		samples:  make([]float32, len(samples)),
	}
	copy(b.samples, samples)

	return b
}

// FromChannels builds a buffer from planar data. All channels must have the
// same length.
func FromChannels(planes [][]float32) *Buffer {
	if len(planes) == 0 {
		panic("audio: no channels")
	}

	frames := len(planes[0])
	b := NewBuffer(len(planes), frames)
	for c, plane := range planes {
		if len(plane) != frames {
			panic(fmt.Sprintf("audio: channel %d has %d frames, want %d", c, len(plane), frames))
		}
		for f, v := range plane {
			b.samples[f*b.channels+c] = v
		}
	}

	return b
}

func (b *Buffer) Channels() int { return b.channels }
func (b *Buffer) Frames() int   { return len(b.samples) / b.channels }
func (b *Buffer) Len() int      { return len(b.samples) }

// At returns the sample at frame f, channel c.
func (b *Buffer) At(f, c int) float32 { return b.samples[f*b.channels+c] }

// Samples returns a copy of the interleaved data.
func (b *Buffer) Samples() []float32 {
	out := make([]float32, len(b.samples))
	copy(out, b.samples)
	return out
}

// Channel returns a copy of one channel's samples.
func (b *Buffer) Channel(c int) []float32 {
	frames := b.Frames()
	out := make([]float32, frames)
	for f := range frames {
		out[f] = b.samples[f*b.channels+c]
	}
	return out
}

func (b *Buffer) Clone() *Buffer {
	return &Buffer{channels: b.channels, samples: b.Samples()}
}

// Concat appends others after b along the time axis.
// Mismatched channel counts are a programming error and panic.
func (b *Buffer) Concat(others ...*Buffer) *Buffer {
	total := len(b.samples)
	for _, o := range others {
		if o.channels != b.channels {
			panic(fmt.Errorf("%w: concat %d-channel buffer onto %d-channel buffer",
				ErrChannelMismatch, o.channels, b.channels))
		}
		total += len(o.samples)
	}

	out := make([]float32, 0, total)
	out = append(out, b.samples...)
	for _, o := range others {
		out = append(out, o.samples...)
	}

	return &Buffer{channels: b.channels, samples: out}
}

// Repeat tiles b n times. n <= 0 yields an empty buffer.
func (b *Buffer) Repeat(n int) *Buffer {
	if n <= 0 {
		return NewBuffer(b.channels, 0)
	}

	out := make([]float32, 0, len(b.samples)*n)
	for range n {
		out = append(out, b.samples...)
	}

	return &Buffer{channels: b.channels, samples: out}
}

// Slice returns frames [from, to), clamped to the buffer bounds.
func (b *Buffer) Slice(from, to int) *Buffer {
	frames := b.Frames()
	from = min(max(from, 0), frames)
	to = min(max(to, from), frames)

	out := make([]float32, (to-from)*b.channels)
	copy(out, b.samples[from*b.channels:to*b.channels])

	return &Buffer{channels: b.channels, samples: out}
}

// PrependSilence puts n zero frames ahead of the audio.
func (b *Buffer) PrependSilence(n int) *Buffer {
	return NewBuffer(b.channels, n).Concat(b)
}

// PadTo extends b with trailing silence up to frames. Longer buffers are
// returned as a copy, never truncated.
func (b *Buffer) PadTo(frames int) *Buffer {
	if frames <= b.Frames() {
		return b.Clone()
	}

	return b.Concat(NewBuffer(b.channels, frames-b.Frames()))
}

// Gain multiplies every sample by g.
func (b *Buffer) Gain(g float32) *Buffer {
	out := make([]float32, len(b.samples))
	for i, v := range b.samples {
		out[i] = v * g
	}

	return &Buffer{channels: b.channels, samples: out}
}

// Scale divides every sample by div.
func (b *Buffer) Scale(div float32) *Buffer {
	out := make([]float32, len(b.samples))
	for i, v := range b.samples {
		out[i] = v / div
	}

	return &Buffer{channels: b.channels, samples: out}
}

// Clip clamps every sample to [-1, 1].
func (b *Buffer) Clip() *Buffer {
	out := make([]float32, len(b.samples))
	for i, v := range b.samples {
		out[i] = min(max(v, -1), 1)
	}

	return &Buffer{channels: b.channels, samples: out}
}

// Peak is the largest absolute sample value, 0 for an empty buffer.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, v := range b.samples {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}
	return peak
}

// Equal reports whether both buffers have the same shape and samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil || b.channels != o.channels || len(b.samples) != len(o.samples) {
		return false
	}
	for i := range b.samples {
		if b.samples[i] != o.samples[i] {
			return false
		}
	}
	return true
}

// Duration returns the length of b in seconds at sampleRate.
func (b *Buffer) Duration(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(sampleRate)
}

// addInto sums b into dst from frame 0.
func (b *Buffer) addInto(dst []float32) {
	for i, v := range b.samples {
		dst[i] += v
	}
}

// Sum adds buffers sample-wise into one buffer of frames length. Every buffer
// must have the given channel count and be no longer than frames.
func Sum(channels, frames int, bufs ...*Buffer) (*Buffer, error) {
	out := NewBuffer(channels, frames)
	for i, b := range bufs {
		if b.channels != channels {
			return nil, fmt.Errorf("%w: track %d has %d channels, want %d",
				ErrChannelMismatch, i, b.channels, channels)
		}
		if b.Frames() > frames {
			return nil, fmt.Errorf("%w: track %d has %d frames, mix holds %d",
				ErrFrameOverflow, i, b.Frames(), frames)
		}
		b.addInto(out.samples)
	}

	return out, nil
}
