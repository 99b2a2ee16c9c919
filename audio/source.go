// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const readChunkFrames = 4096

// ReadAll drains src into a Buffer. The source is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	chunk := make([]float32, readChunkFrames*channels)
	var samples []float32

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			samples = append(samples, chunk[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// A source that returns nothing without EOF is treated as exhausted.
			break
		}
	}

	// Drop a trailing partial frame from a truncated stream.
	samples = samples[:len(samples)-len(samples)%channels]

	return &Buffer{channels: channels, samples: samples}, nil
}

// BufferSource streams a Buffer through the Source interface.
type BufferSource struct {
	buf        *Buffer
	sampleRate int
	pos        int
}

func NewBufferSource(buf *Buffer, sampleRate int) *BufferSource {
	return &BufferSource{buf: buf, sampleRate: sampleRate}
}

func (s *BufferSource) SampleRate() int { return s.sampleRate }
func (s *BufferSource) Channels() int   { return s.buf.channels }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.buf.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.buf.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.samples) {
		return n, io.EOF
	}
	return n, nil
}
