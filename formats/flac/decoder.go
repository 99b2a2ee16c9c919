// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

var (
	ErrNotFlacFile         = errors.New("not a FLAC stream")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)

// frameParser is the part of flac.Stream the source needs, split out for tests.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int

	// pending holds decoded samples of the current frame not yet handed out.
	pending []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			f, err := s.stream.ParseNext()
			if err == io.EOF {
				if written == 0 {
					return 0, io.EOF
				}
				return written, io.EOF
			}
			if err != nil {
				return written, fmt.Errorf("parsing flac frame: %w", err)
			}
			s.fill(f)
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	return written, nil
}

// fill interleaves the subframes of f into pending.
func (s *source) fill(f *frame.Frame) {
	block := int(f.BlockSize)
	if cap(s.pending) < block*s.channels {
		s.pending = make([]float32, block*s.channels)
	}
	s.pending = s.pending[:block*s.channels]

	for ch := range s.channels {
		samples := f.Subframes[ch].Samples
		for i := range block {
			s.pending[i*s.channels+ch] = utils.PCMToFloat(int(samples[i]), s.bitDepth)
		}
	}
}

// Decoder reads FLAC through github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	bitDepth := int(info.BitsPerSample)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		stream:     stream,
		closer:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   bitDepth,
	}, nil
}
