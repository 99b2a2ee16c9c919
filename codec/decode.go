// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/formats/aiff"
	"github.com/ik5/amplify/formats/flac"
	"github.com/ik5/amplify/formats/mp3"
	"github.com/ik5/amplify/formats/vorbis"
	"github.com/ik5/amplify/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{}, "wave")
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{}, "oga")
	reg.Register("aiff", aiff.Decoder{}, "aif")
	reg.Register("flac", flac.Decoder{})

	return reg
}

// Decode reads the file at path with the decoder registered for its extension.
// It returns the samples at the file's own rate and channel layout. A missing
// file is reported as ErrNotFound whatever its extension.
func Decode(reg *audio.Registry, path string) (*audio.Buffer, int, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q (accepted: %s)",
			ErrUnsupportedFormat, path, strings.Join(reg.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return buf, src.SampleRate(), nil
}

// Loader decodes assets and conforms them to a target rate and channel count.
type Loader struct {
	Registry   *audio.Registry
	SampleRate int
	Channels   int
}

// NewLoader returns a Loader over DefaultRegistry.
func NewLoader(sampleRate, channels int) *Loader {
	return &Loader{
		Registry:   DefaultRegistry(),
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Load decodes path, resamples it to l.SampleRate and remaps it to
// l.Channels.
func (l *Loader) Load(path string) (*audio.Buffer, error) {
	buf, rate, err := Decode(l.Registry, path)
	if err != nil {
		return nil, err
	}

	if rate <= 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, audio.ErrInvalidRate)
	}

	buf, err = audio.Resample(buf, rate, l.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("resampling %s: %w", path, err)
	}

	buf, err = audio.RemapChannels(buf, l.Channels)
	if err != nil {
		return nil, fmt.Errorf("remapping %s: %w", path, err)
	}

	return buf, nil
}
