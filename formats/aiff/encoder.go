// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/utils"
)

// Encode writes buf as a PCM AIFF file, clamping samples to [-1, 1].
func Encode(w io.WriteSeeker, buf *audio.Buffer, sampleRate, bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	samples := buf.Samples()
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = utils.FloatToPCM(v, bitDepth)
	}

	enc := aiff.NewEncoder(w, sampleRate, bitDepth, buf.Channels())
	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: buf.Channels(), SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}

	return nil
}
