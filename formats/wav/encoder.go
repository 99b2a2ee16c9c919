// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/utils"
)

// encodeChunkFrames bounds how much PCM is converted per Write call.
const encodeChunkFrames = 8192

// Encode writes buf as an integer PCM WAV file. Samples are clamped to
// [-1, 1]. bitDepth must be 8, 16, 24 or 32.
func Encode(w io.WriteSeeker, buf *audio.Buffer, sampleRate, bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := buf.Channels()
	enc := gowav.NewEncoder(w, sampleRate, bitDepth, channels, wavFormatPCM)

	samples := buf.Samples()
	chunk := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), encodeChunkFrames*channels)),
		SourceBitDepth: bitDepth,
	}

	for i := 0; i < len(samples); i += encodeChunkFrames * channels {
		end := min(i+encodeChunkFrames*channels, len(samples))

		chunk.Data = chunk.Data[:0]
		for _, v := range samples[i:end] {
			pcm := utils.FloatToPCM(v, bitDepth)
			if bitDepth == 8 {
				pcm += 128
			}
			chunk.Data = append(chunk.Data, pcm)
		}

		if err := enc.Write(chunk); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
