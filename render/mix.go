// SPDX-License-Identifier: EPL-2.0

package render

import (
	"github.com/ik5/amplify/audio"
)

// Mix sums tracks into one buffer as long as the longest track. Shorter
// tracks are padded with silence at the end. With normalize the result is
// passed through Normalize.
//
// Every track must have the given channel count; otherwise the error wraps
// audio.ErrChannelMismatch.
func Mix(tracks []*audio.Buffer, channels int, normalize bool) (*audio.Buffer, error) {
	longest := 0
	for _, t := range tracks {
		longest = max(longest, t.Frames())
	}

	mix, err := audio.Sum(channels, longest, tracks...)
	if err != nil {
		return nil, err
	}

	if normalize {
		mix = Normalize(mix)
	}

	return mix, nil
}

// Normalize scales buf down so its peak is 1 when the peak exceeds 1.
// Quieter buffers are returned as is.
func Normalize(buf *audio.Buffer) *audio.Buffer {
	peak := buf.Peak()
	if peak <= 1 {
		return buf
	}
	return buf.Scale(peak)
}
