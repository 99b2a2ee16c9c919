// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"fmt"
	"math"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/utils"
)

// TargetFrames is the output length for frames input frames at ratio.
// Halves round to even.
func TargetFrames(frames int, ratio float64) int {
	return int(math.RoundToEven(float64(frames) / ratio))
}

// Scale time-scales buf by ratio. With preservePitch the phase vocoder is
// used, otherwise linear interpolation. A ratio of exactly 1 returns buf.
func Scale(buf *audio.Buffer, ratio float64, preservePitch bool, sampleRate int) (*audio.Buffer, error) {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	if ratio == 1 {
		return buf, nil
	}
	if buf.Frames() == 0 {
		return audio.NewBuffer(buf.Channels(), 0), nil
	}

	if preservePitch {
		return PhaseVocoder(buf, ratio), nil
	}

	return Linear(buf, ratio), nil
}

// Linear resamples buf onto TargetFrames evenly spaced positions spanning
// the first through last input frame. Pitch shifts along with the tempo.
func Linear(buf *audio.Buffer, ratio float64) *audio.Buffer {
	channels := buf.Channels()
	frames := buf.Frames()
	target := TargetFrames(frames, ratio)
	if frames == 0 || target <= 0 {
		return audio.NewBuffer(channels, 0)
	}

	out := make([]float32, target*channels)
	step := 0.0
	if target > 1 {
		step = float64(frames-1) / float64(target-1)
	}

	for i := range target {
		pos := float64(i) * step
		left := min(int(pos), frames-1)
		right := min(left+1, frames-1)
		frac := float32(pos - float64(left))

		for c := range channels {
			out[i*channels+c] = utils.Lerp(buf.At(left, c), buf.At(right, c), frac)
		}
	}

	return audio.FromInterleaved(channels, out)
}
