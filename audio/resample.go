// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/amplify/utils"
)

// Resample converts buf from srcRate to dstRate using Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, a one-pole
// low-pass pass runs first to tame aliasing.
//
// The output holds round(frames * dstRate / srcRate) frames. Equal rates
// return buf itself.
func Resample(buf *Buffer, srcRate, dstRate int) (*Buffer, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if srcRate == dstRate || buf.Frames() == 0 {
		return buf, nil
	}

	ratio := float64(srcRate) / float64(dstRate) // source frames per output frame
	in := buf
	if ratio > 1.0 {
		in = lowPass(buf, 0.5)
	}

	channels := in.channels
	srcFrames := in.Frames()
	outFrames := int(math.Round(float64(srcFrames) / ratio))
	out := NewBuffer(channels, outFrames)

	frame := func(i int) int {
		// Edge frames are duplicated past either end.
		return min(max(i, 0), srcFrames-1) * channels
	}

	for i := range outFrames {
		pos := float64(i) * ratio
		idx := int(pos)
		alpha := float32(pos - float64(idx))

		f0, f1, f2, f3 := frame(idx-1), frame(idx), frame(idx+1), frame(idx+2)
		for c := range channels {
			out.samples[i*channels+c] = utils.CubicInterpolate(
				in.samples[f0+c], in.samples[f1+c], in.samples[f2+c], in.samples[f3+c], alpha)
		}
	}

	return out, nil
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1] per channel. The state
// starts at the first frame so there is no warm-up transient.
func lowPass(buf *Buffer, alpha float32) *Buffer {
	channels := buf.channels
	out := buf.Clone()
	if buf.Frames() == 0 {
		return out
	}

	state := make([]float32, channels)
	copy(state, buf.samples[:channels])

	for i := 0; i < len(out.samples); i += channels {
		for c := range channels {
			v := alpha*out.samples[i+c] + (1-alpha)*state[c]
			out.samples[i+c] = v
			state[c] = v
		}
	}

	return out
}
