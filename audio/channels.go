// SPDX-License-Identifier: EPL-2.0

package audio

// RemapChannels converts buf to the requested channel count.
//
//   - same count: buf is returned as is
//   - to mono: channels are averaged
//   - from mono: the single channel is copied to every output channel
//   - otherwise: shared channels are kept and any extra output channel
//     carries the input average; surplus input channels are dropped
func RemapChannels(buf *Buffer, channels int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if buf.channels == channels {
		return buf, nil
	}

	frames := buf.Frames()
	srcCh := buf.channels
	out := NewBuffer(channels, frames)
	invSrc := float32(1.0) / float32(srcCh)

	switch {
	case channels == 1:
		// Unrolled for the stereo case, the common one.
		if srcCh == 2 {
			for f := range frames {
				idx := f << 1
				out.samples[f] = (buf.samples[idx] + buf.samples[idx+1]) * 0.5
			}
			break
		}
		for f := range frames {
			var sum float32
			base := f * srcCh
			for c := range srcCh {
				sum += buf.samples[base+c]
			}
			out.samples[f] = sum * invSrc
		}

	case srcCh == 1:
		for f := range frames {
			v := buf.samples[f]
			base := f * channels
			for c := range channels {
				out.samples[base+c] = v
			}
		}

	default:
		for f := range frames {
			in := buf.samples[f*srcCh : (f+1)*srcCh]
			dst := out.samples[f*channels : (f+1)*channels]

			var sum float32
			for _, v := range in {
				sum += v
			}
			avg := sum * invSrc

			for c := range dst {
				if c < srcCh {
					dst[c] = in[c]
				} else {
					dst[c] = avg
				}
			}
		}
	}

	return out, nil
}
