// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/ik5/amplify/audio"
)

const (
	// FFTSize is the analysis window length for inputs long enough to fill it.
	FFTSize = 2048
	// MinFFTSize is the smallest window the vocoder runs with. Shorter
	// inputs go through Linear.
	MinFFTSize = 64
	// overlap is the number of synthesis hops per window.
	overlap = 4
)

// PhaseVocoder time-scales buf by ratio without changing its pitch.
//
// Each channel is cut into Hann-windowed frames every hop*ratio samples,
// their phases are advanced by the measured instantaneous frequency and the
// frames are overlap-added every hop samples. The result is trimmed or padded
// to exactly TargetFrames.
func PhaseVocoder(buf *audio.Buffer, ratio float64) *audio.Buffer {
	channels := buf.Channels()
	frames := buf.Frames()
	target := TargetFrames(frames, ratio)
	if target <= 0 {
		return audio.NewBuffer(channels, 0)
	}

	size := fftSize(frames)
	if size < MinFFTSize {
		return Linear(buf, ratio)
	}

	v := newVocoder(size, ratio)
	planes := make([][]float32, channels)
	for c := range channels {
		planes[c] = v.process(buf.Channel(c), target)
	}

	return audio.FromChannels(planes)
}

// fftSize picks the largest power of two up to FFTSize that fits in frames.
func fftSize(frames int) int {
	n := FFTSize
	for n > frames && n > MinFFTSize {
		n /= 2
	}
	if n > frames {
		return 0
	}
	return n
}

type vocoder struct {
	size      int
	synthHop  int
	analysisH float64
	win       []float64
	omega     []float64 // expected phase advance per sample, per bin
}

func newVocoder(size int, ratio float64) *vocoder {
	v := &vocoder{
		size:      size,
		synthHop:  size / overlap,
		analysisH: float64(size/overlap) * ratio,
		win:       window.Hann(size),
		omega:     make([]float64, size/2+1),
	}
	for k := range v.omega {
		v.omega[k] = 2 * math.Pi * float64(k) / float64(size)
	}
	return v
}

// process stretches one channel into target samples.
func (v *vocoder) process(in []float32, target int) []float32 {
	half := v.size / 2
	bins := half + 1

	count := int(math.Ceil(float64(target)/float64(v.synthHop))) + 1
	acc := make([]float64, (count-1)*v.synthHop+v.size)
	norm := make([]float64, len(acc))

	frame := make([]float64, v.size)
	spectrum := make([]complex128, v.size)
	prevPhase := make([]float64, bins)
	synthPhase := make([]float64, bins)
	prevStart := 0

	for m := range count {
		// Frames are centred on their hop position; samples outside the
		// input read as silence.
		start := int(math.Round(float64(m)*v.analysisH)) - half
		for i := range frame {
			j := start + i
			if j >= 0 && j < len(in) {
				frame[i] = float64(in[j]) * v.win[i]
			} else {
				frame[i] = 0
			}
		}

		x := fft.FFTReal(frame)
		hop := float64(start - prevStart)
		for k := range bins {
			mag, phase := cmplx.Abs(x[k]), cmplx.Phase(x[k])
			if m == 0 {
				synthPhase[k] = phase
			} else {
				delta := wrapPhase(phase - prevPhase[k] - v.omega[k]*hop)
				freq := v.omega[k]
				if hop > 0 {
					freq += delta / hop
				}
				synthPhase[k] += freq * float64(v.synthHop)
			}
			prevPhase[k] = phase
			spectrum[k] = cmplx.Rect(mag, synthPhase[k])
		}
		for k := 1; k < half; k++ {
			spectrum[v.size-k] = cmplx.Conj(spectrum[k])
		}
		prevStart = start

		y := fft.IFFT(spectrum)
		offset := m * v.synthHop
		for i, s := range y {
			w := v.win[i]
			acc[offset+i] += real(s) * w
			norm[offset+i] += w * w
		}
	}

	out := make([]float32, target)
	for i := range out {
		j := i + half
		if j >= len(acc) {
			break
		}
		if norm[j] > 1e-6 {
			out[i] = float32(acc[j] / norm[j])
		}
	}

	return out
}

// wrapPhase maps p into [-pi, pi].
func wrapPhase(p float64) float64 {
	return p - 2*math.Pi*math.Round(p/(2*math.Pi))
}
