// SPDX-License-Identifier: EPL-2.0

// Package loop repeats an audio.Buffer a fixed number of times or until it
// fills a musical length.
package loop

import (
	"fmt"
	"math"

	"github.com/ik5/amplify/audio"
)

// DefaultBeatsPerBar applies when a Meter leaves BeatsPerBar unset.
const DefaultBeatsPerBar = 4

// Mode selects how a buffer is looped. It is either Count or Meter.
type Mode interface {
	// target returns the looped length for a source of frames frames.
	target(frames, sampleRate int) (int, error)
}

// Count tiles the source N times.
type Count struct {
	N int
}

func (m Count) target(frames, _ int) (int, error) {
	if m.N <= 0 {
		return 0, fmt.Errorf("%w: count %d", ErrInvalidMode, m.N)
	}
	return frames * m.N, nil
}

// Meter fills Bars bars of BeatsPerBar beats at BPM, cutting the last
// repetition short as needed.
type Meter struct {
	BPM         float64
	Bars        int
	BeatsPerBar int
}

func (m Meter) target(_, sampleRate int) (int, error) {
	if m.BPM <= 0 || math.IsNaN(m.BPM) || math.IsInf(m.BPM, 0) {
		return 0, fmt.Errorf("%w: bpm %v", ErrInvalidMode, m.BPM)
	}
	if m.Bars <= 0 {
		return 0, fmt.Errorf("%w: bars %d", ErrInvalidMode, m.Bars)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: %d", audio.ErrInvalidRate, sampleRate)
	}

	beats := m.BeatsPerBar
	if beats <= 0 {
		beats = DefaultBeatsPerBar
	}

	seconds := float64(m.Bars*beats) * 60 / m.BPM
	return int(math.RoundToEven(seconds * float64(sampleRate))), nil
}

// TargetFrames reports how many frames Loop would produce for a source of
// frames frames.
func TargetFrames(mode Mode, frames, sampleRate int) (int, error) {
	if mode == nil {
		return 0, fmt.Errorf("%w: no mode", ErrInvalidMode)
	}
	return mode.target(frames, sampleRate)
}

// Loop repeats buf according to mode. Count{1} returns buf itself.
// Any other loop that needs frames from an empty buffer fails with
// ErrEmptySource.
func Loop(buf *audio.Buffer, mode Mode, sampleRate int) (*audio.Buffer, error) {
	target, err := TargetFrames(mode, buf.Frames(), sampleRate)
	if err != nil {
		return nil, err
	}

	frames := buf.Frames()
	if c, ok := mode.(Count); ok {
		if c.N == 1 {
			return buf, nil
		}
		if frames == 0 {
			return nil, fmt.Errorf("%w: count %d", ErrEmptySource, c.N)
		}
		return buf.Repeat(c.N), nil
	}

	if target == 0 {
		return audio.NewBuffer(buf.Channels(), 0), nil
	}
	if frames == 0 {
		return nil, fmt.Errorf("%w: need %d frames", ErrEmptySource, target)
	}

	copies := (target + frames - 1) / frames
	return buf.Repeat(copies).Slice(0, target), nil
}
