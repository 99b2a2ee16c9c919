// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/internal/audiotest"
)

func TestScale_InvalidRatio(t *testing.T) {
	t.Parallel()

	buf := audiotest.Ramp(2, 100)
	for _, ratio := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Scale(buf, ratio, false, 44100); !errors.Is(err, ErrInvalidRatio) {
			t.Errorf("Scale(ratio=%v) error = %v, want ErrInvalidRatio", ratio, err)
		}
	}
}

func TestScale_UnityReturnsInput(t *testing.T) {
	t.Parallel()

	buf := audiotest.Ramp(2, 100)
	for _, preserve := range []bool{false, true} {
		got, err := Scale(buf, 1, preserve, 44100)
		if err != nil {
			t.Fatalf("Scale() error = %v", err)
		}
		if got != buf {
			t.Errorf("Scale(ratio=1, preserve=%v) returned a new buffer", preserve)
		}
	}
}

func TestScale_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, preserve := range []bool{false, true} {
		got, err := Scale(audio.NewBuffer(2, 0), 1.5, preserve, 44100)
		if err != nil {
			t.Fatalf("Scale() error = %v", err)
		}
		if got.Frames() != 0 || got.Channels() != 2 {
			t.Errorf("Scale(empty) = %dx%d, want 0x2", got.Frames(), got.Channels())
		}
	}
}

func TestScale_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames int
		ratio  float64
		want   int
	}{
		{"half speed", 88200, 0.5, 176400},
		{"double speed", 88200, 2.0, 44100},
		{"slightly faster", 1000, 1.25, 800},
		{"slightly slower", 1000, 0.8, 1250},
		{"odd count", 1001, 2.0, 500},
		{"short", 10, 0.5, 20},
		{"single frame", 1, 0.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := audiotest.Sine(44100, 2, tt.frames, 440, 0.5)
			for _, preserve := range []bool{false, true} {
				got, err := Scale(buf, tt.ratio, preserve, 44100)
				if err != nil {
					t.Fatalf("Scale() error = %v", err)
				}
				if got.Frames() != tt.want {
					t.Errorf("preserve=%v: Frames() = %d, want %d", preserve, got.Frames(), tt.want)
				}
				if got.Channels() != 2 {
					t.Errorf("preserve=%v: Channels() = %d, want 2", preserve, got.Channels())
				}
			}
		})
	}
}

func TestScale_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	buf := audiotest.Sine(44100, 1, 4096, 220, 0.7)
	before := buf.Clone()
	for _, preserve := range []bool{false, true} {
		if _, err := Scale(buf, 0.75, preserve, 44100); err != nil {
			t.Fatalf("Scale() error = %v", err)
		}
	}
	if !buf.Equal(before) {
		t.Error("Scale modified its input")
	}
}

func TestLinear_Endpoints(t *testing.T) {
	t.Parallel()

	buf := audio.FromInterleaved(1, []float32{0, 1, 2, 3, 4})

	got := Linear(buf, 0.5)
	if got.Frames() != 10 {
		t.Fatalf("Frames() = %d, want 10", got.Frames())
	}
	if got.At(0, 0) != 0 {
		t.Errorf("first = %v, want 0", got.At(0, 0))
	}
	if v := got.At(9, 0); math.Abs(float64(v-4)) > 1e-6 {
		t.Errorf("last = %v, want 4", v)
	}
	// Positions follow i*(n-1)/(target-1) = i*4/9.
	if v := got.At(3, 0); math.Abs(float64(v)-12.0/9.0) > 1e-5 {
		t.Errorf("At(3) = %v, want %v", v, 12.0/9.0)
	}
}

func TestLinear_SingleOutputFrameTakesFirst(t *testing.T) {
	t.Parallel()

	buf := audio.FromInterleaved(2, []float32{0.3, -0.3, 0.9, -0.9})
	got := Linear(buf, 2)
	if got.Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", got.Frames())
	}
	if got.At(0, 0) != 0.3 || got.At(0, 1) != -0.3 {
		t.Errorf("got (%v, %v), want (0.3, -0.3)", got.At(0, 0), got.At(0, 1))
	}
}

func TestLinear_ChannelsIndependent(t *testing.T) {
	t.Parallel()

	buf := audiotest.Generate(2, 50, func(f, c int) float32 {
		if c == 0 {
			return float32(f)
		}
		return -float32(f)
	})

	got := Linear(buf, 0.7)
	for f := range got.Frames() {
		if got.At(f, 0) != -got.At(f, 1) {
			t.Fatalf("frame %d: channels diverged: %v vs %v", f, got.At(f, 0), got.At(f, 1))
		}
	}
}

func TestTargetFrames_RoundsHalfToEven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		frames int
		ratio  float64
		want   int
	}{
		{5, 2, 2},
		{7, 2, 4},
		{1, 2, 0},
		{3, 2, 2},
	}
	for _, tt := range tests {
		if got := TargetFrames(tt.frames, tt.ratio); got != tt.want {
			t.Errorf("TargetFrames(%d, %v) = %d, want %d", tt.frames, tt.ratio, got, tt.want)
		}
	}
}
