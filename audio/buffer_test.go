// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func ramp(channels, frames int) *Buffer {
	b := NewBuffer(channels, frames)
	for f := range frames {
		for c := range channels {
			b.samples[f*channels+c] = float32(f) + float32(c)/10
		}
	}
	return b
}

func TestNewBuffer_Shape(t *testing.T) {
	t.Parallel()

	b := NewBuffer(2, 100)
	if b.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", b.Channels())
	}
	if b.Frames() != 100 {
		t.Errorf("Frames() = %d, want 100", b.Frames())
	}
	if b.Peak() != 0 {
		t.Errorf("Peak() = %v, want 0 for a new buffer", b.Peak())
	}
}

func TestNewBuffer_InvalidChannelsPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewBuffer(0, 10) did not panic")
		}
	}()
	NewBuffer(0, 10)
}

func TestFromInterleaved_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []float32{0.1, 0.2, 0.3, 0.4}
	b := FromInterleaved(2, src)
	src[0] = 9

	if b.At(0, 0) != 0.1 {
		t.Errorf("At(0,0) = %v, want 0.1 (input must be copied)", b.At(0, 0))
	}
	if b.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", b.Frames())
	}
}

func TestFromChannels_Interleaves(t *testing.T) {
	t.Parallel()

	b := FromChannels([][]float32{{1, 2, 3}, {-1, -2, -3}})
	want := []float32{1, -1, 2, -2, 3, -3}
	got := b.Samples()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Samples()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	right := b.Channel(1)
	if right[2] != -3 {
		t.Errorf("Channel(1)[2] = %v, want -3", right[2])
	}
}

func TestBuffer_ConcatPreservesShape(t *testing.T) {
	t.Parallel()

	a := ramp(2, 3)
	b := ramp(2, 5)
	out := a.Concat(b)

	if out.Frames() != 8 {
		t.Fatalf("Frames() = %d, want 8", out.Frames())
	}
	if out.At(3, 1) != b.At(0, 1) {
		t.Errorf("At(3,1) = %v, want %v", out.At(3, 1), b.At(0, 1))
	}
	if a.Frames() != 3 || b.Frames() != 5 {
		t.Error("Concat() modified its inputs")
	}
}

func TestBuffer_ConcatChannelMismatchPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Concat() with mismatched channels did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrChannelMismatch) {
			t.Errorf("panic value = %v, want ErrChannelMismatch", r)
		}
	}()

	NewBuffer(2, 4).Concat(NewBuffer(1, 4))
}

func TestBuffer_Repeat(t *testing.T) {
	t.Parallel()

	b := ramp(1, 4)
	tiled := b.Repeat(3)

	if tiled.Frames() != 12 {
		t.Fatalf("Frames() = %d, want 12", tiled.Frames())
	}
	for f := range 12 {
		if tiled.At(f, 0) != b.At(f%4, 0) {
			t.Errorf("At(%d,0) = %v, want %v", f, tiled.At(f, 0), b.At(f%4, 0))
		}
	}

	if got := b.Repeat(0).Frames(); got != 0 {
		t.Errorf("Repeat(0).Frames() = %d, want 0", got)
	}
}

func TestBuffer_Slice(t *testing.T) {
	t.Parallel()

	b := ramp(2, 10)

	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{"middle", 2, 5, 3},
		{"clamped end", 8, 50, 2},
		{"negative start", -3, 2, 2},
		{"inverted", 6, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := b.Slice(tt.from, tt.to).Frames(); got != tt.want {
				t.Errorf("Slice(%d,%d).Frames() = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestBuffer_PrependSilence(t *testing.T) {
	t.Parallel()

	b := FromInterleaved(2, []float32{0.5, 0.5})
	out := b.PrependSilence(3)

	if out.Frames() != 4 {
		t.Fatalf("Frames() = %d, want 4", out.Frames())
	}
	for f := range 3 {
		if out.At(f, 0) != 0 || out.At(f, 1) != 0 {
			t.Errorf("frame %d not silent", f)
		}
	}
	if out.At(3, 1) != 0.5 {
		t.Errorf("At(3,1) = %v, want 0.5", out.At(3, 1))
	}
}

func TestBuffer_PadToNeverTruncates(t *testing.T) {
	t.Parallel()

	b := ramp(2, 10)

	if got := b.PadTo(15).Frames(); got != 15 {
		t.Errorf("PadTo(15).Frames() = %d, want 15", got)
	}
	if got := b.PadTo(5).Frames(); got != 10 {
		t.Errorf("PadTo(5).Frames() = %d, want 10", got)
	}
	padded := b.PadTo(12)
	if padded.At(11, 0) != 0 {
		t.Errorf("padding not silent: %v", padded.At(11, 0))
	}
}

func TestBuffer_GainScaleClip(t *testing.T) {
	t.Parallel()

	b := FromInterleaved(1, []float32{0.5, -0.25, 1.5, -2})

	g := b.Gain(2)
	if g.At(0, 0) != 1 || g.At(1, 0) != -0.5 {
		t.Errorf("Gain(2) = %v", g.Samples())
	}

	s := b.Scale(2)
	if s.At(3, 0) != -1 {
		t.Errorf("Scale(2).At(3,0) = %v, want -1", s.At(3, 0))
	}

	c := b.Clip()
	if c.At(2, 0) != 1 || c.At(3, 0) != -1 || c.At(0, 0) != 0.5 {
		t.Errorf("Clip() = %v", c.Samples())
	}

	if b.At(2, 0) != 1.5 {
		t.Error("transform modified the receiver")
	}
}

func TestBuffer_Peak(t *testing.T) {
	t.Parallel()

	b := FromInterleaved(2, []float32{0.1, -0.9, 0.3, 0.2})
	if got := b.Peak(); math.Abs(float64(got-0.9)) > 1e-7 {
		t.Errorf("Peak() = %v, want 0.9", got)
	}
	if got := NewBuffer(2, 0).Peak(); got != 0 {
		t.Errorf("Peak() of empty buffer = %v, want 0", got)
	}
}

func TestBuffer_Equal(t *testing.T) {
	t.Parallel()

	a := ramp(2, 4)

	if !a.Equal(a.Clone()) {
		t.Error("Equal() false for a clone")
	}
	if a.Equal(ramp(1, 8)) {
		t.Error("Equal() true for a different channel layout")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
}

func TestSum(t *testing.T) {
	t.Parallel()

	a := FromInterleaved(1, []float32{1, 1})
	b := FromInterleaved(1, []float32{0.5, 0.5, 0.5})

	out, err := Sum(1, 3, a, b)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	want := []float32{1.5, 1.5, 0.5}
	for i, w := range want {
		if out.At(i, 0) != w {
			t.Errorf("At(%d,0) = %v, want %v", i, out.At(i, 0), w)
		}
	}

	if _, err := Sum(2, 3, a); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("Sum() error = %v, want ErrChannelMismatch", err)
	}
	if _, err := Sum(1, 1, b); !errors.Is(err, ErrFrameOverflow) {
		t.Errorf("Sum() error = %v, want ErrFrameOverflow", err)
	}
}

func BenchmarkBuffer_Concat(b *testing.B) {
	x := NewBuffer(2, 44100)
	y := NewBuffer(2, 44100)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = x.Concat(y)
	}
}
