// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"math"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/internal/audiotest"
)

func TestDefaultRegistry_Formats(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "flac", "mp3", "oga", "ogg", "wav", "wave"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestDecode_WAV(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteFile(t, t.TempDir(), "kick.WAV",
		audiotest.WAV16(22050, 1, []float32{0.5, -0.5, 0.25}))

	buf, rate, err := Decode(DefaultRegistry(), path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rate != 22050 {
		t.Errorf("rate = %d, want 22050", rate)
	}
	if buf.Frames() != 3 || buf.Channels() != 1 {
		t.Errorf("shape = %dx%d, want 3x1", buf.Frames(), buf.Channels())
	}
}

func TestDecode_ErrorKinds(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	corrupt := audiotest.WriteFile(t, dir, "broken.wav", []byte("definitely not a riff container"))
	text := audiotest.WriteFile(t, dir, "notes.txt", []byte("hello"))
	readme := audiotest.WriteFile(t, dir, "README", []byte("hello"))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "nope.wav"), ErrNotFound},
		{"missing file with unknown extension", filepath.Join(dir, "nope.txt"), ErrNotFound},
		{"unknown extension", text, ErrUnsupportedFormat},
		{"no extension", readme, ErrUnsupportedFormat},
		{"corrupt contents", corrupt, ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Decode(DefaultRegistry(), tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_ErrorKindsAreDistinct(t *testing.T) {
	t.Parallel()

	kinds := []error{ErrNotFound, ErrUnsupportedFormat, ErrDecode, ErrIO}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}

func TestLoader_ConformsRateAndChannels(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 22050)
	for i := range samples {
		samples[i] = 0.5
	}
	path := audiotest.WriteFile(t, t.TempDir(), "pad.wav", audiotest.WAV16(22050, 1, samples))

	buf, err := NewLoader(44100, 2).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if buf.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", buf.Channels())
	}
	if buf.Frames() != 44100 {
		t.Errorf("Frames() = %d, want 44100", buf.Frames())
	}
	if v := buf.At(1000, 1); math.Abs(float64(v-0.5)) > 1e-3 {
		t.Errorf("At(1000,1) = %v, want ≈0.5", v)
	}
}

func TestLoader_PropagatesErrorKind(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(44100, 2).Load(filepath.Join(t.TempDir(), "gone.mp3"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestEncode_RoundTripThroughDecode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := audiotest.Sine(44100, 2, 4410, 330, 0.9)

	for _, name := range []string{"mix.wav", "mix.aiff", "nested/dir/mix.aif"} {
		path := filepath.Join(dir, name)
		if err := Encode(in, 44100, path, ""); err != nil {
			t.Fatalf("Encode(%s) error = %v", name, err)
		}

		got, rate, err := Decode(DefaultRegistry(), path)
		if err != nil {
			t.Fatalf("Decode(%s) error = %v", name, err)
		}
		if rate != 44100 || got.Frames() != in.Frames() || got.Channels() != 2 {
			t.Errorf("%s: %d Hz, %dx%d; want 44100 Hz, %dx2", name, rate, got.Frames(), got.Channels(), in.Frames())
		}
	}
}

func TestEncode_ExplicitFormatOverridesExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mix.out")
	if err := Encode(audio.NewBuffer(1, 10), 8000, path, "wav"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	err := Encode(audio.NewBuffer(1, 10), 8000, filepath.Join(t.TempDir(), "mix.mp3"), "")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"out.wav":   "wav",
		"OUT.WAVE":  "wav",
		"a/b.aif":   "aiff",
		"c.aiff":    "aiff",
		"song.flac": "flac",
		"noext":     "",
	}
	for in, want := range tests {
		if got := FormatFromPath(in); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}
