// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/formats/aiff"
	"github.com/ik5/amplify/formats/wav"
)

// ExportBitDepth is the PCM depth of every exported file.
const ExportBitDepth = 16

// ExportFormats lists the accepted export format names.
var ExportFormats = []string{"wav", "aiff"}

// FormatFromPath derives an export format from the file extension.
func FormatFromPath(path string) string {
	switch audio.FormatKey(filepath.Ext(path)) {
	case "wav", "wave":
		return "wav"
	case "aif", "aiff":
		return "aiff"
	default:
		return audio.FormatKey(filepath.Ext(path))
	}
}

// ExportFormat resolves the format a file at path is written in. An empty
// format is derived from the extension. The result is one of ExportFormats.
func ExportFormat(path, format string) (string, error) {
	if format == "" {
		format = FormatFromPath(path)
	}

	switch audio.FormatKey(format) {
	case "wav", "wave":
		return "wav", nil
	case "aiff", "aif":
		return "aiff", nil
	default:
		return "", fmt.Errorf("%w: export format %q (accepted: %v)", ErrUnsupportedFormat, format, ExportFormats)
	}
}

// Encode writes buf to path as 16-bit PCM. An empty format is derived from
// the extension. Samples outside [-1, 1] are clamped by the encoder.
func Encode(buf *audio.Buffer, sampleRate int, path, format string) (err error) {
	format, err = ExportFormat(path, format)
	if err != nil {
		return err
	}

	write := func(f *os.File) error { return wav.Encode(f, buf, sampleRate, ExportBitDepth) }
	if format == "aiff" {
		write = func(f *os.File) error { return aiff.Encode(f, buf, sampleRate, ExportBitDepth) }
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return nil
}
