// SPDX-License-Identifier: EPL-2.0

package render

import (
	"log/slog"

	"github.com/ik5/amplify/audio"
)

// Loader produces the audio for an asset file, already at the project's
// sample rate and channel count.
type Loader interface {
	Load(path string) (*audio.Buffer, error)
}

// Options tunes a Renderer. The zero value renders one track at a time,
// stops on the first failed track, and logs through slog.Default.
type Options struct {
	// Workers is how many tracks render at once. Values below 1 mean 1.
	Workers int
	// ContinueOnError mixes the tracks that rendered when others fail.
	// Otherwise Render returns the joined track errors.
	ContinueOnError bool
	// OnWarning, if set, is called for every warning in timeline order.
	OnWarning func(Warning)
	Logger    *slog.Logger
	// Loader defaults to a codec.Loader for the project's format.
	Loader Loader
}

type Option func(*Options)

func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func WithContinueOnError(on bool) Option {
	return func(o *Options) { o.ContinueOnError = on }
}

func WithWarningHandler(fn func(Warning)) Option {
	return func(o *Options) { o.OnWarning = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func WithLoader(l Loader) Option {
	return func(o *Options) { o.Loader = l }
}
