// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/codec"
	"github.com/ik5/amplify/project"
)

// Renderer turns a project into a mixed buffer. It never modifies the
// project and may be used for several renders.
type Renderer struct {
	project *project.Project
	opts    Options
	logger  *slog.Logger
}

// Result is the outcome of one render.
type Result struct {
	ID         uuid.UUID
	Mix        *audio.Buffer
	SampleRate int
	Warnings   []Warning
	// Tracks has one entry per timeline item, in timeline order.
	Tracks []TrackReport
	Failed []*TrackError
}

// TrackReport summarises one timeline item.
type TrackReport struct {
	Item    string
	Asset   string
	Frames  int
	Skipped bool
	Err     error
}

// Duration of the mix in seconds.
func (r *Result) Duration() float64 {
	if r.Mix == nil {
		return 0
	}
	return r.Mix.Duration(r.SampleRate)
}

func New(p *project.Project, opts ...Option) *Renderer {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Loader == nil {
		o.Loader = codec.NewLoader(p.SampleRate, p.Channels)
	}

	return &Renderer{project: p, opts: o, logger: o.Logger}
}

// Render renders every timeline item, up to Options.Workers at a time, and
// mixes the results. Warnings are reported in timeline order once all tracks
// are done, whatever order they finished in.
//
// When a track fails and ContinueOnError is off, the returned Result has no
// Mix and the error joins every track failure. A structural problem in the
// mix itself always fails the render.
func (r *Renderer) Render(ctx context.Context) (*Result, error) {
	res := &Result{
		ID:         uuid.New(),
		SampleRate: r.project.SampleRate,
	}
	log := r.logger.With("render_id", res.ID.String(), "project", r.project.Name)
	log.Info("render started", "tracks", len(r.project.Timeline), "workers", r.opts.Workers)

	slots := make([]trackResult, len(r.project.Timeline))

	var g errgroup.Group
	g.SetLimit(r.opts.Workers)
	for i, item := range r.project.Timeline {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[i] = trackResult{err: err}
				return nil
			}
			slots[i] = r.renderTrack(item)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tracks []*audio.Buffer
	for i, slot := range slots {
		item := r.project.Timeline[i]
		for _, w := range slot.warnings {
			res.Warnings = append(res.Warnings, w)
			r.report(log, w)
		}

		report := TrackReport{Item: item.ID, Asset: item.Asset, Err: slot.err}
		switch {
		case errors.Is(slot.err, ErrSkipped):
			report.Skipped = true
		case slot.err != nil:
			var te *TrackError
			if !errors.As(slot.err, &te) {
				te = &TrackError{Item: item.ID, Asset: item.Asset, Err: slot.err}
			}
			res.Failed = append(res.Failed, te)
			log.Error("track failed", "item", item.ID, "asset", item.Asset, "error", slot.err)
		default:
			report.Frames = slot.buf.Frames()
			tracks = append(tracks, slot.buf)
			log.Debug("track rendered", "item", item.ID, "frames", report.Frames, "ops", len(item.Ops))
		}
		res.Tracks = append(res.Tracks, report)
	}

	if len(res.Failed) > 0 && !r.opts.ContinueOnError {
		errs := make([]error, len(res.Failed))
		for i, te := range res.Failed {
			errs[i] = te
		}
		return res, errors.Join(errs...)
	}

	mix, err := Mix(tracks, r.project.Channels, r.project.Mix.Normalize)
	if err != nil {
		return res, err
	}
	res.Mix = mix

	log.Info("render finished",
		"frames", mix.Frames(),
		"seconds", res.Duration(),
		"peak", mix.Peak(),
		"warnings", len(res.Warnings),
		"failed", len(res.Failed),
	)

	return res, nil
}

func (r *Renderer) report(log *slog.Logger, w Warning) {
	log.Warn(w.Message, "kind", w.Kind.String(), "item", w.Item, "asset", w.Asset, "op", w.Op)
	if r.opts.OnWarning != nil {
		r.opts.OnWarning(w)
	}
}
