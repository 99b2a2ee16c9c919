// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/loop"
	"github.com/ik5/amplify/project"
	"github.com/ik5/amplify/stretch"
	"github.com/ik5/amplify/utils"
)

// trackResult is what a worker leaves in its slot.
type trackResult struct {
	buf      *audio.Buffer
	warnings []Warning
	err      error
}

// RenderTrack renders one timeline item: load, ops in order, gain, then the
// start offset as leading silence. Warnings go to the observer and the log.
// An item whose asset is not declared returns an error wrapping ErrSkipped.
func (r *Renderer) RenderTrack(item project.TimelineItem) (*audio.Buffer, error) {
	res := r.renderTrack(item)
	for _, w := range res.warnings {
		r.report(r.logger, w)
	}

	return res.buf, res.err
}

func (r *Renderer) renderTrack(item project.TimelineItem) trackResult {
	var res trackResult
	warn := func(kind WarningKind, op int, format string, args ...any) {
		res.warnings = append(res.warnings, Warning{
			Kind:    kind,
			Item:    item.ID,
			Asset:   item.Asset,
			Op:      op,
			Message: fmt.Sprintf(format, args...),
		})
	}
	fail := func(err error) trackResult {
		res.buf = nil
		res.err = &TrackError{Item: item.ID, Asset: item.Asset, Err: err}
		return res
	}

	path, err := r.project.AssetPath(item.Asset)
	if err != nil {
		warn(WarnMissingAsset, -1, "asset %q is not declared, skipping", item.Asset)
		return fail(fmt.Errorf("%w: %w", ErrSkipped, err))
	}

	buf, err := r.opts.Loader.Load(path)
	if err != nil {
		return fail(err)
	}

	rate := r.project.SampleRate
	for i, op := range item.Ops {
		switch op.Kind {
		case project.KindScale:
			if op.Scale == nil {
				warn(WarnMalformedOp, i, "scale op without parameters")
				continue
			}
			scaled, err := stretch.Scale(buf, op.Scale.Ratio, op.Scale.PreservePitch, rate)
			if err != nil {
				warn(WarnMalformedOp, i, "%v", err)
				continue
			}
			buf = scaled

		case project.KindLoop:
			mode, ok := r.loopMode(op.Loop)
			if !ok {
				warn(WarnMalformedOp, i, "loop op needs count > 0 or bars > 0 with a bpm")
				continue
			}
			looped, err := loop.Loop(buf, mode, rate)
			switch {
			case errors.Is(err, loop.ErrEmptySource):
				warn(WarnEmptyLoop, i, "%v", err)
				continue
			case errors.Is(err, loop.ErrInvalidMode):
				warn(WarnMalformedOp, i, "%v", err)
				continue
			case err != nil:
				return fail(err)
			}
			buf = looped

		default:
			warn(WarnUnknownOp, i, "unsupported op type %q, skipping", op.Type())
		}
	}

	if item.GainDB != 0 {
		buf = buf.Gain(float32(utils.DBToLinear(item.GainDB)))
	}

	if offset := int(math.RoundToEven(item.Start * float64(rate))); offset > 0 {
		buf = buf.PrependSilence(offset)
	}

	res.buf = buf
	return res
}

// loopMode resolves a loop op. A count wins over the meter fields; a meter
// without its own bpm uses the project tempo.
func (r *Renderer) loopMode(op *project.LoopOp) (loop.Mode, bool) {
	if op == nil {
		return nil, false
	}
	if op.Count > 0 {
		return loop.Count{N: op.Count}, true
	}
	if op.Bars <= 0 {
		return nil, false
	}

	bpm := op.BPM
	if bpm <= 0 {
		bpm = r.project.BPM
	}
	if bpm <= 0 {
		return nil, false
	}

	return loop.Meter{BPM: bpm, Bars: op.Bars, BeatsPerBar: r.project.BeatsPerBar()}, true
}
