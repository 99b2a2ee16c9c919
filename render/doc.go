// SPDX-License-Identifier: EPL-2.0

// Package render turns a project.Project into one mixed audio.Buffer.
//
// # Pipeline
//
// Each timeline item becomes a track. RenderTrack runs these steps in order:
//  1. resolve the item's asset in the project
//  2. load it through the Loader, already at the project's rate and channels
//  3. apply the item's ops (scale, loop) in the order they are listed
//  4. apply gain_db as 10^(dB/20); 0 dB leaves the samples untouched
//  5. delay the track by start seconds of leading silence
//
// Render does this for every item and then sums the tracks with Mix. Tracks
// shorter than the longest are padded with silence. With mix.normalize on,
// a mix peaking above 1.0 is scaled down to a peak of exactly 1.0; quieter
// mixes are left alone.
//
// # Usage
//
//	p, err := project.Load("song.yaml")
//	if err != nil {
//	    return err
//	}
//
//	r := render.New(p,
//	    render.WithWorkers(4),
//	    render.WithLogger(slog.Default()),
//	    render.WithWarningHandler(func(w render.Warning) {
//	        fmt.Println("warning:", w)
//	    }),
//	)
//
//	res, err := r.Render(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d frames, %.2fs\n", res.Mix.Frames(), res.Duration())
//
// A single track can be rendered on its own with RenderTrack, which is
// handy when auditioning one placement.
//
// # Warnings
//
// Problems in the project that can be worked around become Warnings, not
// errors:
//   - WarnMissingAsset: the item names an undeclared asset; the item is skipped
//   - WarnUnknownOp: an op type the renderer does not implement; the op is skipped
//   - WarnMalformedOp: an op whose parameters cannot be applied, such as a
//     loop with neither count nor bars, or a value of the wrong type; the op
//     is skipped
//   - WarnEmptyLoop: a loop over a track with no audio; the op is skipped
//
// Warnings are collected in Result.Warnings, passed to the OnWarning
// observer and logged at WARN level, always in timeline order.
//
// # Errors
//
// Failing to load an asset (codec.ErrNotFound, codec.ErrUnsupportedFormat,
// codec.ErrDecode) fails that track with a *TrackError. By default Render
// then returns every track failure joined together and no mix; with
// WithContinueOnError(true) the surviving tracks are mixed and the failures
// are listed in Result.Failed. A track whose channel count does not match
// the project fails the mix unconditionally with audio.ErrChannelMismatch.
//
// # Concurrency
//
// Tracks render independently on up to Options.Workers goroutines. Each
// worker writes only its own result slot and the mix is built once all of
// them are done, so the output does not depend on the worker count.
package render
