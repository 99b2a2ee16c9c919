// SPDX-License-Identifier: EPL-2.0

// Package amplify renders declarative audio compositions.
//
// A composition is a project.Project: a set of sample assets, a timeline that
// places them in time, and per-placement processing (time-scaling, looping,
// gain). Rendering decodes every asset, conforms it to the project's sample
// rate and channel count, applies the processing, and sums the tracks into a
// single buffer that can be exported as WAV or AIFF.
//
// # Supported Formats
//
// Assets are decoded by extension:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// Mixes are exported as 16-bit PCM WAV or AIFF.
//
// # Quick Start
//
// The simplest way to produce a file is Export:
//
//	p, err := project.Load("song.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := amplify.Export(ctx, p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.2fs, %d warnings\n", res.Duration(), len(res.Warnings))
//
// Export writes to the project's export.path, relative to the project file's
// directory. ExportTo writes elsewhere and
// takes the format from the new path's extension:
//
//	res, err := amplify.ExportTo(ctx, p, "preview.aiff")
//
// Render does everything but the write and hands back the mix:
//
//	res, err := amplify.Render(ctx, p, render.WithWorkers(4))
//	peak := res.Mix.Peak()
//
// # Project Documents
//
// A project is a YAML file (see package project):
//
//	project:
//	  name: demo
//	  sample_rate: 44100
//	  channels: 2
//	  bpm: 120
//	  time_signature: 4/4
//	assets:
//	  - id: kick
//	    path: samples/kick.wav
//	timeline:
//	  - id: beat
//	    asset: kick
//	    start: 0.5
//	    gain_db: -3
//	    ops:
//	      - type: loop
//	        bars: 4
//	mix:
//	  normalize: true
//	export:
//	  path: out.wav
//	  format: wav
//
// # Options
//
// Render, Export and ExportTo accept render.Option values:
//   - render.WithWorkers: tracks rendered at once (default 1)
//   - render.WithContinueOnError: mix surviving tracks when some fail
//   - render.WithWarningHandler: observe warnings as they are reported
//   - render.WithLogger: the slog logger for progress and warnings
//   - render.WithLoader: replace file decoding, e.g. in tests
//
// # Packages
//
//   - audio: the in-memory Buffer, streaming Source, resampling and channel
//     remapping
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff, formats/flac:
//     decoders (and WAV/AIFF encoders)
//   - codec: file-level decode/encode keyed by extension
//   - stretch: time-scaling, linear or pitch-preserving
//   - loop: count and meter based looping
//   - project: the YAML project document
//   - render: track rendering and mixing
package amplify
