// SPDX-License-Identifier: EPL-2.0

package render_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/project"
	"github.com/ik5/amplify/render"
)

// halfLevel serves 100 mono frames at 0.5 for any asset.
type halfLevel struct{}

func (halfLevel) Load(string) (*audio.Buffer, error) {
	samples := make([]float32, 100)
	for i := range samples {
		samples[i] = 0.5
	}
	return audio.FromInterleaved(1, samples), nil
}

// Example_warnings renders a timeline with one undeclared asset. The bad
// item is skipped and reported; the rest of the mix is unaffected.
func Example_warnings() {
	p := project.Default()
	p.SampleRate = 1000
	p.Channels = 1
	p.Assets = []project.Asset{{ID: "kick", Path: "kick.wav"}}
	p.Timeline = []project.TimelineItem{
		{ID: "kick-hit", Asset: "kick", Start: 0.1},
		{ID: "ghost-hit", Asset: "ghost"},
	}

	r := render.New(p,
		render.WithLoader(halfLevel{}),
		render.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		render.WithWarningHandler(func(w render.Warning) {
			fmt.Println("warning:", w)
		}),
	)

	res, err := r.Render(context.Background())
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d frames, peak %.1f\n", res.Mix.Frames(), res.Mix.Peak())
	// Output:
	// warning: missing-asset: track "ghost-hit": asset "ghost" is not declared, skipping
	// 200 frames, peak 0.5
}
