// SPDX-License-Identifier: EPL-2.0

package amplify_test

import (
	"context"
	"fmt"

	"github.com/ik5/amplify"
	"github.com/ik5/amplify/audio"
	"github.com/ik5/amplify/project"
	"github.com/ik5/amplify/render"
)

// silentLoader hands out one second of silence for any asset.
type silentLoader struct{ rate, channels int }

func (l silentLoader) Load(string) (*audio.Buffer, error) {
	return audio.NewBuffer(l.channels, l.rate), nil
}

// Example_render renders a small composition held in memory.
func Example_render() {
	p, err := project.Parse([]byte(`
project:
  sample_rate: 8000
  channels: 1
  bpm: 120
assets:
  - id: hat
    path: hat.wav
timeline:
  - id: hats
    asset: hat
    start: 0.5
    ops:
      - type: scale
        factor: 2
      - type: loop
        bars: 1
`))
	if err != nil {
		panic(err)
	}

	res, err := amplify.Render(context.Background(), p,
		render.WithLoader(silentLoader{rate: 8000, channels: 1}))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d frames, %.1f s\n", res.Mix.Frames(), res.Duration())
	// Output: 20000 frames, 2.5 s
}
