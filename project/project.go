// SPDX-License-Identifier: EPL-2.0

package project

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	MinScaleRatio = 0.5
	MaxScaleRatio = 2.0
)

// Project is a composition: the assets it draws on, where they are placed in
// time and how the result is mixed and exported.
type Project struct {
	Version int `yaml:"version"`

	Settings `yaml:"project"`

	Assets   []Asset        `yaml:"assets"`
	Timeline []TimelineItem `yaml:"timeline"`
	Mix      MixSettings    `yaml:"mix"`
	Export   ExportSettings `yaml:"export"`

	// Dir is the directory relative asset paths resolve against. It is set
	// by Load and never written out.
	Dir string `yaml:"-"`
}

type Settings struct {
	Name          string  `yaml:"name"`
	SampleRate    int     `yaml:"sample_rate"`
	Channels      int     `yaml:"channels"`
	BPM           float64 `yaml:"bpm"`
	TimeSignature string  `yaml:"time_signature"`
}

type Asset struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// TimelineItem places an asset on the timeline. Start is in seconds.
type TimelineItem struct {
	ID     string  `yaml:"id"`
	Asset  string  `yaml:"asset"`
	Start  float64 `yaml:"start"`
	GainDB float64 `yaml:"gain_db"`
	Ops    []Op    `yaml:"ops"`
}

type MixSettings struct {
	Normalize bool `yaml:"normalize"`
}

type ExportSettings struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Default returns the document written by a fresh init.
func Default() *Project {
	return &Project{
		Version: 1,
		Settings: Settings{
			Name:          "untitled",
			SampleRate:    44100,
			Channels:      2,
			BPM:           120,
			TimeSignature: "4/4",
		},
		Assets:   []Asset{},
		Timeline: []TimelineItem{},
		Mix:      MixSettings{Normalize: true},
		Export:   ExportSettings{Path: "out.wav", Format: "wav"},
	}
}

// Parse decodes a project document. Missing keys keep their Default values.
// The result is not validated.
func Parse(data []byte) (*Project, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return p, nil
}

// Load reads, parses and validates the project at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: reading %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Dir = filepath.Dir(path)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Save writes p to path as YAML.
func Save(path string, p *Project) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("project: encoding: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("project: writing %s: %w", path, err)
	}

	return nil
}

// Init writes Default to path unless a file already exists there. It reports
// whether a file was created.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("project: %w", err)
	}

	p := Default()
	p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := Save(path, p); err != nil {
		return false, err
	}

	return true, nil
}

// BeatsPerBar is the numerator of the time signature, 4 when it is unset or
// unreadable.
func (p *Project) BeatsPerBar() int {
	n, _, err := parseTimeSignature(p.TimeSignature)
	if err != nil {
		return 4
	}
	return n
}

func parseTimeSignature(s string) (int, int, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, 0, fmt.Errorf("time signature %q: want N/M", s)
	}

	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || n <= 0 {
		return 0, 0, fmt.Errorf("time signature %q: bad numerator", s)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil || d <= 0 {
		return 0, 0, fmt.Errorf("time signature %q: bad denominator", s)
	}

	return n, d, nil
}

// Asset looks up an asset by id.
func (p *Project) Asset(id string) (Asset, bool) {
	for _, a := range p.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// AssetPath resolves the file of asset id. Relative paths are joined to Dir.
func (p *Project) AssetPath(id string) (string, error) {
	a, ok := p.Asset(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAsset, id)
	}
	if filepath.IsAbs(a.Path) || p.Dir == "" {
		return a.Path, nil
	}
	return filepath.Join(p.Dir, a.Path), nil
}

// Validate reports every structural problem in p, joined. References to
// undeclared assets are not errors here; the renderer skips those items.
func (p *Project) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidProject}, args...)...))
	}

	if p.SampleRate <= 0 {
		invalid("sample_rate must be > 0, got %d", p.SampleRate)
	}
	if p.Channels <= 0 {
		invalid("channels must be > 0, got %d", p.Channels)
	}
	if p.BPM < 0 || math.IsNaN(p.BPM) || math.IsInf(p.BPM, 0) {
		invalid("bpm must be a finite number >= 0, got %v", p.BPM)
	}
	if p.TimeSignature != "" {
		if _, _, err := parseTimeSignature(p.TimeSignature); err != nil {
			invalid("%v", err)
		}
	}

	seen := make(map[string]bool, len(p.Assets))
	for i, a := range p.Assets {
		switch {
		case a.ID == "":
			invalid("assets[%d]: empty id", i)
		case seen[a.ID]:
			invalid("assets[%d]: duplicate id %q", i, a.ID)
		}
		seen[a.ID] = true

		if a.Path == "" {
			invalid("assets[%d] %q: empty path", i, a.ID)
		}
	}

	for i, item := range p.Timeline {
		if item.Start < 0 || math.IsNaN(item.Start) || math.IsInf(item.Start, 0) {
			invalid("timeline[%d] %q: start must be a finite number >= 0, got %v", i, item.ID, item.Start)
		}
		if math.IsNaN(item.GainDB) || math.IsInf(item.GainDB, 0) {
			invalid("timeline[%d] %q: gain_db must be finite", i, item.ID)
		}
		for j, op := range item.Ops {
			if op.Kind != KindScale {
				continue
			}
			if op.Scale == nil {
				continue
			}
			if r := op.Scale.Ratio; !(r >= MinScaleRatio && r <= MaxScaleRatio) {
				invalid("timeline[%d] %q ops[%d]: scale factor %v outside [%v, %v]",
					i, item.ID, j, r, MinScaleRatio, MaxScaleRatio)
			}
		}
	}

	return errors.Join(errs...)
}
