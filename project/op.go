// SPDX-License-Identifier: EPL-2.0

package project

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies the processing step an Op performs.
type Kind int

const (
	KindUnknown Kind = iota
	KindScale
	KindLoop
)

func (k Kind) String() string {
	switch k {
	case KindScale:
		return "scale"
	case KindLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Op is one processing step on a timeline item. Scale or Loop is set to
// match Kind; both stay nil when the parameters could not be read, and the
// renderer skips such an op with a warning. Raw keeps the mapping as written
// so that unknown or unreadable steps survive a load/save cycle.
type Op struct {
	Kind  Kind
	Scale *ScaleOp
	Loop  *LoopOp
	Raw   map[string]any
}

// ScaleOp changes the duration by Ratio (>1 is faster).
type ScaleOp struct {
	Ratio         float64
	PreservePitch bool
}

// LoopOp repeats the audio Count times, or for Bars bars at BPM. Zero
// fields are unset.
type LoopOp struct {
	Count int
	BPM   float64
	Bars  int
}

// Type returns the op's type as written in the document.
func (o Op) Type() string {
	if o.Kind != KindUnknown {
		return o.Kind.String()
	}
	if t, ok := o.Raw["type"].(string); ok {
		return t
	}
	return ""
}

type opDoc struct {
	Type          string   `yaml:"type"`
	Factor        *float64 `yaml:"factor,omitempty"`
	PreservePitch *bool    `yaml:"preserve_pitch,omitempty"`
	Count         *int     `yaml:"count,omitempty"`
	BPM           *float64 `yaml:"bpm,omitempty"`
	Bars          *int     `yaml:"bars,omitempty"`
}

func (o *Op) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("op at line %d: %w", value.Line, err)
	}

	*o = Op{Raw: raw}

	switch raw["type"] {
	case "scale":
		var doc opDoc
		if err := value.Decode(&doc); err != nil {
			o.Kind = KindScale
			return nil
		}
		s := &ScaleOp{Ratio: 1}
		if doc.Factor != nil {
			s.Ratio = *doc.Factor
		}
		if doc.PreservePitch != nil {
			s.PreservePitch = *doc.PreservePitch
		}
		o.Kind, o.Scale = KindScale, s

	case "loop":
		var doc opDoc
		if err := value.Decode(&doc); err != nil {
			o.Kind = KindLoop
			return nil
		}
		l := &LoopOp{}
		if doc.Count != nil {
			l.Count = *doc.Count
		}
		if doc.BPM != nil {
			l.BPM = *doc.BPM
		}
		if doc.Bars != nil {
			l.Bars = *doc.Bars
		}
		o.Kind, o.Loop = KindLoop, l
	}

	return nil
}

func (o Op) MarshalYAML() (any, error) {
	switch o.Kind {
	case KindScale:
		if o.Scale == nil {
			break
		}
		return opDoc{
			Type:          "scale",
			Factor:        &o.Scale.Ratio,
			PreservePitch: &o.Scale.PreservePitch,
		}, nil

	case KindLoop:
		if o.Loop == nil {
			break
		}
		doc := opDoc{Type: "loop"}
		if o.Loop.Count != 0 {
			doc.Count = &o.Loop.Count
		}
		if o.Loop.BPM != 0 {
			doc.BPM = &o.Loop.BPM
		}
		if o.Loop.Bars != 0 {
			doc.Bars = &o.Loop.Bars
		}
		return doc, nil
	}

	return o.Raw, nil
}
